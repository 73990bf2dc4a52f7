package consequence

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

var (
	feasibleCostShare    = decimal.NewFromFloat(0.50)
	shortfallScoreShare  = decimal.NewFromFloat(0.50)
	additionalScoreShare = decimal.NewFromFloat(0.30)
	utilizationScorePct  = decimal.NewFromInt(50)
)

// Risk score weights and bands.
const (
	scoreShortfall     = 30
	scoreAdditional    = 25
	scoreOverdraft     = 20
	scoreUtilization   = 15
	scorePerHighEffect = 10

	riskBandHigh     = 60
	riskBandModerate = 30
)

// synthesizeReport is stage six: the feasibility verdict, total cost, risk
// level, recommendation, warnings, and next steps.
func (e *Engine) synthesizeReport(st pipelineState) (pipelineState, error) {
	if st.payment == nil || st.model == nil || st.solutions == nil {
		return st, ErrMissingUpstream
	}

	required := st.requiredAmount
	additional := st.model.TotalAdditionalCosts

	feasible := st.payment.Covered() &&
		additional.LessThanOrEqual(required.Mul(feasibleCostShare)) &&
		st.model.HighSeverityCascades() < 2

	score := riskScore(st.payment, st.model)
	risk := riskBand(score)

	report := &domain.ConsequenceReport{
		ExecutionFeasible:   feasible,
		TotalCost:           required.Add(additional),
		ScenarioCost:        required,
		AdditionalCosts:     additional,
		RiskLevel:           risk,
		RecommendedApproach: recommendApproach(feasible, st.solutions),
		Warnings:            buildWarnings(st.payment, st.model),
		NextSteps:           buildNextSteps(feasible, st.solutions),
		DetailedAnalysis: domain.DetailedAnalysis{
			PaymentAnalysis: *st.payment,
			Consequences:    *st.model,
			Solutions:       *st.solutions,
		},
	}

	e.Logger.Infof("report: feasible=%t risk=%s total_cost=%s", feasible, risk, report.TotalCost.StringFixed(2))
	st.report = report
	return st, nil
}

// riskScore is the weighted sum behind the report's risk band.
func riskScore(payment *domain.PaymentAnalysis, model *domain.ConsequenceModel) int {
	score := 0
	required := payment.RequiredAmount

	if payment.Shortfall.GreaterThan(required.Mul(shortfallScoreShare)) {
		score += scoreShortfall
	}
	if model.TotalAdditionalCosts.GreaterThan(required.Mul(additionalScoreShare)) {
		score += scoreAdditional
	}
	if len(model.OverdraftFees) > 0 {
		score += scoreOverdraft
	}
	if model.MaxUtilizationRate().GreaterThan(utilizationScorePct) {
		score += scoreUtilization
	}
	score += scorePerHighEffect * model.HighSeverityCascades()

	return score
}

// riskBand maps a score to the low/moderate/high order: >=60 high, >=30
// moderate, else low.
func riskBand(score int) domain.RiskLevel {
	switch {
	case score >= riskBandHigh:
		return domain.RiskHigh
	case score >= riskBandModerate:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

func recommendApproach(feasible bool, solutions *domain.SolutionSet) string {
	if !feasible {
		if len(solutions.Alternatives) > 0 {
			alt := solutions.Alternatives[0]
			return fmt.Sprintf("not advisable as planned; consider %s: %s", alt.Type, alt.Description)
		}
		return "execution is not recommended with the current accounts"
	}
	if solutions.OptimalPayment != nil {
		opt := solutions.OptimalPayment
		return fmt.Sprintf("pay %s from %s via %s (marginal cost %s, %s risk)",
			opt.Amount.StringFixed(2), opt.AccountName, opt.Method, opt.Cost.StringFixed(2), opt.RiskLevel)
	}
	return "no payment required"
}

func buildWarnings(payment *domain.PaymentAnalysis, model *domain.ConsequenceModel) []string {
	warnings := []string{}

	if payment.Shortfall.IsPositive() {
		warnings = append(warnings, fmt.Sprintf("available funds fall %s short of the required %s",
			payment.Shortfall.StringFixed(2), payment.RequiredAmount.StringFixed(2)))
	}
	if model.TotalOverdraftCosts.IsPositive() {
		warnings = append(warnings, fmt.Sprintf("the plan incurs %s in overdraft and NSF charges",
			model.TotalOverdraftCosts.StringFixed(2)))
	}
	if model.MaxUtilizationRate().GreaterThan(utilizationHighPct) {
		warnings = append(warnings, fmt.Sprintf("credit utilization rises to %s%%, above the 30%% credit-score threshold",
			model.MaxUtilizationRate().StringFixed(1)))
	}

	return warnings
}

func buildNextSteps(feasible bool, solutions *domain.SolutionSet) []string {
	var steps []string
	if feasible {
		steps = []string{
			"confirm the payment sequence matches your preferences",
			"schedule the transfers in the planned order",
			"re-run the analysis after execution to track remaining capacity",
		}
	} else {
		steps = []string{
			"do not execute the scenario as currently planned",
			"review the alternative approaches below",
			"rebuild liquid balances before re-evaluating",
		}
	}

	for _, opt := range solutions.CostOptimizations {
		steps = append(steps, fmt.Sprintf("cost optimization: %s (potential savings %s)",
			opt.Description, opt.PotentialSavings.StringFixed(2)))
	}
	return steps
}
