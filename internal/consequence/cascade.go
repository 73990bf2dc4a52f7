package consequence

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

var (
	emergencySeverePct     = decimal.NewFromInt(75)
	emergencyModeratePct   = decimal.NewFromInt(50)
	emergencyNoticeablePct = decimal.NewFromInt(25)
	cashFlowStressShare    = decimal.NewFromFloat(0.10)
)

// analyzeCascade is stage four: second-order risks derived from the overdraft
// and credit models.
func (e *Engine) analyzeCascade(st pipelineState) (pipelineState, error) {
	if st.payment == nil || st.model == nil {
		return st, ErrMissingUpstream
	}

	effects := []domain.CascadeEffect{}

	if effect, ok := emergencyFundEffect(st.payment, st.context.EmergencyFund); ok {
		effects = append(effects, effect)
	}
	if effect, ok := creditScoreEffect(st.model); ok {
		effects = append(effects, effect)
	}
	if effect, ok := cashFlowStressEffect(st.model, st.context.MonthlyIncome); ok {
		effects = append(effects, effect)
	}
	if effect, ok := borrowingCapacityEffect(st.payment); ok {
		effects = append(effects, effect)
	}

	st.model.CascadeEffects = effects

	additional := st.model.TotalOverdraftCosts.Add(st.model.TotalCreditCosts)
	for _, effect := range effects {
		additional = additional.Add(effect.FinancialImpact)
	}
	st.model.TotalAdditionalCosts = additional

	e.Logger.Debugf("cascade analysis: %d effects, total additional costs %s",
		len(effects), additional.StringFixed(2))
	return st, nil
}

// emergencyFundEffect fires only when savings draws deplete more than 75% of
// the emergency fund; smaller reductions are covered by warnings elsewhere.
func emergencyFundEffect(payment *domain.PaymentAnalysis, fund decimal.Decimal) (domain.CascadeEffect, bool) {
	reduction := emergencyFundReduction(payment, fund)
	if !reduction.GreaterThan(emergencySeverePct) {
		return domain.CascadeEffect{}, false
	}
	return domain.CascadeEffect{
		Type:     domain.CascadeEmergencyFundDepletion,
		Severity: domain.RiskHigh,
		Description: fmt.Sprintf("this plan draws %s%% of your emergency fund, leaving little cushion for the next unplanned expense",
			reduction.StringFixed(0)),
		FinancialImpact: decimal.Zero,
		RiskLevel:       domain.RiskHigh,
	}, true
}

// emergencyFundReduction exposes the banding used above so warnings can
// mention moderate and noticeable reductions without duplicating the math.
func emergencyFundReduction(payment *domain.PaymentAnalysis, fund decimal.Decimal) decimal.Decimal {
	used := decimal.Zero
	for _, step := range payment.Sequence.Steps {
		if step.Account.Type == domain.AccountSavings {
			used = used.Add(step.Amount)
		}
	}
	if !fund.IsPositive() {
		return decimal.Zero
	}
	return used.Div(fund).Mul(decimal.NewFromInt(100))
}

func creditScoreEffect(model *domain.ConsequenceModel) (domain.CascadeEffect, bool) {
	for _, util := range model.CreditUtilization {
		if util.UtilizationRate.GreaterThan(utilizationHighPct) {
			return domain.CascadeEffect{
				Type:            domain.CascadeCreditScoreImpact,
				Severity:        domain.RiskModerate,
				Description:     "credit utilization above 30% on at least one card will pressure your credit score",
				FinancialImpact: decimal.Zero,
				RiskLevel:       domain.RiskModerate,
			}, true
		}
	}
	return domain.CascadeEffect{}, false
}

// cashFlowStressEffect fires when the new minimum payments exceed 10% of
// monthly income; the impact is the annualized payment increase.
func cashFlowStressEffect(model *domain.ConsequenceModel, monthlyIncome decimal.Decimal) (domain.CascadeEffect, bool) {
	increase := decimal.Zero
	for _, cost := range model.InterestCosts {
		increase = increase.Add(cost.MinimumPayment)
	}
	if !increase.IsPositive() {
		return domain.CascadeEffect{}, false
	}
	if !increase.GreaterThan(monthlyIncome.Mul(cashFlowStressShare)) {
		return domain.CascadeEffect{}, false
	}
	return domain.CascadeEffect{
		Type:     domain.CascadeCashFlowStress,
		Severity: domain.RiskHigh,
		Description: fmt.Sprintf("new minimum payments of %s/month exceed 10%% of your monthly income",
			increase.StringFixed(2)),
		FinancialImpact: increase.Mul(decimal.NewFromInt(12)),
		RiskLevel:       domain.RiskHigh,
	}, true
}

func borrowingCapacityEffect(payment *domain.PaymentAnalysis) (domain.CascadeEffect, bool) {
	drawn := decimal.Zero
	for _, step := range payment.Sequence.CreditSteps() {
		drawn = drawn.Add(step.Amount)
	}
	if !drawn.IsPositive() {
		return domain.CascadeEffect{}, false
	}
	return domain.CascadeEffect{
		Type:     domain.CascadeReducedBorrowingCapacity,
		Severity: domain.RiskModerate,
		Description: fmt.Sprintf("charging %s reduces the credit you can reach for in a future emergency",
			drawn.StringFixed(2)),
		FinancialImpact: decimal.Zero,
		RiskLevel:       domain.RiskModerate,
	}, true
}
