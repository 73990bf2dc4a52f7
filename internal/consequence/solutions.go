package consequence

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

var (
	phasedThreshold          = decimal.NewFromInt(1000)
	phasedCostReduction      = decimal.NewFromFloat(0.60)
	delayedCostReduction     = decimal.NewFromFloat(0.80)
	scaledDownCostReduction  = decimal.NewFromFloat(0.50)
	cardSwitchSavingsShare   = decimal.NewFromFloat(0.30)
	balanceTransferShare     = decimal.NewFromFloat(0.80)
	balanceTransferThreshold = decimal.NewFromInt(500)
	stepCostHighShare        = decimal.NewFromFloat(0.20)
	cardCostModerate         = decimal.NewFromInt(100)
)

// generateSolutions is stage five: rank payment options, propose alternative
// strategies, risk mitigations, and cost optimizations.
func (e *Engine) generateSolutions(st pipelineState) (pipelineState, error) {
	if st.payment == nil || st.model == nil {
		return st, ErrMissingUpstream
	}

	options := rankPaymentOptions(st.payment, st.model)
	solutions := &domain.SolutionSet{
		PaymentOptions:    options,
		Alternatives:      proposeAlternatives(st.scenario, st.requiredAmount, st.model.TotalAdditionalCosts),
		RiskMitigation:    proposeMitigations(st.payment, st.model, st.context),
		CostOptimizations: proposeCostOptimizations(st.accounts, st.model),
	}
	if len(options) > 0 {
		optimal := options[0]
		solutions.OptimalPayment = &optimal
	}

	st.solutions = solutions
	return st, nil
}

// rankPaymentOptions scores every step in the fallback sequence by marginal
// cost and risk tier, cheapest and safest first.
func rankPaymentOptions(payment *domain.PaymentAnalysis, model *domain.ConsequenceModel) []domain.PaymentOption {
	options := make([]domain.PaymentOption, 0, len(payment.Sequence.Steps))
	for _, step := range payment.Sequence.Steps {
		cost := stepMarginalCost(step, model)
		options = append(options, domain.PaymentOption{
			AccountID:   step.Account.ID,
			AccountName: step.Account.Name,
			Method:      step.Method,
			Amount:      step.Amount,
			Cost:        cost,
			RiskLevel:   stepRiskTier(step, cost),
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].RiskLevel.Rank() != options[j].RiskLevel.Rank() {
			return options[i].RiskLevel.Rank() < options[j].RiskLevel.Rank()
		}
		return options[i].Cost.LessThan(options[j].Cost)
	})
	return options
}

// stepMarginalCost is the overdraft cost for an overdrawn checking step, else
// the projected yearly interest for a card step, else zero.
func stepMarginalCost(step domain.PaymentStep, model *domain.ConsequenceModel) decimal.Decimal {
	if step.OverdraftAmount.IsPositive() {
		for _, fee := range model.OverdraftFees {
			if fee.AccountID == step.Account.ID {
				return fee.TotalCost
			}
		}
	}
	if step.Method == domain.PayCreditCard {
		if cost, ok := model.InterestCosts[step.Account.ID]; ok {
			return cost.YearlyInterest
		}
	}
	return decimal.Zero
}

func stepRiskTier(step domain.PaymentStep, cost decimal.Decimal) domain.RiskLevel {
	if step.OverdraftAmount.IsPositive() {
		return domain.RiskHigh
	}
	if step.Amount.IsPositive() && cost.GreaterThan(step.Amount.Mul(stepCostHighShare)) {
		return domain.RiskHigh
	}
	if step.Method == domain.PayCreditCard && cost.GreaterThan(cardCostModerate) {
		return domain.RiskModerate
	}
	return domain.RiskLow
}

// proposeAlternatives offers cheaper-but-slower strategies where they apply:
// phasing large scenarios, delaying execution, or scaling the amount down.
func proposeAlternatives(scenario *domain.Scenario, required, additionalCosts decimal.Decimal) []domain.AlternativeApproach {
	alternatives := []domain.AlternativeApproach{}

	if required.GreaterThan(phasedThreshold) {
		alternatives = append(alternatives, domain.AlternativeApproach{
			Type:          "phased_implementation",
			Description:   "split the expense into smaller phases spread across several pay cycles",
			CostReduction: additionalCosts.Mul(phasedCostReduction),
			RiskReduction: domain.RiskModerate,
		})
	}

	alternatives = append(alternatives, domain.AlternativeApproach{
		Type:          "delayed_execution",
		Description:   "wait until liquid balances recover before executing this scenario",
		CostReduction: additionalCosts.Mul(delayedCostReduction),
		RiskReduction: domain.RiskHigh,
	})

	if amount, ok := scalableAmount(scenario); ok {
		alternatives = append(alternatives, domain.AlternativeApproach{
			Type: "scaled_down_version",
			Description: fmt.Sprintf("execute a smaller version of this scenario (for example %s instead of %s)",
				amount.Div(decimal.NewFromInt(2)).StringFixed(2), amount.StringFixed(2)),
			CostReduction: additionalCosts.Mul(scaledDownCostReduction),
			RiskReduction: domain.RiskModerate,
		})
	}

	return alternatives
}

// proposeMitigations emits one strategy per triggered risk condition.
func proposeMitigations(payment *domain.PaymentAnalysis, model *domain.ConsequenceModel, fctx *domain.FinancialContext) []domain.MitigationStrategy {
	strategies := []domain.MitigationStrategy{}

	if reduction := emergencyFundReduction(payment, fctx.EmergencyFund); reduction.GreaterThan(emergencyNoticeablePct) {
		priority := domain.RiskModerate
		if reduction.GreaterThan(emergencyModeratePct) {
			priority = domain.RiskHigh
		}
		strategies = append(strategies, domain.MitigationStrategy{
			Type:           "emergency_fund_protection",
			Priority:       priority,
			Description:    "this plan meaningfully reduces your emergency cushion",
			Implementation: "set up an automatic transfer to rebuild the fund to its prior level within 6 months",
		})
	}

	if model.MaxUtilizationRate().GreaterThan(utilizationHighPct) {
		strategies = append(strategies, domain.MitigationStrategy{
			Type:           "credit_utilization_management",
			Priority:       domain.RiskModerate,
			Description:    "post-purchase utilization exceeds the 30% credit-score threshold",
			Implementation: "pay the new balance down below 30% of the limit before the next statement closes",
		})
	}

	if len(model.OverdraftFees) > 0 {
		strategies = append(strategies, domain.MitigationStrategy{
			Type:           "overdraft_prevention",
			Priority:       domain.RiskHigh,
			Description:    "the plan overdraws a checking account and incurs per-occurrence fees",
			Implementation: "move funds between accounts first, or enable overdraft protection linked to savings",
		})
	}

	return strategies
}

// proposeCostOptimizations surfaces concrete savings within the chosen plan.
func proposeCostOptimizations(accounts []domain.Account, model *domain.ConsequenceModel) []domain.CostOptimization {
	optimizations := []domain.CostOptimization{}

	if card := lowestRateCard(accounts); card != nil && countCards(accounts) > 1 {
		optimizations = append(optimizations, domain.CostOptimization{
			Type: "lowest_rate_card",
			Description: fmt.Sprintf("route credit charges through %s, your lowest-rate card (%s%% APR)",
				card.Name, card.InterestRate.Mul(decimal.NewFromInt(100)).StringFixed(1)),
			PotentialSavings: model.TotalCreditCosts.Mul(cardSwitchSavingsShare),
		})
	}

	if model.TotalCreditCosts.GreaterThan(balanceTransferThreshold) {
		optimizations = append(optimizations, domain.CostOptimization{
			Type:             "balance_transfer_review",
			Description:      "projected interest is high enough that a promotional balance transfer is worth pricing",
			PotentialSavings: model.TotalCreditCosts.Mul(balanceTransferShare),
		})
	}

	optimizations = append(optimizations, domain.CostOptimization{
		Type:             "payment_timing",
		Description:      "time the payment just after payroll deposits land to keep checking balances positive",
		PotentialSavings: model.TotalOverdraftCosts,
	})

	return optimizations
}

func lowestRateCard(accounts []domain.Account) *domain.Account {
	var best *domain.Account
	for i := range accounts {
		acct := &accounts[i]
		if !acct.IsCreditCard() || !acct.Active {
			continue
		}
		if best == nil || acct.InterestRate.LessThan(best.InterestRate) {
			best = acct
		}
	}
	return best
}

func countCards(accounts []domain.Account) int {
	count := 0
	for i := range accounts {
		if accounts[i].IsCreditCard() && accounts[i].Active {
			count++
		}
	}
	return count
}
