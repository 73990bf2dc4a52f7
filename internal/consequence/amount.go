package consequence

import (
	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// amountResolver maps one scenario kind's parameter record to the dollar
// amount the scenario requires up front.
type amountResolver func(domain.ScenarioParams) decimal.Decimal

// amountResolvers is the fixed dispatch table keyed by scenario type. Kinds
// absent from the table fall back to resolveGenericAmount; an unknown type
// degrades to zero rather than erroring.
var amountResolvers = map[domain.ScenarioType]amountResolver{
	domain.ScenarioHomePurchase:     resolveHomePurchase,
	domain.ScenarioCarPurchase:      resolveCarPurchase,
	domain.ScenarioInvestment:       resolveInvestment,
	domain.ScenarioDebtPayoff:       resolveDebtPayoff,
	domain.ScenarioMajorPurchase:    resolveMajorPurchase,
	domain.ScenarioEmergencyExpense: resolveEmergencyExpense,
}

// resolveScenarioAmount returns the non-negative required amount for a
// scenario.
func resolveScenarioAmount(s *domain.Scenario) decimal.Decimal {
	if s == nil || s.Params == nil {
		return decimal.Zero
	}
	resolver, ok := amountResolvers[s.Type]
	if !ok {
		resolver = resolveGenericAmount
	}
	amount := resolver(s.Params)
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func resolveHomePurchase(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.HomePurchaseParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return params.DownPayment.Add(params.ClosingCosts)
}

func resolveCarPurchase(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.CarPurchaseParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return firstPositive(params.DownPayment, params.TotalPrice)
}

func resolveInvestment(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.InvestmentParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return firstPositive(params.InitialInvestment, params.InvestmentAmount)
}

func resolveDebtPayoff(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.DebtPayoffParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return firstPositive(params.PayoffAmount, params.CurrentBalance)
}

func resolveMajorPurchase(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.MajorPurchaseParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return firstPositive(params.PurchaseAmount, params.Amount)
}

func resolveEmergencyExpense(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.EmergencyExpenseParams)
	if !ok {
		return resolveGenericAmount(p)
	}
	return firstPositive(params.ExpenseAmount, params.Amount)
}

func resolveGenericAmount(p domain.ScenarioParams) decimal.Decimal {
	params, ok := p.(*domain.GenericParams)
	if !ok {
		return decimal.Zero
	}
	return firstPositive(params.Amount, params.TotalAmount)
}

// firstPositive returns the first strictly positive amount, else zero.
func firstPositive(amounts ...decimal.Decimal) decimal.Decimal {
	for _, amount := range amounts {
		if amount.IsPositive() {
			return amount
		}
	}
	return decimal.Zero
}

// scalableAmount reports the scenario's headline amount when the kind
// supports a scaled-down variant.
func scalableAmount(s *domain.Scenario) (decimal.Decimal, bool) {
	if s == nil || s.Params == nil {
		return decimal.Zero, false
	}
	scalable, ok := s.Params.(domain.Scalable)
	if !ok {
		return decimal.Zero, false
	}
	amount := scalable.ScalableAmount()
	return amount, amount.IsPositive()
}
