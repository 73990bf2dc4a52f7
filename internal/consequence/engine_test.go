package consequence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// Test fixture helpers shared across the package tests.

func checkingAccount(id string, balance float64) domain.Account {
	return domain.Account{
		ID:             id,
		Name:           id,
		Type:           domain.AccountChecking,
		CurrentBalance: decimal.NewFromFloat(balance),
		OverdraftFees: &domain.OverdraftFeeSchedule{
			PerOccurrence: decimal.NewFromInt(35),
			MaxPerDay:     6,
		},
		NSFFee:            decimal.NewFromInt(30),
		DailyOverdraftFee: decimal.NewFromInt(5),
		Active:            true,
	}
}

func savingsAccount(id string, balance float64) domain.Account {
	return domain.Account{
		ID:             id,
		Name:           id,
		Type:           domain.AccountSavings,
		CurrentBalance: decimal.NewFromFloat(balance),
		Active:         true,
	}
}

func creditCard(id string, balance, limit, rate float64) domain.Account {
	return domain.Account{
		ID:             id,
		Name:           id,
		Type:           domain.AccountCreditCard,
		CurrentBalance: decimal.NewFromFloat(balance),
		CreditLimit:    decimal.NewFromFloat(limit),
		InterestRate:   decimal.NewFromFloat(rate),
		Active:         true,
	}
}

func majorPurchase(amount float64) *domain.Scenario {
	return &domain.Scenario{
		ID:     "s-1",
		Name:   "major purchase",
		Type:   domain.ScenarioMajorPurchase,
		Params: &domain.MajorPurchaseParams{PurchaseAmount: decimal.NewFromFloat(amount)},
	}
}

func emergencyExpense(amount float64) *domain.Scenario {
	return &domain.Scenario{
		ID:     "s-2",
		Name:   "emergency expense",
		Type:   domain.ScenarioEmergencyExpense,
		Params: &domain.EmergencyExpenseParams{ExpenseAmount: decimal.NewFromFloat(amount)},
	}
}

func householdContext(income, expenses, fund float64) *domain.FinancialContext {
	return &domain.FinancialContext{
		MonthlyIncome:   decimal.NewFromFloat(income),
		MonthlyExpenses: decimal.NewFromFloat(expenses),
		EmergencyFund:   decimal.NewFromFloat(fund),
	}
}

func TestMajorPurchaseWithMixedAccounts(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 2500),
		savingsAccount("sav", 3000),
		creditCard("cc", 1500, 8000, 0.15),
	}

	result := engine.ExecuteConsequenceAnalysis(context.Background(), majorPurchase(5000), householdContext(6000, 4000, 10000), accounts)

	require.True(t, result.Success, "analysis should succeed: %s", result.Error)
	report := result.Result
	require.NotNil(t, report)

	assert.True(t, report.ScenarioCost.Equal(decimal.NewFromInt(5000)))
	assert.NotNil(t, report.Warnings)
	assert.NotNil(t, report.NextSteps)
	assert.NotEmpty(t, report.DetailedAnalysis.PaymentAnalysis.Sequence.Steps)
	assert.NotNil(t, report.DetailedAnalysis.Consequences.CreditUtilization)
	assert.NotNil(t, report.DetailedAnalysis.Solutions.CostOptimizations)

	// Capacity covers the purchase, so the sequence funds it exactly.
	assert.True(t, report.DetailedAnalysis.PaymentAnalysis.TotalPlanned.Equal(decimal.NewFromInt(5000)))
}

func TestOverdraftOnSingleChecking(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{checkingAccount("chk", 500)}

	result := engine.ExecuteConsequenceAnalysis(context.Background(), emergencyExpense(3000), householdContext(4000, 3000, 0), accounts)

	require.True(t, result.Success)
	fees := result.Result.DetailedAnalysis.Consequences.OverdraftFees
	require.NotEmpty(t, fees)
	for _, fee := range fees {
		assert.True(t, fee.OverdraftAmount.IsPositive())
		assert.True(t, fee.TotalCost.IsPositive())
	}
}

func TestCreditFallbackImpact(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 1000),
		creditCard("cc", 2000, 5000, 0.18),
	}

	result := engine.ExecuteConsequenceAnalysis(context.Background(), emergencyExpense(4000), householdContext(5000, 3500, 2000), accounts)

	require.True(t, result.Success)
	model := result.Result.DetailedAnalysis.Consequences

	util, ok := model.CreditUtilization["cc"]
	require.True(t, ok, "card should have a utilization entry")
	// 1000 from checking leaves 3000 on the card: (2000+3000)/5000 = 100%.
	assert.True(t, util.NewBalance.Equal(decimal.NewFromInt(5000)))
	assert.True(t, util.UtilizationRate.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.RiskHigh, util.UtilizationImpact)

	cost, ok := model.InterestCosts["cc"]
	require.True(t, ok)
	assert.True(t, cost.YearlyInterest.IsPositive())
	assert.True(t, cost.MinimumPayment.IsPositive())
}

func TestSufficientCheckingIsOptimal(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 3000),
		creditCard("cc-low", 0, 5000, 0.12),
		creditCard("cc-high", 0, 5000, 0.24),
	}

	result := engine.ExecuteConsequenceAnalysis(context.Background(), majorPurchase(2500), householdContext(6000, 4000, 5000), accounts)

	require.True(t, result.Success)
	optimal := result.Result.DetailedAnalysis.Solutions.OptimalPayment
	require.NotNil(t, optimal)
	assert.Equal(t, "chk", optimal.AccountID)
	assert.True(t, optimal.Cost.IsZero())
	assert.Equal(t, domain.RiskLow, optimal.RiskLevel)
	assert.True(t, result.Result.ExecutionFeasible)
}

func TestLargeShortfallProducesGuidance(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 2000),
		savingsAccount("sav", 2000),
		creditCard("cc", 4500, 5000, 0.22),
	}

	result := engine.ExecuteConsequenceAnalysis(context.Background(), majorPurchase(15000), householdContext(5000, 4200, 3000), accounts)

	require.True(t, result.Success)
	solutions := result.Result.DetailedAnalysis.Solutions
	assert.NotEmpty(t, solutions.Alternatives)
	assert.NotEmpty(t, solutions.RiskMitigation)
	assert.NotEmpty(t, solutions.CostOptimizations)
	assert.False(t, result.Result.ExecutionFeasible)
}

func TestAnalysisIsIdempotent(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 1200),
		savingsAccount("sav", 900),
		creditCard("cc", 300, 4000, 0.2),
	}
	scenario := emergencyExpense(2600)
	fctx := householdContext(5200, 3900, 4000)

	first := engine.ExecuteConsequenceAnalysis(context.Background(), scenario, fctx, accounts)
	second := engine.ExecuteConsequenceAnalysis(context.Background(), scenario, fctx, accounts)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, first.Metadata.Phases, second.Metadata.Phases)
}

func TestInputsAreNeverMutated(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 100),
		savingsAccount("sav", 50),
		creditCard("cc", 900, 1000, 0.3),
	}
	snapshot := make([]domain.Account, len(accounts))
	copy(snapshot, accounts)

	result := engine.ExecuteConsequenceAnalysis(context.Background(), emergencyExpense(5000), householdContext(3000, 2800, 500), accounts)

	require.True(t, result.Success)
	assert.Equal(t, snapshot, accounts)
}

func TestShortfallIsMonotoneInRequiredAmount(t *testing.T) {
	engine := NewEngine()
	accounts := []domain.Account{
		checkingAccount("chk", 750),
		savingsAccount("sav", 1250),
	}
	fctx := householdContext(4000, 3000, 1250)

	previous := decimal.NewFromInt(-1)
	for _, amount := range []float64{500, 1500, 2000, 2500, 6000, 12000} {
		result := engine.ExecuteConsequenceAnalysis(context.Background(), emergencyExpense(amount), fctx, accounts)
		require.True(t, result.Success)
		shortfall := result.Result.DetailedAnalysis.PaymentAnalysis.Shortfall
		assert.True(t, shortfall.GreaterThanOrEqual(previous),
			"shortfall %s for amount %.0f decreased below %s", shortfall, amount, previous)
		previous = shortfall
	}
}

func TestPhasesReportedInOrder(t *testing.T) {
	engine := NewEngine()
	result := engine.ExecuteConsequenceAnalysis(context.Background(), majorPurchase(100), householdContext(1000, 800, 0),
		[]domain.Account{checkingAccount("chk", 500)})

	require.True(t, result.Success)
	assert.Equal(t, []string{
		PhasePaymentCapacity,
		PhaseOverdraft,
		PhaseCreditImpact,
		PhaseCascade,
		PhaseSolutions,
		PhaseReport,
	}, result.Metadata.Phases)
	assert.Empty(t, result.Metadata.Errors)
	assert.NotEmpty(t, result.Metadata.AnalysisID)
}

func TestValidationRejectsBadInput(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	t.Run("nil scenario", func(t *testing.T) {
		result := engine.ExecuteConsequenceAnalysis(ctx, nil, householdContext(1, 1, 1), []domain.Account{checkingAccount("chk", 1)})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "scenario")
	})

	t.Run("no accounts", func(t *testing.T) {
		result := engine.ExecuteConsequenceAnalysis(ctx, majorPurchase(10), householdContext(1, 1, 1), nil)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "account")
	})

	t.Run("negative credit limit", func(t *testing.T) {
		bad := creditCard("cc", 0, 0, 0.2)
		bad.CreditLimit = decimal.NewFromInt(-100)
		result := engine.ExecuteConsequenceAnalysis(ctx, majorPurchase(10), householdContext(1, 1, 1), []domain.Account{bad})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "credit limit")
	})
}

func TestNilFinancialContextDegrades(t *testing.T) {
	engine := NewEngine()
	result := engine.ExecuteConsequenceAnalysis(context.Background(), emergencyExpense(800), nil,
		[]domain.Account{checkingAccount("chk", 300)})

	require.True(t, result.Success)
	require.NotEmpty(t, result.Result.DetailedAnalysis.Consequences.OverdraftFees)
	// Duration projection falls back to the default deposit estimate.
	assert.Greater(t, result.Result.DetailedAnalysis.Consequences.OverdraftFees[0].ProjectedDuration, 0)
}
