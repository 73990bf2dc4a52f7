package consequence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

func TestComputeUtilization(t *testing.T) {
	tests := []struct {
		name           string
		balance        float64
		limit          float64
		charge         float64
		expectedRate   decimal.Decimal
		expectedImpact domain.RiskLevel
	}{
		{
			name:           "low utilization",
			balance:        0,
			limit:          10000,
			charge:         500,
			expectedRate:   decimal.NewFromInt(5),
			expectedImpact: domain.RiskLow,
		},
		{
			name:           "moderate above 10 percent",
			balance:        1000,
			limit:          10000,
			charge:         1000,
			expectedRate:   decimal.NewFromInt(20),
			expectedImpact: domain.RiskModerate,
		},
		{
			name:           "high above 30 percent",
			balance:        2000,
			limit:          10000,
			charge:         2000,
			expectedRate:   decimal.NewFromInt(40),
			expectedImpact: domain.RiskHigh,
		},
		{
			name:           "exactly 30 percent stays moderate",
			balance:        0,
			limit:          10000,
			charge:         3000,
			expectedRate:   decimal.NewFromInt(30),
			expectedImpact: domain.RiskModerate,
		},
		{
			name:           "zero limit degrades to zero rate",
			balance:        0,
			limit:          0,
			charge:         500,
			expectedRate:   decimal.Zero,
			expectedImpact: domain.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := creditCard("cc", tt.balance, tt.limit, 0.18)
			util := computeUtilization(&acct, decimal.NewFromFloat(tt.charge))

			assert.True(t, util.UtilizationRate.Equal(tt.expectedRate),
				"expected rate %s, got %s", tt.expectedRate, util.UtilizationRate)
			assert.Equal(t, tt.expectedImpact, util.UtilizationImpact)
		})
	}
}

func TestProjectInterestCost(t *testing.T) {
	t.Run("standard amortization accrues interest over the horizon", func(t *testing.T) {
		acct := creditCard("cc", 0, 10000, 0.18)
		cost := projectInterestCost(&acct, decimal.NewFromInt(3000))

		// Minimum payment is 2% of 3000 = 60.
		assert.True(t, cost.MinimumPayment.Equal(decimal.NewFromInt(60)))
		assert.True(t, cost.YearlyInterest.IsPositive())
		assert.True(t, cost.MonthlyInterest.Equal(cost.YearlyInterest.Div(decimal.NewFromInt(12))))
		assert.Equal(t, interestHorizonMonths, cost.PayoffMonths)

		// First-month interest alone is 3000 * 0.015 = 45.
		assert.True(t, cost.YearlyInterest.GreaterThan(decimal.NewFromInt(45)))
	})

	t.Run("minimum payment floor applies to small balances", func(t *testing.T) {
		acct := creditCard("cc", 0, 5000, 0.18)
		cost := projectInterestCost(&acct, decimal.NewFromInt(500))

		// 2% of 500 is 10, floored at 25.
		assert.True(t, cost.MinimumPayment.Equal(decimal.NewFromInt(25)))
	})

	t.Run("small balance pays off within the horizon", func(t *testing.T) {
		acct := creditCard("cc", 0, 5000, 0.12)
		cost := projectInterestCost(&acct, decimal.NewFromInt(100))

		assert.Greater(t, cost.PayoffMonths, 0)
		assert.LessOrEqual(t, cost.PayoffMonths, interestHorizonMonths)
		assert.NotEqual(t, domain.PayoffNever, cost.PayoffMonths)
	})

	t.Run("negative amortization marks payoff as never", func(t *testing.T) {
		// 2% minimum payment against a 60% APR: 5% monthly interest always
		// exceeds the payment, and the stopping month's interest still
		// accrues.
		acct := creditCard("cc", 0, 50000, 0.60)
		cost := projectInterestCost(&acct, decimal.NewFromInt(10000))

		assert.Equal(t, domain.PayoffNever, cost.PayoffMonths)
		assert.True(t, cost.YearlyInterest.Equal(decimal.NewFromInt(500)),
			"expected the first month's 500 interest, got %s", cost.YearlyInterest)
		assert.True(t, cost.MonthlyInterest.Equal(decimal.NewFromInt(500).Div(decimal.NewFromInt(12))))
	})

	t.Run("missing rate defaults to 18 percent", func(t *testing.T) {
		acct := creditCard("cc", 0, 10000, 0)
		withDefault := projectInterestCost(&acct, decimal.NewFromInt(2000))

		explicit := creditCard("cc2", 0, 10000, 0.18)
		withExplicit := projectInterestCost(&explicit, decimal.NewFromInt(2000))

		assert.True(t, withDefault.YearlyInterest.Equal(withExplicit.YearlyInterest))
	})
}

func TestAnalyzeCreditImpactStage(t *testing.T) {
	engine := NewEngine()
	st := newPipelineState(emergencyExpense(4000), householdContext(5000, 3500, 2000),
		[]domain.Account{
			checkingAccount("chk", 1000),
			creditCard("cc", 2000, 5000, 0.18),
		})

	var err error
	st, err = engine.analyzePaymentCapacity(st)
	require.NoError(t, err)
	st, err = engine.modelOverdraft(st)
	require.NoError(t, err)
	st, err = engine.analyzeCreditImpact(st)
	require.NoError(t, err)

	util := st.model.CreditUtilization["cc"]
	assert.True(t, util.UtilizationRate.Equal(decimal.NewFromInt(100)))

	cost := st.model.InterestCosts["cc"]
	assert.True(t, cost.YearlyInterest.IsPositive())
	assert.True(t, st.model.TotalCreditCosts.Equal(cost.YearlyInterest))
}

func TestAnalyzeCreditImpactNoCards(t *testing.T) {
	engine := NewEngine()
	st := newPipelineState(majorPurchase(500), householdContext(4000, 3000, 0),
		[]domain.Account{checkingAccount("chk", 2000)})

	var err error
	st, err = engine.analyzePaymentCapacity(st)
	require.NoError(t, err)
	st, err = engine.modelOverdraft(st)
	require.NoError(t, err)
	st, err = engine.analyzeCreditImpact(st)
	require.NoError(t, err)

	assert.Empty(t, st.model.CreditUtilization)
	assert.Empty(t, st.model.InterestCosts)
	assert.True(t, st.model.TotalCreditCosts.IsZero())
}
