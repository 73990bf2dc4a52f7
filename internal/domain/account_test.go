package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountClassification(t *testing.T) {
	checking := Account{Type: AccountChecking}
	savings := Account{Type: AccountSavings}
	card := Account{Type: AccountCreditCard}
	brokerage := Account{Type: AccountInvestment}

	assert.True(t, checking.IsLiquid())
	assert.True(t, savings.IsLiquid())
	assert.False(t, card.IsLiquid())
	assert.False(t, brokerage.IsLiquid())

	assert.True(t, card.IsCreditCard())
	assert.False(t, checking.IsCreditCard())
}

func TestAvailableCredit(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		limit   int64
		want    int64
	}{
		{"headroom remains", 2000, 5000, 3000},
		{"untouched card", 0, 5000, 5000},
		{"maxed card", 5000, 5000, 0},
		{"over limit floors at zero", 5200, 5000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := Account{
				Type:           AccountCreditCard,
				CurrentBalance: decimal.NewFromInt(tt.balance),
				CreditLimit:    decimal.NewFromInt(tt.limit),
			}
			assert.True(t, acct.AvailableCredit().Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestUtilization(t *testing.T) {
	t.Run("fraction of limit", func(t *testing.T) {
		acct := Account{
			CurrentBalance: decimal.NewFromInt(1500),
			CreditLimit:    decimal.NewFromInt(5000),
		}
		assert.True(t, acct.Utilization().Equal(decimal.NewFromFloat(0.3)))
	})

	t.Run("zero limit degrades to zero", func(t *testing.T) {
		acct := Account{CurrentBalance: decimal.NewFromInt(1500)}
		assert.True(t, acct.Utilization().IsZero())
	})
}
