package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of account in a snapshot.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountInvestment AccountType = "investment"
)

// OverdraftFeeSchedule describes how a checking account charges for
// overdrawn transactions.
type OverdraftFeeSchedule struct {
	PerOccurrence decimal.Decimal `yaml:"per_occurrence" json:"per_occurrence"`
	MaxPerDay     int             `yaml:"max_per_day" json:"max_per_day"`
}

// Account is a read-only snapshot of a single account. The engine never
// mutates a caller-supplied account.
type Account struct {
	ID                string                `yaml:"id" json:"id"`
	Name              string                `yaml:"name" json:"name"`
	Type              AccountType           `yaml:"type" json:"type"`
	CurrentBalance    decimal.Decimal       `yaml:"current_balance" json:"current_balance"`
	CreditLimit       decimal.Decimal       `yaml:"credit_limit" json:"credit_limit"`
	InterestRate      decimal.Decimal       `yaml:"interest_rate" json:"interest_rate"`
	OverdraftFees     *OverdraftFeeSchedule `yaml:"overdraft_fee_schedule,omitempty" json:"overdraft_fee_schedule,omitempty"`
	NSFFee            decimal.Decimal       `yaml:"nsf_fee" json:"nsf_fee"`
	DailyOverdraftFee decimal.Decimal       `yaml:"daily_overdraft_fee" json:"daily_overdraft_fee"`
	Active            bool                  `yaml:"is_active" json:"is_active"`
}

// IsLiquid reports whether the account holds spendable cash.
func (a *Account) IsLiquid() bool {
	return a.Type == AccountChecking || a.Type == AccountSavings
}

// IsCreditCard reports whether the account is a revolving credit line.
func (a *Account) IsCreditCard() bool {
	return a.Type == AccountCreditCard
}

// AvailableCredit returns the unused portion of a credit line, floored at
// zero for cards at or beyond their limit.
func (a *Account) AvailableCredit() decimal.Decimal {
	avail := a.CreditLimit.Sub(a.CurrentBalance)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// Utilization returns the credit utilization as a fraction of the limit.
// A non-positive limit degrades to zero rather than dividing by zero.
func (a *Account) Utilization() decimal.Decimal {
	if a.CreditLimit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return a.CurrentBalance.Div(a.CreditLimit)
}

// FinancialContext carries the household cash-flow picture an analysis runs
// against.
type FinancialContext struct {
	MonthlyIncome      decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	EmergencyFund      decimal.Decimal `yaml:"emergency_fund" json:"emergency_fund"`
	PaymentPreferences []string        `yaml:"payment_preferences,omitempty" json:"payment_preferences,omitempty"`
}
