package domain

import (
	"github.com/shopspring/decimal"
)

// PayoffNever marks a credit balance whose minimum payment does not cover the
// accruing interest (negative amortization); the balance never pays off.
const PayoffNever = -1

// OverdraftFee is the fee consequence of drawing a checking account past its
// balance.
type OverdraftFee struct {
	AccountID         string          `json:"account_id"`
	AccountName       string          `json:"account_name"`
	OverdraftAmount   decimal.Decimal `json:"overdraft_amount"`
	OverdraftFee      decimal.Decimal `json:"overdraft_fee"`
	NSFCharges        decimal.Decimal `json:"nsf_charges"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	DailyFees         decimal.Decimal `json:"daily_fees"`
	ProjectedDuration int             `json:"projected_duration_days"`
}

// CreditUtilization describes a credit line after a planned charge.
type CreditUtilization struct {
	AccountID         string          `json:"account_id"`
	AmountCharged     decimal.Decimal `json:"amount_charged"`
	NewBalance        decimal.Decimal `json:"new_balance"`
	CreditLimit       decimal.Decimal `json:"credit_limit"`
	UtilizationRate   decimal.Decimal `json:"utilization_rate"`
	UtilizationImpact RiskLevel       `json:"utilization_impact"`
}

// InterestCost projects the carrying cost of a credit balance over a
// twelve-month horizon at the card's rate.
type InterestCost struct {
	AccountID       string          `json:"account_id"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
	YearlyInterest  decimal.Decimal `json:"yearly_interest"`
	MinimumPayment  decimal.Decimal `json:"minimum_payment"`
	PayoffMonths    int             `json:"payoff_months"`
}

// CascadeType identifies a second-order financial consequence.
type CascadeType string

const (
	CascadeEmergencyFundDepletion   CascadeType = "emergency_fund_depletion"
	CascadeCreditScoreImpact        CascadeType = "credit_score_impact"
	CascadeCashFlowStress           CascadeType = "cash_flow_stress"
	CascadeReducedBorrowingCapacity CascadeType = "reduced_borrowing_capacity"
)

// CascadeEffect is a derived secondary risk triggered by the primary payment
// decision.
type CascadeEffect struct {
	Type            CascadeType     `json:"type"`
	Severity        RiskLevel       `json:"severity"`
	Description     string          `json:"description"`
	FinancialImpact decimal.Decimal `json:"financial_impact"`
	RiskLevel       RiskLevel       `json:"risk_level"`
}

// ConsequenceModel aggregates every modeled consequence of executing the
// payment plan.
type ConsequenceModel struct {
	OverdraftFees        []OverdraftFee               `json:"overdraft_fees"`
	CreditUtilization    map[string]CreditUtilization `json:"credit_utilization"`
	InterestCosts        map[string]InterestCost      `json:"interest_costs"`
	CascadeEffects       []CascadeEffect              `json:"cascade_effects"`
	TotalOverdraftCosts  decimal.Decimal              `json:"total_overdraft_costs"`
	TotalCreditCosts     decimal.Decimal              `json:"total_credit_costs"`
	TotalAdditionalCosts decimal.Decimal              `json:"total_additional_costs"`
}

// HighSeverityCascades counts cascade effects at high severity.
func (cm *ConsequenceModel) HighSeverityCascades() int {
	count := 0
	for _, effect := range cm.CascadeEffects {
		if effect.Severity == RiskHigh {
			count++
		}
	}
	return count
}

// MaxUtilizationRate returns the highest post-draw utilization percentage
// across all charged cards.
func (cm *ConsequenceModel) MaxUtilizationRate() decimal.Decimal {
	max := decimal.Zero
	for _, util := range cm.CreditUtilization {
		if util.UtilizationRate.GreaterThan(max) {
			max = util.UtilizationRate
		}
	}
	return max
}
