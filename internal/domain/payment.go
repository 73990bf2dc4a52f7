package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment step moves money.
type PaymentMethod string

const (
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayCreditCard   PaymentMethod = "credit_card"
)

// PaymentStep is one draw in a fallback payment sequence. Amount and
// OverdraftAmount are always non-negative, and an account appears in at most
// one step of a sequence.
type PaymentStep struct {
	StepIndex       int             `json:"step_index"`
	Account         Account         `json:"account"`
	Amount          decimal.Decimal `json:"amount"`
	OverdraftAmount decimal.Decimal `json:"overdraft_amount"`
	Method          PaymentMethod   `json:"payment_method"`
}

// FallbackSequence is the ordered list of draws used to cover a required
// expenditure, spanning liquid accounts then credit lines.
type FallbackSequence struct {
	Steps []PaymentStep `json:"steps"`
}

// TotalPlanned sums the planned draw across every step.
func (fs FallbackSequence) TotalPlanned() decimal.Decimal {
	total := decimal.Zero
	for _, step := range fs.Steps {
		total = total.Add(step.Amount)
	}
	return total
}

// CreditSteps returns the steps charged to a credit card.
func (fs FallbackSequence) CreditSteps() []PaymentStep {
	var steps []PaymentStep
	for _, step := range fs.Steps {
		if step.Method == PayCreditCard {
			steps = append(steps, step)
		}
	}
	return steps
}

// PaymentAnalysis is the output of the payment-capacity stage: the resolved
// required amount, the chosen primary account, and the fallback sequence.
type PaymentAnalysis struct {
	RequiredAmount     decimal.Decimal  `json:"required_amount"`
	PrimaryAccountID   string           `json:"primary_account_id"`
	PrimaryAccountName string           `json:"primary_account_name"`
	Sequence           FallbackSequence `json:"fallback_sequence"`
	TotalPlanned       decimal.Decimal  `json:"total_planned"`
	Shortfall          decimal.Decimal  `json:"shortfall"`
}

// Covered reports whether the sequence fully funds the required amount.
func (pa *PaymentAnalysis) Covered() bool {
	return pa.TotalPlanned.GreaterThanOrEqual(pa.RequiredAmount)
}
