package consequence

import (
	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

var (
	defaultAnnualRate    = decimal.NewFromFloat(0.18)
	minimumPaymentRate   = decimal.NewFromFloat(0.02)
	minimumPaymentFloor  = decimal.NewFromInt(25)
	utilizationHighPct   = decimal.NewFromInt(30)
	utilizationModestPct = decimal.NewFromInt(10)
)

// interestHorizonMonths bounds every amortization projection.
const interestHorizonMonths = 12

// analyzeCreditImpact is stage three: utilization and interest consequences
// for every credit-card draw in the sequence.
func (e *Engine) analyzeCreditImpact(st pipelineState) (pipelineState, error) {
	if st.payment == nil || st.model == nil {
		return st, ErrMissingUpstream
	}

	total := decimal.Zero
	for _, step := range st.payment.Sequence.CreditSteps() {
		if !step.Amount.IsPositive() {
			continue
		}

		util := computeUtilization(&step.Account, step.Amount)
		st.model.CreditUtilization[step.Account.ID] = util

		cost := projectInterestCost(&step.Account, step.Amount)
		st.model.InterestCosts[step.Account.ID] = cost
		total = total.Add(cost.YearlyInterest)

		e.Logger.Debugf("credit impact on %s: utilization=%s%% yearly_interest=%s",
			step.Account.ID, util.UtilizationRate.StringFixed(1), cost.YearlyInterest.StringFixed(2))
	}
	st.model.TotalCreditCosts = total
	return st, nil
}

// computeUtilization classifies the card's post-draw utilization.
func computeUtilization(acct *domain.Account, charge decimal.Decimal) domain.CreditUtilization {
	newBalance := acct.CurrentBalance.Add(charge)

	rate := decimal.Zero
	if acct.CreditLimit.IsPositive() {
		rate = newBalance.Div(acct.CreditLimit).Mul(decimal.NewFromInt(100))
	}

	impact := domain.RiskLow
	switch {
	case rate.GreaterThan(utilizationHighPct):
		impact = domain.RiskHigh
	case rate.GreaterThan(utilizationModestPct):
		impact = domain.RiskModerate
	}

	return domain.CreditUtilization{
		AccountID:         acct.ID,
		AmountCharged:     charge,
		NewBalance:        newBalance,
		CreditLimit:       acct.CreditLimit,
		UtilizationRate:   rate,
		UtilizationImpact: impact,
	}
}

// projectInterestCost amortizes the post-draw balance month by month over a
// fixed twelve-month horizon at the card's rate (18% when unknown). The
// minimum payment is fixed at 2% of the starting balance, floored at $25. A
// minimum payment that does not cover interest marks the balance as never
// paying off; the month that triggers the stop still accrues its interest.
func projectInterestCost(acct *domain.Account, charge decimal.Decimal) domain.InterestCost {
	newBalance := acct.CurrentBalance.Add(charge)

	annualRate := acct.InterestRate
	if !annualRate.IsPositive() {
		annualRate = defaultAnnualRate
	}
	monthlyRate := annualRate.Div(decimal.NewFromInt(12))

	minimumPayment := decimal.Max(newBalance.Mul(minimumPaymentRate), minimumPaymentFloor)

	balance := newBalance
	totalInterest := decimal.Zero
	payoffMonths := 0

	for month := 1; month <= interestHorizonMonths; month++ {
		interest := balance.Mul(monthlyRate)
		totalInterest = totalInterest.Add(interest)
		principal := minimumPayment.Sub(interest)
		if principal.LessThanOrEqual(decimal.Zero) {
			payoffMonths = domain.PayoffNever
			break
		}
		balance = balance.Sub(principal)
		if balance.LessThanOrEqual(decimal.Zero) {
			payoffMonths = month
			break
		}
	}
	if payoffMonths == 0 {
		payoffMonths = interestHorizonMonths
	}

	return domain.InterestCost{
		AccountID:       acct.ID,
		MonthlyInterest: totalInterest.Div(decimal.NewFromInt(12)),
		YearlyInterest:  totalInterest,
		MinimumPayment:  minimumPayment,
		PayoffMonths:    payoffMonths,
	}
}
