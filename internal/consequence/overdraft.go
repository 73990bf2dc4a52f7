package consequence

import (
	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// Overdraft fee defaults, applied when an account's schedule omits a value.
var (
	defaultOverdraftFee      = decimal.NewFromInt(35)
	defaultNSFFee            = decimal.NewFromInt(30)
	defaultDailyOverdraftFee = decimal.NewFromInt(5)
	defaultMonthlyDeposits   = decimal.NewFromInt(2000)
)

const (
	defaultMaxFeesPerDay     = 6
	overdraftSurchargeStride = 500
	maxOverdraftDurationDays = 30
)

// modelOverdraft is stage two: fee consequences for every checking step that
// overdraws its account.
func (e *Engine) modelOverdraft(st pipelineState) (pipelineState, error) {
	if st.payment == nil {
		return st, ErrMissingUpstream
	}

	model := &domain.ConsequenceModel{
		OverdraftFees:     []domain.OverdraftFee{},
		CreditUtilization: map[string]domain.CreditUtilization{},
		InterestCosts:     map[string]domain.InterestCost{},
		CascadeEffects:    []domain.CascadeEffect{},
	}

	total := decimal.Zero
	for _, step := range st.payment.Sequence.Steps {
		if step.Account.Type != domain.AccountChecking || !step.OverdraftAmount.IsPositive() {
			continue
		}
		fee := computeOverdraftFee(&step.Account, step.OverdraftAmount, st.context.MonthlyIncome)
		model.OverdraftFees = append(model.OverdraftFees, fee)
		total = total.Add(fee.TotalCost)
		e.Logger.Debugf("overdraft on %s: amount=%s fee=%s nsf=%s",
			step.Account.ID, fee.OverdraftAmount.StringFixed(2),
			fee.OverdraftFee.StringFixed(2), fee.NSFCharges.StringFixed(2))
	}
	model.TotalOverdraftCosts = total

	st.model = model
	return st, nil
}

// computeOverdraftFee prices one overdrawn checking step: the schedule's
// per-occurrence fee plus a $10 surcharge for every full $500 overdrawn,
// capped at max-per-day occurrences, plus the flat NSF charge.
func computeOverdraftFee(acct *domain.Account, overdraft, monthlyIncome decimal.Decimal) domain.OverdraftFee {
	perOccurrence := defaultOverdraftFee
	maxPerDay := defaultMaxFeesPerDay
	if acct.OverdraftFees != nil {
		if acct.OverdraftFees.PerOccurrence.IsPositive() {
			perOccurrence = acct.OverdraftFees.PerOccurrence
		}
		if acct.OverdraftFees.MaxPerDay > 0 {
			maxPerDay = acct.OverdraftFees.MaxPerDay
		}
	}

	surchargeUnits := overdraft.Div(decimal.NewFromInt(overdraftSurchargeStride)).Floor()
	fee := perOccurrence.Add(surchargeUnits.Mul(decimal.NewFromInt(10)))
	cap := perOccurrence.Mul(decimal.NewFromInt(int64(maxPerDay)))
	if fee.GreaterThan(cap) {
		fee = cap
	}

	nsf := acct.NSFFee
	if !nsf.IsPositive() {
		nsf = defaultNSFFee
	}

	daily := acct.DailyOverdraftFee
	if !daily.IsPositive() {
		daily = defaultDailyOverdraftFee
	}

	return domain.OverdraftFee{
		AccountID:         acct.ID,
		AccountName:       acct.Name,
		OverdraftAmount:   overdraft,
		OverdraftFee:      fee,
		NSFCharges:        nsf,
		TotalCost:         fee.Add(nsf),
		DailyFees:         daily,
		ProjectedDuration: projectOverdraftDuration(overdraft, monthlyIncome),
	}
}

// projectOverdraftDuration estimates how many days the account stays
// negative, assuming incoming deposits at the household's monthly income
// (2000/month when unknown), capped at 30 days.
func projectOverdraftDuration(overdraft, monthlyIncome decimal.Decimal) int {
	deposits := monthlyIncome
	if !deposits.IsPositive() {
		deposits = defaultMonthlyDeposits
	}
	perDay := deposits.Div(decimal.NewFromInt(30))
	if !perDay.IsPositive() {
		return maxOverdraftDurationDays
	}
	days := int(overdraft.Div(perDay).Ceil().IntPart())
	if days > maxOverdraftDurationDays {
		return maxOverdraftDurationDays
	}
	if days < 1 {
		days = 1
	}
	return days
}
