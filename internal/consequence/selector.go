package consequence

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// primaryPreferences lists, per scenario kind, the account types tried in
// order when choosing the primary account. Large planned outlays prefer
// savings; day-to-day spending prefers checking.
var primaryPreferences = map[domain.ScenarioType][]domain.AccountType{
	domain.ScenarioHomePurchase:     {domain.AccountSavings, domain.AccountChecking},
	domain.ScenarioCarPurchase:      {domain.AccountChecking, domain.AccountSavings},
	domain.ScenarioInvestment:       {domain.AccountSavings, domain.AccountChecking},
	domain.ScenarioDebtPayoff:       {domain.AccountChecking, domain.AccountSavings},
	domain.ScenarioMajorPurchase:    {domain.AccountChecking, domain.AccountSavings},
	domain.ScenarioEmergencyExpense: {domain.AccountChecking, domain.AccountSavings},
}

// selectPrimaryAccount picks the account a scenario draws from first: the
// first active account matching the type-preference list, else the first
// active checking account, else the first account overall. The last fallback
// deliberately ignores the active flag so an all-inactive snapshot still
// yields a primary.
func selectPrimaryAccount(scenarioType domain.ScenarioType, accounts []domain.Account) *domain.Account {
	if len(accounts) == 0 {
		return nil
	}

	for _, preferred := range primaryPreferences[scenarioType] {
		for i := range accounts {
			if accounts[i].Type == preferred && accounts[i].Active {
				return &accounts[i]
			}
		}
	}

	for i := range accounts {
		if accounts[i].Type == domain.AccountChecking && accounts[i].Active {
			return &accounts[i]
		}
	}

	return &accounts[0]
}

// buildFallbackSequence plans how the required amount is covered: the primary
// account first, then the remaining liquid accounts largest-balance first,
// then credit cards lowest-utilization first. Planning stops once the
// remainder reaches zero or every account is exhausted.
func buildFallbackSequence(required decimal.Decimal, accounts []domain.Account, primary *domain.Account) domain.FallbackSequence {
	seq := domain.FallbackSequence{}
	if primary == nil {
		return seq
	}

	remaining := required

	// Pass 1: the primary account. A checking primary may go negative; the
	// shortfall at this point is the sole source of overdraft.
	draw := decimal.Min(primary.CurrentBalance, remaining)
	if draw.IsNegative() {
		draw = decimal.Zero
	}
	overdraft := decimal.Zero
	if primary.Type == domain.AccountChecking && remaining.GreaterThan(draw) {
		overdraft = remaining.Sub(draw)
	}
	if draw.IsPositive() || overdraft.IsPositive() {
		seq.Steps = append(seq.Steps, domain.PaymentStep{
			StepIndex:       len(seq.Steps),
			Account:         *primary,
			Amount:          draw,
			OverdraftAmount: overdraft,
			Method:          domain.PayBankTransfer,
		})
	}
	remaining = remaining.Sub(draw)

	// Pass 2: remaining liquid accounts, largest balance first.
	liquid := make([]domain.Account, 0, len(accounts))
	for _, acct := range accounts {
		if acct.ID == primary.ID {
			continue
		}
		if acct.IsLiquid() && acct.Active && acct.CurrentBalance.IsPositive() {
			liquid = append(liquid, acct)
		}
	}
	sort.SliceStable(liquid, func(i, j int) bool {
		return liquid[i].CurrentBalance.GreaterThan(liquid[j].CurrentBalance)
	})
	for _, acct := range liquid {
		if !remaining.IsPositive() {
			break
		}
		draw := decimal.Min(acct.CurrentBalance, remaining)
		if !draw.IsPositive() {
			continue
		}
		seq.Steps = append(seq.Steps, domain.PaymentStep{
			StepIndex: len(seq.Steps),
			Account:   acct,
			Amount:    draw,
			Method:    domain.PayBankTransfer,
		})
		remaining = remaining.Sub(draw)
	}

	// Pass 3: credit cards, lowest utilization first.
	cards := make([]domain.Account, 0, len(accounts))
	for _, acct := range accounts {
		if acct.ID == primary.ID {
			continue
		}
		if acct.IsCreditCard() && acct.Active && acct.AvailableCredit().IsPositive() {
			cards = append(cards, acct)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Utilization().LessThan(cards[j].Utilization())
	})
	for _, acct := range cards {
		if !remaining.IsPositive() {
			break
		}
		draw := decimal.Min(acct.AvailableCredit(), remaining)
		if !draw.IsPositive() {
			continue
		}
		seq.Steps = append(seq.Steps, domain.PaymentStep{
			StepIndex: len(seq.Steps),
			Account:   acct,
			Amount:    draw,
			Method:    domain.PayCreditCard,
		})
		remaining = remaining.Sub(draw)
	}

	return seq
}

// analyzePaymentCapacity is stage one: resolve the scenario's required amount
// and plan the fallback payment sequence.
func (e *Engine) analyzePaymentCapacity(st pipelineState) (pipelineState, error) {
	required := resolveScenarioAmount(st.scenario)
	primary := selectPrimaryAccount(st.scenario.Type, st.accounts)
	if primary == nil {
		return st, ErrNoAccounts
	}

	seq := buildFallbackSequence(required, st.accounts, primary)
	planned := seq.TotalPlanned()
	shortfall := required.Sub(planned)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	e.Logger.Debugf("payment capacity: required=%s planned=%s shortfall=%s primary=%s",
		required.StringFixed(2), planned.StringFixed(2), shortfall.StringFixed(2), primary.ID)

	st.requiredAmount = required
	st.payment = &domain.PaymentAnalysis{
		RequiredAmount:     required,
		PrimaryAccountID:   primary.ID,
		PrimaryAccountName: primary.Name,
		Sequence:           seq,
		TotalPlanned:       planned,
		Shortfall:          shortfall,
	}
	return st, nil
}
