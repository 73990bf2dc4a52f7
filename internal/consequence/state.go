package consequence

import (
	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// pipelineState is the accumulator threaded by value through the six stages.
// Each stage reads earlier fields and sets exactly one of its own; inputs are
// never mutated.
type pipelineState struct {
	scenario *domain.Scenario
	context  *domain.FinancialContext
	accounts []domain.Account

	requiredAmount decimal.Decimal
	payment        *domain.PaymentAnalysis
	model          *domain.ConsequenceModel
	solutions      *domain.SolutionSet
	report         *domain.ConsequenceReport
}

// stageFunc is one pipeline stage: a pure State -> State transition.
type stageFunc func(pipelineState) (pipelineState, error)

func newPipelineState(scenario *domain.Scenario, fctx *domain.FinancialContext, accounts []domain.Account) pipelineState {
	// Copy the account slice so sorting inside stages can never reorder the
	// caller's slice.
	snapshot := make([]domain.Account, len(accounts))
	copy(snapshot, accounts)

	ctx := domain.FinancialContext{}
	if fctx != nil {
		ctx = *fctx
	}

	return pipelineState{
		scenario: scenario,
		context:  &ctx,
		accounts: snapshot,
	}
}
