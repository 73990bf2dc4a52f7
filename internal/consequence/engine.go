package consequence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// Phase names reported in execution metadata, in pipeline order.
const (
	PhasePaymentCapacity = "payment_capacity_analysis"
	PhaseOverdraft       = "overdraft_modeling"
	PhaseCreditImpact    = "credit_impact_analysis"
	PhaseCascade         = "cascade_analysis"
	PhaseSolutions       = "intelligent_solutions"
	PhaseReport          = "consequence_report"
)

// PhaseError records a failure inside one pipeline stage.
type PhaseError struct {
	Phase     string    `json:"phase"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// ExecutionMetadata is observability data about one analysis run. It is not
// part of the business contract; ExecutionTime and AnalysisID vary between
// otherwise identical runs.
type ExecutionMetadata struct {
	AnalysisID    string        `json:"analysis_id"`
	ExecutionTime time.Duration `json:"execution_time"`
	Phases        []string      `json:"phases"`
	Errors        []PhaseError  `json:"errors"`
}

// AnalysisResult is the caller-visible envelope: either a full report or an
// error message, never a partial report.
type AnalysisResult struct {
	Success  bool                      `json:"success"`
	Result   *domain.ConsequenceReport `json:"result,omitempty"`
	Error    string                    `json:"error,omitempty"`
	Metadata ExecutionMetadata         `json:"metadata"`
}

// Engine runs the six-stage consequence analysis pipeline. The zero cost of
// construction reflects the pipeline's purity: an Engine holds no per-run
// state and is safe for concurrent use.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ExecuteConsequenceAnalysis runs the full pipeline over a read-only snapshot
// of the caller's scenario, financial context, and accounts. The ctx
// parameter is accepted for future stages that may perform I/O; the current
// stages are bounded pure computation and do not observe cancellation.
func (e *Engine) ExecuteConsequenceAnalysis(ctx context.Context, scenario *domain.Scenario, fctx *domain.FinancialContext, accounts []domain.Account) *AnalysisResult {
	_ = ctx
	start := time.Now()
	meta := ExecutionMetadata{
		AnalysisID: uuid.NewString(),
		Phases:     []string{},
		Errors:     []PhaseError{},
	}

	if err := validateInputs(scenario, accounts); err != nil {
		meta.ExecutionTime = time.Since(start)
		return &AnalysisResult{Success: false, Error: err.Error(), Metadata: meta}
	}

	stages := []struct {
		name string
		fn   stageFunc
	}{
		{PhasePaymentCapacity, e.analyzePaymentCapacity},
		{PhaseOverdraft, e.modelOverdraft},
		{PhaseCreditImpact, e.analyzeCreditImpact},
		{PhaseCascade, e.analyzeCascade},
		{PhaseSolutions, e.generateSolutions},
		{PhaseReport, e.synthesizeReport},
	}

	st := newPipelineState(scenario, fctx, accounts)
	for _, stage := range stages {
		next, err := runStage(stage.name, stage.fn, st)
		if err != nil {
			e.Logger.Errorf("phase %s failed: %v", stage.name, err)
			meta.Errors = append(meta.Errors, PhaseError{
				Phase:     stage.name,
				Error:     err.Error(),
				Timestamp: time.Now().UTC(),
			})
			meta.ExecutionTime = time.Since(start)
			return &AnalysisResult{
				Success:  false,
				Error:    fmt.Sprintf("%s: %s", stage.name, err),
				Metadata: meta,
			}
		}
		st = next
		meta.Phases = append(meta.Phases, stage.name)
	}

	meta.ExecutionTime = time.Since(start)
	return &AnalysisResult{Success: true, Result: st.report, Metadata: meta}
}

// Analyze is the plain library surface: the report on success, an error
// otherwise.
func (e *Engine) Analyze(ctx context.Context, scenario *domain.Scenario, fctx *domain.FinancialContext, accounts []domain.Account) (*domain.ConsequenceReport, error) {
	result := e.ExecuteConsequenceAnalysis(ctx, scenario, fctx, accounts)
	if !result.Success {
		return nil, fmt.Errorf("consequence analysis failed: %s", result.Error)
	}
	return result.Result, nil
}

// runStage executes one stage, converting a panic into a stage error so a
// malformed input can never take down the caller.
func runStage(name string, fn stageFunc, st pipelineState) (out pipelineState, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = st
			err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()
	return fn(st)
}

// validateInputs rejects structurally invalid input up front; numeric
// degeneracies past this gate degrade to defaults instead of erroring.
func validateInputs(scenario *domain.Scenario, accounts []domain.Account) error {
	if scenario == nil {
		return ErrNilScenario
	}
	if len(accounts) == 0 {
		return ErrNoAccounts
	}
	for i := range accounts {
		if accounts[i].CreditLimit.IsNegative() {
			return fmt.Errorf("account %q: %w", accounts[i].ID, ErrNegativeCreditLimit)
		}
	}
	return nil
}
