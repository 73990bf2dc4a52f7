package consequence

import "errors"

var (
	// ErrNilScenario is returned when no scenario is supplied.
	ErrNilScenario = errors.New("scenario is required")

	// ErrNoAccounts is returned when the account snapshot is empty.
	ErrNoAccounts = errors.New("at least one account is required")

	// ErrNegativeCreditLimit is returned for a credit line with a negative limit.
	ErrNegativeCreditLimit = errors.New("credit limit cannot be negative")

	// ErrMissingUpstream is returned when a stage runs without its input patch.
	ErrMissingUpstream = errors.New("missing upstream stage output")
)
