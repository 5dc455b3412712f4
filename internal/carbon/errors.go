package carbon

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for boundary validation and remote lookups. They can be
// compared with errors.Is(). Nothing in the calculation path itself ever
// returns an error: calculations are total by design.
var (
	// ErrMissingField indicates an extraction tuple without a category,
	// activity label, or unit.
	ErrMissingField = constError("activity input missing required field")

	// ErrNonPositiveAmount indicates a zero or negative activity amount.
	ErrNonPositiveAmount = constError("activity amount must be positive")

	// ErrRemoteDisabled indicates the remote factor service is not
	// configured. This is the documented local-only mode, not a failure.
	ErrRemoteDisabled = constError("remote factor service not configured")

	// ErrRemoteStatus indicates a non-success response from the remote
	// factor service.
	ErrRemoteStatus = constError("remote factor service returned non-success status")

	// ErrRemoteResponse indicates a response body that could not be parsed
	// or carried an unusable CO2e value.
	ErrRemoteResponse = constError("remote factor service returned malformed response")
)
