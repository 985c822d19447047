package apperrors

// ErrorCode is the machine-readable error kind.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
	CodeUpstreamError       ErrorCode = "UPSTREAM_ERROR"
	CodeUpstreamUnreachable ErrorCode = "UPSTREAM_UNREACHABLE"

	// Generic business failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Cross-entity lookup by name came back empty
	CodeLookupFailed ErrorCode = "LOOKUP_FAILED"

	// Proposal was accepted upstream but the contract write failed.
	// The accept is not rolled back; the contract stays pending a retry.
	CodeContractPending ErrorCode = "CONTRACT_PENDING"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
	CodeNoSession          ErrorCode = "NO_SESSION"
)
