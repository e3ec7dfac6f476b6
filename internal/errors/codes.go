package errors

// Stable error codes surfaced in responses so clients can branch without
// parsing messages.
const (
	ResourceNotFound       = "RESOURCE_NOT_FOUND"
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	InternalServerError    = "INTERNAL_SERVER_ERROR"
)
