package errors

// Common error codes
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrInvalidEntity   = "INVALID_ENTITY"
	ErrTimeout         = "TIMEOUT"
)

// codeToStatus maps error codes to HTTP status codes.
var codeToStatus = map[string]int{
	ErrInternal:        500,
	ErrNotFound:        404,
	ErrInvalidArgument: 400,
	ErrInvalidEntity:   422,
	ErrTimeout:         504,
}
