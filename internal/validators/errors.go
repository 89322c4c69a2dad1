package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Fixed client facing messages.
const (
	msgInvalidDriverID = "Invalid driverId"
	msgInvalidJSONBody = "invalid JSON body"
)

// ValidationError carries the first rule violation of a rejected input. Its
// message is safe to return to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes every ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidDriverID is returned for path or query ids that are not positive
// integers.
var ErrInvalidDriverID error = &ValidationError{Message: msgInvalidDriverID}
