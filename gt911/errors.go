package gt911

import "fmt"

// ValidationError indicates that a settings value cannot be encoded
// into a legal register image.
type ValidationError struct {
	// Field is the settings field that failed validation
	Field string

	// Value is the rejected value
	Value int

	// Reason describes the constraint that was violated
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// LengthError indicates that a decode input is not exactly ConfigSize bytes.
type LengthError struct {
	// Got is the length of the rejected input
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid config image length: got %d bytes, expected %d", e.Got, ConfigSize)
}

// IsLengthError returns true if the error is a LengthError.
func IsLengthError(err error) bool {
	_, ok := err.(*LengthError)
	return ok
}
