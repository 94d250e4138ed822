package preset

import "fmt"

// UnknownPresetError indicates a lookup for a preset name that doesn't exist.
type UnknownPresetError struct {
	// Name is the preset name that was requested
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q", e.Name)
}

// IsUnknownPresetError returns true if the error is an UnknownPresetError.
func IsUnknownPresetError(err error) bool {
	_, ok := err.(*UnknownPresetError)
	return ok
}
