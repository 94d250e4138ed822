package installer

import "fmt"

// RequirementError indicates that the system is missing something the
// installer needs (firmware directory, modprobe, or the driver module).
type RequirementError struct {
	// Requirement names what is missing
	Requirement string

	// Reason describes why the check failed
	Reason string
}

func (e *RequirementError) Error() string {
	return fmt.Sprintf("system requirement not met: %s: %s", e.Requirement, e.Reason)
}

// ImageError indicates that the config image handed to Install is not a
// valid 186-byte image with a matching checksum.
type ImageError struct {
	// Reason describes what is wrong with the image
	Reason string
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("refusing to install config image: %s", e.Reason)
}
