package gt911

// Validate checks that the settings can be encoded into a legal register image.
// Only the resolution fields have hard constraints: XMax and YMax must each be
// in 1..4095 and even. TouchThreshold and FilterCoefficient deliberately have
// no upper bound here; Encode truncates them to a byte (see Encode).
//
// Validate is a pure predicate with no side effects.
func (s Settings) Validate() error {
	if err := checkResolution("x_max", s.XMax); err != nil {
		return err
	}
	if err := checkResolution("y_max", s.YMax); err != nil {
		return err
	}
	return nil
}

// checkResolution enforces the 12-bit even-value constraint the controller
// places on resolution registers.
func checkResolution(field string, v int) error {
	if v <= 0 || v > MaxResolution {
		return &ValidationError{Field: field, Value: v, Reason: "must be between 1 and 4095"}
	}
	if v%2 != 0 {
		return &ValidationError{Field: field, Value: v, Reason: "must be an even number"}
	}
	return nil
}
