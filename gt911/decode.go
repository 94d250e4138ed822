package gt911

// Decode extracts the field view from a configuration image.
// The input must be exactly ConfigSize bytes; anything else fails with a
// LengthError.
//
// Decode is a pure extraction through the layout table. The stored checksum
// is reported as-is and not validated; callers wanting integrity confirmation
// should use VerifyChecksum.
func Decode(blob []byte) (*View, error) {
	if len(blob) != ConfigSize {
		return nil, &LengthError{Got: len(blob)}
	}

	v := &View{
		Version:           byte(FieldVersion.get(blob)),
		XMax:              FieldXMax.get(blob),
		YMax:              FieldYMax.get(blob),
		NumTouchPoints:    byte(FieldTouchPoints.get(blob)),
		ModuleSwitch1:     byte(FieldModuleSwitch1.get(blob)),
		ModuleSwitch2:     byte(FieldModuleSwitch2.get(blob)),
		ShakeCount:        byte(FieldShakeCount.get(blob)),
		FilterCoefficient: byte(FieldFilter.get(blob)),
		TouchThreshold:    byte(FieldTouchThreshold.get(blob)),
		Checksum:          byte(FieldChecksum.get(blob)),
		ConfigFresh:       byte(FieldConfigFresh.get(blob)),
	}

	return v, nil
}
