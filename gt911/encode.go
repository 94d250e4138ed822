package gt911

// Encode builds a complete 186-byte configuration image from the settings.
//
// Image layout:
//
//	[VERSION][X_MAX_L][X_MAX_H][Y_MAX_L][Y_MAX_H][TOUCHES][SW1][SW2][SHAKE][FILTER]..[THRESHOLD]..[CHECKSUM][FRESH]
//
// The settings are validated first; on failure the validation error is
// returned unchanged and no buffer is built. Out-of-range values for the
// remaining fields are adjusted rather than rejected:
//
//   - NumTouchPoints is clamped to 1..10
//   - TouchThreshold is floored to 1, then truncated to a byte (values
//     of 256 or more wrap silently)
//   - FilterCoefficient keeps only its low 8 bits
//
// Callers that want strict rejection of these fields must check them before
// calling Encode. Encoding is deterministic: equal settings always produce
// an identical image.
func Encode(s Settings) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	blob := make([]byte, ConfigSize)

	FieldVersion.put(blob, ConfigVersion)
	FieldXMax.put(blob, uint16(s.XMax))
	FieldYMax.put(blob, uint16(s.YMax))
	FieldTouchPoints.put(blob, uint16(clampTouchPoints(s.NumTouchPoints)))
	FieldModuleSwitch1.put(blob, ModuleSwitch1Default)
	FieldModuleSwitch2.put(blob, ModuleSwitch2Default)
	FieldShakeCount.put(blob, ShakeCountDefault)
	FieldFilter.put(blob, uint16(byte(s.FilterCoefficient)))
	FieldTouchThreshold.put(blob, uint16(floorThreshold(s.TouchThreshold)))

	// Bytes 0..183 not covered by a field stay zero (reserved registers).
	blob[ChecksumOffset] = Checksum(blob[:ChecksumOffset])
	blob[FreshOffset] = ConfigFreshValue

	return blob, nil
}

// clampTouchPoints constrains the touch-point count to the range the
// controller accepts. The adjustment is silent by contract.
func clampTouchPoints(n int) int {
	if n < MinTouchPoints {
		return MinTouchPoints
	}
	if n > MaxTouchPoints {
		return MaxTouchPoints
	}
	return n
}

// floorThreshold applies the minimum touch threshold and truncates to a byte.
// There is no declared ceiling; 256 and above wrap.
func floorThreshold(v int) byte {
	if v < MinTouchThreshold {
		v = MinTouchThreshold
	}
	return byte(v)
}
