package gt911

// Checksum computes the 8-bit configuration checksum over the given bytes.
// Uses basic summation per the GT911 datasheet: sum all bytes, then take the
// two's complement, so that the sum of the covered bytes plus the checksum
// itself is congruent to 0 modulo 256.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	// Return 2's complement: invert and add 1
	return ^sum + 1
}

// VerifyChecksum reports whether the stored checksum byte of a full
// configuration image matches the checksum recomputed over bytes 0..183.
// Returns false for input that is not exactly ConfigSize bytes.
func VerifyChecksum(blob []byte) bool {
	if len(blob) != ConfigSize {
		return false
	}
	return Checksum(blob[:ChecksumOffset]) == blob[ChecksumOffset]
}
