package gt911

import (
	"bytes"
	"testing"
)

func TestEncodeKnownImage(t *testing.T) {
	blob, err := Encode(Settings{
		XMax:              1024,
		YMax:              600,
		TouchThreshold:    16,
		NumTouchPoints:    5,
		FilterCoefficient: 4,
	})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if len(blob) != ConfigSize {
		t.Fatalf("Encode() returned %d bytes, want %d", len(blob), ConfigSize)
	}

	expected := map[int]byte{
		0:   0x01, // config version
		1:   0x00, // x_max = 1024 little-endian
		2:   0x04,
		3:   0x58, // y_max = 600 little-endian
		4:   0x02,
		5:   5,    // touch points
		6:   0x00, // module switch 1
		7:   0x00, // module switch 2
		8:   0x03, // shake count
		9:   4,    // filter coefficient
		12:  16,   // touch threshold
		184: 0x85, // checksum
		185: 0x01, // config fresh
	}

	for offset, want := range expected {
		if blob[offset] != want {
			t.Errorf("blob[%d] = 0x%02X, want 0x%02X", offset, blob[offset], want)
		}
	}

	// Every byte not claimed by a field stays zero.
	for i := 0; i < ChecksumOffset; i++ {
		if _, claimed := expected[i]; claimed {
			continue
		}
		if blob[i] != 0x00 {
			t.Errorf("reserved blob[%d] = 0x%02X, want 0x00", i, blob[i])
		}
	}
}

func TestEncodeChecksumInvariant(t *testing.T) {
	settings := []Settings{
		{XMax: 1024, YMax: 600, TouchThreshold: 16, NumTouchPoints: 5, FilterCoefficient: 4},
		{XMax: 800, YMax: 480, TouchThreshold: 20, NumTouchPoints: 5, FilterCoefficient: 4},
		{XMax: 1280, YMax: 800, TouchThreshold: 28, NumTouchPoints: 5, FilterCoefficient: 4},
		{XMax: 2, YMax: 2, TouchThreshold: 1, NumTouchPoints: 1, FilterCoefficient: 0},
		{XMax: 4094, YMax: 4094, TouchThreshold: 255, NumTouchPoints: 10, FilterCoefficient: 255},
	}

	for _, s := range settings {
		blob, err := Encode(s)
		if err != nil {
			t.Fatalf("Encode(%+v) failed: %v", s, err)
		}

		// Bytes 0..184 (data plus checksum) must sum to 0 mod 256.
		var sum byte
		for _, b := range blob[:FreshOffset] {
			sum += b
		}
		if sum != 0 {
			t.Errorf("Encode(%+v): bytes 0..184 sum to 0x%02X, want 0x00", s, sum)
		}
	}
}

func TestEncodeTouchPointClamp(t *testing.T) {
	tests := []struct {
		name   string
		points int
		stored byte
	}{
		{"below range", 0, 1},
		{"negative", -3, 1},
		{"lower bound", 1, 1},
		{"in range", 5, 5},
		{"upper bound", 10, 10},
		{"above range", 15, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encode(Settings{XMax: 1024, YMax: 600, TouchThreshold: 16, NumTouchPoints: tt.points, FilterCoefficient: 4})
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if blob[FieldTouchPoints.Offset] != tt.stored {
				t.Errorf("stored touch points = %d, want %d", blob[FieldTouchPoints.Offset], tt.stored)
			}
		})
	}
}

func TestEncodeThresholdAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		stored    byte
	}{
		{"zero floored", 0, 1},
		{"negative floored", -5, 1},
		{"minimum", 1, 1},
		{"byte maximum", 255, 255},
		{"wraps at 256", 256, 0},
		{"wraps above 256", 300, 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encode(Settings{XMax: 1024, YMax: 600, TouchThreshold: tt.threshold, NumTouchPoints: 5, FilterCoefficient: 4})
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if blob[FieldTouchThreshold.Offset] != tt.stored {
				t.Errorf("stored threshold = %d, want %d", blob[FieldTouchThreshold.Offset], tt.stored)
			}
		})
	}
}

func TestEncodeFilterTruncation(t *testing.T) {
	tests := []struct {
		name   string
		filter int
		stored byte
	}{
		{"in range", 4, 4},
		{"low byte kept", 0x1FF, 0xFF},
		{"high bits dropped", 256, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encode(Settings{XMax: 1024, YMax: 600, TouchThreshold: 16, NumTouchPoints: 5, FilterCoefficient: tt.filter})
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if blob[FieldFilter.Offset] != tt.stored {
				t.Errorf("stored filter = %d, want %d", blob[FieldFilter.Offset], tt.stored)
			}
		})
	}
}

func TestEncodeValidationFailure(t *testing.T) {
	s := Settings{XMax: 801, YMax: 600, TouchThreshold: 16, NumTouchPoints: 5, FilterCoefficient: 4}

	blob, err := Encode(s)
	if err == nil {
		t.Fatal("Encode() succeeded with odd x_max")
	}
	if blob != nil {
		t.Error("Encode() returned a buffer alongside an error")
	}
	if !IsValidationError(err) {
		t.Errorf("Encode() error type = %T, want *ValidationError", err)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	s := Settings{XMax: 800, YMax: 480, TouchThreshold: 20, NumTouchPoints: 5, FilterCoefficient: 4}

	first, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	second, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Encode() produced different images for equal settings")
	}
}

func BenchmarkEncode(b *testing.B) {
	s := Settings{XMax: 1024, YMax: 600, TouchThreshold: 16, NumTouchPoints: 5, FilterCoefficient: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(s); err != nil {
			b.Fatal(err)
		}
	}
}
