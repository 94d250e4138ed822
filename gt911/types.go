package gt911

import (
	"fmt"
	"strings"
)

// Settings holds the semantic configuration values accepted by Encode.
type Settings struct {
	// XMax is the X resolution in pixels (1..4095, must be even)
	XMax int

	// YMax is the Y resolution in pixels (1..4095, must be even)
	YMax int

	// TouchThreshold is the screen touch level; Encode floors it to 1
	// and truncates it to a single byte
	TouchThreshold int

	// NumTouchPoints is the number of simultaneous touches; Encode
	// clamps it to 1..10
	NumTouchPoints int

	// FilterCoefficient is the noise filter setting; only the low
	// 8 bits are written
	FilterCoefficient int
}

// View is the decoded field view of a configuration image.
// It is a pure extraction: the stored checksum is reported as-is and is
// not recomputed (use VerifyChecksum for that).
type View struct {
	// Version is the configuration version byte (register 0x8047)
	Version byte

	// XMax is the X resolution (registers 0x8048..0x8049)
	XMax uint16

	// YMax is the Y resolution (registers 0x804A..0x804B)
	YMax uint16

	// NumTouchPoints is the stored touch-point count (register 0x804C)
	NumTouchPoints byte

	// ModuleSwitch1 holds the axis swap/invert bits (register 0x804D)
	ModuleSwitch1 byte

	// ModuleSwitch2 is the second module switch (register 0x804E)
	ModuleSwitch2 byte

	// ShakeCount is the debounce shake count (register 0x804F)
	ShakeCount byte

	// FilterCoefficient is the noise filter setting (register 0x8050)
	FilterCoefficient byte

	// TouchThreshold is the screen touch level (register 0x8053)
	TouchThreshold byte

	// Checksum is the stored checksum byte (register 0x80FF)
	Checksum byte

	// ConfigFresh is the config-fresh flag (register 0x8100)
	ConfigFresh byte
}

// String renders the view as a human-readable detail block.
func (v *View) String() string {
	var b strings.Builder
	b.WriteString("=== GT911 Configuration Details ===\n")
	fmt.Fprintf(&b, " Config_Version (0x8047):       0x%02X\n", v.Version)
	fmt.Fprintf(&b, " X Resolution (0x8048..49):     %d\n", v.XMax)
	fmt.Fprintf(&b, " Y Resolution (0x804A..4B):     %d\n", v.YMax)
	fmt.Fprintf(&b, " Touch Points (0x804C):         %d\n", v.NumTouchPoints)
	fmt.Fprintf(&b, " Module_Switch1 (0x804D):       0x%02X\n", v.ModuleSwitch1)
	fmt.Fprintf(&b, " Module_Switch2 (0x804E):       0x%02X\n", v.ModuleSwitch2)
	fmt.Fprintf(&b, " Shake_Count (0x804F):          %d\n", v.ShakeCount)
	fmt.Fprintf(&b, " Filter (0x8050):               %d\n", v.FilterCoefficient)
	fmt.Fprintf(&b, " Screen_Touch_Level (0x8053):   %d\n", v.TouchThreshold)
	fmt.Fprintf(&b, " Checksum (0x80FF):             0x%02X\n", v.Checksum)
	fmt.Fprintf(&b, " Config_Fresh (0x8100):         0x%02X\n", v.ConfigFresh)
	b.WriteString("===================================")
	return b.String()
}
