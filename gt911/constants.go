package gt911

// Register addresses for the GT911 configuration area.
const (
	// RegConfigBase is the first register of the configuration area (0x8047)
	RegConfigBase = 0x8047

	// RegChecksum is the register holding the 8-bit configuration checksum (0x80FF)
	RegChecksum = 0x80FF

	// RegConfigFresh is the register holding the config-fresh flag (0x8100)
	RegConfigFresh = 0x8100
)

// Image structure constants.
const (
	// ConfigSize is the exact size of a configuration image in bytes:
	// registers 0x8047..0x8100 inclusive
	ConfigSize = 186

	// ChecksumOffset is the image offset of the checksum byte (register 0x80FF)
	ChecksumOffset = 184

	// FreshOffset is the image offset of the config-fresh byte (register 0x8100)
	FreshOffset = 185
)

// Fixed byte values written by Encode.
const (
	// ConfigVersion is the configuration version byte written at offset 0
	ConfigVersion = 0x01

	// ModuleSwitch1Default disables axis swap and axis inversion
	ModuleSwitch1Default = 0x00

	// ModuleSwitch2Default is the default value for the second module switch
	ModuleSwitch2Default = 0x00

	// ShakeCountDefault is the default debounce shake count
	ShakeCountDefault = 0x03

	// ConfigFreshValue marks the configuration block for reload by the controller
	ConfigFreshValue = 0x01
)

// Input ranges enforced or applied by the codec.
const (
	// MaxResolution is the largest legal X or Y resolution (12-bit register)
	MaxResolution = 4095

	// MinTouchPoints is the smallest touch-point count the controller accepts
	MinTouchPoints = 1

	// MaxTouchPoints is the largest touch-point count the controller accepts
	MaxTouchPoints = 10

	// MinTouchThreshold is the floor applied to the touch threshold
	MinTouchThreshold = 1
)
