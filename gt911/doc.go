// Package gt911 implements the binary configuration codec for the Goodix
// GT911 capacitive touch controller.
//
// # Register Image
//
// The controller's configuration area occupies registers 0x8047..0x8100,
// represented here as a contiguous 186-byte image indexed from 0:
//
//	Offset  Register  Field                Width  Encoding
//	0       0x8047    config version       1      fixed 0x01
//	1-2     0x8048    x_max                2      u16 little-endian
//	3-4     0x804A    y_max                2      u16 little-endian
//	5       0x804C    num_touch_points     1      u8, clamped 1-10
//	6       0x804D    module switch 1      1      fixed 0x00
//	7       0x804E    module switch 2      1      fixed 0x00
//	8       0x804F    shake count          1      fixed 0x03
//	9       0x8050    filter coefficient   1      u8 low byte
//	12      0x8053    touch threshold      1      u8, min 1
//	184     0x80FF    checksum             1      two's-complement sum
//	185     0x8100    config fresh         1      fixed 0x01
//
// All remaining bytes in 0..183 are reserved and stay zero. Byte 184 is the
// two's complement of the byte-wise sum over bytes 0..183, so a valid image
// sums to 0 modulo 256 over bytes 0..184. Byte 185 signals the controller to
// reload the configuration block.
//
// # Encoding
//
// Build an image from semantic settings:
//
//	blob, err := gt911.Encode(gt911.Settings{
//	    XMax:              1024,
//	    YMax:              600,
//	    TouchThreshold:    16,
//	    NumTouchPoints:    5,
//	    FilterCoefficient: 4,
//	})
//
// Resolution values are validated (1..4095, even); the other fields are
// silently clamped or truncated to the controller's ranges. See Encode for
// the exact adjustment rules.
//
// # Decoding
//
// Recover the field view from any 186-byte image:
//
//	view, err := gt911.Decode(blob)
//	fmt.Println(view)
//
// Decode does not validate the checksum; use VerifyChecksum when integrity
// confirmation is wanted:
//
//	if !gt911.VerifyChecksum(blob) {
//	    // stored checksum does not match bytes 0..183
//	}
//
// # Concurrency
//
// All operations are pure and stateless. The layout table is immutable after
// initialization, so concurrent encode and decode calls need no coordination.
package gt911
