package gt911

import "encoding/binary"

// ByteOrder identifies how a multi-byte field is encoded in the image.
type ByteOrder int

const (
	// OrderNone is used for single-byte fields
	OrderNone ByteOrder = iota

	// OrderLittleEndian is used for 16-bit fields (low byte first)
	OrderLittleEndian
)

// Field describes where a semantic field lives inside the configuration image.
// The layout table is the single source of truth for field placement; Encode
// and Decode both address the image through it.
type Field struct {
	// Name is the field identifier used in error messages and tooling
	Name string

	// Offset is the field's first byte index within the image
	Offset int

	// Width is the field size in bytes (1 or 2)
	Width int

	// Order is the byte order for multi-byte fields
	Order ByteOrder

	// Register is the device register address of the field's first byte
	Register uint16
}

// Layout entries for every field the codec reads or writes.
var (
	FieldVersion        = Field{Name: "config_version", Offset: 0, Width: 1, Order: OrderNone, Register: 0x8047}
	FieldXMax           = Field{Name: "x_max", Offset: 1, Width: 2, Order: OrderLittleEndian, Register: 0x8048}
	FieldYMax           = Field{Name: "y_max", Offset: 3, Width: 2, Order: OrderLittleEndian, Register: 0x804A}
	FieldTouchPoints    = Field{Name: "num_touch_points", Offset: 5, Width: 1, Order: OrderNone, Register: 0x804C}
	FieldModuleSwitch1  = Field{Name: "module_switch1", Offset: 6, Width: 1, Order: OrderNone, Register: 0x804D}
	FieldModuleSwitch2  = Field{Name: "module_switch2", Offset: 7, Width: 1, Order: OrderNone, Register: 0x804E}
	FieldShakeCount     = Field{Name: "shake_count", Offset: 8, Width: 1, Order: OrderNone, Register: 0x804F}
	FieldFilter         = Field{Name: "filter_coefficient", Offset: 9, Width: 1, Order: OrderNone, Register: 0x8050}
	FieldTouchThreshold = Field{Name: "touch_threshold", Offset: 12, Width: 1, Order: OrderNone, Register: 0x8053}
	FieldChecksum       = Field{Name: "checksum", Offset: ChecksumOffset, Width: 1, Order: OrderNone, Register: RegChecksum}
	FieldConfigFresh    = Field{Name: "config_fresh", Offset: FreshOffset, Width: 1, Order: OrderNone, Register: RegConfigFresh}
)

// Layout is the complete field table in image order.
// It is initialized once and never mutated; concurrent readers need no locking.
var Layout = []Field{
	FieldVersion,
	FieldXMax,
	FieldYMax,
	FieldTouchPoints,
	FieldModuleSwitch1,
	FieldModuleSwitch2,
	FieldShakeCount,
	FieldFilter,
	FieldTouchThreshold,
	FieldChecksum,
	FieldConfigFresh,
}

// get reads the field's value from a full-size image.
func (f Field) get(blob []byte) uint16 {
	if f.Width == 2 {
		return binary.LittleEndian.Uint16(blob[f.Offset : f.Offset+2])
	}
	return uint16(blob[f.Offset])
}

// put writes the field's value into a full-size image.
func (f Field) put(blob []byte, v uint16) {
	if f.Width == 2 {
		binary.LittleEndian.PutUint16(blob[f.Offset:f.Offset+2], v)
		return
	}
	blob[f.Offset] = byte(v)
}
