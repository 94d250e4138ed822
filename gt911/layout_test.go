package gt911

import "testing"

func TestLayoutEntries(t *testing.T) {
	for _, f := range Layout {
		if f.Width != 1 && f.Width != 2 {
			t.Errorf("%s: width = %d, want 1 or 2", f.Name, f.Width)
		}
		if f.Width == 2 && f.Order != OrderLittleEndian {
			t.Errorf("%s: 16-bit field must be little-endian", f.Name)
		}
		if f.Offset < 0 || f.Offset+f.Width > ConfigSize {
			t.Errorf("%s: byte range [%d,%d) outside image", f.Name, f.Offset, f.Offset+f.Width)
		}

		// Register addresses track image offsets exactly.
		if int(f.Register)-RegConfigBase != f.Offset {
			t.Errorf("%s: register 0x%04X does not match offset %d", f.Name, f.Register, f.Offset)
		}
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	claimed := make(map[int]string)
	for _, f := range Layout {
		for i := f.Offset; i < f.Offset+f.Width; i++ {
			if prev, ok := claimed[i]; ok {
				t.Errorf("offset %d claimed by both %s and %s", i, prev, f.Name)
			}
			claimed[i] = f.Name
		}
	}
}
