package preset

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/secwest/raspi-gt911/gt911"
)

// document is the on-disk TOML structure for a preset file.
type document struct {
	Presets map[string]entry `toml:"presets"`
}

// entry mirrors gt911.Settings with TOML field names.
type entry struct {
	XMax              int `toml:"x_max"`
	YMax              int `toml:"y_max"`
	TouchThreshold    int `toml:"touch_threshold"`
	NumTouchPoints    int `toml:"num_touch_points"`
	FilterCoefficient int `toml:"filter_coefficient"`
}

// Load parses a TOML preset file from the given path.
// Returns the named settings or an error if parsing or validation fails.
//
// File format:
//
//	[presets.7inch]
//	x_max = 1024
//	y_max = 600
//	touch_threshold = 16
//	num_touch_points = 5
//	filter_coefficient = 4
//
// Example:
//
//	presets, err := preset.Load("panels.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings := presets["7inch"]
func Load(path string) (map[string]gt911.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader parses a TOML preset document from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Every entry is validated with gt911.Settings.Validate; an invalid entry
// fails the whole load with the preset name in the error.
func LoadReader(r io.Reader) (map[string]gt911.Settings, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}

	if len(doc.Presets) == 0 {
		return nil, fmt.Errorf("no presets found in file")
	}

	presets := make(map[string]gt911.Settings, len(doc.Presets))
	for name, e := range doc.Presets {
		s := gt911.Settings{
			XMax:              e.XMax,
			YMax:              e.YMax,
			TouchThreshold:    e.TouchThreshold,
			NumTouchPoints:    e.NumTouchPoints,
			FilterCoefficient: e.FilterCoefficient,
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = s
	}

	return presets, nil
}

// Write emits the presets as a TOML document in the format Load accepts.
// Map keys are written in sorted order.
func Write(w io.Writer, presets map[string]gt911.Settings) error {
	if len(presets) == 0 {
		return fmt.Errorf("no presets to write")
	}

	doc := document{Presets: make(map[string]entry, len(presets))}
	for name, s := range presets {
		doc.Presets[name] = entry{
			XMax:              s.XMax,
			YMax:              s.YMax,
			TouchThreshold:    s.TouchThreshold,
			NumTouchPoints:    s.NumTouchPoints,
			FilterCoefficient: s.FilterCoefficient,
		}
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode preset file: %w", err)
	}
	return nil
}
