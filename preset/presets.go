package preset

import (
	"sort"

	"github.com/secwest/raspi-gt911/gt911"
)

// builtin holds the canned settings for common display panels.
// Initialized once and never mutated.
var builtin = map[string]gt911.Settings{
	"7inch": {
		XMax:              1024,
		YMax:              600,
		TouchThreshold:    16,
		NumTouchPoints:    5,
		FilterCoefficient: 4,
	},
	"5inch": {
		XMax:              800,
		YMax:              480,
		TouchThreshold:    20,
		NumTouchPoints:    5,
		FilterCoefficient: 4,
	},
	"waveshare7": {
		XMax:              1280,
		YMax:              800,
		TouchThreshold:    28,
		NumTouchPoints:    5,
		FilterCoefficient: 4,
	},
}

// Lookup returns the built-in preset with the given name.
// Fails with an UnknownPresetError if no such preset exists.
func Lookup(name string) (gt911.Settings, error) {
	s, ok := builtin[name]
	if !ok {
		return gt911.Settings{}, &UnknownPresetError{Name: name}
	}
	return s, nil
}

// Names returns the built-in preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
