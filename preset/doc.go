// Package preset provides canned GT911 configuration settings for common
// display panels, plus a TOML file format for user-defined preset tables.
//
// # Built-in Presets
//
//	7inch       1024x600, threshold 16
//	5inch       800x480, threshold 20
//	waveshare7  1280x800, threshold 28
//
// Look one up by name:
//
//	settings, err := preset.Lookup("7inch")
//	blob, err := gt911.Encode(settings)
//
// # Preset Files
//
// User-defined presets live in TOML documents:
//
//	[presets.mypanel]
//	x_max = 1024
//	y_max = 768
//	touch_threshold = 20
//	num_touch_points = 5
//	filter_coefficient = 4
//
// Load validates every entry before returning, so a loaded preset is always
// safe to hand to gt911.Encode:
//
//	presets, err := preset.Load("panels.toml")
//
// Write emits the same format for round-tripping edited tables.
package preset
