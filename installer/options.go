package installer

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds the installer configuration.
type Config struct {
	// Runner executes privileged system commands
	Runner Runner

	// FirmwareDir is the directory the config image is installed into
	FirmwareDir string

	// FileName is the installed file name inside FirmwareDir
	FileName string

	// DriverName is the kernel module name for reload operations
	DriverName string

	// ReloadDelay is the settle time between unloading and reloading the driver
	ReloadDelay time.Duration

	// Logger receives structured progress events
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Runner:      SudoRunner{},
		FirmwareDir: "/lib/firmware",
		FileName:    "goodix_911_cfg.bin",
		DriverName:  "goodix",
		ReloadDelay: time.Second,
		Logger:      zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Installer.
type Option func(*Config)

// WithRunner sets the command runner used for privileged operations.
//
// Example:
//
//	inst := installer.New(installer.WithRunner(myRunner))
func WithRunner(r Runner) Option {
	return func(c *Config) {
		if r != nil {
			c.Runner = r
		}
	}
}

// WithFirmwareDir sets the target firmware directory.
// Default is /lib/firmware.
func WithFirmwareDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.FirmwareDir = dir
		}
	}
}

// WithFileName sets the installed file name.
// Default is goodix_911_cfg.bin, the name the goodix driver requests.
func WithFileName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.FileName = name
		}
	}
}

// WithDriverName sets the kernel module name used for reload operations.
// Default is goodix.
func WithDriverName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.DriverName = name
		}
	}
}

// WithReloadDelay sets the settle time between driver unload and reload.
// Default is one second.
func WithReloadDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.ReloadDelay = d
		}
	}
}

// WithLogger sets a logger for installer operations.
//
// Example:
//
//	inst := installer.New(installer.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
