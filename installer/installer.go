package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/secwest/raspi-gt911/gt911"
)

// lookPath resolves command names; replaced in tests.
var lookPath = exec.LookPath

// Installer ships a GT911 configuration image into the firmware directory
// and optionally reloads the touch driver so the controller picks it up.
//
// Installer is safe for concurrent use after initialization.
type Installer struct {
	config Config
}

// New creates a new Installer with the given options.
//
// Example:
//
//	inst := installer.New(
//	    installer.WithLogger(logger),
//	    installer.WithFirmwareDir("/lib/firmware"),
//	)
func New(opts ...Option) *Installer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Installer{config: cfg}
}

// TargetPath returns the full path the config image is installed to.
func (in *Installer) TargetPath() string {
	return filepath.Join(in.config.FirmwareDir, in.config.FileName)
}

// NeedsPrivilege reports whether writing to the firmware directory requires
// privilege elevation for the current process.
func (in *Installer) NeedsPrivilege() bool {
	return unix.Access(in.config.FirmwareDir, unix.W_OK) != nil
}

// CheckRequirements verifies that the system can accept an install:
// the firmware directory exists, modprobe is available, and the configured
// driver module is known to the kernel. Failures are RequirementErrors.
func (in *Installer) CheckRequirements(ctx context.Context) error {
	info, err := os.Stat(in.config.FirmwareDir)
	if err != nil || !info.IsDir() {
		return &RequirementError{
			Requirement: "firmware directory",
			Reason:      fmt.Sprintf("%s does not exist", in.config.FirmwareDir),
		}
	}

	if _, err := lookPath("modprobe"); err != nil {
		return &RequirementError{
			Requirement: "modprobe",
			Reason:      "command not found",
		}
	}

	// Dry run: succeeds only if the module is known to the kernel.
	if _, err := in.config.Runner.Run(ctx, "modprobe", "-n", in.config.DriverName); err != nil {
		return &RequirementError{
			Requirement: "driver module",
			Reason:      fmt.Sprintf("%s is not available: %v", in.config.DriverName, err),
		}
	}

	return nil
}

// Install writes the config image into the firmware directory:
//  1. Validate the image (exact size, checksum matches contents)
//  2. Check system requirements
//  3. Stage the image to a temporary file
//  4. Copy it into place and set permissions through the Runner
//
// The staging file is removed afterwards. The image bytes are written
// verbatim; Install never modifies them.
func (in *Installer) Install(ctx context.Context, blob []byte) error {
	if len(blob) != gt911.ConfigSize {
		return &ImageError{Reason: fmt.Sprintf("got %d bytes, expected %d", len(blob), gt911.ConfigSize)}
	}
	if !gt911.VerifyChecksum(blob) {
		return &ImageError{Reason: "stored checksum does not match image contents"}
	}

	if err := in.CheckRequirements(ctx); err != nil {
		return err
	}

	stage, err := os.CreateTemp("", "gt911-cfg-*.bin")
	if err != nil {
		return fmt.Errorf("stage config image: %w", err)
	}
	stagePath := stage.Name()
	defer func() { _ = os.Remove(stagePath) }()

	if _, err := stage.Write(blob); err != nil {
		_ = stage.Close()
		return fmt.Errorf("stage config image: %w", err)
	}
	if err := stage.Close(); err != nil {
		return fmt.Errorf("stage config image: %w", err)
	}

	target := in.TargetPath()
	in.config.Logger.Debug().
		Str("stage", stagePath).
		Str("target", target).
		Bool("privileged", in.NeedsPrivilege()).
		Msg("installing config image")

	if _, err := in.config.Runner.Run(ctx, "cp", stagePath, target); err != nil {
		return fmt.Errorf("copy config image: %w", err)
	}

	if _, err := in.config.Runner.Run(ctx, "chmod", "644", target); err != nil {
		return fmt.Errorf("set config image permissions: %w", err)
	}

	in.config.Logger.Info().Str("target", target).Msg("config image installed")
	return nil
}

// ReloadDriver unloads and reloads the touch driver so it reads the freshly
// installed configuration. Without a reload the new configuration takes
// effect on the next boot.
func (in *Installer) ReloadDriver(ctx context.Context) error {
	driver := in.config.DriverName

	if _, err := in.config.Runner.Run(ctx, "modprobe", "-r", driver); err != nil {
		return fmt.Errorf("unload driver: %w", err)
	}

	// Give the kernel time to settle before reloading.
	if in.config.ReloadDelay > 0 {
		select {
		case <-time.After(in.config.ReloadDelay):
		case <-ctx.Done():
			return fmt.Errorf("cancelled: %w", ctx.Err())
		}
	}

	if _, err := in.config.Runner.Run(ctx, "modprobe", driver); err != nil {
		return fmt.Errorf("load driver: %w", err)
	}

	in.config.Logger.Info().Str("driver", driver).Msg("driver reloaded")
	return nil
}
