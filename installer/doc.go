// Package installer ships GT911 configuration images into the firmware
// directory and orchestrates the driver reload that makes them take effect.
//
// # Overview
//
// The goodix kernel driver loads its configuration from
// /lib/firmware/goodix_911_cfg.bin at probe time. This package:
//   - Validates the image before touching the system (size and checksum)
//   - Checks system requirements (firmware directory, modprobe, driver module)
//   - Stages and copies the image with elevated privileges when needed
//   - Unloads and reloads the driver on request
//
// # Basic Usage
//
//	blob, err := gt911.Encode(settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inst := installer.New()
//	if err := inst.Install(ctx, blob); err != nil {
//	    log.Fatal(err)
//	}
//	if err := inst.ReloadDriver(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Privilege Elevation
//
// All mutating system commands go through the Runner interface. The default
// SudoRunner wraps commands in non-interactive sudo (and skips sudo when the
// process is already root). Supply a custom Runner to integrate a different
// elevation mechanism or to fake command execution in tests:
//
//	inst := installer.New(installer.WithRunner(myRunner))
//
// # Configuration Options
//
//	inst := installer.New(
//	    installer.WithFirmwareDir("/lib/firmware"),
//	    installer.WithFileName("goodix_911_cfg.bin"),
//	    installer.WithDriverName("goodix"),
//	    installer.WithReloadDelay(time.Second),
//	    installer.WithLogger(logger),
//	)
package installer
