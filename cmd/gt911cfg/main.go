// Command gt911cfg generates, inspects, and installs GT911 touch controller
// configuration images through an interactive menu.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/secwest/raspi-gt911/gt911"
	"github.com/secwest/raspi-gt911/installer"
	"github.com/secwest/raspi-gt911/preset"
)

func main() {
	presetFile := flag.String("presets", "", "TOML file with additional panel presets")
	outFile := flag.String("out", "goodix_911_cfg.bin", "default output file for generated configurations")
	firmwareDir := flag.String("firmware-dir", "/lib/firmware", "target firmware directory for installs")
	driver := flag.String("driver", "goodix", "kernel module name for driver reloads")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := initLogger(*debug)

	a := &app{
		in:      bufio.NewScanner(os.Stdin),
		logger:  logger,
		outFile: *outFile,
		inst: installer.New(
			installer.WithFirmwareDir(*firmwareDir),
			installer.WithDriverName(*driver),
			installer.WithLogger(logger),
		),
	}

	if err := a.loadPresets(*presetFile); err != nil {
		logger.Fatal().Err(err).Msg("failed to load presets")
	}

	// Default to the 7 inch panel settings like the stock configuration.
	a.settings = a.presets["7inch"]

	fmt.Println("GT911 Configuration Generator")
	fmt.Println("This utility generates and installs configuration files for GT911 controllers.")

	if a.inst.NeedsPrivilege() {
		fmt.Println("\nNote: installing will require sudo privileges.")
	}
	if err := a.inst.CheckRequirements(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("some features may not work correctly")
	}

	a.menu()
}

func initLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "gt911cfg").Logger().Level(level)
}

type app struct {
	in       *bufio.Scanner
	logger   zerolog.Logger
	inst     *installer.Installer
	presets  map[string]gt911.Settings
	settings gt911.Settings
	outFile  string
}

// loadPresets merges the built-in table with an optional user preset file.
// File entries override built-ins with the same name.
func (a *app) loadPresets(path string) error {
	a.presets = make(map[string]gt911.Settings)
	for _, name := range preset.Names() {
		s, err := preset.Lookup(name)
		if err != nil {
			return err
		}
		a.presets[name] = s
	}

	if path == "" {
		return nil
	}

	loaded, err := preset.Load(path)
	if err != nil {
		return err
	}
	for name, s := range loaded {
		a.presets[name] = s
	}
	a.logger.Debug().Int("count", len(loaded)).Str("file", path).Msg("loaded preset file")
	return nil
}

func (a *app) menu() {
	for {
		fmt.Println("\n=== GT911 Configuration Generator ===")
		fmt.Println("\nCURRENT SETTINGS:")
		fmt.Printf("  1) Resolution:         %dx%d\n", a.settings.XMax, a.settings.YMax)
		fmt.Printf("  2) Touch Threshold:    %d\n", a.settings.TouchThreshold)
		fmt.Printf("  3) Number of Touches:  %d\n", a.settings.NumTouchPoints)
		fmt.Printf("  4) Filter Coefficient: %d\n", a.settings.FilterCoefficient)
		fmt.Println("\nACTIONS:")
		fmt.Println("  5) Show Available Presets")
		fmt.Println("  6) Load Preset")
		fmt.Println("  7) Generate and Save Configuration")
		fmt.Println("  8) Generate and Install Configuration")
		fmt.Println("  9) Show Detailed Configuration")
		fmt.Println("  0) Exit")

		switch a.prompt("\nChoice") {
		case "1":
			a.settings.XMax = a.promptInt("X Resolution", 2, 4094, a.settings.XMax)
			a.settings.YMax = a.promptInt("Y Resolution", 2, 4094, a.settings.YMax)
		case "2":
			a.settings.TouchThreshold = a.promptInt("Touch Threshold", 1, 255, a.settings.TouchThreshold)
		case "3":
			a.settings.NumTouchPoints = a.promptInt("Number of Touch Points", 1, 10, a.settings.NumTouchPoints)
		case "4":
			a.settings.FilterCoefficient = a.promptInt("Filter Coefficient", 0, 15, a.settings.FilterCoefficient)
		case "5":
			a.showPresets()
		case "6":
			a.loadPreset()
		case "7":
			a.generateAndSave()
		case "8":
			a.generateAndInstall()
		case "9":
			a.showDetails()
		case "0":
			fmt.Println("\nExiting configuration generator.")
			return
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(a.in.Text())
}

// promptInt reads a number in [min,max]; empty input keeps the current value.
func (a *app) promptInt(label string, min, max, current int) int {
	for {
		raw := a.prompt(fmt.Sprintf("%s (%d-%d) [%d]", label, min, max, current))
		if raw == "" {
			return current
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a valid number")
			continue
		}
		if v < min || v > max {
			fmt.Printf("Value must be between %d and %d\n", min, max)
			continue
		}
		return v
	}
}

func (a *app) showPresets() {
	names := make([]string, 0, len(a.presets))
	for name := range a.presets {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nAvailable Presets:")
	for _, name := range names {
		s := a.presets[name]
		fmt.Printf("\n%s:\n", name)
		fmt.Printf("  Resolution:         %dx%d\n", s.XMax, s.YMax)
		fmt.Printf("  Touch Threshold:    %d\n", s.TouchThreshold)
		fmt.Printf("  Number of Touches:  %d\n", s.NumTouchPoints)
		fmt.Printf("  Filter Coefficient: %d\n", s.FilterCoefficient)
	}
}

func (a *app) loadPreset() {
	a.showPresets()
	name := a.prompt("\nEnter preset name")
	s, ok := a.presets[name]
	if !ok {
		// Built-in names are all lowercase; accept sloppy casing for those
		// without hiding mixed-case names from user preset files.
		s, ok = a.presets[strings.ToLower(name)]
	}
	if !ok {
		fmt.Printf("Unknown preset %q. Settings unchanged.\n", name)
		return
	}
	a.settings = s
}

func (a *app) generateAndSave() {
	blob, err := gt911.Encode(a.settings)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	path := a.prompt(fmt.Sprintf("Enter filename [%s]", a.outFile))
	if path == "" {
		path = a.outFile
	}

	if err := os.WriteFile(path, blob, 0o644); err != nil {
		fmt.Printf("\nError saving configuration: %v\n", err)
		return
	}
	fmt.Printf("\nConfiguration saved to %q successfully.\n", path)
}

func (a *app) generateAndInstall() {
	blob, err := gt911.Encode(a.settings)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	fmt.Println("\nGenerating and installing configuration...")
	ctx := context.Background()
	if err := a.inst.Install(ctx, blob); err != nil {
		a.logger.Error().Err(err).Msg("installation failed")
		return
	}
	fmt.Println("Configuration installed successfully.")

	if strings.ToLower(a.prompt("Would you like to reload the goodix driver? (y/N)")) != "y" {
		fmt.Println("\nDriver not reloaded. Changes will take effect after reboot.")
		return
	}

	fmt.Println("\nReloading driver...")
	if err := a.inst.ReloadDriver(ctx); err != nil {
		a.logger.Error().Err(err).Msg("driver reload failed")
		return
	}
	fmt.Println("Driver reloaded. Check dmesg for probe results.")
}

func (a *app) showDetails() {
	blob, err := gt911.Encode(a.settings)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	view, err := gt911.Decode(blob)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Printf("\n%s\n", view)
}
