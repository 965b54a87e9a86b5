package cmd

import (
	"fmt"
	"os"

	"swatch/internal/color"
	"swatch/internal/config"
	"swatch/internal/palette"
	"swatch/pkg/logging"
)

// loadRuntime loads the layered configuration and builds the resolver every
// command shares: the built-in catalog extended with any user palettes, with
// synthesis behind it. Config problems are boundary errors and fail the
// command outright rather than degrading silently.
func loadRuntime() (config.Config, *palette.Resolver, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, nil, err
	}

	entries, err := cfg.PaletteEntries()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid palette entry in config: %w", err)
	}
	catalog, err := palette.NewCatalog(entries...)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid palette entry in config: %w", err)
	}

	return cfg, palette.NewResolver(catalog), nil
}

// initCLILogging routes logs to stderr at the configured level, keeping
// stdout clean for palette output.
func initCLILogging(cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config log.level: %w", err)
	}
	logging.InitForCLI(level, os.Stderr)
	return nil
}

// applyColorMode applies the configured color mode to terminal output.
// The --no-color flag wins over whatever the config says.
func applyColorMode(cfg config.Config, noColor bool) error {
	mode := cfg.Output.Color
	if noColor {
		mode = "never"
	}
	if err := color.SetMode(mode); err != nil {
		return fmt.Errorf("config output.color: %w", err)
	}
	return nil
}
