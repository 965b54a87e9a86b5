package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/swatch"
	projectConfigDir = ".swatch"
	configFileName   = "config.yaml"
)

// LoadConfig layers configuration: built-in defaults, then the user file
// (~/.config/swatch/config.yaml), then the project file (./.swatch/config.yaml).
// Later layers override scalars they set; palette entries merge by keyword.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and keep going.
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' into 'base'. Zero values in the overlay
// leave the base untouched, so partial config files work as expected.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.UI.ResolveDelayMs != 0 {
		merged.UI.ResolveDelayMs = overlay.UI.ResolveDelayMs
	}
	if overlay.UI.StatusMessageTtlMs != 0 {
		merged.UI.StatusMessageTtlMs = overlay.UI.StatusMessageTtlMs
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}
	if overlay.Output.Color != "" {
		merged.Output.Color = overlay.Output.Color
	}

	// Merge palettes by keyword: overlay replaces same-keyword entries in
	// place, new ones append in file order. Keeps listing order stable.
	if len(overlay.Palettes) > 0 {
		replaced := make(map[string]bool, len(overlay.Palettes))
		overlayByKeyword := make(map[string]PaletteEntry, len(overlay.Palettes))
		for _, p := range overlay.Palettes {
			overlayByKeyword[strings.ToLower(p.Keyword)] = p
		}

		var palettes []PaletteEntry
		for _, p := range merged.Palettes {
			key := strings.ToLower(p.Keyword)
			if op, ok := overlayByKeyword[key]; ok {
				palettes = append(palettes, op)
				replaced[key] = true
			} else {
				palettes = append(palettes, p)
			}
		}
		for _, p := range overlay.Palettes {
			if !replaced[strings.ToLower(p.Keyword)] {
				palettes = append(palettes, p)
			}
		}
		merged.Palettes = palettes
	}

	return merged
}
