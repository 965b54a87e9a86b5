package config

// Default tuning values. The resolve delay exists so the TUI loading state
// is perceptible rather than a flicker; the TTL matches how long a copy
// confirmation stays readable without lingering.
const (
	DefaultResolveDelayMs     = 750
	DefaultStatusMessageTtlMs = 3000
	DefaultLogLevel           = "warn"
	DefaultColorMode          = "auto"
)

// DefaultConfig returns the built-in configuration swatch runs with when no
// config file is present. User and project files only override what they set.
func DefaultConfig() Config {
	return Config{
		UI: UISettings{
			ResolveDelayMs:     DefaultResolveDelayMs,
			StatusMessageTtlMs: DefaultStatusMessageTtlMs,
		},
		Log: LogSettings{
			Level: DefaultLogLevel,
		},
		Output: OutputSettings{
			Color: DefaultColorMode,
		},
	}
}
