// Package config provides configuration management for the OSLens CLI.
package config

// UIConfig holds configuration for the UI server.
type UIConfig struct {
	Port     int  `koanf:"port"`
	AutoOpen bool `koanf:"auto_open"`
	Watch    bool `koanf:"watch"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     8765,
		AutoOpen: true,
		Watch:    true,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = 8765
	}
	return ui
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose   bool      `koanf:"verbose"`
	Translate bool      `koanf:"translate"`
	UI        *UIConfig `koanf:"ui"`
}

// Default configuration values.
const (
	// DefaultTranslate runs uploads and file loads through the version
	// translator unless turned off.
	DefaultTranslate = true
)
