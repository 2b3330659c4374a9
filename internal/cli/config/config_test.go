package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oslens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Translate)
	assert.Nil(t, cfg.UI)
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, `
verbose: true
translate: false
ui:
  port: 3000
  auto_open: false
  watch: true
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Translate)
	require.NotNil(t, cfg.UI)
	assert.Equal(t, 3000, cfg.UI.Port)
	assert.False(t, cfg.UI.AutoOpen)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, "translate: true\n")
	t.Setenv("OSLENS_TRANSLATE", "false")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.False(t, cfg.Translate)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("OSLENS_VERBOSE", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Set("verbose", "true"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, "verbose: true\n")

	// Flag exists but was never set; the config file value must win.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
}

func TestGetUIConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	ui := cfg.GetUIConfig()

	assert.Equal(t, 8765, ui.Port)
	assert.True(t, ui.AutoOpen)
	assert.True(t, ui.Watch)
}

func TestGetUIConfig_FillsZeroPort(t *testing.T) {
	cfg := &Config{UI: &UIConfig{AutoOpen: false}}
	ui := cfg.GetUIConfig()

	assert.Equal(t, 8765, ui.Port)
	assert.False(t, ui.AutoOpen)
}

func TestGetCurrentConfig_BeforeLoad(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg := GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.True(t, cfg.Translate)
}
