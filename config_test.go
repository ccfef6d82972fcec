package flaglog

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig("app", Info|Error)

	assert.Equal(t, Info|Error, config.Flags)
	assert.Equal(t, DateTimeOnly, config.DateMode)
	assert.Equal(t, ColorTag, config.ColorMode)
	assert.Equal(t, " ", config.Separator)
	assert.True(t, config.ToScreen)
	assert.Equal(t, os.Stdout, config.Output)
	assert.False(t, config.ToFile)
	assert.Equal(t, ".", config.FilePath)
	assert.Equal(t, "app", config.FileName)
	assert.Equal(t, os.FileMode(0o644), config.FileMode)
	assert.True(t, config.RotateDaily)
	assert.True(t, config.KeepOpen)
	assert.Nil(t, config.Callback)
	assert.False(t, config.UseHeap)
	assert.False(t, config.TraceThreadID)
	assert.False(t, config.Indent)
	assert.False(t, config.Flush)
}

func TestPresetConfigs(t *testing.T) {
	dev := DevelopmentConfig("dev")
	assert.Equal(t, FlagsAll, dev.Flags)
	assert.True(t, dev.TraceThreadID)
	assert.True(t, dev.AutoColor)
	assert.True(t, dev.Flush)
	require.NoError(t, dev.Validate())

	prod := ProductionConfig("prod")
	assert.False(t, Debug.EnabledIn(prod.Flags))
	assert.False(t, Trace.EnabledIn(prod.Flags))
	assert.True(t, Error.EnabledIn(prod.Flags))
	assert.Equal(t, DateFull, prod.DateMode)
	assert.Equal(t, ColorDisabled, prod.ColorMode)
	assert.True(t, prod.ToFile)
	require.NoError(t, prod.Validate())
}

func TestConfigCopyIsIndependent(t *testing.T) {
	config := DefaultConfig("app", Info)
	snapshot := config

	config.Flags |= Error
	config.Separator = " | "

	assert.Equal(t, Info, snapshot.Flags)
	assert.Equal(t, " ", snapshot.Separator)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"bad date mode", func(c *Config) { c.DateMode = DateMode(9) }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = ColorMode(9) }, true},
		{"screen without output", func(c *Config) { c.Output = nil }, true},
		{"no screen without output", func(c *Config) { c.Output, c.ToScreen = nil, false }, false},
		{"file with empty name", func(c *Config) { c.ToFile, c.FileName = true, "" }, true},
		{"file with traversal", func(c *Config) { c.ToFile, c.FileName = true, "../x" }, true},
		{"file with separator", func(c *Config) { c.ToFile, c.FileName = true, "a/b" }, true},
		{"empty name without file", func(c *Config) { c.FileName = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig("app", FlagsAll)
			config.Output = &bytes.Buffer{}
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	var nilConfig *Config
	require.Error(t, nilConfig.Validate())
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "disabled", DateDisabled.String())
	assert.Equal(t, "time", DateTimeOnly.String())
	assert.Equal(t, "full", DateFull.String())
	assert.Equal(t, "unknown", DateMode(7).String())
	assert.Equal(t, "disabled", ColorDisabled.String())
	assert.Equal(t, "tag", ColorTag.String())
	assert.Equal(t, "full", ColorFull.String())
	assert.Equal(t, "unknown", ColorMode(7).String())
}
