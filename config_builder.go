package flaglog

import (
	"io"
	"os"
)

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder starting from DefaultConfig with every flag enabled.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder(name string) *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(name, FlagsAll),
	}
}

// WithFlags replaces the active flag set.
// Example: builder.WithFlags(flaglog.Info | flaglog.Error).
func (b *ConfigBuilder) WithFlags(flags Flag) *ConfigBuilder {
	b.config.Flags = flags

	return b
}

// WithOutput sets the screen destination and enables the screen sink.
// Example: builder.WithOutput(os.Stderr).
func (b *ConfigBuilder) WithOutput(output io.Writer) *ConfigBuilder {
	b.config.Output = output
	b.config.ToScreen = output != nil

	return b
}

// WithConsoleOutput writes the screen sink to stdout.
// This is a convenience method for WithOutput(os.Stdout).
func (b *ConfigBuilder) WithConsoleOutput() *ConfigBuilder {
	return b.WithOutput(os.Stdout)
}

// WithoutScreen disables the screen sink.
func (b *ConfigBuilder) WithoutScreen() *ConfigBuilder {
	b.config.ToScreen = false

	return b
}

// WithFileOutput enables the file sink writing to dir.
// Example: builder.WithFileOutput("/var/log/my_app").
func (b *ConfigBuilder) WithFileOutput(dir string) *ConfigBuilder {
	b.config.ToFile = true
	b.config.FilePath = dir

	return b
}

// WithFileName sets the base name of the log file.
func (b *ConfigBuilder) WithFileName(name string) *ConfigBuilder {
	b.config.FileName = name

	return b
}

// WithFileMode sets the permissions of new log files.
func (b *ConfigBuilder) WithFileMode(mode os.FileMode) *ConfigBuilder {
	b.config.FileMode = mode

	return b
}

// WithDailyRotation enables or disables dated file names.
func (b *ConfigBuilder) WithDailyRotation(enable bool) *ConfigBuilder {
	b.config.RotateDaily = enable

	return b
}

// WithKeepOpen keeps the file handle open between records.
func (b *ConfigBuilder) WithKeepOpen(enable bool) *ConfigBuilder {
	b.config.KeepOpen = enable

	return b
}

// WithDateMode sets the timestamp format.
func (b *ConfigBuilder) WithDateMode(mode DateMode) *ConfigBuilder {
	b.config.DateMode = mode

	return b
}

// WithColorMode sets tag or full-line coloring.
func (b *ConfigBuilder) WithColorMode(mode ColorMode) *ConfigBuilder {
	b.config.ColorMode = mode

	return b
}

// WithAutoColor drops colors when the screen output is not a terminal.
func (b *ConfigBuilder) WithAutoColor(enable bool) *ConfigBuilder {
	b.config.AutoColor = enable

	return b
}

// WithSeparator sets the string written after every prefix block.
func (b *ConfigBuilder) WithSeparator(separator string) *ConfigBuilder {
	b.config.Separator = separator

	return b
}

// WithCallback sets the callback sink and the data handed to it.
func (b *ConfigBuilder) WithCallback(cb Callback, data any) *ConfigBuilder {
	b.config.Callback = cb
	b.config.CallbackData = data

	return b
}

// WithHeapBuffers renders messages into exactly sized heap buffers.
func (b *ConfigBuilder) WithHeapBuffers(enable bool) *ConfigBuilder {
	b.config.UseHeap = enable

	return b
}

// WithThreadID prefixes records with the goroutine id.
func (b *ConfigBuilder) WithThreadID(enable bool) *ConfigBuilder {
	b.config.TraceThreadID = enable

	return b
}

// WithIndent pads untagged records to the width of tagged ones.
func (b *ConfigBuilder) WithIndent(enable bool) *ConfigBuilder {
	b.config.Indent = enable

	return b
}

// WithFlush flushes the sinks after every write.
func (b *ConfigBuilder) WithFlush(enable bool) *ConfigBuilder {
	b.config.Flush = enable

	return b
}

// WithDevelopmentDefaults applies the development preset, keeping the file name.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	b.config = DevelopmentConfig(b.config.FileName)

	return b
}

// WithProductionDefaults applies the production preset, keeping the file name.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	b.config = ProductionConfig(b.config.FileName)

	return b
}

// Build returns the configured Config.
func (b *ConfigBuilder) Build() *Config {
	config := b.config

	return &config
}
