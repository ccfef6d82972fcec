package compat

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/hyp3rd/flaglog"
)

// ZapCore is a zapcore.Core writing entries through a flaglog.Logger. Structured
// fields are rendered as sorted key=value pairs after the message.
type ZapCore struct {
	logger flaglog.Logger
	fields []zapcore.Field
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore returns a core for zap.New.
func NewZapCore(logger flaglog.Logger) *ZapCore {
	return &ZapCore{logger: logger}
}

// FlagForLevel maps a zap level to the flag its entries are logged under.
func FlagForLevel(level zapcore.Level) flaglog.Flag {
	switch {
	case level < zapcore.InfoLevel:
		return flaglog.Debug
	case level == zapcore.InfoLevel:
		return flaglog.Info
	case level == zapcore.WarnLevel:
		return flaglog.Warn
	case level == zapcore.ErrorLevel:
		return flaglog.Error
	default:
		return flaglog.Fatal
	}
}

// Enabled reports whether the flag of level is active in the logger.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return FlagForLevel(level).EnabledIn(c.logger.Config().Flags)
}

// With returns a core carrying fields in addition to the ones of c.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)

	return &ZapCore{logger: c.logger, fields: merged}
}

// Check adds c to ce when the entry's level is enabled.
func (c *ZapCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}

	return ce
}

// Write logs entry with the core's fields followed by fields.
func (c *ZapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	encoder := zapcore.NewMapObjectEncoder()

	for _, field := range c.fields {
		field.AddTo(encoder)
	}

	for _, field := range fields {
		field.AddTo(encoder)
	}

	var b strings.Builder

	if entry.LoggerName != "" {
		b.WriteString(entry.LoggerName)
		b.WriteString(": ")
	}

	b.WriteString(entry.Message)

	keys := make([]string, 0, len(encoder.Fields))
	for key := range encoder.Fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%v", key, encoder.Fields[key])
	}

	c.logger.Emit(FlagForLevel(entry.Level), true, b.String())

	return nil
}

// Sync syncs the underlying logger.
func (c *ZapCore) Sync() error {
	return c.logger.Sync()
}
