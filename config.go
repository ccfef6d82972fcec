package flaglog

import (
	"io"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog/internal/constants"
	"github.com/hyp3rd/flaglog/internal/utils"
)

// DateMode selects how much of the timestamp is rendered.
type DateMode uint8

const (
	// DateDisabled renders no timestamp.
	DateDisabled DateMode = iota
	// DateTimeOnly renders HH:MM:SS.mmm.
	DateTimeOnly
	// DateFull renders YYYY.MM.DD-HH:MM:SS.mmm.
	DateFull
)

// IsValid reports whether the mode value is recognised.
func (m DateMode) IsValid() bool {
	return m <= DateFull
}

// String returns the string representation of the mode.
func (m DateMode) String() string {
	switch m {
	case DateDisabled:
		return "disabled"
	case DateTimeOnly:
		return "time"
	case DateFull:
		return "full"
	default:
		return "unknown"
	}
}

// ColorMode selects where ANSI colors are applied.
type ColorMode uint8

const (
	// ColorDisabled renders no color codes.
	ColorDisabled ColorMode = iota
	// ColorTag colors the tag only.
	ColorTag
	// ColorFull colors the whole line and resets at its end.
	ColorFull
)

// IsValid reports whether the mode value is recognised.
func (m ColorMode) IsValid() bool {
	return m <= ColorFull
}

// String returns the string representation of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorDisabled:
		return "disabled"
	case ColorTag:
		return "tag"
	case ColorFull:
		return "full"
	default:
		return "unknown"
	}
}

// Config holds the complete configuration of one logger. It is a plain value:
// copies are independent except for Output, Callback and CallbackData.
type Config struct {
	// Flags is the set of enabled categories.
	Flags Flag
	// DateMode selects the timestamp format.
	DateMode DateMode
	// ColorMode selects tag or full-line coloring.
	ColorMode ColorMode
	// Separator is written after every non-empty prefix block.
	Separator string

	// ToScreen enables the screen sink.
	ToScreen bool
	// Output is the screen sink destination.
	Output io.Writer
	// AutoColor drops colors when Output is not a terminal.
	AutoColor bool

	// ToFile enables the file sink.
	ToFile bool
	// FilePath is the directory of the log file.
	FilePath string
	// FileName is the base name of the log file, without date or extension.
	FileName string
	// FileMode sets the permissions of new log files.
	FileMode os.FileMode
	// RotateDaily dates the file name and switches files when the day changes.
	RotateDaily bool
	// KeepOpen keeps the file handle open between records.
	KeepOpen bool

	// Callback receives every emitted line before the screen and file sinks.
	Callback Callback
	// CallbackData is handed to Callback unchanged.
	CallbackData any

	// UseHeap renders messages into exactly sized heap buffers instead of
	// fixed-capacity ones, removing the message length limit.
	UseHeap bool
	// TraceThreadID prefixes records with the emitting goroutine id.
	TraceThreadID bool
	// Indent pads untagged records to the width of tagged ones.
	Indent bool
	// Flush flushes the screen and file sinks after every write.
	Flush bool
}

// DefaultConfig returns the default logger configuration: screen output with
// colored tags and time-only timestamps, file output off with daily rotation.
func DefaultConfig(name string, flags Flag) Config {
	return Config{
		Flags:         flags,
		DateMode:      DateTimeOnly,
		ColorMode:     ColorTag,
		Separator:     constants.DefaultSeparator,
		ToScreen:      true,
		Output:        os.Stdout,
		AutoColor:     false,
		ToFile:        false,
		FilePath:      constants.DefaultFilePath,
		FileName:      name,
		FileMode:      constants.LogFilePermissions,
		RotateDaily:   true,
		KeepOpen:      true,
		Callback:      nil,
		CallbackData:  nil,
		UseHeap:       false,
		TraceThreadID: false,
		Indent:        false,
		Flush:         false,
	}
}

// DevelopmentConfig returns a configuration for local work: every flag enabled,
// thread ids traced and colors dropped automatically when not on a terminal.
func DevelopmentConfig(name string) Config {
	config := DefaultConfig(name, FlagsAll)
	config.TraceThreadID = true
	config.AutoColor = true
	config.Flush = true

	return config
}

// ProductionConfig returns a configuration writing dated files with full
// timestamps, without colors and without debug or trace records.
func ProductionConfig(name string) Config {
	config := DefaultConfig(name, FlagsAll&^(Debug|Trace))
	config.DateMode = DateFull
	config.ColorMode = ColorDisabled
	config.ToFile = true

	return config
}

// Validate checks the configuration for values the engine cannot honor.
func (c *Config) Validate() error {
	if c == nil {
		return ewrap.New("logger config cannot be nil")
	}

	if !c.DateMode.IsValid() {
		return ewrap.New("invalid date mode").WithMetadata("date_mode", c.DateMode)
	}

	if !c.ColorMode.IsValid() {
		return ewrap.New("invalid color mode").WithMetadata("color_mode", c.ColorMode)
	}

	if c.ToScreen && c.Output == nil {
		return ewrap.New("screen output writer is required")
	}

	if c.ToFile {
		err := utils.ValidateName(c.FileName)
		if err != nil {
			return ewrap.Wrap(err, "invalid log file name")
		}
	}

	return nil
}
