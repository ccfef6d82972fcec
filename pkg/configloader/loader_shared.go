package configloader

import (
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
)

type rawConfig struct {
	Name      string  `mapstructure:"name"       yaml:"name"`
	Flags     string  `mapstructure:"flags"      yaml:"flags"`
	DateMode  string  `mapstructure:"date_mode"  yaml:"date_mode"`
	ColorMode string  `mapstructure:"color_mode" yaml:"color_mode"`
	Separator *string `mapstructure:"separator"  yaml:"separator"`
	Output    string  `mapstructure:"output"     yaml:"output"`
	ToScreen  *bool   `mapstructure:"to_screen"  yaml:"to_screen"`
	ToFile    *bool   `mapstructure:"to_file"    yaml:"to_file"`
	AutoColor *bool   `mapstructure:"auto_color" yaml:"auto_color"`
	UseHeap   *bool   `mapstructure:"use_heap"   yaml:"use_heap"`
	TraceTID  *bool   `mapstructure:"trace_tid"  yaml:"trace_tid"`
	Indent    *bool   `mapstructure:"indent"     yaml:"indent"`
	Flush     *bool   `mapstructure:"flush"      yaml:"flush"`
	File      struct {
		Path     string  `mapstructure:"path"      yaml:"path"`
		Name     string  `mapstructure:"name"      yaml:"name"`
		Rotate   *bool   `mapstructure:"rotate"    yaml:"rotate"`
		KeepOpen *bool   `mapstructure:"keep_open" yaml:"keep_open"`
		Mode     *uint32 `mapstructure:"mode"      yaml:"mode"`
	} `mapstructure:"file" yaml:"file"`

	// Keys of the legacy line-based configuration file.
	LogLevel  string `mapstructure:"loglevel"  yaml:"loglevel"`
	LogToFile *int   `mapstructure:"logtofile" yaml:"logtofile"`
}

func applyRaw(raw rawConfig) (*flaglog.Config, error) {
	name := constants.DefaultName
	if raw.Name != "" {
		name = raw.Name
	}

	cfg := flaglog.DefaultConfig(name, flaglog.FlagsAll)

	err := applyFlags(&cfg, raw)
	if err != nil {
		return nil, err
	}

	err = applyModes(&cfg, raw)
	if err != nil {
		return nil, err
	}

	if raw.Separator != nil {
		cfg.Separator = *raw.Separator
	}

	if raw.Output != "" {
		writer, err := screenOutput(raw.Output)
		if err != nil {
			return nil, err
		}

		cfg.Output = writer
	}

	setBool(&cfg.ToScreen, raw.ToScreen)
	setBool(&cfg.ToFile, raw.ToFile)
	setBool(&cfg.AutoColor, raw.AutoColor)
	setBool(&cfg.UseHeap, raw.UseHeap)
	setBool(&cfg.TraceThreadID, raw.TraceTID)
	setBool(&cfg.Indent, raw.Indent)
	setBool(&cfg.Flush, raw.Flush)
	setBool(&cfg.RotateDaily, raw.File.Rotate)
	setBool(&cfg.KeepOpen, raw.File.KeepOpen)

	if raw.LogToFile != nil {
		cfg.ToFile = *raw.LogToFile != 0
	}

	if raw.File.Path != "" {
		cfg.FilePath = raw.File.Path
	}

	if raw.File.Name != "" {
		cfg.FileName = raw.File.Name
	}

	if raw.File.Mode != nil {
		cfg.FileMode = os.FileMode(*raw.File.Mode)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// applyFlags sets the active flag set. "flags" wins over the legacy "loglevel" key.
func applyFlags(cfg *flaglog.Config, raw rawConfig) error {
	value := raw.Flags
	if value == "" {
		value = raw.LogLevel
	}

	if value == "" {
		return nil
	}

	flags, err := flaglog.ParseFlags(value)
	if err != nil {
		return ewrap.Wrap(err, "invalid flags").WithMetadata("flags", value)
	}

	cfg.Flags = flags

	return nil
}

func applyModes(cfg *flaglog.Config, raw rawConfig) error {
	if raw.DateMode != "" {
		mode, ok := parseDateMode(raw.DateMode)
		if !ok {
			return ewrap.New("invalid date mode").WithMetadata("date_mode", raw.DateMode)
		}

		cfg.DateMode = mode
	}

	if raw.ColorMode != "" {
		mode, ok := parseColorMode(raw.ColorMode)
		if !ok {
			return ewrap.New("invalid color mode").WithMetadata("color_mode", raw.ColorMode)
		}

		cfg.ColorMode = mode
	}

	return nil
}

func parseDateMode(value string) (flaglog.DateMode, bool) {
	for _, mode := range []flaglog.DateMode{flaglog.DateDisabled, flaglog.DateTimeOnly, flaglog.DateFull} {
		if strings.EqualFold(value, mode.String()) {
			return mode, true
		}
	}

	return 0, false
}

func parseColorMode(value string) (flaglog.ColorMode, bool) {
	for _, mode := range []flaglog.ColorMode{flaglog.ColorDisabled, flaglog.ColorTag, flaglog.ColorFull} {
		if strings.EqualFold(value, mode.String()) {
			return mode, true
		}
	}

	return 0, false
}

func screenOutput(name string) (*os.File, error) {
	switch strings.ToLower(name) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, ewrap.New("invalid screen output, expected stdout or stderr").
			WithMetadata("output", name)
	}
}

func setBool(dst *bool, value *bool) {
	if value != nil {
		*dst = *value
	}
}

func allKeys() []string {
	return []string{
		"name",
		"flags",
		"date_mode",
		"color_mode",
		"separator",
		"output",
		"to_screen",
		"to_file",
		"auto_color",
		"use_heap",
		"trace_tid",
		"indent",
		"flush",
		"file.path",
		"file.name",
		"file.rotate",
		"file.keep_open",
		"file.mode",
		"loglevel",
		"logtofile",
	}
}
