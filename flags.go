package flaglog

import (
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Flag identifies a log category. Flags are independent bits; a record is
// emitted only when every bit of its flag is enabled.
type Flag uint16

const (
	// Always is emitted regardless of the active flag set and renders untagged.
	Always Flag = 0
	// NoTag is a filterable category rendered without a tag.
	NoTag Flag = 1 << (iota - 1)
	// Note represents notices.
	Note
	// Info represents general operational information.
	Info
	// Warn represents warnings.
	Warn
	// Debug represents debugging information.
	Debug
	// Trace represents verbose tracing information.
	Trace
	// Error represents errors.
	Error
	// Fatal represents fatal conditions. Logging it does not terminate the process.
	Fatal
)

// FlagsAll enables or disables every category at once.
const FlagsAll = NoTag | Note | Info | Warn | Debug | Trace | Error | Fatal

//nolint:gochecknoglobals
var flagNames = []struct {
	flag Flag
	name string
}{
	{NoTag, "notag"},
	{Note, "note"},
	{Info, "info"},
	{Warn, "warn"},
	{Debug, "debug"},
	{Trace, "trace"},
	{Error, "error"},
	{Fatal, "fatal"},
}

// EnabledIn reports whether a record carrying f passes the active set.
func (f Flag) EnabledIn(active Flag) bool {
	return f == Always || f&active == f
}

// Tag returns the display tag of f. Untagged, combined and unknown flags have none.
func (f Flag) Tag() (string, bool) {
	entry, ok := lookupTag(f)

	return entry.tag, ok
}

// Color returns the ANSI color sequence of f, or "" when f has no table entry.
func (f Flag) Color() string {
	entry, _ := lookupTag(f)

	return entry.color
}

// String returns the names of the bits in f joined by "|".
func (f Flag) String() string {
	if f == Always {
		return "always"
	}

	parts := make([]string, 0, len(flagNames))

	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}

	if rest := f &^ FlagsAll; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}

	return strings.Join(parts, "|")
}

// ParseFlags parses a list of flag names separated by commas, pipes or spaces.
// "all" and "none" are accepted, as are decimal bitmasks.
func ParseFlags(value string) (Flag, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})

	var flags Flag

	for _, field := range fields {
		name := strings.ToLower(field)

		switch name {
		case "all":
			flags |= FlagsAll

			continue
		case "none":
			continue
		case "warning":
			name = "warn"
		}

		if parsed, ok := flagByName(name); ok {
			flags |= parsed

			continue
		}

		mask, err := strconv.ParseUint(name, 10, 16)
		if err != nil {
			return 0, ewrap.New("invalid log flag").WithMetadata("flag", field)
		}

		flags |= Flag(mask)
	}

	return flags, nil
}

func flagByName(name string) (Flag, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}

	return 0, false
}
