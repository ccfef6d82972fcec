package flaglog

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	// Normal is the terminal default color.
	Normal = "\x1b[0m"

	// Regular colors.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// Bold colors.

	BoldRed     = "\x1b[31;1m"
	BoldGreen   = "\x1b[32;1m"
	BoldYellow  = "\x1b[33;1m"
	BoldMagenta = "\x1b[35;1m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// tagEntry is one row of the tag/color table.
type tagEntry struct {
	tag   string
	color string
}

// tagTable maps every single-bit tagged flag to its tag and color.
//
//nolint:gochecknoglobals
var tagTable = map[Flag]tagEntry{
	Note:  {tag: "note", color: Normal},
	Info:  {tag: "info", color: Green},
	Warn:  {tag: "warn", color: Yellow},
	Debug: {tag: "debug", color: Blue},
	Trace: {tag: "trace", color: Cyan},
	Error: {tag: "error", color: Red},
	Fatal: {tag: "fatal", color: Magenta},
}

func lookupTag(f Flag) (tagEntry, bool) {
	entry, ok := tagTable[f]

	return entry, ok
}

// DefaultFlagColors returns a copy of the flag to color table.
func DefaultFlagColors() map[Flag]string {
	colors := make(map[Flag]string, len(tagTable))
	for flag, entry := range tagTable {
		colors[flag] = entry.color
	}

	return colors
}

// Colorize wraps text in the given ANSI color sequence followed by a reset.
// An empty color returns text unchanged.
func Colorize(color, text string) string {
	if color == "" {
		return text
	}

	return color + text + Reset
}
