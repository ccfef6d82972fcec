// Package constants provides application-wide constant values
// used throughout the logger system. These constants define
// environment names, file layout defaults, buffer capacities and
// other fixed values to ensure consistency across the codebase.
package constants

import "os"

const (
	// NonProductionEnvironment is the environment name for non-production environments.
	NonProductionEnvironment = "development"
	// EnvPrefix is the default prefix of configuration environment variables.
	EnvPrefix = "FLAGLOG"
	// DefaultName is the log file base name used when a configuration source names none.
	DefaultName = "flaglog"
)

const (
	// DefaultSeparator is inserted after every non-empty prefix block.
	DefaultSeparator = " "
	// DefaultFilePath is the directory log files are written to by default.
	DefaultFilePath = "."
	// LogFileExtension is appended to every log file name.
	LogFileExtension = ".log"
	// LogFilePermissions are the permissions of newly created log files.
	LogFilePermissions os.FileMode = 0o644
	// LogDirPermissions are the permissions of newly created log directories.
	LogDirPermissions os.FileMode = 0o750
)

const (
	// MaxMessageSize bounds a message rendered into a fixed-capacity buffer.
	MaxMessageSize = 8192
	// MaxPrefixSize bounds the rendered thread, date and tag blocks.
	MaxPrefixSize = 512
	// FileBufferSize is the size of the buffered writer in front of a log file.
	FileBufferSize = 4096
)
