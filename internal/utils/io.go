// Package utils provides internal utility functions used throughout the logger package.
//
// This package contains helpers for building log file paths. The file name is
// treated as a plain base name: it may not contain path separators or traversal
// sequences, so a configured name can never redirect writes outside FilePath.
package utils

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog/internal/constants"
)

// dateLayout is the calendar-day suffix of rotated log files.
const dateLayout = "2006-01-02"

// ValidateName checks that name is usable as a log file base name.
func ValidateName(name string) error {
	if name == "" {
		return ewrap.New("name cannot be empty")
	}

	if strings.ContainsAny(name, `/\`) {
		return ewrap.New("name cannot contain path separators").
			WithMetadata("name", name)
	}

	if name == "." || name == ".." || strings.Contains(name, "..") {
		return ewrap.New("name contains directory traversal sequence").
			WithMetadata("name", name)
	}

	return nil
}

// LogFilePath returns "<dir>/<name>-YYYY-MM-DD.log" when dated is set and
// "<dir>/<name>.log" otherwise. An empty dir means the working directory.
func LogFilePath(dir, name string, day time.Time, dated bool) (string, error) {
	err := ValidateName(name)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = constants.DefaultFilePath
	}

	var base strings.Builder

	base.Grow(len(name) + len(dateLayout) + len(constants.LogFileExtension) + 1)
	base.WriteString(name)

	if dated {
		base.WriteByte('-')
		base.WriteString(day.Format(dateLayout))
	}

	base.WriteString(constants.LogFileExtension)

	return filepath.Join(dir, base.String()), nil
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
