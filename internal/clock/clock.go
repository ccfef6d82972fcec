// Package clock stamps log events with the wall clock and the id of the
// goroutine that emits them.
package clock

import (
	"bytes"
	"runtime"
	"strconv"
	"time"
)

const stackPrefixSize = 64

//nolint:gochecknoglobals
var goroutinePrefix = []byte("goroutine ")

// Now returns the local wall clock time.
func Now() time.Time {
	return time.Now()
}

// GoroutineID returns the id of the calling goroutine, or 0 when it cannot be
// determined. The id is stable for the lifetime of the goroutine.
func GoroutineID() uint64 {
	var buf [stackPrefixSize]byte

	n := runtime.Stack(buf[:], false)

	return parseGoroutineID(buf[:n])
}

// parseGoroutineID extracts N from a stack header of the form "goroutine N [...".
func parseGoroutineID(header []byte) uint64 {
	rest, ok := bytes.CutPrefix(header, goroutinePrefix)
	if !ok {
		return 0
	}

	end := bytes.IndexByte(rest, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(rest[:end]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
