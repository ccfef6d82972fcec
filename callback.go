package flaglog

// Verdict is returned by a Callback to gate the screen and file sinks.
type Verdict int

const (
	// Suppress withholds the record from the screen and file sinks.
	Suppress Verdict = -1
	// Continue lets the record through unchanged.
	Continue Verdict = 0
	// Proceed lets the record through unchanged.
	Proceed Verdict = 1
)

// Suppresses reports whether v blocks the remaining sinks. Any negative value does.
func (v Verdict) Suppresses() bool {
	return v < 0
}

// Callback receives every emitted record before the screen and file sinks.
// line is the fully composed record including colors and the trailing newline
// when one was requested; it is only valid for the duration of the call.
// data is the CallbackData configured alongside the callback.
//
// A Callback runs while the logger holds its lock and must not log through the
// same logger.
type Callback func(line []byte, flag Flag, data any) Verdict

// ChainCallbacks runs callbacks in order and returns the most restrictive verdict.
// Callbacks after a suppressing one still run.
func ChainCallbacks(callbacks ...Callback) Callback {
	chain := make([]Callback, 0, len(callbacks))

	for _, cb := range callbacks {
		if cb != nil {
			chain = append(chain, cb)
		}
	}

	return func(line []byte, flag Flag, data any) Verdict {
		verdict := Proceed

		for _, cb := range chain {
			if v := cb(line, flag, data); v < verdict {
				verdict = v
			}
		}

		return verdict
	}
}

// OnlyFlags returns a callback that invokes cb for records whose flag has a bit
// in mask and proceeds for every other record.
func OnlyFlags(mask Flag, cb Callback) Callback {
	return func(line []byte, flag Flag, data any) Verdict {
		if cb == nil || flag&mask == 0 {
			return Proceed
		}

		return cb(line, flag, data)
	}
}
