package adapter

import (
	"bytes"

	"github.com/davecgh/go-spew/spew"

	"github.com/hyp3rd/flaglog"
)

const dumpMaxDepth = 10

// dumper renders values compactly and deterministically for log records.
//
//nolint:gochecknoglobals
var dumper = &spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                dumpMaxDepth,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump logs a structural dump of v under flag, preceded by label. The dump spans
// several lines and is only produced when flag is enabled.
func (a *Adapter) Dump(flag flaglog.Flag, label string, v any) {
	if !a.Enabled(flag) {
		return
	}

	var buf bytes.Buffer

	dumper.Fdump(&buf, v)

	a.emit(flag, true, "%s %s", label, bytes.TrimSpace(buf.Bytes()))
}
