package flaglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoop()

	logger.Info("discarded")
	logger.Emitf(Error, true, "%d", 1)
	logger.Enable(Info | Warn)
	logger.Disable(Warn)

	assert.Equal(t, Info, logger.Config().Flags)
	assert.NoError(t, logger.SetConfig(DefaultConfig("x", Fatal)))
	assert.Equal(t, Fatal, logger.Config().Flags)
	assert.NoError(t, logger.Sync())
}
