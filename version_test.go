package flaglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.8.63", Version(true))
	assert.Equal(t, "1.8 build 63", Version(false))
}
