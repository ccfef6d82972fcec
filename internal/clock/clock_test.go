package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	before := time.Now()
	now := Now()

	assert.False(t, now.Before(before))
	assert.Equal(t, time.Local, now.Location())
}

func TestGoroutineIDStable(t *testing.T) {
	id := GoroutineID()

	assert.NotZero(t, id)
	assert.Equal(t, id, GoroutineID())
}

func TestGoroutineIDDistinct(t *testing.T) {
	const workers = 8

	ids := make([]uint64, workers)

	var wg sync.WaitGroup

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ids[i] = GoroutineID()
		}()
	}

	wg.Wait()

	seen := make(map[uint64]bool, workers)
	for _, id := range ids {
		assert.NotZero(t, id)
		assert.False(t, seen[id], "duplicate goroutine id %d", id)
		seen[id] = true
	}
}

func TestParseGoroutineID(t *testing.T) {
	tests := []struct {
		header string
		want   uint64
	}{
		{"goroutine 42 [running]:\n", 42},
		{"goroutine 1 [", 1},
		{"goroutine x [running]", 0},
		{"thread 7 [running]", 0},
		{"goroutine 7", 0},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, parseGoroutineID([]byte(tt.header)))
		})
	}
}
