package adapter

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

type guardState uint32

const (
	guardUninitialized guardState = iota
	guardActive
	guardDestroyed
)

func (s guardState) String() string {
	switch s {
	case guardUninitialized:
		return "uninitialized"
	case guardActive:
		return "active"
	case guardDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// fatalHook terminates the process after a synchronization failure.
//
//nolint:gochecknoglobals,revive
var fatalHook = func(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// guard serializes the emit path and every configuration access when the
// adapter was created thread safe. The mutex is not reentrant: nothing called
// while it is held may log through the same adapter.
type guard struct {
	mu      sync.Mutex
	enabled bool
	state   atomic.Uint32
}

func (g *guard) init(threadSafe bool) {
	g.enabled = threadSafe
	g.state.Store(uint32(guardActive))
}

func (g *guard) current() guardState {
	return guardState(g.state.Load())
}

func (g *guard) active() bool {
	return g.current() == guardActive
}

// lock acquires the guard. It reports false when the guard is or becomes
// destroyed, in which case the caller must not touch adapter state. Locking a
// guard that was never initialized is a synchronization failure and goes
// through fatalHook.
func (g *guard) lock() bool {
	switch state := g.current(); state {
	case guardActive:
	case guardDestroyed:
		return false
	default:
		fatalHook(fmt.Sprintf("flaglog: lock on %s guard", state))

		return false
	}

	if !g.enabled {
		return true
	}

	g.mu.Lock()

	if !g.active() {
		g.mu.Unlock()

		return false
	}

	return true
}

func (g *guard) unlock() {
	if g.enabled {
		g.mu.Unlock()
	}
}

// destroy marks the guard destroyed. It must be called with the guard held.
func (g *guard) destroy() {
	g.state.Store(uint32(guardDestroyed))
}
