// Package clock abstracts the current time so time-dependent code can be
// driven by a controllable source in tests.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current instant
type Clock interface {
	Now() time.Time
}

// System implements Clock using the actual system time.
// Instants carry Go's monotonic reading, so Sub between two of them is monotonic.
type System struct{}

// Now returns the current time from the system clock
func (System) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to the Clock interface
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

var (
	defaultMu    sync.RWMutex
	defaultClock Clock = System{}
)

// Default returns the process-wide clock used when none is supplied
func Default() Clock {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultClock
}

// SetDefault replaces the process-wide clock and returns a function restoring
// the previous one. A nil clock resets the default to System.
func SetDefault(c Clock) (restore func()) {
	if c == nil {
		c = System{}
	}

	defaultMu.Lock()
	previous := defaultClock
	defaultClock = c
	defaultMu.Unlock()

	return func() {
		defaultMu.Lock()
		defaultClock = previous
		defaultMu.Unlock()
	}
}

var (
	_ Clock = System{}
	_ Clock = Func(nil)
	_ Clock = (*Manual)(nil)
)
