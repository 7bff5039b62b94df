// Package stopwatch measures elapsed time over one or more start/stop runs.
//
// A Stopwatch is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package stopwatch

import (
	"time"

	"github.com/username/cyclecal/pkg/clock"
)

// Stopwatch accumulates the time between Start and Stop calls
type Stopwatch struct {
	clock clock.Clock

	// total is the sum of all completed runs. It only grows, and only on Stop.
	total time.Duration

	// runStart is meaningful only while running is set
	runStart time.Time
	running  bool
}

// New creates a stopped Stopwatch reading time from c.
// A nil clock uses clock.Default() as of this call.
func New(c clock.Clock) *Stopwatch {
	if c == nil {
		c = clock.Default()
	}
	return &Stopwatch{clock: c}
}

// Start starts a run. It does nothing if the stopwatch is already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.runStart = s.clock.Now()
	s.running = true
}

// Stop ends the current run and adds its duration to the total.
// It does nothing if the stopwatch is not running.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.total += s.clock.Now().Sub(s.runStart)
	s.runStart = time.Time{}
	s.running = false
}

// IsRunning reports whether a run is in progress
func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// StartTime returns the instant the current run started.
// The boolean is false when the stopwatch is stopped.
func (s *Stopwatch) StartTime() (time.Time, bool) {
	if !s.running {
		return time.Time{}, false
	}
	return s.runStart, true
}

// Elapsed returns the total time of all completed runs plus the time since
// the current run started, if any.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.total
	}
	return s.total + s.clock.Now().Sub(s.runStart)
}
