package mrdp

import "time"

// Clock is the time source used for the packet staleness timeout.
// This allows injecting a mock clock for deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// systemClock implements Clock using the actual system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
