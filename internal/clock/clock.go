// Package clock abstracts the wall clock so use cases that reason about
// calendar days can be tested against fixed instants.
package clock

import "time"

// Clock supplies the current time. Use cases read it exactly once per
// execution so a single call never straddles a day boundary.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in the server's local time zone.
type System struct{}

func (System) Now() time.Time { return time.Now() }
