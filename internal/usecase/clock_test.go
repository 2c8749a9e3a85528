package usecase

import "time"

// fakeClock pins "now" so day-boundary and validation-window behavior can
// be tested deterministically.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Set(t time.Time) { f.now = t }
