// Package clock abstracts wall-clock access so date-derived behavior is
// testable with a fake.
package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock provides the production clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Module provides the system clock to the fx graph.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
