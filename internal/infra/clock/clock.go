// Package clock provides the production time source.
package clock

import (
	"time"

	"pushsvc/internal/domain/service"
)

type systemClock struct{}

// New returns a clock backed by time.Now.
func New() service.Clock {
	return systemClock{}
}

// Now returns the current system time.
func (systemClock) Now() time.Time {
	return time.Now()
}
