package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/rollengine/internal/common/clock Clock

// Clock tells the time. Rolls are stamped with it on submission and
// restrictions when they change.
type Clock interface {
	Now() time.Time
}

// System reads the system clock in UTC
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time
func (c *System) Now() time.Time {
	return time.Now().UTC()
}
