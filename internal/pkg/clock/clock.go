package clock

import (
	"sync"
	"time"

	"billboard-booking/internal/pkg/config"
)

// Clock reports the current time in the operator's zone. Calendar days
// ("today", past-date checks) are taken from its wall clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

// NewClock builds a RealClock in BOOKING_TIMEZONE.
func NewClock(cfg config.Config) (Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return &RealClock{loc: loc}, nil
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests. It is safe for concurrent use.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
