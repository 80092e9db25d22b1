package exam

import (
	"fmt"
	"time"
)

// Countdown tracks the time remaining in a timed attempt against a
// fixed deadline. It carries no ticker of its own; callers sample
// Remaining on whatever cadence they render at, so a missed tick can
// never drift the clock.
type Countdown struct {
	deadline time.Time
	now      func() time.Time
}

// NewCountdown starts a countdown of the given duration from now.
func NewCountdown(d time.Duration, now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	return &Countdown{
		deadline: now().Add(d),
		now:      now,
	}
}

// Deadline returns the instant the countdown reaches zero.
func (c *Countdown) Deadline() time.Time {
	return c.deadline
}

// Remaining returns the time left, clamped at zero. It never goes
// negative no matter how late it is sampled.
func (c *Countdown) Remaining() time.Duration {
	left := c.deadline.Sub(c.now())
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the deadline has passed.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}

// FormatRemaining renders a duration as m:ss with zero-padded seconds.
// Minutes are not capped at 59, so a one hour countdown starts at
// "60:00".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
