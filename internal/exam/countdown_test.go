package exam

import (
	"testing"
	"time"
)

// fakeClock returns a clock function advanced manually by tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestCountdown_Remaining(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(10*time.Minute, clock.Now)

	if got := cd.Remaining(); got != 10*time.Minute {
		t.Errorf("initial remaining = %v, want 10m", got)
	}

	clock.Advance(3 * time.Minute)
	if got := cd.Remaining(); got != 7*time.Minute {
		t.Errorf("remaining after 3m = %v, want 7m", got)
	}
}

func TestCountdown_ClampsAtZero(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(time.Minute, clock.Now)

	clock.Advance(5 * time.Minute)
	if got := cd.Remaining(); got != 0 {
		t.Errorf("remaining past deadline = %v, want 0", got)
	}
	if !cd.Expired() {
		t.Error("expected Expired() = true past deadline")
	}
}

func TestCountdown_NoDriftOnIrregularSampling(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(10*time.Minute, clock.Now)

	// Sampling cadence must not matter; only the deadline does.
	clock.Advance(90 * time.Second)
	_ = cd.Remaining()
	clock.Advance(30 * time.Second)

	if got := cd.Remaining(); got != 8*time.Minute {
		t.Errorf("remaining after 2m total = %v, want 8m", got)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "two minutes five seconds", d: 125 * time.Second, want: "2:05"},
		{name: "one hour", d: 3600 * time.Second, want: "60:00"},
		{name: "under a minute", d: 42 * time.Second, want: "0:42"},
		{name: "single second", d: time.Second, want: "0:01"},
		{name: "zero", d: 0, want: "0:00"},
		{name: "negative clamps", d: -time.Second, want: "0:00"},
		{name: "subsecond truncates", d: 1500 * time.Millisecond, want: "0:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.d); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
