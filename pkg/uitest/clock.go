package uitest

import (
	"sort"
	"time"

	"github.com/go-keel/keel/pkg/shell"
)

// FakeClock is a manually advanced clock with timer scheduling. Tests
// move time forward explicitly and feed the expired tokens back into the
// app as timer input events.
type FakeClock struct {
	now       time.Time
	nextToken shell.TimerToken
	pending   []fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	token    shell.TimerToken
}

// NewFakeClock returns a clock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now returns the clock's current time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Schedule registers a timer expiring after d and returns its token.
func (c *FakeClock) Schedule(d time.Duration) shell.TimerToken {
	c.nextToken++
	c.pending = append(c.pending, fakeTimer{deadline: c.now.Add(d), token: c.nextToken})
	return c.nextToken
}

// Advance moves the clock forward and returns the tokens of every timer
// that expired, in deadline order.
func (c *FakeClock) Advance(d time.Duration) []shell.TimerToken {
	c.now = c.now.Add(d)
	var fired []fakeTimer
	var kept []fakeTimer
	for _, t := range c.pending {
		if !t.deadline.After(c.now) {
			fired = append(fired, t)
		} else {
			kept = append(kept, t)
		}
	}
	c.pending = kept
	sort.Slice(fired, func(i, j int) bool { return fired[i].deadline.Before(fired[j].deadline) })
	tokens := make([]shell.TimerToken, len(fired))
	for i, t := range fired {
		tokens[i] = t.token
	}
	return tokens
}

// PendingTimers returns how many timers are scheduled and not yet fired.
func (c *FakeClock) PendingTimers() int {
	return len(c.pending)
}
