package scheduler

import "time"

// TimerID identifies a pending callback so it can be cancelled.
type TimerID int

type pending struct {
	id  TimerID
	due time.Time
	fn  func()
}

// Scheduler runs callbacks after a delay. It has no goroutine of its own:
// the owning loop calls Tick once per frame and due callbacks run inside
// that call. A view uses this to, say, fade a highlighted cell back to its
// normal color after a pause. Not safe for concurrent use; the engine does
// not depend on it.
type Scheduler struct {
	now     func() time.Time
	nextID  TimerID
	waiting []pending
}

func New() *Scheduler {
	return NewWithClock(time.Now)
}

// NewWithClock builds a scheduler reading time from now instead of the wall
// clock.
func NewWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// After registers fn to run once delay has elapsed. The returned id cancels
// it.
func (that *Scheduler) After(delay time.Duration, fn func()) TimerID {
	that.nextID++
	that.waiting = append(that.waiting, pending{
		id:  that.nextID,
		due: that.now().Add(delay),
		fn:  fn,
	})

	return that.nextID
}

// Cancel drops the pending callback with the given id. It reports whether
// anything was cancelled; an id that already fired is gone.
func (that *Scheduler) Cancel(id TimerID) bool {
	for i, timer := range that.waiting {
		if timer.id == id {
			that.waiting = append(that.waiting[:i], that.waiting[i+1:]...)
			return true
		}
	}

	return false
}

// Pending returns the number of callbacks still waiting.
func (that *Scheduler) Pending() int {
	return len(that.waiting)
}

// Tick runs every callback whose delay has elapsed. Call it once per frame.
// Callbacks may register new timers; those wait for a later tick.
func (that *Scheduler) Tick() {
	now := that.now()

	// Split off the due timers before calling anything, so callbacks can
	// safely modify the waiting list.
	var due []pending
	remaining := that.waiting[:0]
	for _, timer := range that.waiting {
		if timer.due.After(now) {
			remaining = append(remaining, timer)
		} else {
			due = append(due, timer)
		}
	}
	that.waiting = remaining

	for _, timer := range due {
		timer.fn()
	}
}
