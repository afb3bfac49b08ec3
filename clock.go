package orbitshot

import "time"

// TimerEvent is a callback scheduled on a Clock.
type TimerEvent struct {
	delay    time.Duration
	elapsed  time.Duration
	repeat   int // remaining extra firings; RepeatForever loops
	callback func()
	done     bool
}

// Remove cancels the event. Safe to call from inside its own callback.
func (e *TimerEvent) Remove() { e.done = true }

// Done reports whether the event has fired for the last time or was removed.
func (e *TimerEvent) Done() bool { return e.done }

// Elapsed returns the time accumulated toward the next firing.
func (e *TimerEvent) Elapsed() time.Duration { return e.elapsed }

// Remaining returns the time left before the next firing.
func (e *TimerEvent) Remaining() time.Duration {
	if e.done {
		return 0
	}
	return e.delay - e.elapsed
}

// Clock runs delayed callbacks against scene time. Every Scene owns one and
// advances it once per Update.
type Clock struct {
	// TimeScale multiplies every delta. 1 is real time.
	TimeScale float64
	// Paused freezes all events.
	Paused bool

	now     time.Duration
	events  []*TimerEvent
	pending []*TimerEvent
	running bool
}

// NewClock returns a clock running at normal speed.
func NewClock() *Clock {
	return &Clock{TimeScale: 1}
}

// Now returns the scene time accumulated so far.
func (c *Clock) Now() time.Duration { return c.now }

// AddEvent schedules fn to run once after delay.
func (c *Clock) AddEvent(delay time.Duration, fn func()) *TimerEvent {
	return c.AddRepeating(delay, 0, fn)
}

// AddRepeating schedules fn to run every delay, count extra times after the
// first (RepeatForever loops until removed).
func (c *Clock) AddRepeating(delay time.Duration, count int, fn func()) *TimerEvent {
	e := &TimerEvent{delay: delay, repeat: count, callback: fn}
	if c.running {
		c.pending = append(c.pending, e)
	} else {
		c.events = append(c.events, e)
	}
	return e
}

// Len returns the number of scheduled events that have not finished.
func (c *Clock) Len() int {
	n := 0
	for _, e := range c.events {
		if !e.done {
			n++
		}
	}
	for _, e := range c.pending {
		if !e.done {
			n++
		}
	}
	return n
}

// Update advances the clock by dt and fires every event whose delay has been
// reached, in scheduling order.
func (c *Clock) Update(dt time.Duration) {
	if c.Paused {
		return
	}
	dt = time.Duration(float64(dt) * c.TimeScale)
	c.now += dt

	c.running = true
	for _, e := range c.events {
		if e.done {
			continue
		}
		e.elapsed += dt
		for !e.done && e.elapsed >= e.delay {
			e.elapsed -= e.delay
			if e.repeat == 0 {
				e.done = true
			} else if e.repeat > 0 {
				e.repeat--
			}
			if e.callback != nil {
				e.callback()
			}
			if e.delay <= 0 {
				// Zero-delay repeaters fire once per frame.
				e.elapsed = 0
				break
			}
		}
	}
	c.running = false

	live := c.events[:0]
	for _, e := range c.events {
		if !e.done {
			live = append(live, e)
		}
	}
	clear(c.events[len(live):])
	c.events = append(live, c.pending...)
	clear(c.pending)
	c.pending = c.pending[:0]
}
