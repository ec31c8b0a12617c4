// Package counter animates a number from a start value to a target with a
// cubic ease-out curve.
package counter

import (
	"math"
	"time"

	"github.com/zoobzio/clockz"
)

const (
	// DefaultDuration is the animation length when Params.Duration is unset.
	DefaultDuration = 2000 * time.Millisecond
	// DefaultInterval is the tick cadence (~60 Hz).
	DefaultInterval = 16 * time.Millisecond
)

// Scheduler runs fn every interval until cancel is called. Implementations
// must not run fn after cancel returns.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// Params describes one animation.
type Params struct {
	Start    float64
	End      float64
	Duration time.Duration
}

// Interpolate samples the animation at elapsed time since start.
func Interpolate(p Params, elapsed time.Duration) float64 {
	if p.Start == p.End || p.Duration <= 0 {
		return p.End
	}
	progress := float64(elapsed) / float64(p.Duration)
	if progress >= 1 {
		return p.End
	}
	if progress < 0 {
		progress = 0
	}
	eased := EaseOutCubic(progress)
	v := math.Floor(p.Start + (p.End-p.Start)*eased)
	lo, hi := p.Start, p.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// EaseOutCubic is f(p) = 1 - (1-p)^3.
func EaseOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Counter holds the animated value for one display.
type Counter struct {
	sched    Scheduler
	clock    clockz.Clock
	interval time.Duration

	params  Params
	value   float64
	started time.Time
	cancel  func()
	closed  bool
}

// Option configures a Counter.
type Option func(*Counter)

// WithInterval overrides the tick cadence.
func WithInterval(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.interval = d
		}
	}
}

// New creates a counter and starts animating immediately. A zero Duration
// means DefaultDuration; a nil clock means clockz.RealClock.
func New(sched Scheduler, clock clockz.Clock, p Params, opts ...Option) *Counter {
	if clock == nil {
		clock = clockz.RealClock
	}
	c := &Counter{
		sched:    sched,
		clock:    clock,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start(normalize(p))
	return c
}

func normalize(p Params) Params {
	if p.Duration == 0 {
		p.Duration = DefaultDuration
	}
	return p
}

// Value returns the current value.
func (c *Counter) Value() float64 {
	return c.value
}

// Int returns the current value floored to an integer, matching the
// rounding of Interpolate.
func (c *Counter) Int() int64 {
	return int64(math.Floor(c.value))
}

// Params returns the active parameters.
func (c *Counter) Params() Params {
	return c.params
}

// Done reports whether the value has settled at the target.
func (c *Counter) Done() bool {
	return c.cancel == nil && c.value == c.params.End
}

// Running reports whether a tick schedule is active.
func (c *Counter) Running() bool {
	return c.cancel != nil
}

// Reconfigure restarts the animation from p.Start when any parameter
// differs from the active ones.
func (c *Counter) Reconfigure(p Params) {
	if c.closed {
		return
	}
	p = normalize(p)
	if p == c.params {
		return
	}
	c.stop()
	c.start(p)
}

// Close cancels the tick schedule. Safe to call more than once.
func (c *Counter) Close() {
	c.closed = true
	c.stop()
}

func (c *Counter) start(p Params) {
	c.params = p
	c.value = p.Start
	c.started = c.clock.Now()
	if p.Start == p.End || p.Duration < 0 || c.sched == nil {
		c.value = p.End
		return
	}
	c.cancel = c.sched.Every(c.interval, c.tick)
}

func (c *Counter) tick() {
	if c.cancel == nil {
		return
	}
	elapsed := c.clock.Since(c.started)
	c.value = Interpolate(c.params, elapsed)
	if elapsed >= c.params.Duration {
		c.value = c.params.End
		c.stop()
	}
}

func (c *Counter) stop() {
	if c.cancel == nil {
		return
	}
	cancel := c.cancel
	c.cancel = nil
	cancel()
}
