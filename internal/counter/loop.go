package counter

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Loop is a single-threaded Scheduler: every registered callback runs on
// the goroutine calling Step (or Run), one round per frame. All schedules
// share the loop's cadence; the interval passed to Every is ignored.
type Loop struct {
	clock    clockz.Clock
	interval time.Duration

	mu      sync.Mutex
	next    uint64
	entries map[uint64]func()
}

// NewLoop returns a loop ticking every interval on clock. Zero values fall
// back to DefaultInterval and clockz.RealClock.
func NewLoop(clock clockz.Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = clockz.RealClock
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		entries:  map[uint64]func(){},
	}
}

// Interval returns the frame cadence.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Every implements Scheduler.
func (l *Loop) Every(_ time.Duration, fn func()) func() {
	l.mu.Lock()
	id := l.next
	l.next++
	l.entries[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.entries, id)
			l.mu.Unlock()
		})
	}
}

// Active returns the number of registered schedules.
func (l *Loop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Step runs one frame: each schedule registered at the start of the frame
// and not cancelled before its turn is called once, in registration order.
func (l *Loop) Step() {
	l.mu.Lock()
	ids := make([]uint64, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	l.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		l.mu.Lock()
		fn, ok := l.entries[id]
		l.mu.Unlock()
		if ok {
			fn()
		}
	}
}

// Run steps the loop on its cadence until ctx is done or, when idleStop is
// set, until no schedule is left.
func (l *Loop) Run(ctx context.Context, idleStop bool) error {
	timer := l.clock.NewTimer(l.interval)
	defer timer.Stop()
	for {
		if idleStop && l.Active() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C():
		}
		l.Step()
		timer.Reset(l.interval)
	}
}
