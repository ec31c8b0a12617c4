package tui

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/verte-zerg/homeward/internal/counter"
)

func TestFramesScheduleOnlyWhileActive(t *testing.T) {
	f := newFrames(counter.NewLoop(clockz.NewFakeClock(), 16*time.Millisecond))
	if cmd := f.schedule(); cmd != nil {
		t.Fatalf("expected no frame while idle")
	}
	steps := 0
	cancel := f.Every(0, func() { steps++ })
	if cmd := f.schedule(); cmd == nil {
		t.Fatalf("expected a frame once a schedule is registered")
	}
	if cmd := f.schedule(); cmd != nil {
		t.Fatalf("expected a single frame in flight")
	}
	f.handle(frameMsg{gen: f.gen})
	if steps != 1 {
		t.Fatalf("expected one step, got %d", steps)
	}
	cancel()
	f.pending = false
	if cmd := f.schedule(); cmd != nil {
		t.Fatalf("expected no frame after cancel")
	}
}

func TestFramesDropStaleGeneration(t *testing.T) {
	f := newFrames(counter.NewLoop(clockz.NewFakeClock(), 0))
	steps := 0
	f.Every(0, func() { steps++ })
	f.schedule()
	stale := frameMsg{gen: f.gen}
	f.invalidate()
	if cmd := f.handle(stale); cmd != nil {
		t.Fatalf("expected stale frame to be dropped")
	}
	if steps != 0 {
		t.Fatalf("stale frame stepped the loop")
	}
	if cmd := f.schedule(); cmd == nil {
		t.Fatalf("expected a fresh frame after invalidate")
	}
}

func TestViewportObserverRatios(t *testing.T) {
	o := newViewportObserver()
	var got []float64
	cancel, err := o.Observe("a", func(r float64) { got = append(got, r) })
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no callback before layout")
	}
	spans := map[string]span{"a": {start: 10, end: 20}}
	o.update(spans, 0, 10)
	o.update(spans, 5, 10)
	o.update(spans, 10, 10)
	want := []float64{0, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d callbacks, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("callback %d: got %v want %v", i, got[i], want[i])
		}
	}
	cancel()
	if o.active() != 0 {
		t.Fatalf("expected no registrations after cancel")
	}
	o.update(spans, 0, 10)
	if len(got) != len(want) {
		t.Fatalf("cancelled registration was notified")
	}
}

func TestViewportObserverDeliversKnownLayout(t *testing.T) {
	o := newViewportObserver()
	o.update(map[string]span{"hero": {start: 0, end: 4}}, 0, 10)
	var ratio float64 = -1
	o.Observe("hero", func(r float64) { ratio = r })
	if ratio != 1 {
		t.Fatalf("expected immediate ratio 1, got %v", ratio)
	}
	if _, err := o.Observe(42, func(float64) {}); err == nil {
		t.Fatalf("expected error for non-string element")
	}
}

func TestViewportScrollNotifiesOnChange(t *testing.T) {
	s := newViewportScroll()
	var got []float64
	cancel, _ := s.Subscribe(func(v float64) { got = append(got, v) })
	s.set(3)
	s.set(3)
	s.set(0)
	if len(got) != 2 || got[0] != 3 || got[1] != 0 {
		t.Fatalf("unexpected notifications: %v", got)
	}
	if s.Offset() != 0 {
		t.Fatalf("expected offset 0, got %v", s.Offset())
	}
	cancel()
	if s.active() != 0 {
		t.Fatalf("expected no subscribers after cancel")
	}
}

func TestViewportObserverResetForgetsLayout(t *testing.T) {
	o := newViewportObserver()
	o.update(map[string]span{"cta": {start: 40, end: 48}}, 40, 10)
	o.reset()
	called := false
	cancel, _ := o.Observe("cta", func(float64) { called = true })
	defer cancel()
	if called {
		t.Fatalf("observation was fed a ratio from the previous layout")
	}
	o.update(map[string]span{"cta": {start: 40, end: 48}}, 0, 10)
	if !called {
		t.Fatalf("expected notification once the new layout is known")
	}
}
