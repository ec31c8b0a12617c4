// Package reveal tracks when a UI region enters the viewport.
package reveal

// DefaultThreshold is the intersection ratio used when none is configured.
const DefaultThreshold = 0.1

// Element is an opaque handle to an observed region. The tracker never
// inspects it; only the Observer that produced the ratios does.
type Element any

// Observer is the host capability that reports how much of an element is
// inside the viewport. fn receives ratios in [0,1] and may be called
// synchronously from Observe. The returned cancel must stop all further
// calls to fn and be safe to call from inside fn.
type Observer interface {
	Observe(el Element, fn func(ratio float64)) (cancel func(), err error)
}

// Options configures a Tracker.
type Options struct {
	// Threshold is the minimum ratio counted as intersecting.
	Threshold float64
	// TriggerOnce makes the first reveal sticky and stops observation.
	TriggerOnce bool
}

// DefaultOptions returns the options used by most page sections.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Tracker exposes a visibility flag for one element.
type Tracker struct {
	observer    Observer
	threshold   float64
	triggerOnce bool

	el      Element
	cancel  func()
	visible bool
	done    bool
}

// New creates a tracker. A nil observer is allowed; the tracker then never
// reports visibility.
func New(observer Observer, opts Options) *Tracker {
	threshold := opts.Threshold
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	return &Tracker{
		observer:    observer,
		threshold:   threshold,
		triggerOnce: opts.TriggerOnce,
	}
}

// Attach starts observing el, replacing any previous observation. It is a
// no-op once a TriggerOnce tracker has fired.
func (t *Tracker) Attach(el Element) {
	if t.done {
		return
	}
	t.detach()
	t.el = el
	if t.observer == nil || el == nil {
		return
	}
	cancel, err := t.observer.Observe(el, t.intersect)
	if err != nil {
		return
	}
	if t.done {
		// Fired synchronously during Observe.
		if cancel != nil {
			cancel()
		}
		return
	}
	t.cancel = cancel
}

// Element returns the currently attached element, if any.
func (t *Tracker) Element() Element {
	return t.el
}

// Visible reports whether the element is revealed.
func (t *Tracker) Visible() bool {
	return t.visible
}

// Observing reports whether an observation is registered with the host.
func (t *Tracker) Observing() bool {
	return t.cancel != nil
}

// Close drops the observation. Safe to call more than once.
func (t *Tracker) Close() {
	t.detach()
}

func (t *Tracker) intersect(ratio float64) {
	if t.done {
		return
	}
	intersecting := ratio > 0 && ratio >= t.threshold
	if !t.triggerOnce {
		t.visible = intersecting
		return
	}
	if !intersecting {
		return
	}
	t.visible = true
	t.done = true
	t.detach()
}

func (t *Tracker) detach() {
	if t.cancel == nil {
		return
	}
	cancel := t.cancel
	t.cancel = nil
	cancel()
}
