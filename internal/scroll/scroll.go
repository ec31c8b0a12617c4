// Package scroll tracks the vertical scroll offset of a document.
package scroll

// Source is the host capability delivering scroll notifications. fn is
// called with the new offset on every scroll; cancel stops delivery.
type Source interface {
	Subscribe(fn func(offset float64)) (cancel func(), err error)
}

// Positioner is optionally implemented by a Source that can report its
// offset at subscription time.
type Positioner interface {
	Offset() float64
}

// Tracker mirrors the current offset of a Source.
type Tracker struct {
	offset float64
	cancel func()
	closed bool
}

// New subscribes to src. A nil src or a failed subscription leaves the
// offset at 0.
func New(src Source) *Tracker {
	t := &Tracker{}
	if src == nil {
		return t
	}
	if p, ok := src.(Positioner); ok {
		t.offset = p.Offset()
	}
	cancel, err := src.Subscribe(t.update)
	if err != nil {
		t.offset = 0
		return t
	}
	t.cancel = cancel
	return t
}

// Offset returns the last reported offset.
func (t *Tracker) Offset() float64 {
	return t.offset
}

// Past reports whether the offset is beyond threshold.
func (t *Tracker) Past(threshold float64) bool {
	return t.offset > threshold
}

// Subscribed reports whether the tracker still listens to its source.
func (t *Tracker) Subscribed() bool {
	return t.cancel != nil
}

// Close unsubscribes. Safe to call more than once.
func (t *Tracker) Close() {
	t.closed = true
	if t.cancel == nil {
		return
	}
	cancel := t.cancel
	t.cancel = nil
	cancel()
}

func (t *Tracker) update(offset float64) {
	if t.closed {
		return
	}
	t.offset = offset
}
