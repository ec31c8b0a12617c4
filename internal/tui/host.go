package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/homeward/internal/counter"
	"github.com/verte-zerg/homeward/internal/reveal"
)

// frameMsg drives one round of the frame loop. Frames from an older
// generation are dropped.
type frameMsg struct {
	gen uint64
}

// frames adapts counter.Loop to the Bubble Tea event loop: it keeps a single
// tick in flight while any schedule is registered and none otherwise.
type frames struct {
	loop    *counter.Loop
	gen     uint64
	pending bool
}

func newFrames(loop *counter.Loop) *frames {
	return &frames{loop: loop}
}

// Every implements counter.Scheduler.
func (f *frames) Every(interval time.Duration, fn func()) func() {
	return f.loop.Every(interval, fn)
}

func (f *frames) active() int {
	return f.loop.Active()
}

// schedule returns the next frame command, or nil when idle or when a frame
// is already pending.
func (f *frames) schedule() tea.Cmd {
	if f.pending || f.loop.Active() == 0 {
		return nil
	}
	f.pending = true
	gen := f.gen
	return tea.Tick(f.loop.Interval(), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (f *frames) handle(msg frameMsg) tea.Cmd {
	if msg.gen != f.gen {
		return nil
	}
	f.pending = false
	f.loop.Step()
	return f.schedule()
}

// invalidate drops any in-flight frame.
func (f *frames) invalidate() {
	f.gen++
	f.pending = false
}

// span is the line range [start, end) a section occupies in the page.
type span struct {
	start int
	end   int
}

type observation struct {
	id string
	fn func(float64)
}

// viewportObserver implements reveal.Observer over the viewport window.
// Elements are section IDs.
type viewportObserver struct {
	next  int
	regs  map[int]observation
	spans map[string]span
	top   int
	rows  int
}

func newViewportObserver() *viewportObserver {
	return &viewportObserver{regs: map[int]observation{}}
}

// Observe implements reveal.Observer.
func (o *viewportObserver) Observe(el reveal.Element, fn func(float64)) (func(), error) {
	id, ok := el.(string)
	if !ok {
		return nil, fmt.Errorf("unsupported element %T", el)
	}
	key := o.next
	o.next++
	o.regs[key] = observation{id: id, fn: fn}
	if sp, ok := o.spans[id]; ok {
		fn(o.ratio(sp))
	}
	return func() { delete(o.regs, key) }, nil
}

func (o *viewportObserver) active() int {
	return len(o.regs)
}

// update records the layout and viewport window and notifies every
// registration whose section is laid out.
func (o *viewportObserver) update(spans map[string]span, top, rows int) {
	o.spans = spans
	o.top = top
	o.rows = rows
	keys := make([]int, 0, len(o.regs))
	for k := range o.regs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		reg, ok := o.regs[k]
		if !ok {
			continue
		}
		sp, ok := o.spans[reg.id]
		if !ok {
			continue
		}
		reg.fn(o.ratio(sp))
	}
}

// reset forgets the layout and window of the previous page. Registrations
// are kept; they are notified again on the next update.
func (o *viewportObserver) reset() {
	o.spans = nil
	o.top = 0
	o.rows = 0
}

func (o *viewportObserver) ratio(sp span) float64 {
	height := sp.end - sp.start
	if height <= 0 || o.rows <= 0 {
		return 0
	}
	lo := maxInt(sp.start, o.top)
	hi := minInt(sp.end, o.top+o.rows)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}

// viewportScroll implements scroll.Source over the viewport offset.
type viewportScroll struct {
	offset float64
	next   int
	subs   map[int]func(float64)
}

func newViewportScroll() *viewportScroll {
	return &viewportScroll{subs: map[int]func(float64){}}
}

// Subscribe implements scroll.Source.
func (s *viewportScroll) Subscribe(fn func(float64)) (func(), error) {
	key := s.next
	s.next++
	s.subs[key] = fn
	return func() { delete(s.subs, key) }, nil
}

// Offset implements scroll.Positioner.
func (s *viewportScroll) Offset() float64 {
	return s.offset
}

func (s *viewportScroll) active() int {
	return len(s.subs)
}

func (s *viewportScroll) set(offset int) {
	next := float64(offset)
	if next == s.offset {
		return
	}
	s.offset = next
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if fn, ok := s.subs[k]; ok {
			fn(next)
		}
	}
}

// fullView is a reveal.Observer for static output: every element is fully
// visible at once.
type fullView struct{}

func (fullView) Observe(_ reveal.Element, fn func(float64)) (func(), error) {
	fn(1)
	return func() {}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
