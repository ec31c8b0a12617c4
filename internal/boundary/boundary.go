// Package boundary supervises page rendering: a failing render is captured
// and replaced by a fallback until it is reset.
package boundary

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/zoobzio/capitan"
)

// Signals emitted by a Boundary.
var (
	RenderFailed = capitan.NewSignal(
		"boundary.render.failed",
		"Child render failed and the fallback is shown",
	)
	RenderReset = capitan.NewSignal(
		"boundary.reset",
		"Captured error cleared, child render retried",
	)
)

// Field keys for boundary events.
var (
	KeyBoundary = capitan.NewStringKey("boundary")
	KeyError    = capitan.NewStringKey("error")
)

// Renderer produces the content of a supervised region.
type Renderer interface {
	Render(width int) (string, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(width int) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(width int) (string, error) {
	return f(width)
}

// Fallback renders the replacement shown while an error is stored.
type Fallback func(err error, width int) string

// PanicError wraps a value recovered from a panicking render.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("render panicked: %v", e.Value)
}

// Boundary wraps a child Renderer.
type Boundary struct {
	name     string
	child    Renderer
	fallback Fallback
	log      zerolog.Logger

	err error
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithName labels the boundary in logs and events.
func WithName(name string) Option {
	return func(b *Boundary) { b.name = name }
}

// WithFallback replaces the default fallback.
func WithFallback(f Fallback) Option {
	return func(b *Boundary) {
		if f != nil {
			b.fallback = f
		}
	}
}

// WithLogger sets the logger for captured errors.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Boundary) { b.log = l }
}

// New wraps child.
func New(child Renderer, opts ...Option) *Boundary {
	b := &Boundary{
		name:     "root",
		child:    child,
		fallback: DefaultFallback(Actions{}, ""),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// View renders the child, or the fallback when an error is stored or the
// child fails now.
func (b *Boundary) View(width int) string {
	if b.err != nil {
		return b.fallback(b.err, width)
	}
	out, err := b.render(width)
	if err != nil {
		b.capture(err)
		return b.fallback(err, width)
	}
	return out
}

// Err returns the captured error, if any.
func (b *Boundary) Err() error {
	return b.err
}

// Reset clears the captured error so the next View retries the child.
func (b *Boundary) Reset() {
	if b.err == nil {
		return
	}
	b.err = nil
	b.log.Info().Str("boundary", b.name).Msg("render boundary reset")
	capitan.Emit(context.Background(), RenderReset, KeyBoundary.Field(b.name))
}

// SetChild swaps the supervised renderer and clears any captured error.
func (b *Boundary) SetChild(child Renderer) {
	b.child = child
	b.err = nil
}

func (b *Boundary) render(width int) (out string, err error) {
	if b.child == nil {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return b.child.Render(width)
}

func (b *Boundary) capture(err error) {
	b.err = err
	ev := b.log.Error().Err(err).Str("boundary", b.name)
	if pe, ok := err.(*PanicError); ok {
		ev = ev.Bytes("stack", pe.Stack)
	}
	ev.Msg("uncaught render error")
	capitan.Emit(context.Background(), RenderFailed,
		KeyBoundary.Field(b.name),
		KeyError.Field(err.Error()),
	)
}
