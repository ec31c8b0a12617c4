// Package lead captures cash-offer requests from the contact form.
package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDelay is the simulated submission latency.
const DefaultDelay = 2 * time.Second

// ErrMissingFields is returned when a required field is blank.
var ErrMissingFields = errors.New("missing required fields")

// Lead is one contact form submission. All fields are free text.
type Lead struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Message string
}

// Field names a Lead field.
type Field string

// Form fields in display order.
const (
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldEmail   Field = "email"
	FieldAddress Field = "address"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldPhone, FieldEmail, FieldAddress, FieldMessage}

// Required reports whether the form marks f as required.
func (f Field) Required() bool {
	return f != FieldMessage
}

// Get returns the value of f.
func (l Lead) Get(f Field) string {
	switch f {
	case FieldName:
		return l.Name
	case FieldPhone:
		return l.Phone
	case FieldEmail:
		return l.Email
	case FieldAddress:
		return l.Address
	case FieldMessage:
		return l.Message
	default:
		return ""
	}
}

// Set assigns v to f.
func (l *Lead) Set(f Field, v string) {
	switch f {
	case FieldName:
		l.Name = v
	case FieldPhone:
		l.Phone = v
	case FieldEmail:
		l.Email = v
	case FieldAddress:
		l.Address = v
	case FieldMessage:
		l.Message = v
	}
}

// Missing returns the required fields left blank.
func (l Lead) Missing() []Field {
	var out []Field
	for _, f := range Fields {
		if f.Required() && strings.TrimSpace(l.Get(f)) == "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate returns ErrMissingFields naming each blank required field.
func (l Lead) Validate() error {
	missing := l.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(names, ", "))
}

// Submitter delivers a lead.
type Submitter interface {
	Submit(ctx context.Context, l Lead) error
}

// Simulated waits a fixed delay and then reports success. It stands in for
// a backend that does not exist yet.
type Simulated struct {
	delay time.Duration
	clock clockz.Clock
	log   zerolog.Logger
}

// Option configures Simulated.
type Option func(*Simulated)

// WithClock sets the clock used for the delay.
func WithClock(c clockz.Clock) Option {
	return func(s *Simulated) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulated) { s.log = l }
}

// NewSimulated returns a Submitter that succeeds after delay. A
// non-positive delay means DefaultDelay.
func NewSimulated(delay time.Duration, opts ...Option) *Simulated {
	if delay <= 0 {
		delay = DefaultDelay
	}
	s := &Simulated{
		delay: delay,
		clock: clockz.RealClock,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the simulated latency.
func (s *Simulated) Delay() time.Duration {
	return s.delay
}

// Submit implements Submitter.
func (s *Simulated) Submit(ctx context.Context, l Lead) error {
	if err := l.Validate(); err != nil {
		capitan.Emit(ctx, Rejected, KeyError.Field(err.Error()))
		return err
	}
	capitan.Emit(ctx, Submitted, KeyDelay.Field(s.delay))

	timer := s.clock.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("lead submission cancelled")
		return ctx.Err()
	case <-timer.C():
	}

	capitan.Emit(ctx, Delivered, KeyName.Field(l.Name))
	return nil
}
