package lead

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func validLead() Lead {
	return Lead{
		Name:    "Sarah Mitchell",
		Email:   "sarah@example.com",
		Phone:   "(555) 123-4567",
		Address: "123 Main St, Dallas, TX",
	}
}

func TestMissingReportsRequiredFields(t *testing.T) {
	l := Lead{Name: "  ", Email: "a@b.c", Message: "roof leaks"}
	assert.Equal(t, []Field{FieldName, FieldPhone, FieldAddress}, l.Missing())

	err := l.Validate()
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "name, phone, address")

	assert.Empty(t, validLead().Missing())
	assert.NoError(t, validLead().Validate())
}

func TestGetSetRoundTripsEveryField(t *testing.T) {
	var l Lead
	for _, f := range Fields {
		l.Set(f, string(f)+"-value")
	}
	for _, f := range Fields {
		assert.Equal(t, string(f)+"-value", l.Get(f))
	}
	assert.False(t, FieldMessage.Required())
	assert.True(t, FieldEmail.Required())
}

func TestSimulatedSucceedsAfterDelay(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewSimulated(0, WithClock(clock))
	require.Equal(t, DefaultDelay, s.Delay())

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), validLead()) }()

	clock.Advance(DefaultDelay - time.Millisecond)
	select {
	case err := <-done:
		t.Fatalf("submitted before the delay elapsed: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	var got error
	require.Eventually(t, func() bool {
		clock.Advance(DefaultDelay)
		select {
		case got = <-done:
			return true
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	assert.NoError(t, got)
}

func TestSimulatedRejectsIncompleteLead(t *testing.T) {
	s := NewSimulated(time.Hour, WithClock(clockz.NewFakeClock()))
	err := s.Submit(context.Background(), Lead{Name: "Mike"})
	assert.True(t, errors.Is(err, ErrMissingFields))
}

func TestSimulatedHonorsCancellation(t *testing.T) {
	s := NewSimulated(time.Hour, WithClock(clockz.NewFakeClock()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Submit(ctx, validLead()), context.Canceled)
}

func TestSimulatedLeavesDeliveryLoggingToSignals(t *testing.T) {
	var buf bytes.Buffer
	clock := clockz.NewFakeClock()
	s := NewSimulated(time.Second, WithClock(clock), WithLogger(zerolog.New(&buf)))

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background(), validLead()) }()

	var got error
	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		select {
		case got = <-done:
			return true
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, got)
	assert.Empty(t, buf.String())
}

func TestSimulatedLogsCancellation(t *testing.T) {
	var buf bytes.Buffer
	s := NewSimulated(time.Hour, WithClock(clockz.NewFakeClock()), WithLogger(zerolog.New(&buf)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Submit(ctx, validLead()), context.Canceled)
	assert.Contains(t, buf.String(), "lead submission cancelled")
}
