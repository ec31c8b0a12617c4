package boundary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyPage struct {
	fail  bool
	panic bool
	calls int
}

func (p *flakyPage) Render(width int) (string, error) {
	p.calls++
	if p.panic {
		panic("nil section")
	}
	if p.fail {
		return "", errors.New("missing content")
	}
	return "home", nil
}

func plainFallback(err error, _ int) string {
	return "fallback: " + err.Error()
}

func TestViewRendersChild(t *testing.T) {
	b := New(&flakyPage{})
	assert.Equal(t, "home", b.View(80))
	assert.NoError(t, b.Err())
}

func TestErrorIsCapturedUntilReset(t *testing.T) {
	page := &flakyPage{fail: true}
	b := New(page, WithFallback(plainFallback))

	assert.Equal(t, "fallback: missing content", b.View(80))
	require.Error(t, b.Err())

	page.fail = false
	assert.Equal(t, "fallback: missing content", b.View(80), "stored error keeps the fallback")
	assert.Equal(t, 1, page.calls)

	b.Reset()
	assert.NoError(t, b.Err())
	assert.Equal(t, "home", b.View(80))
	assert.Equal(t, 2, page.calls)
}

func TestPanicIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	page := &flakyPage{panic: true}
	b := New(page, WithName("home"), WithFallback(plainFallback), WithLogger(zerolog.New(&buf)))

	out := b.View(40)
	assert.Equal(t, "fallback: render panicked: nil section", out)

	var pe *PanicError
	require.True(t, errors.As(b.Err(), &pe))
	assert.Equal(t, "nil section", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Contains(t, buf.String(), `"boundary":"home"`)
	assert.Contains(t, buf.String(), "uncaught render error")
}

func TestResetRetriesAndFailsAgain(t *testing.T) {
	page := &flakyPage{fail: true}
	b := New(page, WithFallback(plainFallback))
	b.View(10)
	b.Reset()
	assert.Equal(t, "fallback: missing content", b.View(10))
	assert.Equal(t, 2, page.calls)
}

func TestSetChildClearsError(t *testing.T) {
	b := New(&flakyPage{fail: true}, WithFallback(plainFallback))
	b.View(10)
	b.SetChild(RendererFunc(func(int) (string, error) { return "about", nil }))
	assert.Equal(t, "about", b.View(10))
}

func TestNilChildRendersEmpty(t *testing.T) {
	b := New(nil)
	assert.Equal(t, "", b.View(10))
}

func TestDefaultFallbackContent(t *testing.T) {
	fb := DefaultFallback(Actions{Retry: "t", Home: "h", Reload: "ctrl+r"}, "support@homewardpartners.com")
	out := fb(errors.New("boom"), 60)
	for _, want := range []string{"Oops! Something went wrong", "Error: boom", "t: try again", "h: go home", "ctrl+r: reload", "support@homewardpartners.com"} {
		assert.Contains(t, out, want)
	}
}
