package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/zoobzio/clockz"

	"github.com/verte-zerg/homeward/internal/lead"
	"github.com/verte-zerg/homeward/internal/model"
	"github.com/verte-zerg/homeward/internal/site"
)

type stubSubmitter struct {
	leads []lead.Lead
}

func (s *stubSubmitter) Submit(_ context.Context, l lead.Lead) error {
	s.leads = append(s.leads, l)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *stubSubmitter) {
	t.Helper()
	sub := &stubSubmitter{}
	m := NewModel(Options{
		Config:    model.DefaultConfig(),
		Company:   site.DefaultCompany(),
		Submitter: sub,
		Clock:     clockz.NewFakeClock(),
		Logger:    zerolog.Nop(),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, sub
}

func TestModelRevealsTopSectionOnly(t *testing.T) {
	m, _ := newTestModel(t)
	if m.currentKey() != site.PageHome {
		t.Fatalf("expected home page, got %q", m.currentKey())
	}
	if !m.page.visible("hero") {
		t.Fatalf("expected hero to be revealed")
	}
	if m.page.visible("cta") {
		t.Fatalf("expected cta to stay hidden before scrolling")
	}
	view := m.View()
	if !strings.Contains(view, "Homeward Partners") {
		t.Fatalf("expected brand in view")
	}
	if !strings.Contains(view, "Sell Your House in 7 Days for Cash") {
		t.Fatalf("expected hero title in view")
	}
}

func TestModelScrollCompactsHeaderAndRevealsSticky(t *testing.T) {
	m, _ := newTestModel(t)
	if m.scrolled() {
		t.Fatalf("header should start expanded")
	}
	m.Update(runes("G"))
	if !m.scrolled() {
		t.Fatalf("expected compact header after scrolling to the bottom")
	}
	if !m.page.visible("cta") {
		t.Fatalf("expected cta revealed at the bottom")
	}
	if m.floatingCTA() {
		t.Fatalf("floating CTA should hide while the cta section is in view")
	}
	m.Update(runes("g"))
	if m.scrolled() {
		t.Fatalf("expected expanded header back at the top")
	}
	if !m.page.visible("cta") {
		t.Fatalf("revealed sections must stay revealed")
	}
}

func TestModelNavigationRemountsPage(t *testing.T) {
	m, _ := newTestModel(t)
	home, _ := m.site.Page(site.PageHome)
	if got := m.observer.active(); got != len(home.Sections) {
		t.Fatalf("expected %d observations, got %d", len(home.Sections), got)
	}
	if m.frames.active() == 0 {
		t.Fatalf("expected hero counters to be scheduled")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.currentKey() != site.PageHowItWorks {
		t.Fatalf("expected how-it-works, got %q", m.currentKey())
	}
	next, _ := m.site.Page(site.PageHowItWorks)
	if got := m.observer.active(); got != len(next.Sections) {
		t.Fatalf("expected %d observations after navigation, got %d", len(next.Sections), got)
	}
	if m.frames.active() != 0 {
		t.Fatalf("expected home schedules released, got %d", m.frames.active())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.currentKey() != site.PageContact {
		t.Fatalf("expected wrap to contact, got %q", m.currentKey())
	}
}

func TestModelNavigationDoesNotRevealFromPreviousLayout(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("G"))
	if !m.page.visible("cta") {
		t.Fatalf("expected home cta revealed at the bottom")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.currentKey() != site.PageHowItWorks {
		t.Fatalf("expected how-it-works, got %q", m.currentKey())
	}
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected the new page at the top, got offset %d", m.viewport.YOffset)
	}
	if m.page.visible("cta") {
		t.Fatalf("cta on the new page was revealed without entering the viewport")
	}
	if m.page.visible("footer") {
		t.Fatalf("footer on the new page was revealed without entering the viewport")
	}
	if !m.page.visible("how-intro") {
		t.Fatalf("expected the top section of the new page revealed")
	}
}

func TestModelCloseReleasesEverything(t *testing.T) {
	m, _ := newTestModel(t)
	m.Close()
	if m.observer.active() != 0 {
		t.Fatalf("expected no observations after close")
	}
	if m.scrollSrc.active() != 0 {
		t.Fatalf("expected no scroll subscriptions after close")
	}
	if m.frames.active() != 0 {
		t.Fatalf("expected no schedules after close")
	}
}

func TestModelContactFormSubmission(t *testing.T) {
	m, sub := newTestModel(t)
	m.Update(runes("c"))
	if m.currentKey() != site.PageContact || !m.form.active {
		t.Fatalf("expected active contact form")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.form.status, "Please fill in") {
		t.Fatalf("expected validation message, got %q", m.form.status)
	}
	fillContactForm(m)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.form.submitting {
		t.Fatalf("expected submitting state")
	}
	m.Update(runes("x"))
	if m.form.inputs[len(m.form.inputs)-1].Value() != "" {
		t.Fatalf("input must be ignored while submitting")
	}
	l := m.form.lead()
	if err := sub.Submit(context.Background(), l); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if m.inFlight == nil {
		t.Fatalf("expected a submission in flight")
	}
	m.Update(submitResultMsg{id: m.inFlight.id})
	if m.form.status != thankYouMessage {
		t.Fatalf("expected thank-you message, got %q", m.form.status)
	}
	if m.form.lead().Name != "" {
		t.Fatalf("expected the form to be cleared")
	}
	if len(sub.leads) != 1 || sub.leads[0].Email != "jane@example.com" {
		t.Fatalf("unexpected leads: %+v", sub.leads)
	}
}

func fillContactForm(m *Model) {
	for _, value := range []string{"Jane Doe", "5551234567", "jane@example.com", "1 Elm St"} {
		m.Update(runes(value))
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
}

func TestModelReloadDropsInFlightSubmission(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))
	fillContactForm(m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.inFlight == nil {
		t.Fatalf("expected a submission in flight")
	}
	stale := m.inFlight
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if stale.ctx.Err() == nil {
		t.Fatalf("expected reload to cancel the in-flight submission")
	}
	m.Update(submitResultMsg{id: stale.id})
	if m.form.status != "" {
		t.Fatalf("stale result reached the fresh form: %q", m.form.status)
	}
	if m.form.submitting {
		t.Fatalf("fresh form must not be submitting")
	}
}

func TestModelIgnoresSupersededSubmission(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))
	fillContactForm(m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	first := m.inFlight.id
	m.Update(submitResultMsg{id: first + 1})
	if !m.form.submitting {
		t.Fatalf("unknown result must not finish the submission")
	}
	m.Update(submitResultMsg{id: first})
	if m.form.status != thankYouMessage {
		t.Fatalf("expected thank-you message, got %q", m.form.status)
	}
}

func TestModelCloseCancelsSubmission(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))
	fillContactForm(m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	sub := m.inFlight
	m.Close()
	if sub.ctx.Err() == nil {
		t.Fatalf("expected close to cancel the submission")
	}
}

func TestModelEscLeavesForm(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.form.active {
		t.Fatalf("expected form to be inactive")
	}
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command once the form is left")
	}
}

func TestModelBoundaryFallbackAndRecovery(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("2"))
	m.unmountCurrent()
	m.page = mountPage(site.Page{Key: "broken"}, hosts{observer: m.observer, scheduler: m.frames, clock: m.clock}, mountConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.boundary.Err() == nil {
		t.Fatalf("expected captured render error")
	}
	if !strings.Contains(m.View(), "Oops! Something went wrong") {
		t.Fatalf("expected fallback in view")
	}
	m.Update(runes("h"))
	if m.boundary.Err() != nil {
		t.Fatalf("expected boundary reset, got %v", m.boundary.Err())
	}
	if m.currentKey() != site.PageHome {
		t.Fatalf("expected home after recovery, got %q", m.currentKey())
	}
}

func TestModelReloadInvalidatesFrames(t *testing.T) {
	m, _ := newTestModel(t)
	gen := m.frames.gen
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.frames.gen <= gen {
		t.Fatalf("expected a newer frame generation after reload")
	}
	if cmd := m.frames.handle(frameMsg{gen: gen}); cmd != nil {
		t.Fatalf("expected frames from before the reload to be dropped")
	}
}

func TestRenderStaticShowsFinalStats(t *testing.T) {
	out, err := RenderStatic(site.New(site.DefaultCompany()), site.PageHome, 100)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"$2,500,000+", "500+", "98%", "Ready to Get Your Cash Offer?"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in static output", want)
		}
	}
	if _, err := RenderStatic(site.New(site.DefaultCompany()), "nope", 80); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}
