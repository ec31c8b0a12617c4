// Package tui provides the Bubble Tea site interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/zoobzio/clockz"

	"github.com/verte-zerg/homeward/internal/boundary"
	"github.com/verte-zerg/homeward/internal/counter"
	"github.com/verte-zerg/homeward/internal/lead"
	"github.com/verte-zerg/homeward/internal/model"
	"github.com/verte-zerg/homeward/internal/scroll"
	"github.com/verte-zerg/homeward/internal/site"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	brandStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	compactNavStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	compactActiveNav  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	taglineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	floatingCTAStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#141414")).Background(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 1)
	compactHeaderRule = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

// submitResultMsg reports the outcome of a lead submission.
type submitResultMsg struct {
	id  uint64
	err error
}

// submission is the lead request in flight, if any.
type submission struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc

	submitSeq uint64
	inFlight  *submission
}

// Options holds the collaborators of a Model.
type Options struct {
	Config    model.Config
	Company   site.Company
	Submitter lead.Submitter
	Clock     clockz.Clock
	Logger    zerolog.Logger
}

// Model implements the Bubble Tea site UI.
type Model struct {
	cfg       model.Config
	site      site.Site
	submitter lead.Submitter
	clock     clockz.Clock
	log       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	submitSeq uint64
	inFlight  *submission

	frames    *frames
	observer  *viewportObserver
	scrollSrc *viewportScroll

	headerScroll *scroll.Tracker
	ctaScroll    *scroll.Tracker

	pageIndex int
	page      *mountedPage
	form      *contactForm
	boundary  *boundary.Boundary
	viewport  viewport.Model

	width  int
	height int
}

// NewModel constructs the site UI.
func NewModel(opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:       opts.Config,
		site:      site.New(opts.Company),
		submitter: opts.Submitter,
		clock:     clock,
		log:       opts.Logger,
		ctx:       ctx,
		cancel:    cancel,
		form:      newContactForm(),
		viewport:  viewport.New(0, 0),
	}
	if m.submitter == nil {
		m.submitter = lead.NewSimulated(opts.Config.SubmitDelay, lead.WithClock(clock), lead.WithLogger(opts.Logger))
	}
	m.boundary = boundary.New(
		boundary.RendererFunc(m.renderPage),
		boundary.WithName("page"),
		boundary.WithLogger(opts.Logger),
		boundary.WithFallback(boundary.DefaultFallback(
			boundary.Actions{Retry: "t", Home: "h", Reload: "ctrl+r"},
			opts.Company.SupportEmail,
		)),
	)
	start := m.site.Index(opts.Config.StartPage)
	if start < 0 {
		start = 0
	}
	m.pageIndex = start
	m.mountChrome()
	m.mountCurrent()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.frames.schedule()
}

// Close releases every subscription and cancels in-flight submissions.
func (m *Model) Close() {
	m.cancelSubmit()
	m.cancel()
	m.unmountCurrent()
	m.unmountChrome()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		cmds = append(cmds, m.frames.handle(msg))
	case spinner.TickMsg:
		cmds = append(cmds, m.form.updateSpinner(msg))
	case submitResultMsg:
		m.finishSubmit(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.Close()
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	}
	m.refresh()
	cmds = append(cmds, m.frames.schedule())
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return nil, true
	}
	if key == "ctrl+r" {
		m.reload()
		return nil, false
	}
	if m.boundary.Err() != nil {
		switch key {
		case "t":
			m.boundary.Reset()
		case "h":
			m.navigate(m.site.Index(site.PageHome))
			m.boundary.Reset()
		case "q":
			return nil, true
		}
		return nil, false
	}
	if m.form.active && m.currentKey() == site.PageContact {
		switch key {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd, false
		}
		action, cmd := m.form.update(msg)
		if action == formSubmit {
			return m.submit(), false
		}
		return cmd, false
	}

	switch key {
	case "q":
		return nil, true
	case "left", "shift+tab":
		m.navigate(m.pageIndex - 1)
	case "right", "tab":
		m.navigate(m.pageIndex + 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(key)
		if idx-1 < len(m.site.Pages) {
			m.navigate(idx - 1)
		}
	case "c":
		m.navigate(m.site.Index(site.PageContact))
		return m.form.activate(), false
	case "enter", "i":
		if m.currentKey() == site.PageContact {
			return m.form.activate(), false
		}
	case "g", "home":
		m.viewport.GotoTop()
	case "G", "end":
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, false
	}
	return nil, false
}

func (m *Model) submit() tea.Cmd {
	l, ok, spin := m.form.beginSubmit()
	if !ok {
		m.log.Debug().Int("missing", len(l.Missing())).Msg("lead incomplete")
		return nil
	}
	m.cancelSubmit()
	m.submitSeq++
	ctx, cancel := context.WithCancel(m.ctx)
	sub := &submission{id: m.submitSeq, ctx: ctx, cancel: cancel}
	m.inFlight = sub
	submitter := m.submitter
	return tea.Batch(spin, func() tea.Msg {
		return submitResultMsg{id: sub.id, err: submitter.Submit(sub.ctx, l)}
	})
}

// finishSubmit applies a submission result to the form it came from.
// Results of cancelled or superseded submissions are dropped.
func (m *Model) finishSubmit(msg submitResultMsg) {
	if m.inFlight == nil || msg.id != m.inFlight.id {
		m.log.Debug().Uint64("submission", msg.id).Msg("stale lead result dropped")
		return
	}
	m.inFlight.cancel()
	m.inFlight = nil
	m.form.finishSubmit(msg.err)
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("lead submission failed")
	}
}

func (m *Model) cancelSubmit() {
	if m.inFlight == nil {
		return
	}
	m.inFlight.cancel()
	m.inFlight = nil
}

func (m *Model) currentKey() string {
	if m.page == nil {
		return ""
	}
	return m.page.page.Key
}

// mountChrome creates the host services and the page chrome trackers.
func (m *Model) mountChrome() {
	var gen uint64
	if m.frames != nil {
		gen = m.frames.gen
	}
	m.frames = newFrames(counter.NewLoop(m.clock, m.cfg.FrameInterval))
	m.frames.gen = gen
	m.observer = newViewportObserver()
	m.scrollSrc = newViewportScroll()
	m.headerScroll = scroll.New(m.scrollSrc)
	m.ctaScroll = scroll.New(m.scrollSrc)
}

func (m *Model) unmountChrome() {
	m.headerScroll.Close()
	m.ctaScroll.Close()
	m.frames.invalidate()
}

func (m *Model) mountCurrent() {
	p := m.site.Pages[m.pageIndex]
	m.page = mountPage(p, hosts{
		observer:  m.observer,
		scheduler: m.frames,
		clock:     m.clock,
	}, mountConfig{
		revealThreshold: m.cfg.RevealThreshold,
		counterDuration: m.cfg.CounterDuration,
		particles:       m.cfg.Particles,
	})
	m.log.Debug().Str("page", p.Key).Msg("page mounted")
}

func (m *Model) unmountCurrent() {
	if m.page == nil {
		return
	}
	m.page.unmount()
	m.log.Debug().Str("page", m.page.page.Key).Msg("page unmounted")
	m.page = nil
}

func (m *Model) navigate(idx int) {
	count := len(m.site.Pages)
	if count == 0 {
		return
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	if idx == m.pageIndex && m.page != nil {
		return
	}
	m.unmountCurrent()
	m.form.deactivate()
	m.pageIndex = idx
	m.viewport.GotoTop()
	m.scrollSrc.set(0)
	m.observer.reset()
	m.mountCurrent()
}

// reload tears everything down and mounts from scratch.
func (m *Model) reload() {
	m.cancelSubmit()
	m.unmountCurrent()
	m.unmountChrome()
	m.form = newContactForm()
	m.viewport.GotoTop()
	m.mountChrome()
	m.mountCurrent()
	m.boundary.Reset()
	m.log.Info().Msg("site reloaded")
}

func (m *Model) renderPage(width int) (string, error) {
	if m.page == nil {
		return "", fmt.Errorf("no page mounted")
	}
	return m.page.render(width, m.form)
}

// refresh lays the page out, feeds the viewport window to the observer and
// scroll trackers, and re-renders when a section was revealed.
func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()

	before := m.page.visibility()
	m.viewport.SetContent(m.boundary.View(m.width))
	m.scrollSrc.set(m.viewport.YOffset)
	m.viewport.Height = m.bodyHeight()
	m.notifyObserver()

	after := m.page.visibility()
	for id, v := range after {
		if before[id] != v {
			m.viewport.SetContent(m.boundary.View(m.width))
			break
		}
	}
}

func (m *Model) notifyObserver() {
	spans := m.page.spans
	if m.boundary.Err() != nil {
		spans = nil
	}
	m.observer.update(spans, m.viewport.YOffset, m.viewport.Height)
}

func (m *Model) bodyHeight() int {
	h := m.height - lipgloss.Height(m.renderHeader()) - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) scrolled() bool {
	return m.headerScroll.Past(float64(m.cfg.HeaderThreshold))
}

// floatingCTA is shown once the reader scrolled past the CTA threshold,
// except on the contact page and while the CTA section itself is in view.
func (m *Model) floatingCTA() bool {
	if m.currentKey() == site.PageContact {
		return false
	}
	if !m.ctaScroll.Past(float64(m.cfg.CTAThreshold)) {
		return false
	}
	return !m.ctaInView()
}

func (m *Model) ctaInView() bool {
	if m.page == nil {
		return false
	}
	sp, ok := m.page.spans["cta"]
	if !ok {
		return false
	}
	return m.observer.ratio(sp) > 0
}

func (m *Model) renderHeader() string {
	if m.scrolled() {
		return m.renderCompactHeader()
	}
	parts := make([]string, 0, len(m.site.Pages))
	for i, p := range m.site.Pages {
		label := fmt.Sprintf("%d %s", i+1, p.Title)
		if i == m.pageIndex {
			parts = append(parts, activeNavStyle.Render(label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	brand := brandStyle.Render(m.site.Company.Name)
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.width > 0 && lipgloss.Width(tabs) > m.width {
		return m.renderCompactHeader()
	}
	tagline := taglineStyle.Render(truncateLine(m.site.Company.Tagline, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, brand+"  "+tagline, tabs)
}

func (m *Model) renderCompactHeader() string {
	parts := []string{brandStyle.Render(m.site.Company.Name)}
	for i, p := range m.site.Pages {
		if i == m.pageIndex {
			parts = append(parts, compactActiveNav.Render(p.Title))
		} else {
			parts = append(parts, compactNavStyle.Render(p.Title))
		}
	}
	line := strings.Join(parts, compactHeaderRule.Render(" · "))
	if m.width > 0 && lipgloss.Width(line) > m.width {
		line = brandStyle.Render(m.site.Company.Name) + "  " + compactActiveNav.Render(m.site.Pages[m.pageIndex].Title)
	}
	return line
}

func (m *Model) renderFooter() string {
	help := "←/→ pages  ↑/↓ scroll  c: contact  q: quit"
	if m.form.active && m.currentKey() == site.PageContact {
		help = "esc: leave form  pgup/pgdn: scroll  ctrl+c: quit"
	}
	if m.boundary.Err() != nil {
		help = "t: try again  h: home  ctrl+r: reload  q: quit"
	}
	footer := footerStyle.Render(help)
	if m.floatingCTA() {
		cta := floatingCTAStyle.Render(fmt.Sprintf("Get My Cash Offer (c) · Call %s", m.site.Company.Phone))
		gap := m.width - lipgloss.Width(footer) - lipgloss.Width(cta)
		if gap >= 1 {
			return footer + strings.Repeat(" ", gap) + cta
		}
		return cta
	}
	return footer
}

func truncateLine(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
