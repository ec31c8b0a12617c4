package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/zoobzio/clockz"

	"github.com/verte-zerg/homeward/internal/counter"
	"github.com/verte-zerg/homeward/internal/particles"
	"github.com/verte-zerg/homeward/internal/reveal"
	"github.com/verte-zerg/homeward/internal/site"
)

const (
	backdropHeight = 3
	particleCount  = 36
	maxContentW    = 100
)

var (
	kickerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	bodyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	bulletStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	backdropStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardSubStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardStyle      = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	starStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// hosts bundles the host capabilities a page mounts against.
type hosts struct {
	observer  reveal.Observer
	scheduler counter.Scheduler
	clock     clockz.Clock
}

// mountedPage is a page plus the trackers it owns while it is shown.
type mountedPage struct {
	page     site.Page
	reveals  map[string]*reveal.Tracker
	counters map[string][]*counter.Counter
	field    *particles.Field
	stopFx   func()
	spans    map[string]span
}

func mountPage(p site.Page, h hosts, cfg mountConfig) *mountedPage {
	mp := &mountedPage{
		page:     p,
		reveals:  make(map[string]*reveal.Tracker, len(p.Sections)),
		counters: map[string][]*counter.Counter{},
	}
	for _, sec := range p.Sections {
		tr := reveal.New(h.observer, reveal.Options{
			Threshold:   cfg.revealThreshold,
			TriggerOnce: true,
		})
		tr.Attach(sec.ID)
		mp.reveals[sec.ID] = tr

		for _, st := range sec.Stats {
			d := st.Duration
			if cfg.counterDuration > 0 {
				d = cfg.counterDuration
			}
			c := counter.New(h.scheduler, h.clock, counter.Params{
				End:      float64(st.Target),
				Duration: d,
			})
			mp.counters[sec.ID] = append(mp.counters[sec.ID], c)
		}

		if sec.Backdrop && cfg.particles && mp.field == nil {
			mp.field = particles.New(particleCount)
			if h.scheduler != nil {
				mp.stopFx = h.scheduler.Every(0, mp.field.Step)
			}
		}
	}
	return mp
}

type mountConfig struct {
	revealThreshold float64
	counterDuration time.Duration
	particles       bool
}

// unmount releases every observation and schedule the page holds.
func (mp *mountedPage) unmount() {
	for _, tr := range mp.reveals {
		tr.Close()
	}
	for _, cs := range mp.counters {
		for _, c := range cs {
			c.Close()
		}
	}
	if mp.stopFx != nil {
		mp.stopFx()
		mp.stopFx = nil
	}
}

func (mp *mountedPage) visible(id string) bool {
	tr, ok := mp.reveals[id]
	return ok && tr.Visible()
}

func (mp *mountedPage) visibility() map[string]bool {
	out := make(map[string]bool, len(mp.reveals))
	for id, tr := range mp.reveals {
		out[id] = tr.Visible()
	}
	return out
}

// render lays out all sections and records their line spans. Sections not
// yet revealed keep their height but render blank.
func (mp *mountedPage) render(width int, form *contactForm) (string, error) {
	if len(mp.page.Sections) == 0 {
		return "", fmt.Errorf("page %q has no sections", mp.page.Key)
	}
	cw := contentWidth(width)
	spans := make(map[string]span, len(mp.page.Sections))
	var lines []string
	for i, sec := range mp.page.Sections {
		if i > 0 {
			lines = append(lines, "")
		}
		block := mp.renderSection(sec, cw, form)
		blockLines := strings.Split(block, "\n")
		if !mp.visible(sec.ID) {
			blockLines = make([]string, len(blockLines))
		}
		start := len(lines)
		lines = append(lines, blockLines...)
		spans[sec.ID] = span{start: start, end: len(lines)}
	}
	mp.spans = spans
	content := strings.Join(lines, "\n")
	if width > cw {
		content = lipgloss.NewStyle().PaddingLeft((width - cw) / 2).Render(content)
	}
	return content, nil
}

func contentWidth(width int) int {
	if width <= 0 {
		return maxContentW
	}
	cw := width - 4
	if cw > maxContentW {
		cw = maxContentW
	}
	if cw < 20 {
		cw = maxInt(1, width)
	}
	return cw
}

func (mp *mountedPage) renderSection(sec site.Section, width int, form *contactForm) string {
	var parts []string
	if sec.Backdrop && mp.field != nil {
		for _, line := range mp.field.Render(width, backdropHeight) {
			parts = append(parts, backdropStyle.Render(line))
		}
	}
	if sec.Kicker != "" {
		parts = append(parts, kickerStyle.Render(strings.ToUpper(sec.Kicker)))
	}
	if sec.Title != "" {
		parts = append(parts, titleStyle.Render(wrapText(sec.Title, width)))
	}
	for _, p := range sec.Paragraphs {
		parts = append(parts, "", bodyStyle.Render(wrapText(p, width)))
	}
	if len(sec.Bullets) > 0 {
		parts = append(parts, "", renderBullets(sec.Bullets, width))
	}
	if len(sec.Stats) > 0 {
		parts = append(parts, "", renderStats(sec.Stats, mp.counters[sec.ID], width))
	}
	if len(sec.Cards) > 0 {
		parts = append(parts, "", renderCards(sec.Cards, width))
	}
	if sec.Form && form != nil {
		parts = append(parts, "", form.view(width))
	}
	return strings.Join(parts, "\n")
}

func renderBullets(items []string, width int) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		wrapped := wrapText(item, maxInt(1, width-2))
		for i, l := range strings.Split(wrapped, "\n") {
			prefix := "  "
			if i == 0 {
				prefix = bulletStyle.Render("•") + " "
			}
			lines = append(lines, prefix+bodyStyle.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

func renderStats(stats []site.Stat, counters []*counter.Counter, width int) string {
	cards := make([]string, 0, len(stats))
	for i, st := range stats {
		value := st.Target
		if i < len(counters) {
			value = counters[i].Int()
		}
		cards = append(cards, statCard(st, value))
	}
	return joinGrid(cards, width)
}

func statCard(st site.Stat, value int64) string {
	// Sized for the target value.
	w := maxInt(len(site.FormatStat(st, st.Target)), len(st.Label)) + 2
	content := fmt.Sprintf("%s\n%s",
		statValueStyle.Width(w).Render(site.FormatStat(st, value)),
		statLabelStyle.Width(w).Render(st.Label),
	)
	return cardStyle.Render(content)
}

func renderCards(cards []site.Card, width int) string {
	perRow := 3
	switch {
	case width < 60:
		perRow = 1
	case width < 90:
		perRow = 2
	}
	inner := width/perRow - 4
	if inner < 10 {
		inner = maxInt(1, width-4)
		perRow = 1
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, cardStyle.Width(inner+2).Render(cardBody(c, inner)))
	}
	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := minInt(i+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardBody(c site.Card, width int) string {
	lines := []string{cardTitleStyle.Render(wrapText(c.Title, width))}
	if c.Subtitle != "" {
		lines = append(lines, cardSubStyle.Render(c.Subtitle))
	}
	if c.Rating > 0 {
		lines = append(lines, starStyle.Render(strings.Repeat("★", c.Rating)))
	}
	if c.Body != "" {
		lines = append(lines, bodyStyle.Render(wrapText(c.Body, width)))
	}
	if len(c.Bullets) > 0 {
		lines = append(lines, renderBullets(c.Bullets, width))
	}
	return strings.Join(lines, "\n")
}

// joinGrid lays cards out left to right, wrapping rows at width.
func joinGrid(cards []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
