// Package site holds the marketing content of the Homeward Partners site.
package site

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Company is the contact information shown across pages.
type Company struct {
	Name         string
	Tagline      string
	Phone        string
	Email        string
	SupportEmail string
	Address      string
	Hours        string
}

// DefaultCompany returns the stock company details.
func DefaultCompany() Company {
	return Company{
		Name:         "Homeward Partners",
		Tagline:      "Your trusted partner for fast, fair, and hassle-free home sales",
		Phone:        "(555) 123-4567",
		Email:        "info@homewardpartners.com",
		SupportEmail: "support@homewardpartners.com",
		Address:      "123 Main Street, Suite 100, City, State 12345",
		Hours:        "Mon-Fri 8am-8pm, Sat-Sun 9am-5pm",
	}
}

// Stat is an animated figure in the hero.
type Stat struct {
	Label    string
	Prefix   string
	Suffix   string
	Target   int64
	Duration time.Duration
}

// FormatStat renders value with the stat's prefix, suffix and thousands
// separators.
func FormatStat(s Stat, value int64) string {
	return fmt.Sprintf("%s%s%s", s.Prefix, humanize.Comma(value), s.Suffix)
}

// Card is a feature, step or testimonial tile.
type Card struct {
	Title    string
	Subtitle string
	Body     string
	Bullets  []string
	Rating   int
}

// Section is one block of a page. Sections are the unit of reveal-on-scroll.
type Section struct {
	ID         string
	Kicker     string
	Title      string
	Paragraphs []string
	Bullets    []string
	Cards      []Card
	Stats      []Stat
	// Form places the contact form after the section's copy.
	Form bool
	// Backdrop draws the animated particle field behind the section.
	Backdrop bool
}

// Page is a routed page.
type Page struct {
	Key      string
	Title    string
	Sections []Section
}

// Site is the full set of pages for one company.
type Site struct {
	Company Company
	Pages   []Page
}

// New builds the site content for c.
func New(c Company) Site {
	pages := []Page{
		homePage(c),
		howItWorksPage(c),
		whyChooseUsPage(c),
		aboutPage(c),
		contactPage(c),
	}
	footer := footerSection(c, pages)
	for i := range pages {
		pages[i].Sections = append(pages[i].Sections, footer)
	}
	return Site{Company: c, Pages: pages}
}

// Page returns the page with key.
func (s Site) Page(key string) (Page, bool) {
	for _, p := range s.Pages {
		if p.Key == key {
			return p, true
		}
	}
	return Page{}, false
}

// Index returns the position of the page with key, or -1.
func (s Site) Index(key string) int {
	for i, p := range s.Pages {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// Keys lists page keys in navigation order.
func (s Site) Keys() []string {
	keys := make([]string, len(s.Pages))
	for i, p := range s.Pages {
		keys[i] = p.Key
	}
	return keys
}

// Page keys.
const (
	PageHome       = "home"
	PageHowItWorks = "how-it-works"
	PageWhyUs      = "why-choose-us"
	PageAbout      = "about"
	PageContact    = "contact"
)

// HeroStats are the track-record counters on the home page.
func HeroStats() []Stat {
	return []Stat{
		{Label: "Paid Out", Prefix: "$", Suffix: "+", Target: 2_500_000, Duration: 2000 * time.Millisecond},
		{Label: "Houses Bought", Suffix: "+", Target: 500, Duration: 2000 * time.Millisecond},
		{Label: "Avg Days to Close", Target: 7, Duration: 1500 * time.Millisecond},
		{Label: "Customer Satisfaction", Suffix: "%", Target: 98, Duration: 2000 * time.Millisecond},
	}
}
