package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("No repairs, no fees, no stress.", 12)
	want := "No repairs,\nno fees, no\nstress."
	if got != want {
		t.Fatalf("unexpected wrap:\n%q\nwant\n%q", got, want)
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	got := wrapText("homewardpartners", 6)
	want := "homewa\nrdpart\nners"
	if got != want {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	got := wrapText("Day 1\nDay 2", 40)
	if got != "Day 1\nDay 2" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextRespectsWideRunes(t *testing.T) {
	got := wrapText("★★★★★ rated", 6)
	for _, line := range strings.Split(got, "\n") {
		if w := runewidth.StringWidth(line); w > 6 {
			t.Fatalf("line %q is %d wide", line, w)
		}
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	if got := wrapText("as is", 0); got != "as is" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestWrapTextLinesNeverExceedWidth(t *testing.T) {
	text := "Skip the hassle of traditional real estate. Get a fair cash offer, close on your timeline, and walk away with money in your pocket."
	for width := 5; width < 60; width++ {
		for _, line := range strings.Split(wrapText(text, width), "\n") {
			if w := runewidth.StringWidth(line); w > width {
				t.Fatalf("width %d: line %q is %d wide", width, line, w)
			}
		}
	}
}
