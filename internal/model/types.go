// Package model defines shared data structures.
package model

import "time"

// Config defines the interactive site settings.
type Config struct {
	StartPage string
	// RevealThreshold is the visible fraction that reveals a section.
	RevealThreshold float64
	// CounterDuration overrides every stat's own duration when > 0.
	CounterDuration time.Duration
	FrameInterval   time.Duration
	// HeaderThreshold and CTAThreshold are scroll offsets in lines.
	HeaderThreshold int
	CTAThreshold    int
	Particles       bool
	SubmitDelay     time.Duration
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		StartPage:       "home",
		RevealThreshold: 0.1,
		FrameInterval:   16 * time.Millisecond,
		HeaderThreshold: 3,
		CTAThreshold:    6,
		Particles:       true,
		SubmitDelay:     2 * time.Second,
	}
}
