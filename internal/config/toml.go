// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Company CompanyConfig `toml:"company"`
	Motion  MotionConfig  `toml:"motion"`
	Contact ContactConfig `toml:"contact"`
	Log     LogConfig     `toml:"log"`
}

// CompanyConfig overrides the company details shown on every page.
type CompanyConfig struct {
	Name         *string `toml:"name"`
	Tagline      *string `toml:"tagline"`
	Phone        *string `toml:"phone"`
	Email        *string `toml:"email"`
	SupportEmail *string `toml:"support-email"`
	Address      *string `toml:"address"`
	Hours        *string `toml:"hours"`
}

// MotionConfig maps animation settings.
type MotionConfig struct {
	RevealThreshold *float64 `toml:"reveal-threshold"`
	CounterDuration *int     `toml:"counter-duration-ms"`
	FrameInterval   *int     `toml:"frame-ms"`
	HeaderThreshold *int     `toml:"header-threshold"`
	CTAThreshold    *int     `toml:"cta-threshold"`
	Particles       *bool    `toml:"particles"`
}

// ContactConfig maps contact form settings.
type ContactConfig struct {
	SubmitDelay *int `toml:"submit-delay-ms"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	Path  *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
