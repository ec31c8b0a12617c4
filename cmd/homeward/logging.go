package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/zoobzio/capitan"

	"github.com/verte-zerg/homeward/internal/boundary"
	"github.com/verte-zerg/homeward/internal/config"
	"github.com/verte-zerg/homeward/internal/lead"
)

// fileLogger opens the JSON log used while the TUI owns the terminal.
func fileLogger(c config.LogConfig) (zerolog.Logger, func(), error) {
	path := config.DefaultLogPath()
	if c.Path != nil && *c.Path != "" {
		path = *c.Path
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to open log: %w", err)
	}
	logger := zerolog.New(f).Level(parseLevel(c)).With().Timestamp().Logger()
	return logger, func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", cerr)
		}
	}, nil
}

func consoleLogger(c config.LogConfig) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(parseLevel(c)).
		With().Timestamp().Logger()
}

// hookSignals forwards lead and boundary events into logger.
func hookSignals(logger zerolog.Logger) {
	capitan.Hook(lead.Submitted, func(_ context.Context, e *capitan.Event) {
		delay, _ := lead.KeyDelay.From(e)
		logger.Info().Dur("delay", delay).Msg("lead submitted")
	})
	capitan.Hook(lead.Rejected, func(_ context.Context, e *capitan.Event) {
		errMsg, _ := lead.KeyError.From(e)
		logger.Warn().Str("error", errMsg).Msg("lead rejected")
	})
	capitan.Hook(lead.Delivered, func(_ context.Context, e *capitan.Event) {
		name, _ := lead.KeyName.From(e)
		logger.Info().Str("name", name).Msg("lead delivered")
	})
	capitan.Hook(boundary.RenderFailed, func(_ context.Context, e *capitan.Event) {
		name, _ := boundary.KeyBoundary.From(e)
		errMsg, _ := boundary.KeyError.From(e)
		logger.Warn().Str("boundary", name).Str("error", errMsg).Msg("render failed")
	})
	capitan.Hook(boundary.RenderReset, func(_ context.Context, e *capitan.Event) {
		name, _ := boundary.KeyBoundary.From(e)
		logger.Info().Str("boundary", name).Msg("render reset")
	})
}
