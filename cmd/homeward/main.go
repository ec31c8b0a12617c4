// Package main provides the CLI entrypoint for homeward.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"golang.org/x/term"

	"github.com/verte-zerg/homeward/internal/config"
	"github.com/verte-zerg/homeward/internal/counter"
	"github.com/verte-zerg/homeward/internal/lead"
	"github.com/verte-zerg/homeward/internal/model"
	"github.com/verte-zerg/homeward/internal/site"
	"github.com/verte-zerg/homeward/internal/tui"
)

const (
	defaultRenderWidth = 100
	defaultLogLevel    = "info"
)

var (
	sitePage            string
	siteRevealThreshold float64
	siteCounterMS       int
	siteSubmitDelayMS   int
	siteNoParticles     bool

	renderWidth    int
	statsCounterMS int
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	capitan.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultConfig()
	rootCmd := &cobra.Command{
		Use:           "homeward",
		Short:         "Homeward Partners in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSiteCmd,
	}

	rootCmd.Flags().StringVar(&sitePage, "page", defaults.StartPage, "page to open ("+strings.Join(site.New(site.DefaultCompany()).Keys(), ", ")+")")
	rootCmd.Flags().Float64Var(&siteRevealThreshold, "reveal-threshold", defaults.RevealThreshold, "visible fraction that reveals a section (0-1)")
	rootCmd.Flags().IntVar(&siteCounterMS, "counter-duration", 0, "stat animation length in ms (0: per stat)")
	rootCmd.Flags().IntVar(&siteSubmitDelayMS, "submit-delay", int(defaults.SubmitDelay/time.Millisecond), "simulated submission delay in ms")
	rootCmd.Flags().BoolVar(&siteNoParticles, "no-particles", false, "disable the hero particle backdrop")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPagesCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// resolveConfig merges defaults, the config file and flags, flags winning.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	cfg := model.DefaultConfig()
	particles := !siteNoParticles

	applyFloatConfig(cmd, "reveal-threshold", &siteRevealThreshold, fileCfg.Motion.RevealThreshold)
	applyIntConfig(cmd, "counter-duration", &siteCounterMS, fileCfg.Motion.CounterDuration)
	applyIntConfig(cmd, "submit-delay", &siteSubmitDelayMS, fileCfg.Contact.SubmitDelay)
	if fileCfg.Motion.Particles != nil && !cmd.Flags().Changed("no-particles") {
		particles = *fileCfg.Motion.Particles
	}

	cfg.StartPage = sitePage
	cfg.RevealThreshold = siteRevealThreshold
	cfg.CounterDuration = time.Duration(siteCounterMS) * time.Millisecond
	cfg.SubmitDelay = time.Duration(siteSubmitDelayMS) * time.Millisecond
	cfg.Particles = particles
	if v := fileCfg.Motion.FrameInterval; v != nil {
		cfg.FrameInterval = time.Duration(*v) * time.Millisecond
	}
	if v := fileCfg.Motion.HeaderThreshold; v != nil {
		cfg.HeaderThreshold = *v
	}
	if v := fileCfg.Motion.CTAThreshold; v != nil {
		cfg.CTAThreshold = *v
	}
	return cfg, validateConfig(cfg)
}

func runSiteCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	company := companyFromConfig(fileCfg.Company)

	logger, closeLog, err := fileLogger(fileCfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	hookSignals(logger)

	logger.Info().
		Str("page", cfg.StartPage).
		Float64("reveal_threshold", cfg.RevealThreshold).
		Dur("submit_delay", cfg.SubmitDelay).
		Bool("particles", cfg.Particles).
		Msg("starting site")

	m := tui.NewModel(tui.Options{
		Config:  cfg,
		Company: company,
		Submitter: lead.NewSimulated(cfg.SubmitDelay,
			lead.WithClock(clockz.RealClock),
			lead.WithLogger(logger),
		),
		Clock:  clockz.RealClock,
		Logger: logger,
	})
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List site pages",
		Args:  cobra.NoArgs,
		RunE:  runPagesCmd,
	}
}

func runPagesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s := site.New(companyFromConfig(fileCfg.Company))
	for i, p := range s.Pages {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d  %-14s %s\n", i+1, p.Key, p.Title); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Print a page without the interactive UI",
		Args:  cobra.ExactArgs(1),
		RunE:  runRenderCmd,
	}
	cmd.Flags().IntVar(&renderWidth, "width", 0, "output width (default: terminal width)")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := consoleLogger(fileCfg.Log)
	hookSignals(logger)

	width := renderWidth
	if width <= 0 {
		width = terminalWidth()
	}
	s := site.New(companyFromConfig(fileCfg.Company))
	out, err := tui.RenderStatic(s, args[0], width)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(s.Keys(), ", "))
	}
	logger.Debug().Str("page", args[0]).Int("width", width).Msg("rendered page")
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Animate the hero stats on one line",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsCounterMS, "counter-duration", 0, "animation length in ms (0: per stat)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "counter-duration", &statsCounterMS, fileCfg.Motion.CounterDuration)
	if statsCounterMS < 0 {
		return fmt.Errorf("--counter-duration must be >= 0")
	}
	return animateStats(cmd.Context(), cmd.OutOrStdout(), clockz.RealClock, site.HeroStats(), time.Duration(statsCounterMS)*time.Millisecond)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultRenderWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultRenderWidth
	}
	return w
}

func companyFromConfig(c config.CompanyConfig) site.Company {
	company := site.DefaultCompany()
	applyCompany(&company.Name, c.Name)
	applyCompany(&company.Tagline, c.Tagline)
	applyCompany(&company.Phone, c.Phone)
	applyCompany(&company.Email, c.Email)
	applyCompany(&company.SupportEmail, c.SupportEmail)
	applyCompany(&company.Address, c.Address)
	applyCompany(&company.Hours, c.Hours)
	return company
}

func applyCompany(target, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := model.DefaultConfig()
	company := site.DefaultCompany()
	return fmt.Sprintf(`# homeward configuration
# Uncomment a value to enable it. CLI flags override config values.

[company]
# name = %q
# phone = %q
# email = %q
# support-email = %q

[motion]
# reveal-threshold = %.2f    # Visible fraction that reveals a section (0-1)
# counter-duration-ms = 0    # Stat animation length, 0 keeps each stat's own
# frame-ms = %d              # Frame interval
# header-threshold = %d      # Lines scrolled before the header compacts
# cta-threshold = %d         # Lines scrolled before the floating CTA shows
# particles = true           # Hero particle backdrop

[contact]
# submit-delay-ms = %d     # Simulated submission delay

[log]
# level = %q
# path = %q
`,
		company.Name,
		company.Phone,
		company.Email,
		company.SupportEmail,
		defaults.RevealThreshold,
		int(defaults.FrameInterval/time.Millisecond),
		defaults.HeaderThreshold,
		defaults.CTAThreshold,
		int(defaults.SubmitDelay/time.Millisecond),
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if site.New(site.DefaultCompany()).Index(cfg.StartPage) < 0 {
		return fmt.Errorf("--page %q is not a page", cfg.StartPage)
	}
	if cfg.RevealThreshold < 0 || cfg.RevealThreshold > 1 {
		return fmt.Errorf("--reveal-threshold must be between 0 and 1")
	}
	if cfg.CounterDuration < 0 {
		return fmt.Errorf("--counter-duration must be >= 0")
	}
	if cfg.SubmitDelay < 0 {
		return fmt.Errorf("--submit-delay must be >= 0")
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("frame-ms must be > 0")
	}
	if cfg.HeaderThreshold < 0 || cfg.CTAThreshold < 0 {
		return fmt.Errorf("scroll thresholds must be >= 0")
	}
	return nil
}

func parseLevel(c config.LogConfig) zerolog.Level {
	name := defaultLogLevel
	if c.Level != nil {
		name = *c.Level
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// animateStats prints the counters on a single line until every one of them
// has reached its target.
func animateStats(ctx context.Context, w io.Writer, clock clockz.Clock, stats []site.Stat, override time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	loop := counter.NewLoop(clock, counter.DefaultInterval)
	counters := make([]*counter.Counter, len(stats))
	for i, st := range stats {
		d := st.Duration
		if override > 0 {
			d = override
		}
		counters[i] = counter.New(loop, clock, counter.Params{End: float64(st.Target), Duration: d})
	}
	line := func() string {
		parts := make([]string, len(stats))
		for i, st := range stats {
			parts[i] = fmt.Sprintf("%s %s", site.FormatStat(st, counters[i].Int()), st.Label)
		}
		return strings.Join(parts, "  |  ")
	}

	var writeErr error
	var stop func()
	stop = loop.Every(0, func() {
		if _, err := fmt.Fprintf(w, "\r%s", line()); err != nil {
			writeErr = err
			stop()
			return
		}
		for _, c := range counters {
			if !c.Done() {
				return
			}
		}
		stop()
	})
	err := loop.Run(ctx, true)
	for _, c := range counters {
		c.Close()
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write output: %w", writeErr)
	}
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\r%s\n", line()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
