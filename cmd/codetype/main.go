// Package main provides the CLI entrypoint for codetype.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/codetype/internal/config"
	"github.com/verte-zerg/codetype/internal/highlight"
	"github.com/verte-zerg/codetype/internal/layout"
	"github.com/verte-zerg/codetype/internal/model"
	"github.com/verte-zerg/codetype/internal/sampler"
	"github.com/verte-zerg/codetype/internal/session"
	"github.com/verte-zerg/codetype/internal/stats"
	"github.com/verte-zerg/codetype/internal/statsui"
	"github.com/verte-zerg/codetype/internal/store"
	"github.com/verte-zerg/codetype/internal/tui"
)

const (
	defaultRoot            = "."
	defaultExt             = ".go"
	defaultDepth           = sampler.DefaultMaxDepth
	defaultFontSize        = 14.0
	defaultMargin          = 12.0
	defaultTranscriptColor = "#ffffff"
	defaultCacheSize       = 64
	defaultCurveWindow     = 20
	defaultTableWidth      = 100
	maxDepth               = 64
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var (
	practiceRoot            string
	practiceExt             string
	practiceDepth           int
	practiceFontSize        float64
	practiceMargin          float64
	practiceTranscriptColor string
	practiceSeed            int64
	practiceHistory         bool
	practiceCacheSize       int
	practiceLanguage        string

	historyExt         string
	historySince       string
	historyLast        int
	historyCurveWindow int
	historyPlain       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "codetype",
		Short:         "Practice typing real source code",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	addDiscoveryFlags(rootCmd)
	rootCmd.Flags().Float64Var(&practiceFontSize, "font-size", defaultFontSize, "nominal font size used for glyph layout")
	rootCmd.Flags().Float64Var(&practiceMargin, "margin", defaultMargin, "left margin in layout units")
	rootCmd.Flags().StringVar(&practiceTranscriptColor, "transcript-color", defaultTranscriptColor, "color of typed text (#rrggbb)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed for file selection (0 = time based)")
	rootCmd.Flags().BoolVar(&practiceHistory, "history", true, "record finished rounds")
	rootCmd.Flags().IntVar(&practiceCacheSize, "cache-size", defaultCacheSize, "number of highlighted files to cache")
	rootCmd.Flags().StringVar(&practiceLanguage, "language", "", "force a highlighter language (default: detect from file)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCandidatesCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func addDiscoveryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&practiceRoot, "root", defaultRoot, "directory to sample source files from")
	cmd.Flags().StringVar(&practiceExt, "ext", defaultExt, "file extension to practice")
	cmd.Flags().IntVar(&practiceDepth, "depth", defaultDepth, "maximum directory depth to search")
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	p := fileCfg.Practice
	applyStringConfig(cmd, "root", &practiceRoot, p.Root)
	applyStringConfig(cmd, "ext", &practiceExt, p.Ext)
	applyIntConfig(cmd, "depth", &practiceDepth, p.Depth)
	applyFloatConfig(cmd, "font-size", &practiceFontSize, p.FontSize)
	applyFloatConfig(cmd, "margin", &practiceMargin, p.Margin)
	applyStringConfig(cmd, "transcript-color", &practiceTranscriptColor, p.TranscriptColor)
	applyInt64Config(cmd, "seed", &practiceSeed, p.Seed)
	applyBoolConfig(cmd, "history", &practiceHistory, p.History)
	applyIntConfig(cmd, "cache-size", &practiceCacheSize, p.CacheSize)
	applyStringConfig(cmd, "language", &practiceLanguage, p.Language)

	cfg := model.Config{
		Root:            practiceRoot,
		Ext:             practiceExt,
		Depth:           practiceDepth,
		FontSize:        practiceFontSize,
		Margin:          practiceMargin,
		TranscriptColor: practiceTranscriptColor,
		Seed:            practiceSeed,
		History:         practiceHistory,
		CacheSize:       practiceCacheSize,
		Language:        practiceLanguage,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func discover(cfg model.Config) (*sampler.Sampler, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("--root %s is not a directory", cfg.Root)
	}
	fsys := os.DirFS(cfg.Root)
	set := sampler.Discover(fsys, ".", cfg.Ext, cfg.Depth)
	if cfg.Seed != 0 {
		return sampler.NewSeeded(fsys, set, sampler.DefaultRetryPolicy, cfg.Seed), nil
	}
	return sampler.New(fsys, set, sampler.DefaultRetryPolicy), nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("codetype needs an interactive terminal")
	}

	logPath := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "codetype")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	smp, err := discover(cfg)
	if err != nil {
		return err
	}
	log.Printf("discovered %d %s files under %s", smp.Candidates().Len(), cfg.Ext, cfg.Root)

	parser, err := highlight.NewCachedParser(highlight.ChromaParser{Language: cfg.Language}, cfg.CacheSize)
	if err != nil {
		return err
	}

	opts := session.Options{
		Metrics: layout.Metrics{FontSize: cfg.FontSize, LeftMargin: cfg.Margin},
	}
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		opts.Recorder = tui.StoreRecorder{Store: st}
	}

	s, err := session.New(smp, parser, opts)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	m := tui.NewModel(s, opts.Metrics, cfg.TranscriptColor)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

func newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List files eligible for practice",
		Args:  cobra.NoArgs,
		RunE:  runCandidatesCmd,
	}
	addDiscoveryFlags(cmd)
	return cmd
}

func runCandidatesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	smp, err := discover(cfg)
	if err != nil {
		return err
	}
	paths := smp.Candidates().Paths()
	if len(paths) == 0 {
		logErrf("No %s files found under %s\n", cfg.Ext, cfg.Root)
		return sampler.ErrNoCandidates
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded rounds",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyExt, "ext", "", "only show rounds for this extension (e.g. .go)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N rounds")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a text report instead of the interactive view")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyCurveWindow <= 0 {
		return fmt.Errorf("--curve-window must be > 0")
	}

	cfg := model.HistoryConfig{
		Ext:   historyExt,
		Since: sinceTime,
		Last:  historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && !historyPlain {
		load := func(ctx context.Context, cfg model.HistoryConfig) (stats.Report, error) {
			return stats.BuildReport(ctx, st, cfg)
		}
		program := tea.NewProgram(statsui.NewModel(load, cfg, historyCurveWindow), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	width := defaultTableWidth
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return report.Render(cmd.OutOrStdout(), historyCurveWindow, width)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# codetype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# root = %q               # Directory to sample source files from
# ext = %q                # File extension to practice
# depth = %d              # Maximum directory depth to search
# font-size = %.1f        # Nominal font size used for glyph layout
# margin = %.1f           # Left margin in layout units
# transcript-color = %q   # Color of typed text
# seed = 0                # Random seed for file selection (0 = time based)
# history = true          # Record finished rounds
# cache-size = %d         # Number of highlighted files to cache
# language = ""           # Force a highlighter language
`,
		defaultRoot,
		defaultExt,
		defaultDepth,
		defaultFontSize,
		defaultMargin,
		defaultTranscriptColor,
		defaultCacheSize,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("--root must not be empty")
	}
	if !strings.HasPrefix(cfg.Ext, ".") || len(cfg.Ext) < 2 {
		return fmt.Errorf("--ext must start with '.'")
	}
	if cfg.Depth < 1 || cfg.Depth > maxDepth {
		return fmt.Errorf("--depth must be between 1 and %d", maxDepth)
	}
	if cfg.FontSize <= 0 {
		return fmt.Errorf("--font-size must be > 0")
	}
	if cfg.Margin < 0 {
		return fmt.Errorf("--margin must be >= 0")
	}
	if !hexColorPattern.MatchString(cfg.TranscriptColor) {
		return fmt.Errorf("--transcript-color must be #rrggbb")
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("--cache-size must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
