// Package cli implements the titlezip command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mydehq/titlezip/internal/config"
	"github.com/mydehq/titlezip/internal/renamer"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/types"
	"github.com/mydehq/titlezip/internal/ui"
	"github.com/spf13/cobra"
)

var (
	logger = ui.NewLogger(os.Stderr, false)

	flagConfig  string
	flagPattern string
	flagLang    string
	flagDryRun  bool
	flagConfirm bool
	flagVerbose bool
	flagNoColor bool

	// Build information, set via ldflags
	Version = "dev"
)

// errReported signals a failure that has already been shown to the user.
var errReported = errors.New("failures reported")

// RootCmd renames the ZIP files of a directory to title case.
var RootCmd = &cobra.Command{
	Use:   "titlezip [path]",
	Short: "Title-case the names of ZIP files in a directory",
	Long: `titlezip renames every ZIP archive in a directory so that each
space-separated word of its name starts with a capital letter, using the
casing rules of the current locale. The extension is left untouched and
files that already have the right name are skipped.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = ui.NewLogger(os.Stderr, flagVerbose)
		if !ui.ColorWanted(flagNoColor) {
			ui.DisableColor(logger)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRename(cmd, pathArg(args))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/titlezip/config.yml)")
	RootCmd.PersistentFlags().StringVarP(&flagPattern, "pattern", "p", "", "glob selecting files, matched case-insensitively (default \"*.zip\")")
	RootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "language for title casing, e.g. tr or nl-NL (default from LANG)")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	RootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "show what would be renamed without renaming")
	RootCmd.Flags().BoolVar(&flagConfirm, "confirm", false, "ask before renaming")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// settings is the effective configuration of one invocation.
type settings struct {
	dir    string
	cfg    *types.Config
	caser  *titlecase.LocaleCaser
	dryRun bool
}

// loadSettings merges defaults, the config file and command line flags.
func loadSettings(cmd *cobra.Command, path string) (*settings, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	var cfg *types.Config
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadGlobal()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = flagPattern
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = flagLang
	}

	tag := titlecase.FromEnv()
	if cfg.Language != "" {
		tag, err = titlecase.ParseLanguage(cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", cfg.Language, err)
		}
	}

	s := &settings{
		dir:    absPath,
		cfg:    cfg,
		caser:  titlecase.New(tag),
		dryRun: cfg.DryRun,
	}
	if f := cmd.Flags().Lookup("dry-run"); f != nil && f.Changed {
		s.dryRun = flagDryRun
	}

	logger.Debug("Settings loaded", "dir", s.dir, "pattern", cfg.Pattern, "lang", tag, "config", cfg.Path, "dry_run", s.dryRun)
	return s, nil
}

// newRenamer builds a renamer that logs every per-file event.
func (s *settings) newRenamer() *renamer.Renamer {
	r := renamer.New(s.caser, s.cfg.Pattern).WithEvents(logEvent)
	if s.dryRun {
		r.WithDryRun()
	}
	return r
}

func logEvent(e types.Event) {
	if e.Type == types.EventFail {
		logger.Error(FormatEvent(e), "err", e.Err)
		return
	}
	logger.Info(FormatEvent(e))
}

// SetLogger replaces the package logger; used by the TUI and tests.
func SetLogger(l *log.Logger) {
	logger = l
}
