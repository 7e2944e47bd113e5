// Package ui holds the terminal plumbing shared by the CLI and the TUI.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// NewLogger creates the application logger. Verbose enables debug output
// and timestamps.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Level: log.InfoLevel})
	if verbose {
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
	}
	ConfigureLoggerStyles(l)
	return l
}

// ConfigureLoggerStyles applies the lipgloss level styling to l.
func ConfigureLoggerStyles(l *log.Logger) {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	l.SetStyles(styles)
}

// DisableColor strips colors from lipgloss output and from l.
func DisableColor(l *log.Logger) {
	lipgloss.SetColorProfile(termenv.Ascii)
	if l != nil {
		l.SetColorProfile(termenv.Ascii)
	}
}

// ColorWanted reports whether colored output should be used: not disabled
// by flag or NO_COLOR, and stdout is a terminal.
func ColorWanted(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether stdin is a terminal a prompt can read from.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
