package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mydehq/titlezip/internal/types"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorPattern = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	// Exported Styles for CLI and TUI
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StylePattern = lipgloss.NewStyle().Foreground(colorPattern)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleError   = lipgloss.NewStyle().Bold(true).Foreground(colorFlag)
	styleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// titlezipTheme returns the huh theme used by prompts.
func titlezipTheme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// FormatEvent styles a per-file notice for the terminal.
// "Renamed: old.zip → New.zip" renders the label, a dimmed old name and the new name.
func FormatEvent(e types.Event) string {
	rec := e.Record
	switch e.Type {
	case types.EventRename:
		return fmt.Sprintf("%s %s %s %s",
			StyleHeader.Render("Renamed:"),
			StyleDim.Render(rec.OriginalName),
			StyleDim.Render("→"),
			StyleCommand.Render(rec.NewName),
		)
	case types.EventPlan:
		return fmt.Sprintf("%s %s %s %s",
			StylePattern.Render("Would rename:"),
			StyleDim.Render(rec.OriginalName),
			StyleDim.Render("→"),
			StyleCommand.Render(rec.NewName),
		)
	case types.EventFail:
		return fmt.Sprintf("%s %s %s %s",
			StyleError.Render("Failed:"),
			StylePath.Render(rec.OriginalName),
			StyleDim.Render("→"),
			StylePath.Render(rec.NewName),
		)
	case types.EventSkip:
		return fmt.Sprintf("%s %s", StyleDim.Render("Skipped:"), StylePath.Render(rec.OriginalName))
	}
	return e.Message
}
