package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydehq/titlezip/internal/config"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/tui"
)

func main() {
	path := "."
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGlobal()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	tag := titlecase.FromEnv()
	if cfg.Language != "" {
		if tag, err = titlecase.ParseLanguage(cfg.Language); err != nil {
			fmt.Printf("Invalid language %q: %v\n", cfg.Language, err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(tui.NewModel(path, cfg.Pattern, titlecase.New(tag)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
