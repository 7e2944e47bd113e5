package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mydehq/titlezip/internal/cli"
	"github.com/mydehq/titlezip/internal/renamer"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/types"
)

type state int

const (
	stateInitial state = iota
	stateScanning
	stateConfirmation
	stateRenaming
	stateFinished
)

var (
	titleStyle    = cli.StyleCommand
	subTitleStyle = cli.StyleDim

	infoStyle    = cli.StyleCommand
	successStyle = cli.StyleHeader
	warningStyle = cli.StylePattern
	errorStyle   = cli.StyleError

	actionBarMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Background(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Padding(0, 1)

	actionBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Background(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Padding(0, 1).
				Bold(true)
)

type scanDoneMsg struct {
	res *types.Result
	err error
}

type eventMsg types.Event

type renameDoneMsg struct {
	res *types.Result
	err error
}

// Model previews the renames of one directory and applies them on request.
type Model struct {
	state    state
	path     string
	pattern  string
	caser    titlecase.Caser
	err      error
	quitting bool

	table   table.Model
	plan    *types.Result
	result  *types.Result
	events  []string
	eventCh chan types.Event

	width  int
	height int
}

// NewModel creates the model for path. Files are selected with pattern and
// named with caser.
func NewModel(path, pattern string, caser titlecase.Caser) Model {
	absPath, _ := filepath.Abs(path)

	columns := []table.Column{
		{Title: "Original Name", Width: 40},
		{Title: "New Name", Width: 40},
		{Title: "Size", Width: 10},
		{Title: "Status", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		state:   stateScanning,
		path:    absPath,
		pattern: pattern,
		caser:   caser,
		table:   t,
	}
}

// Init starts the first scan right away.
func (m Model) Init() tea.Cmd {
	return m.scanDir()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.state != stateRenaming {
				m.quitting = true
				return m, tea.Quit
			}

		case "enter":
			switch {
			case m.state == stateInitial || m.state == stateFinished:
				m.state = stateScanning
				m.err = nil
				m.result = nil
				cmds = append(cmds, m.scanDir())
			case m.state == stateConfirmation && len(m.plan.Pending()) > 0:
				m.state = stateRenaming
				m.events = nil
				m.eventCh = make(chan types.Event, 64)
				cmds = append(cmds, m.runRename(), m.listenForEvents())
			}

		case "backspace", "r":
			if m.state == stateConfirmation {
				m.state = stateScanning
				cmds = append(cmds, m.scanDir())
			}
		}

	case scanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateInitial
			return m, nil
		}
		m.plan = msg.res
		m.state = stateConfirmation
		m.updateTable()

	case eventMsg:
		var styled string
		switch msg.Type {
		case types.EventRename:
			styled = successStyle.Render(msg.Message)
		case types.EventFail:
			styled = errorStyle.Render(fmt.Sprintf("%s (%v)", msg.Message, msg.Err))
		default:
			styled = subTitleStyle.Render(msg.Message)
		}
		m.events = append(m.events, styled)
		if len(m.events) > 100 {
			m.events = m.events[len(m.events)-100:]
		}
		return m, m.listenForEvents()

	case renameDoneMsg:
		m.result = msg.res
		m.err = msg.err
		m.state = stateFinished
		m.updateTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
	}

	if m.state == stateConfirmation || m.state == stateFinished {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateTable() {
	src := m.plan
	if m.result != nil {
		src = m.result
	}
	if src == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(src.All))
	for _, rec := range src.All {
		rows = append(rows, table.Row{rec.OriginalName, rec.NewName, humanize.Bytes(uint64(rec.Size)), m.status(rec)})
	}
	m.table.SetRows(rows)
}

func (m Model) status(rec types.FileRecord) string {
	if !rec.NeedsRename {
		return "OK"
	}
	if m.result == nil {
		return "Rename"
	}
	for _, f := range m.result.Failures {
		if f.Record.OriginalName == rec.OriginalName {
			return "Failed"
		}
	}
	return "Renamed"
}

func (m *Model) resizeTable() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	totalW := m.width - 4
	sizeW, statusW := 10, 10
	flexW := (totalW - sizeW - statusW) / 2
	if flexW < 10 {
		flexW = 10
	}

	m.table.SetColumns([]table.Column{
		{Title: "Original Name", Width: flexW},
		{Title: "New Name", Width: flexW},
		{Title: "Size", Width: sizeW},
		{Title: "Status", Width: statusW},
	})

	contentH := m.height - 6
	if contentH < 5 {
		contentH = 5
	}
	m.table.SetHeight(contentH - 2)
}

func (m Model) scanDir() tea.Cmd {
	r := renamer.New(m.caser, m.pattern).WithDryRun()
	path := m.path
	return func() tea.Msg {
		res, err := r.Run(context.Background(), path)
		return scanDoneMsg{res: res, err: err}
	}
}

func (m Model) listenForEvents() tea.Cmd {
	ch := m.eventCh
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func (m Model) runRename() tea.Cmd {
	ch := m.eventCh
	r := renamer.New(m.caser, m.pattern).WithEvents(func(e types.Event) { ch <- e })
	path := m.path
	return func() tea.Msg {
		defer close(ch)
		res, err := r.Run(context.Background(), path)
		return renameDoneMsg{res: res, err: err}
	}
}

func (m Model) renderActionBar(actions []string) string {
	var rendered []string
	for _, a := range actions {
		parts := strings.SplitN(a, " ", 2)
		if len(parts) == 2 {
			rendered = append(rendered, actionBarKeyStyle.Render(parts[0])+actionBarMsgStyle.Render(parts[1]))
		}
	}
	bar := strings.Join(rendered, lipgloss.NewStyle().Background(lipgloss.Color("57")).Render("  "))

	padW := m.width - lipgloss.Width(bar)
	if padW < 0 {
		padW = 0
	}
	padding := lipgloss.NewStyle().Background(lipgloss.Color("57")).Render(strings.Repeat(" ", padW))

	return bar + padding
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.width <= 0 || m.height <= 0 {
		return "Starting..."
	}

	var s strings.Builder

	header := fmt.Sprintf("%s  %s", titleStyle.Render("TITLEZIP"), subTitleStyle.Render(fmt.Sprintf("DIR: %s  PATTERN: %s", m.path, m.pattern)))
	s.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(header))
	s.WriteString("\n")

	var contentView, actionBarView string
	center := func(body string) string {
		return lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, body)
	}

	switch m.state {
	case stateInitial:
		if m.err != nil {
			contentView = center(errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Enter to try again.", m.err)))
		} else {
			contentView = center("Press Enter to scan the directory")
		}
		actionBarView = m.renderActionBar([]string{"Enter Scan", "q Quit"})

	case stateScanning:
		contentView = center(infoStyle.Render("Scanning directory..."))
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateConfirmation:
		pending := len(m.plan.Pending())
		if m.plan.Found == 0 {
			contentView = center(fmt.Sprintf("No %s files found.", m.pattern))
			actionBarView = m.renderActionBar([]string{"r Rescan", "q Quit"})
		} else {
			stat := subTitleStyle.Render(fmt.Sprintf("%d files found, %d to rename.", m.plan.Found, pending))
			contentView = lipgloss.NewStyle().Padding(0, 2).Render(stat + "\n\n" + m.table.View())
			actions := []string{"r Rescan", "↑/↓ Scroll", "q Quit"}
			if pending > 0 {
				actions = append([]string{"Enter Rename"}, actions...)
			}
			actionBarView = m.renderActionBar(actions)
		}

	case stateRenaming:
		logs := subTitleStyle.Render("Waiting for events...")
		if len(m.events) > 0 {
			maxLogs := m.height - 8
			if maxLogs < 1 {
				maxLogs = 1
			}
			start := max(0, len(m.events)-maxLogs)
			logs = strings.Join(m.events[start:], "\n")
		}
		contentView = lipgloss.NewStyle().Padding(0, 2).Render(infoStyle.Render("Renaming...") + "\n\n" + logs)
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateFinished:
		var body string
		if m.result != nil {
			body = fmt.Sprintf("%s\nRenamed %d of %d files.", successStyle.Bold(true).Render("COMPLETED"), m.result.Renamed, m.result.Found)
			if n := len(m.result.Failures); n > 0 {
				body += "\n" + warningStyle.Render(fmt.Sprintf("%d renames failed.", n))
			}
		}
		if m.err != nil {
			body += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		}
		summary := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).BorderForeground(lipgloss.Color("34")).Render(body)
		contentView = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Padding(0, 2).Render(summary), lipgloss.NewStyle().Padding(1, 2).Render(m.table.View()))
		actionBarView = m.renderActionBar([]string{"Enter Rescan", "q Quit"})
	}

	s.WriteString(contentView)

	// Force the action bar to the bottom
	currentLines := strings.Count(s.String(), "\n")
	if needed := (m.height - 2) - currentLines; needed > 0 {
		s.WriteString(strings.Repeat("\n", needed))
	} else {
		s.WriteString("\n")
	}
	s.WriteString(actionBarView)

	return s.String()
}
