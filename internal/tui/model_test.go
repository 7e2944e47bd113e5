package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/types"
	"golang.org/x/text/language"
)

func testModel() Model {
	return NewModel(".", "*.zip", titlecase.New(language.Und))
}

func TestUpdate_ScanThenFinish(t *testing.T) {
	renamed := types.FileRecord{OriginalName: "a b.zip", NewName: "A B.zip", NeedsRename: true}
	failed := types.FileRecord{OriginalName: "c.zip", NewName: "C.zip", NeedsRename: true}
	ok := types.FileRecord{OriginalName: "D.zip", NewName: "D.zip"}

	plan := &types.Result{Found: 3, DryRun: true, All: []types.FileRecord{renamed, failed, ok}}
	m := testModel()

	next, _ := m.Update(scanDoneMsg{res: plan})
	m = next.(Model)
	if m.state != stateConfirmation {
		t.Fatalf("state = %v; want confirmation", m.state)
	}
	if got := len(m.table.Rows()); got != 3 {
		t.Errorf("rows = %d; want 3", got)
	}
	if got := m.table.Rows()[0][3]; got != "Rename" {
		t.Errorf("planned status = %q; want Rename", got)
	}

	res := &types.Result{
		Found:          3,
		Renamed:        1,
		All:            plan.All,
		RenamedRecords: []types.FileRecord{renamed},
		Failures:       []types.Failure{{Record: failed, Err: types.RenameError{}}},
	}
	next, _ = m.Update(renameDoneMsg{res: res})
	m = next.(Model)
	if m.state != stateFinished {
		t.Fatalf("state = %v; want finished", m.state)
	}

	want := []string{"Renamed", "Failed", "OK"}
	for i, row := range m.table.Rows() {
		if row[3] != want[i] {
			t.Errorf("row %d status = %q; want %q", i, row[3], want[i])
		}
	}
}

func TestUpdate_ScanError(t *testing.T) {
	m := testModel()
	next, _ := m.Update(scanDoneMsg{err: types.EnumerationError{Dir: "x"}})
	m = next.(Model)
	if m.state != stateInitial || m.err == nil {
		t.Errorf("state = %v err = %v; want initial with error", m.state, m.err)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := testModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit outside of renaming")
	}

	m.state = stateRenaming
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if next.(Model).quitting {
		t.Error("q must not quit while renaming")
	}
}
