package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mydehq/titlezip/internal/types"
)

// PrintSummary writes the counts and the record tables of a run to w.
func PrintSummary(w io.Writer, res *types.Result) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", StyleHeader.Render("Files found:"), StyleCommand.Render(strconv.Itoa(res.Found)))
	if res.DryRun {
		fmt.Fprintf(w, "%s %s\n", StylePattern.Render("Would rename:"), StyleCommand.Render(strconv.Itoa(len(res.Pending()))))
	} else {
		fmt.Fprintf(w, "%s %s\n", StyleHeader.Render("Files renamed:"), StyleCommand.Render(strconv.Itoa(res.Renamed)))
	}
	if len(res.Failures) > 0 {
		fmt.Fprintf(w, "%s %s\n", StyleError.Render("Failed:"), StyleCommand.Render(strconv.Itoa(len(res.Failures))))
	}

	if len(res.All) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHeader.Render("All files"))
		fmt.Fprintln(w, RecordsTable(res.All))
	}

	if len(res.RenamedRecords) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleHeader.Render("Renamed files"))
		fmt.Fprintln(w, RenamedTable(res.RenamedRecords))
	}

	if len(res.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleError.Render("Failed renames"))
		fmt.Fprintln(w, FailuresTable(res.Failures))
	}
}

// RecordsTable lists every record with its rename decision.
func RecordsTable(records []types.FileRecord) string {
	t := newTable("Original Name", "New Name", "Needs Rename", "Size")
	for _, r := range records {
		t.Row(r.OriginalName, r.NewName, yesNo(r.NeedsRename), humanize.Bytes(uint64(r.Size)))
	}
	return t.String()
}

// RenamedTable lists the records that were renamed.
func RenamedTable(records []types.FileRecord) string {
	t := newTable("Original Name", "New Name")
	for _, r := range records {
		t.Row(r.OriginalName, r.NewName)
	}
	return t.String()
}

// FailuresTable lists failed renames with their cause.
func FailuresTable(failures []types.Failure) string {
	t := newTable("Original Name", "New Name", "Error")
	for _, f := range failures {
		t.Row(f.Record.OriginalName, f.Record.NewName, cause(f.Err))
	}
	return t.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

// cause drops the paths from a rename error; the table already shows them.
func cause(err error) string {
	var re types.RenameError
	if errors.As(err, &re) && re.Err != nil {
		return re.Err.Error()
	}
	return err.Error()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
