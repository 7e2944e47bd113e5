package renamer_test

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mydehq/titlezip/internal/renamer"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/types"
	"golang.org/x/text/language"
)

func newRenamer() *renamer.Renamer {
	return renamer.New(titlecase.New(language.Und), "*.zip")
}

func createFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

func TestRun_Scenarios(t *testing.T) {
	t.Run("LowercaseRenamed", testLowercaseRenamed)
	t.Run("AlreadyTitledSkipped", testAlreadyTitledSkipped)
	t.Run("MixedCaseRenamed", testMixedCaseRenamed)
	t.Run("EmptyDirectory", testEmptyDirectory)
	t.Run("Collision", testCollision)
}

func testLowercaseRenamed(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "project files.zip")

	res, err := newRenamer().Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Found != 1 || res.Renamed != 1 {
		t.Errorf("Found=%d Renamed=%d; want 1/1", res.Found, res.Renamed)
	}
	rec := res.All[0]
	if rec.NewName != "Project Files.zip" || !rec.NeedsRename {
		t.Errorf("record = %+v", rec)
	}
	if len(res.RenamedRecords) != 1 || res.RenamedRecords[0] != rec {
		t.Errorf("RenamedRecords = %+v", res.RenamedRecords)
	}
	if got := listDir(t, tmpDir); !slices.Equal(got, []string{"Project Files.zip"}) {
		t.Errorf("directory = %v", got)
	}
}

func testAlreadyTitledSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "Already Titled.zip")

	var events []types.Event
	res, err := newRenamer().WithEvents(func(e types.Event) { events = append(events, e) }).Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Found != 1 || res.Renamed != 0 {
		t.Errorf("Found=%d Renamed=%d; want 1/0", res.Found, res.Renamed)
	}
	if res.All[0].NeedsRename {
		t.Error("NeedsRename = true for already titled file")
	}
	if len(events) != 1 || events[0].Type != types.EventSkip {
		t.Errorf("events = %+v; want one skip", events)
	}
}

func testMixedCaseRenamed(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "mixed CASE name.zip")

	res, err := newRenamer().Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Renamed != 1 {
		t.Errorf("Renamed = %d; want 1", res.Renamed)
	}
	if got := listDir(t, tmpDir); !slices.Equal(got, []string{"Mixed Case Name.zip"}) {
		t.Errorf("directory = %v", got)
	}
}

func testEmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "notes.txt")

	res, err := newRenamer().Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Found != 0 || res.Renamed != 0 || len(res.All) != 0 || len(res.RenamedRecords) != 0 {
		t.Errorf("result = %+v; want empty", res)
	}
}

func testCollision(t *testing.T) {
	tmpDir := t.TempDir()
	// Same name once lowercased; only distinct files on a case-sensitive filesystem
	createFiles(t, tmpDir, "project files.zip", "Project Files.zip")
	if len(listDir(t, tmpDir)) != 2 {
		t.Skip("filesystem is case-insensitive")
	}

	var failed []types.Event
	res, err := newRenamer().WithEvents(func(e types.Event) {
		if e.Type == types.EventFail {
			failed = append(failed, e)
		}
	}).Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Found != 2 || res.Renamed != 0 {
		t.Errorf("Found=%d Renamed=%d; want 2/0", res.Found, res.Renamed)
	}
	if len(res.RenamedRecords) != 0 {
		t.Errorf("RenamedRecords = %+v; want none", res.RenamedRecords)
	}
	if len(res.Failures) != 1 || len(failed) != 1 {
		t.Fatalf("Failures = %+v, fail events = %d; want 1", res.Failures, len(failed))
	}

	f := res.Failures[0]
	if f.Record.OriginalName != "project files.zip" || !f.Record.NeedsRename {
		t.Errorf("failed record = %+v", f.Record)
	}
	var renameErr types.RenameError
	if !errors.As(f.Err, &renameErr) || !errors.Is(f.Err, fs.ErrExist) {
		t.Errorf("failure error = %v; want RenameError wrapping ErrExist", f.Err)
	}

	// Neither file was touched
	data, _ := os.ReadFile(filepath.Join(tmpDir, "Project Files.zip"))
	if string(data) != "Project Files.zip" {
		t.Errorf("existing file was overwritten: %q", data)
	}
	if got := res.Pending(); len(got) != 1 || got[0].OriginalName != "project files.zip" {
		t.Errorf("Pending() = %+v", got)
	}
}

func TestRun_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "a b.zip", "ÉCOLE  notes.ZIP", "Done.zip", "readme.txt")

	first, err := newRenamer().Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if first.Renamed != 2 {
		t.Errorf("first Renamed = %d; want 2", first.Renamed)
	}

	second, err := newRenamer().Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if second.Found != 3 || second.Renamed != 0 {
		t.Errorf("second Found=%d Renamed=%d; want 3/0", second.Found, second.Renamed)
	}

	want := []string{"A B.zip", "Done.zip", "readme.txt", "École  Notes.ZIP"}
	if got := listDir(t, tmpDir); !slices.Equal(got, want) {
		t.Errorf("directory = %v; want %v", got, want)
	}
}

func TestRun_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "lower case.zip")

	var events []types.Event
	res, err := newRenamer().WithDryRun().WithEvents(func(e types.Event) { events = append(events, e) }).Run(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.DryRun || res.Renamed != 0 || len(res.Pending()) != 1 {
		t.Errorf("result = %+v", res)
	}
	if len(events) != 1 || events[0].Type != types.EventPlan {
		t.Errorf("events = %+v; want one plan", events)
	}
	if got := listDir(t, tmpDir); !slices.Equal(got, []string{"lower case.zip"}) {
		t.Errorf("dry run touched the directory: %v", got)
	}
}

func TestRun_EnumerationError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	res, err := newRenamer().Run(context.Background(), missing)

	var enumErr types.EnumerationError
	if !errors.As(err, &enumErr) {
		t.Fatalf("err = %v; want EnumerationError", err)
	}
	if enumErr.Dir != missing {
		t.Errorf("Dir = %q; want %q", enumErr.Dir, missing)
	}
	if res.Found != 0 {
		t.Errorf("Found = %d; want 0", res.Found)
	}
}

// fakeScan yields entries and then, optionally, an error.
func fakeScan(names []string, tail error) renamer.ScanFunc {
	return func(dir, pattern string) iter.Seq2[types.FileEntry, error] {
		return func(yield func(types.FileEntry, error) bool) {
			for _, n := range names {
				e := types.FileEntry{Name: n, Path: filepath.Join(dir, n), Ext: filepath.Ext(n)}
				if !yield(e, nil) {
					return
				}
			}
			if tail != nil {
				yield(types.FileEntry{}, tail)
			}
		}
	}
}

func TestRun_FailuresDoNotStopBatch(t *testing.T) {
	var renamed []string
	rename := func(e types.FileEntry, newName string) error {
		if e.Name == "b.zip" {
			return fs.ErrPermission
		}
		renamed = append(renamed, newName)
		return nil
	}

	res, err := newRenamer().
		WithScanner(fakeScan([]string{"a.zip", "b.zip", "c.zip", "D.zip"}, nil)).
		WithRenameFunc(rename).
		Run(context.Background(), "/virtual")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Found != 4 || res.Renamed != 2 {
		t.Errorf("Found=%d Renamed=%d; want 4/2", res.Found, res.Renamed)
	}
	if !slices.Equal(renamed, []string{"A.zip", "C.zip"}) {
		t.Errorf("renamed = %v", renamed)
	}
	if len(res.Failures) != 1 || !errors.Is(res.Failures[0].Err, fs.ErrPermission) {
		t.Errorf("Failures = %+v", res.Failures)
	}
	var renameErr types.RenameError
	if !errors.As(res.Failures[0].Err, &renameErr) || renameErr.To != "B.zip" {
		t.Errorf("failure not wrapped in RenameError: %v", res.Failures[0].Err)
	}
}

func TestRun_ScanErrorMidway(t *testing.T) {
	boom := errors.New("i/o error")
	res, err := newRenamer().
		WithScanner(fakeScan([]string{"a.zip"}, boom)).
		WithRenameFunc(func(types.FileEntry, string) error { return nil }).
		Run(context.Background(), "/virtual")

	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want wrapped %v", err, boom)
	}
	var enumErr types.EnumerationError
	if !errors.As(err, &enumErr) {
		t.Errorf("err = %T; want EnumerationError", err)
	}
	if res.Found != 1 {
		t.Errorf("Found = %d; want 1", res.Found)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	rename := func(types.FileEntry, string) error {
		calls++
		cancel()
		return nil
	}

	res, err := newRenamer().
		WithScanner(fakeScan([]string{"a.zip", "b.zip"}, nil)).
		WithRenameFunc(rename).
		Run(ctx, "/virtual")

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want context.Canceled", err)
	}
	if calls != 1 || res.Renamed != 1 {
		t.Errorf("calls=%d Renamed=%d; want 1/1", calls, res.Renamed)
	}
}

func TestRenameFile_VanishedSource(t *testing.T) {
	tmpDir := t.TempDir()
	entry := types.FileEntry{Name: "gone.zip", Path: filepath.Join(tmpDir, "gone.zip"), Ext: ".zip"}

	err := renamer.RenameFile(entry, "Gone.zip")
	var renameErr types.RenameError
	if !errors.As(err, &renameErr) {
		t.Fatalf("err = %v; want RenameError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want it to wrap ErrNotExist", err)
	}
}
