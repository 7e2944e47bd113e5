// Package renamer applies title-cased names to the files of a directory in a
// single sequential pass.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/mydehq/titlezip/internal/config"
	"github.com/mydehq/titlezip/internal/titlecase"
	"github.com/mydehq/titlezip/internal/types"
)

// ScanFunc enumerates the candidate files of dir.
type ScanFunc func(dir, pattern string) iter.Seq2[types.FileEntry, error]

// RenameFunc renames entry to newName inside the entry's directory.
type RenameFunc func(entry types.FileEntry, newName string) error

// Renamer computes target names and renames files whose name changes.
type Renamer struct {
	caser   titlecase.Caser
	pattern string
	dryRun  bool
	scan    ScanFunc
	rename  RenameFunc
	onEvent func(types.Event)
}

// New creates a Renamer that matches files against pattern and names them with caser.
func New(caser titlecase.Caser, pattern string) *Renamer {
	if pattern == "" {
		pattern = config.DefaultPattern
	}
	return &Renamer{
		caser:   caser,
		pattern: pattern,
		scan:    config.Scan,
		rename:  RenameFile,
	}
}

// WithDryRun computes names without touching the filesystem.
func (r *Renamer) WithDryRun() *Renamer {
	r.dryRun = true
	return r
}

// WithEvents registers a callback for per-file notices.
func (r *Renamer) WithEvents(fn func(types.Event)) *Renamer {
	r.onEvent = fn
	return r
}

// WithScanner replaces directory enumeration.
func (r *Renamer) WithScanner(fn ScanFunc) *Renamer {
	r.scan = fn
	return r
}

// WithRenameFunc replaces the rename operation.
func (r *Renamer) WithRenameFunc(fn RenameFunc) *Renamer {
	r.rename = fn
	return r
}

// DryRun reports whether renames are only planned.
func (r *Renamer) DryRun() bool {
	return r.dryRun
}

// Pattern returns the glob used to select files.
func (r *Renamer) Pattern() string {
	return r.pattern
}

// Run scans dir and processes every matching file in order. An enumeration
// failure aborts the run; rename failures are recorded and the run goes on.
// If ctx is cancelled between files the partial result is returned with ctx.Err().
func (r *Renamer) Run(ctx context.Context, dir string) (*types.Result, error) {
	res := &types.Result{Dir: dir, DryRun: r.dryRun}

	for entry, err := range r.scan(dir, r.pattern) {
		if err != nil {
			var enumErr types.EnumerationError
			if !errors.As(err, &enumErr) {
				err = types.EnumerationError{Dir: dir, Err: err}
			}
			return res, err
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Found++
		rec, err := r.Process(entry)
		res.All = append(res.All, rec)

		switch {
		case err != nil:
			res.Failures = append(res.Failures, types.Failure{Record: rec, Err: err})
		case rec.NeedsRename && !r.dryRun:
			res.Renamed++
			res.RenamedRecords = append(res.RenamedRecords, rec)
		}
	}

	return res, nil
}

// Process decides and, when needed, performs the rename of a single file.
// The returned error is a types.RenameError, or nil if the file was renamed,
// skipped or only planned.
func (r *Renamer) Process(entry types.FileEntry) (types.FileRecord, error) {
	newName := titlecase.TargetName(r.caser, entry.Name)
	rec := types.FileRecord{
		OriginalName: entry.Name,
		NewName:      newName,
		NeedsRename:  titlecase.NeedsRename(entry.Name, newName),
		Size:         entry.Size,
	}

	if !rec.NeedsRename {
		r.emit(types.Event{Type: types.EventSkip, Message: "Skipped: " + rec.OriginalName, Record: rec})
		return rec, nil
	}

	if r.dryRun {
		r.emit(types.Event{Type: types.EventPlan, Message: fmt.Sprintf("Would rename: %s → %s", rec.OriginalName, rec.NewName), Record: rec})
		return rec, nil
	}

	if err := r.rename(entry, newName); err != nil {
		var renameErr types.RenameError
		if !errors.As(err, &renameErr) {
			err = types.RenameError{From: entry.Path, To: newName, Err: err}
		}
		r.emit(types.Event{Type: types.EventFail, Message: fmt.Sprintf("Failed: %s → %s", rec.OriginalName, rec.NewName), Record: rec, Err: err})
		return rec, err
	}

	r.emit(types.Event{Type: types.EventRename, Message: fmt.Sprintf("Renamed: %s → %s", rec.OriginalName, rec.NewName), Record: rec})
	return rec, nil
}

func (r *Renamer) emit(e types.Event) {
	if r.onEvent != nil {
		r.onEvent(e)
	}
}

// RenameFile renames entry to newName in the same directory. An existing
// target that is a different file is a collision and is left alone. Where
// the platform supports it (renameat2 with RENAME_NOREPLACE on Linux) the
// check is atomic; elsewhere a file created at the target between the check
// and the rename can still be replaced. A target that is the same file (a
// case-only rename on a case-insensitive filesystem) is allowed.
func RenameFile(entry types.FileEntry, newName string) error {
	target := filepath.Join(filepath.Dir(entry.Path), newName)

	rename := renameNoReplace
	dst, err := os.Lstat(target)
	switch {
	case err == nil:
		src, err := os.Lstat(entry.Path)
		if err != nil {
			return types.RenameError{From: entry.Path, To: target, Err: err}
		}
		if !os.SameFile(src, dst) {
			return types.RenameError{From: entry.Path, To: target, Err: fs.ErrExist}
		}
		// Case-only rename; the target name resolves to the source itself
		rename = os.Rename
	case !errors.Is(err, fs.ErrNotExist):
		return types.RenameError{From: entry.Path, To: target, Err: err}
	}

	if err := rename(entry.Path, target); err != nil {
		return types.RenameError{From: entry.Path, To: target, Err: err}
	}
	return nil
}
