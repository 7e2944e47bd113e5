// Package watcher renames matching files as soon as they appear in a directory.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/mydehq/titlezip/internal/config"
	"github.com/mydehq/titlezip/internal/types"
)

// Processor handles a single file; renamer.Renamer satisfies it.
type Processor interface {
	Process(entry types.FileEntry) (types.FileRecord, error)
	Pattern() string
	DryRun() bool
}

// Watcher feeds newly created files of one directory to a Processor, one at a time.
type Watcher struct {
	dir    string
	proc   Processor
	logger *log.Logger
	fw     *fsnotify.Watcher

	// Renamed, Planned and Failed count the outcomes since the watcher
	// started. Planned is only used in dry-run mode.
	Renamed int
	Planned int
	Failed  int
}

// New creates a watcher for dir.
func New(dir string, proc Processor, logger *log.Logger) *Watcher {
	return &Watcher{dir: dir, proc: proc, logger: logger}
}

// Start registers the directory with fsnotify. Files created after Start
// returns are delivered by Run, so an initial pass over the directory should
// happen between the two. Failing to watch dir is returned as a
// types.EnumerationError.
func (w *Watcher) Start() error {
	if w.fw != nil {
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return types.EnumerationError{Dir: w.dir, Err: err}
	}
	w.fw = fw
	w.logger.Debug("Watching", "dir", w.dir, "pattern", w.proc.Pattern())
	return nil
}

// Close releases the fsnotify watcher.
func (w *Watcher) Close() error {
	if w.fw == nil {
		return nil
	}
	err := w.fw.Close()
	w.fw = nil
	return err
}

// Run blocks until ctx is done, calling Start first if needed. The watcher
// is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Close()
	fw := w.fw

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// A rename shows up as Create for the new name
			if ev.Has(fsnotify.Create) {
				w.handlePath(ev.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", "err", err)
		}
	}
}

// handlePath processes path if it is a regular file matching the pattern.
func (w *Watcher) handlePath(path string) {
	name := filepath.Base(path)
	if !config.Match(w.proc.Pattern(), name) {
		return
	}

	info, err := os.Lstat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn("Cannot stat new file", "path", path, "err", err)
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	entry := types.FileEntry{
		Name: name,
		Path: path,
		Ext:  filepath.Ext(name),
		Size: info.Size(),
	}
	rec, err := w.proc.Process(entry)
	switch {
	case err != nil:
		w.Failed++
	case rec.NeedsRename && w.proc.DryRun():
		w.Planned++
	case rec.NeedsRename:
		w.Renamed++
	}
}
