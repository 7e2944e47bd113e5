package config

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/mydehq/titlezip/internal/types"
)

// Match reports whether name matches the glob pattern, ignoring case.
func Match(pattern, name string) bool {
	ok, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && ok
}

// Scan lists the regular files in dir whose names match pattern. It does not
// descend into subdirectories. The listing is read up front so renames made
// while ranging over the sequence cannot make an entry show up twice.
// A listing failure is yielded once as a types.EnumerationError.
func Scan(dir, pattern string) iter.Seq2[types.FileEntry, error] {
	return func(yield func(types.FileEntry, error) bool) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			yield(types.FileEntry{}, types.EnumerationError{Dir: dir, Err: err})
			return
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			yield(types.FileEntry{}, types.EnumerationError{Dir: dir, Err: err})
			return
		}

		for _, e := range entries {
			if e.IsDir() || !Match(pattern, e.Name()) {
				continue
			}

			entry := types.FileEntry{
				Name: e.Name(),
				Path: filepath.Join(dir, e.Name()),
				Ext:  filepath.Ext(e.Name()),
			}
			// The file may be gone already; that surfaces later as a rename failure
			if info, err := e.Info(); err == nil {
				entry.Size = info.Size()
			}

			if !yield(entry, nil) {
				return
			}
		}
	}
}
