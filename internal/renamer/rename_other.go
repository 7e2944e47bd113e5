//go:build !linux

package renamer

import "os"

func renameNoReplace(from, to string) error {
	return os.Rename(from, to)
}
