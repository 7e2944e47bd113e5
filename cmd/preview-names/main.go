// Command preview-names walks a directory tree and prints the title-cased
// name computed for every matching file, without renaming anything.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mydehq/titlezip/internal/config"
	"github.com/mydehq/titlezip/internal/titlecase"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	pattern := config.DefaultPattern
	if len(os.Args) > 2 {
		pattern = os.Args[2]
	}

	caser := titlecase.New(titlecase.FromEnv())

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !config.Match(pattern, info.Name()) {
			return nil
		}

		target := titlecase.TargetName(caser, info.Name())
		mark := " "
		if titlecase.NeedsRename(info.Name(), target) {
			mark = "*"
		}
		fmt.Printf("%s %s\n  -> %s\n", mark, path, target)
		return nil
	})

	if err != nil {
		fmt.Printf("Error walking path: %v\n", err)
		os.Exit(1)
	}
}
