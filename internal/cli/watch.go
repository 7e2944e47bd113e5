package cli

import (
	"fmt"

	"github.com/mydehq/titlezip/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Keep a directory's ZIP names title-cased",
	Long:  "Renames the existing files once, then watches the directory and renames new matching files as they appear. Stops on Ctrl+C.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, pathArg(args))
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, path string) error {
	s, err := loadSettings(cmd, path)
	if err != nil {
		return err
	}
	r := s.newRenamer()

	// Register before the first pass so files arriving during it are not missed
	w := watcher.New(s.dir, r, logger)
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Close()

	res, err := r.Run(cmd.Context(), s.dir)
	if err != nil {
		return err
	}
	PrintSummary(cmd.OutOrStdout(), res)

	logger.Info(fmt.Sprintf("%s %s for new %s files", StyleHeader.Render("Watching"), StylePath.Render(s.dir), StylePattern.Render(s.cfg.Pattern)))
	if err := w.Run(cmd.Context()); err != nil {
		return err
	}

	if s.dryRun {
		logger.Info(StyleDim.Render(fmt.Sprintf("Stopped: %d would be renamed, %d failed", w.Planned, w.Failed)))
		return nil
	}
	logger.Info(StyleDim.Render(fmt.Sprintf("Stopped: %d renamed, %d failed", w.Renamed, w.Failed)))
	return nil
}
