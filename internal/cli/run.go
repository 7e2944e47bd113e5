package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/titlezip/internal/renamer"
	"github.com/mydehq/titlezip/internal/ui"
	"github.com/spf13/cobra"
)

func runRename(cmd *cobra.Command, path string) error {
	s, err := loadSettings(cmd, path)
	if err != nil {
		return err
	}

	if s.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), styleFlag.Render("[DRY RUN]"))
	}
	logger.Info(fmt.Sprintf("%s %s in %s", StyleHeader.Render("Title-casing"), StylePattern.Render(s.cfg.Pattern), StylePath.Render(s.dir)))

	if flagConfirm && !s.dryRun {
		proceed, err := confirmPending(cmd, s)
		if err != nil {
			return err
		}
		if !proceed {
			logger.Info(StyleDim.Render("Cancelled"))
			return nil
		}
	}

	res, err := s.newRenamer().Run(cmd.Context(), s.dir)
	if err != nil {
		// Interrupted runs still report what was already renamed
		if errors.Is(err, context.Canceled) && res.Found > 0 {
			PrintSummary(cmd.OutOrStdout(), res)
		}
		return err
	}
	PrintSummary(cmd.OutOrStdout(), res)

	if len(res.Failures) > 0 {
		logger.Warn(fmt.Sprintf("%d of %d renames failed", len(res.Failures), len(res.Failures)+res.Renamed))
		return errReported
	}
	return nil
}

// confirmPending computes the plan without renaming and asks the user to
// approve it. It returns true without asking when nothing needs a rename.
func confirmPending(cmd *cobra.Command, s *settings) (bool, error) {
	if !ui.IsInteractive() {
		return false, errors.New("--confirm needs an interactive terminal")
	}

	plan, err := renamer.New(s.caser, s.cfg.Pattern).WithDryRun().Run(cmd.Context(), s.dir)
	if err != nil {
		return false, err
	}
	pending := plan.Pending()
	if len(pending) == 0 {
		return true, nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), RenamedTable(pending))

	confirmed := false
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Rename %d of %d files?", len(pending), plan.Found)).
				Affirmative("Rename").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(titlezipTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
