package cli

import (
	"fmt"

	"github.com/mydehq/titlezip/internal/renamer"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "List files whose names are not title-cased",
	Long:  "Scans the specified directory without renaming anything and prints the files that would be renamed. Exits with status 1 when any are found.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, pathArg(args))
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, path string) error {
	s, err := loadSettings(cmd, path)
	if err != nil {
		return err
	}

	res, err := renamer.New(s.caser, s.cfg.Pattern).WithDryRun().Run(cmd.Context(), s.dir)
	if err != nil {
		return err
	}

	pending := res.Pending()
	if len(pending) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "All %d files in %s are title-cased\n", res.Found, StylePath.Render(s.dir))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s in: %s\n", StyleHeader.Render("Names to fix"), StylePath.Render(s.dir))
	for _, rec := range pending {
		fmt.Fprintf(cmd.OutOrStdout(), " %s %s %s %s\n", StyleDim.Render("-"), rec.OriginalName, StyleDim.Render("→"), StyleCommand.Render(rec.NewName))
	}
	return errReported
}
