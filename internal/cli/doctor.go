package cli

import (
	"reelist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the stored list and activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			report := store.DoctorState(dir)

			meta := map[string]any{
				"issues":    len(report.Issues),
				"hasErrors": report.HasErrors(),
			}
			hints := []string{
				"reelist docs data",
			}

			if err := writeOut(cmd, app, map[string]any{
				"data":   report,
				"meta":   meta,
				"_hints": hints,
			}); err != nil {
				return err
			}

			if fail && report.HasErrors() {
				return store.ErrDoctorIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with non-zero status if errors are found")
	return cmd
}
