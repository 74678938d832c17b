package cli

import (
	"strings"

	"reelist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int
	var movieID string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the local activity log",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events (oldest-first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			var evs any
			if id := strings.TrimSpace(movieID); id != "" {
				evs, err = store.ReadEventsForMovie(dir, id, limit)
			} else {
				evs, err = store.ReadEvents(dir, limit)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 200, "Max events to return (0 = all)")
	listCmd.Flags().StringVar(&movieID, "movie", "", "Only events for this movie id")

	cmd.AddCommand(listCmd)
	return cmd
}
