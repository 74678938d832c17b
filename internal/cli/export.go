package cli

import (
	"fmt"
	"strings"

	"reelist-cli/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var toPath string
	var raw bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the list as Markdown (derived, not canonical)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if strings.TrimSpace(toPath) == "" {
				md, err := export.RenderMoviesMarkdown(db)
				if err != nil {
					return writeErr(cmd, err)
				}
				if raw {
					_, err := fmt.Fprint(cmd.OutOrStdout(), md)
					return err
				}
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{"markdown": md},
				})
			}

			res, err := export.WriteMovies(db, toPath, export.WriteOptions{Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&toPath, "to", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "Overwrite an existing file")
	return cmd
}
