package cli

import (
	"fmt"
	"os"
	"strings"

	"reelist-cli/internal/format"
	"reelist-cli/internal/store"
	"reelist-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Workspace  string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "reelist",
		Short:        "Personal movie list (local-first) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  reelist

  # Scriptable commands
  reelist movies list

  # Rate and comment from scripts
  reelist movies rate mov-abc12345 4.5

  # Direct movie lookup (shortcut for: reelist movies show <movie-id>)
  reelist mov-abc12345
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("REELIST_DIR", ""), "Path to store dir (advanced: overrides workspace resolution; use for fixtures/tests)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("REELIST_WORKSPACE", ""), "Workspace name (default: the one set with `workspace use`)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("REELIST_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newMoviesCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newWorkspaceCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	dir, err := resolveDir(app)
	if err != nil {
		return err
	}
	return tui.Run(dir, app.Workspace)
}

func resolveDir(app *App) (string, error) {
	if app.Dir != "" {
		return app.Dir, nil
	}

	// Workspace-first:
	// 1) --workspace
	// 2) ~/.reelist/config.json currentWorkspace
	// 3) .reelist discovery upward from cwd, else the per-user store
	if app.Workspace != "" {
		d, err := store.WorkspaceDir(app.Workspace)
		if err != nil {
			return "", err
		}
		app.Dir = d
		return d, nil
	}
	if cfg, err := store.LoadConfig(); err == nil && cfg.CurrentWorkspace != "" {
		d, err := store.WorkspaceDir(cfg.CurrentWorkspace)
		if err != nil {
			return "", err
		}
		app.Workspace = cfg.CurrentWorkspace
		app.Dir = d
		return d, nil
	}

	d, err := store.DefaultDir()
	if err != nil {
		return "", err
	}
	app.Dir = d
	return d, nil
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
