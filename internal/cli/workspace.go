package cli

import (
	"time"

	"reelist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newWorkspaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Keep separate movie lists under named workspaces",
	}

	cmd.AddCommand(newWorkspaceInitCmd(app))
	cmd.AddCommand(newWorkspaceUseCmd(app))
	cmd.AddCommand(newWorkspaceCurrentCmd(app))
	cmd.AddCommand(newWorkspaceListCmd(app))

	return cmd
}

func newWorkspaceInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a workspace and set it as current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := store.NormalizeWorkspaceName(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			dir, err := store.LegacyWorkspaceDir(name)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := store.Store{Dir: dir}
			if err := s.Ensure(); err != nil {
				return writeErr(cmd, err)
			}
			// Load seeds the default list when the store is empty; save it so
			// the new workspace starts populated on disk.
			db, err := s.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.CurrentWorkspace = name
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}

			app.Workspace = name
			app.Dir = dir
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"workspace": name,
					"dir":       dir,
					"movies":    len(db.Movies),
				},
			})
		},
	}
	return cmd
}

func newWorkspaceUseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Set current workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := store.NormalizeWorkspaceName(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			dir, err := store.WorkspaceDir(name)
			if err != nil {
				return writeErr(cmd, err)
			}
			s := store.Store{Dir: dir}
			if err := s.Ensure(); err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if cfg.Workspaces != nil {
				if ref, ok := cfg.Workspaces[name]; ok {
					ref.LastOpened = time.Now().UTC().Format(time.RFC3339Nano)
					cfg.Workspaces[name] = ref
				}
			}
			cfg.CurrentWorkspace = name
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}

			app.Workspace = name
			app.Dir = dir
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"workspace": name,
					"dir":       dir,
				},
			})
		},
	}
	return cmd
}

func newWorkspaceCurrentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			name := cfg.CurrentWorkspace
			var dir string
			if name != "" {
				dir, err = store.WorkspaceDir(name)
			} else {
				dir, err = store.DefaultDir()
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"workspace": name,
					"dir":       dir,
				},
			})
		},
	}
	return cmd
}

func newWorkspaceListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}

			entries, err := store.ListWorkspaceEntries()
			if err != nil {
				return writeErr(cmd, err)
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name)
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"workspaces":       names,
					"currentWorkspace": cfg.CurrentWorkspace,
				},
				"meta": map[string]any{
					"details": entries,
				},
			})
		},
	}
	return cmd
}
