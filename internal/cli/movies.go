package cli

import (
	"errors"
	"strings"

	"reelist-cli/internal/mutate"
	"reelist-cli/internal/rating"

	"github.com/spf13/cobra"
)

func newMoviesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Movie list commands",
	}
	cmd.AddCommand(newMoviesListCmd(app))
	cmd.AddCommand(newMoviesShowCmd(app))
	cmd.AddCommand(newMoviesAddCmd(app))
	cmd.AddCommand(newMoviesRateCmd(app))
	cmd.AddCommand(newMoviesCommentCmd(app))
	cmd.AddCommand(newMoviesDeleteCmd(app))
	cmd.AddCommand(newMoviesSortCmd(app))
	cmd.AddCommand(newMoviesResetCmd(app))
	return cmd
}

func newMoviesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies in stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": db.Movies,
				"meta": map[string]any{"total": len(db.Movies)},
			})
		},
	}
	return cmd
}

func newMoviesShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <movie-id>",
		Short: "Show one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			movieID := strings.TrimSpace(args[0])
			m, ok := db.FindMovie(movieID)
			if !ok {
				return writeErr(cmd, errNotFound("movie", movieID))
			}
			return writeOut(cmd, app, map[string]any{
				"data": m,
				"_hints": []string{
					"reelist events list --movie " + m.ID,
				},
			})
		},
	}
	return cmd
}

func newMoviesAddCmd(app *App) *cobra.Command {
	var title string
	var description string
	var ratingVal float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie at the top of the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.AddMovie(db, title, description, ratingVal)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("movie.add", res.Movie.ID, res.EventPayload)
			return writeOut(cmd, app, map[string]any{
				"data": res.Movie,
				"_hints": []string{
					"reelist movies show " + res.Movie.ID,
				},
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Movie title")
	cmd.Flags().StringVar(&description, "description", "", "Short description (optional)")
	cmd.Flags().Float64Var(&ratingVal, "rating", rating.Default, "Star rating, 0-5 in half steps")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newMoviesRateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <movie-id> <rating>",
		Short: "Set the star rating of a movie",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rating.Parse(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.SetRating(db, args[0], v)
			if err != nil {
				return writeErr(cmd, err)
			}
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				_ = s.AppendEvent("movie.rate", res.Movie.ID, res.EventPayload)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Movie})
		},
	}
	return cmd
}

func newMoviesCommentCmd(app *App) *cobra.Command {
	var message string
	var clear bool

	cmd := &cobra.Command{
		Use:   "comment <movie-id>",
		Short: "Set or clear the comment on a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// --message "" is meaningful (stores a literal empty comment), so
			// check flag presence rather than the value.
			if !clear && !cmd.Flags().Changed("message") {
				return writeErr(cmd, errors.New("missing --message (or --clear)"))
			}
			if clear && cmd.Flags().Changed("message") {
				return writeErr(cmd, errors.New("--message and --clear are mutually exclusive"))
			}
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.SetComment(db, args[0], message, clear)
			if err != nil {
				return writeErr(cmd, err)
			}
			if res.Changed {
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				_ = s.AppendEvent("movie.comment", res.Movie.ID, res.EventPayload)
			}
			return writeOut(cmd, app, map[string]any{"data": res.Movie})
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Comment body (markdown)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the comment entirely")
	return cmd
}

func newMoviesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <movie-id>",
		Short: "Delete a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			movieID := strings.TrimSpace(args[0])
			res, err := mutate.DeleteMovie(db, movieID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !res.Changed {
				return writeErr(cmd, errNotFound("movie", movieID))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("movie.delete", res.Movie.ID, res.EventPayload)
			return writeOut(cmd, app, map[string]any{"data": res.Movie})
		},
	}
	return cmd
}

func newMoviesSortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the list by rating, highest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.SortByRating(db)
			// A sort counts as a list mutation even when the order held.
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("list.sort", "", res.EventPayload)
			return writeOut(cmd, app, map[string]any{
				"data": db.Movies,
				"meta": map[string]any{"changed": res.Changed},
			})
		},
	}
	return cmd
}

func newMoviesResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the list with the default set",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res := mutate.ResetMovies(db)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			_ = s.AppendEvent("list.reset", "", res.EventPayload)
			return writeOut(cmd, app, map[string]any{
				"data": db.Movies,
				"meta": map[string]any{"total": len(db.Movies)},
			})
		},
	}
	return cmd
}
