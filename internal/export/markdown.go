package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reelist-cli/internal/model"
	"reelist-cli/internal/rating"
	"reelist-cli/internal/store"
)

// RenderMoviesMarkdown renders the whole list as a single markdown document,
// in stored order. Ratings show as stars plus the numeric value; the comment
// section appears only when a comment is present, and a cleared comment
// renders as "(empty)".
func RenderMoviesMarkdown(db *store.DB) (string, error) {
	if db == nil {
		return "", fmt.Errorf("missing db")
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# Movies")
	writeLn("")

	if len(db.Movies) == 0 {
		writeLn("(no movies)")
		return buf.String(), nil
	}

	for i, m := range db.Movies {
		if i > 0 {
			writeLn("")
		}
		writeMovieSection(writeLn, m)
	}

	return buf.String(), nil
}

func writeMovieSection(writeLn func(string), m model.Movie) {
	writeLn("## " + strings.TrimSpace(m.Title))
	writeLn("")
	writeLn("- ID: " + m.ID)
	writeLn("- Rating: " + ratingLine(m.Rating))

	if m.Description != nil && strings.TrimSpace(*m.Description) != "" {
		writeLn("")
		writeLn(strings.TrimSpace(*m.Description))
	}

	if m.Comment != nil {
		writeLn("")
		writeLn("### Comment")
		writeLn("")
		body := strings.TrimSpace(*m.Comment)
		if body == "" {
			body = "(empty)"
		}
		writeLn(body)
	}
}

func ratingLine(v float64) string {
	stars := starsFor(v)
	if stars == "" {
		return rating.Format(v)
	}
	return stars + " (" + rating.Format(v) + ")"
}

func starsFor(v float64) string {
	full, half := rating.Split(v)
	s := strings.Repeat("★", full)
	if half {
		s += "½"
	}
	return s
}

// WriteOptions controls WriteMovies.
type WriteOptions struct {
	Overwrite bool
}

// WriteResult lists the files WriteMovies produced.
type WriteResult struct {
	Written []string `json:"written"`
}

// WriteMovies renders the list and writes it to a single markdown file.
func WriteMovies(db *store.DB, toPath string, opt WriteOptions) (WriteResult, error) {
	if db == nil {
		return WriteResult{}, errors.New("missing db")
	}
	toPath = strings.TrimSpace(toPath)
	if toPath == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toPath = filepath.Clean(toPath)

	md, err := RenderMoviesMarkdown(db)
	if err != nil {
		return WriteResult{}, err
	}

	if dir := filepath.Dir(toPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WriteResult{}, err
		}
	}
	if err := writeFile(toPath, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{toPath}}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
