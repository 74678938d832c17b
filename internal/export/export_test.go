package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelist-cli/internal/model"
	"reelist-cli/internal/store"
)

func strPtr(s string) *string { return &s }

func testDB() *store.DB {
	return &store.DB{
		Version: 1,
		Movies: []model.Movie{
			{ID: "mov-a", Title: "Alien", Description: strPtr("In space no one can hear you scream."), Rating: 4.5, Comment: strPtr("rewatch soon")},
			{ID: "mov-b", Title: "Heat", Rating: 4.0},
			{ID: "mov-c", Title: "Clue", Rating: 0, Comment: strPtr("")},
		},
	}
}

func TestRenderMoviesMarkdown(t *testing.T) {
	t.Parallel()

	md, err := RenderMoviesMarkdown(testDB())
	if err != nil {
		t.Fatalf("RenderMoviesMarkdown: %v", err)
	}
	if !strings.HasPrefix(md, "# Movies\n") {
		t.Fatalf("expected list header, got:\n%s", md)
	}
	if !strings.Contains(md, "## Alien") || !strings.Contains(md, "## Heat") || !strings.Contains(md, "## Clue") {
		t.Fatalf("expected one section per movie, got:\n%s", md)
	}
	if !strings.Contains(md, "- Rating: ★★★★½ (4.5)") {
		t.Fatalf("expected stars with numeric rating, got:\n%s", md)
	}
	if !strings.Contains(md, "- Rating: 0.0") {
		t.Fatalf("expected bare numeric rating for unrated movies, got:\n%s", md)
	}
	if !strings.Contains(md, "In space no one can hear you scream.") {
		t.Fatalf("expected description, got:\n%s", md)
	}
	if !strings.Contains(md, "rewatch soon") {
		t.Fatalf("expected comment body, got:\n%s", md)
	}
	if !strings.Contains(md, "(empty)") {
		t.Fatalf("cleared comments must still render, got:\n%s", md)
	}
	// Heat has no comment at all, so exactly two comment sections.
	if got := strings.Count(md, "### Comment"); got != 2 {
		t.Fatalf("expected 2 comment sections; got %d:\n%s", got, md)
	}
	// Stored order survives.
	if strings.Index(md, "## Alien") > strings.Index(md, "## Heat") {
		t.Fatalf("expected stored order, got:\n%s", md)
	}
}

func TestRenderMoviesMarkdown_EmptyList(t *testing.T) {
	t.Parallel()

	md, err := RenderMoviesMarkdown(&store.DB{})
	if err != nil {
		t.Fatalf("RenderMoviesMarkdown: %v", err)
	}
	if !strings.Contains(md, "(no movies)") {
		t.Fatalf("expected empty-list marker, got:\n%s", md)
	}
}

func TestWriteMovies(t *testing.T) {
	t.Parallel()

	to := filepath.Join(t.TempDir(), "out", "movies.md")
	res, err := WriteMovies(testDB(), to, WriteOptions{})
	if err != nil {
		t.Fatalf("WriteMovies: %v", err)
	}
	if len(res.Written) != 1 || res.Written[0] != to {
		t.Fatalf("expected %q written; got %v", to, res.Written)
	}
	b, err := os.ReadFile(to)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.HasPrefix(string(b), "# Movies\n") {
		t.Fatalf("unexpected file contents:\n%s", b)
	}

	// A second write without --overwrite must refuse.
	if _, err := WriteMovies(testDB(), to, WriteOptions{}); err == nil || !strings.Contains(err.Error(), "file exists") {
		t.Fatalf("expected overwrite guard; got %v", err)
	}
	if _, err := WriteMovies(testDB(), to, WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("WriteMovies overwrite: %v", err)
	}
}
