package store

import (
	"strings"
	"testing"

	"reelist-cli/internal/model"
)

func TestNewRandomID_Format(t *testing.T) {
	t.Parallel()

	id, err := newRandomID("mov")
	if err != nil {
		t.Fatalf("newRandomID: %v", err)
	}
	if !strings.HasPrefix(id, "mov-") {
		t.Fatalf("expected mov prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "mov-")
	if got, want := len(suffix), 8; got != want {
		t.Fatalf("expected suffix len %d, got %d (%q)", want, got, suffix)
	}
	if suffix != strings.ToLower(suffix) {
		t.Fatalf("expected lowercase suffix, got %q", suffix)
	}
}

func TestNewMovieID_AvoidsCollisions(t *testing.T) {
	t.Parallel()

	s := Store{}
	db := &DB{Movies: []model.Movie{{ID: "mov-aaaaaaaa", Title: "Taken", Rating: 3.0}}}

	seen := map[string]bool{"mov-aaaaaaaa": true}
	for i := 0; i < 100; i++ {
		id := s.NewMovieID(db)
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("id %q collided", id)
		}
		seen[id] = true
		db.Movies = append(db.Movies, model.Movie{ID: id, Title: "X", Rating: 1.0})
	}
}
