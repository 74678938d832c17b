package store

import (
	"fmt"

	"reelist-cli/internal/model"
)

// DefaultMovies returns the built-in sample list. Titles, descriptions, and
// ratings are fixed; ids are freshly generated on every call so a reset never
// reuses an id the session has already seen. Comments start absent. Never
// fails: if the random source errors, ids fall back to a sequential form.
func DefaultMovies() []model.Movie {
	samples := []struct {
		title       string
		description string
		rating      float64
	}{
		{"The Shawshank Redemption", "Two imprisoned men bond over the years, finding solace and eventual redemption.", 4.5},
		{"The Godfather", "The aging patriarch of a crime dynasty transfers control to his reluctant son.", 5.0},
		{"Spirited Away", "A young girl wanders into a world ruled by spirits and must work to free her parents.", 4.5},
		{"Blade Runner", "A burnt-out detective hunts four replicants hiding in a rain-soaked Los Angeles.", 4.0},
		{"Casablanca", "A cynical club owner shelters an old flame and her fugitive husband in wartime Morocco.", 4.0},
		{"Seven Samurai", "A poor village hires seven masterless samurai to fight off marauding bandits.", 4.5},
		{"The Matrix", "A hacker discovers reality is a simulation and joins the rebellion against its machines.", 4.0},
		{"Parasite", "A poor family schemes its way into service jobs for a wealthy household.", 4.5},
	}

	out := make([]model.Movie, 0, len(samples))
	for i, s := range samples {
		id, err := newRandomID("mov")
		if err != nil {
			id = fmt.Sprintf("mov-%d", i+1)
		}
		desc := s.description
		out = append(out, model.Movie{
			ID:          id,
			Title:       s.title,
			Description: &desc,
			Rating:      s.rating,
		})
	}
	return out
}
