package mutate

import (
	"sort"
	"strings"

	"reelist-cli/internal/model"
	"reelist-cli/internal/rating"
	"reelist-cli/internal/store"
)

// AddResult reports the outcome of AddMovie.
type AddResult struct {
	Movie        *model.Movie
	Changed      bool
	EventPayload map[string]any
}

// AddMovie validates the input and inserts a new movie at the top of the
// list. The title is trimmed and must not end up empty. The description is
// trimmed too; an empty description is dropped rather than stored as "".
// The new record gets a fresh id and starts without a comment.
// Callers are responsible for saving db and appending the movie.add event.
func AddMovie(db *store.DB, title, description string, ratingVal float64) (AddResult, error) {
	if db == nil {
		return AddResult{}, nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return AddResult{}, ErrEmptyTitle
	}
	if !rating.Valid(ratingVal) {
		return AddResult{}, RatingRangeError{Value: ratingVal}
	}

	m := model.Movie{
		ID:     (store.Store{}).NewMovieID(db),
		Title:  title,
		Rating: ratingVal,
	}
	if d := strings.TrimSpace(description); d != "" {
		m.Description = &d
	}

	db.Movies = append([]model.Movie{m}, db.Movies...)
	return AddResult{
		Movie:   &db.Movies[0],
		Changed: true,
		EventPayload: map[string]any{
			"title":  m.Title,
			"rating": m.Rating,
		},
	}, nil
}

// DeleteResult reports the outcome of DeleteMovie. Movie is a copy of the
// removed record, nil when nothing matched.
type DeleteResult struct {
	Movie        *model.Movie
	Changed      bool
	EventPayload map[string]any
}

// DeleteMovie removes the first entry whose id matches. An id with no match
// leaves the list untouched and reports Changed: false; it is not an error
// at this layer. Callers are responsible for saving db and appending the
// movie.delete event.
func DeleteMovie(db *store.DB, movieID string) (DeleteResult, error) {
	movieID = strings.TrimSpace(movieID)
	if db == nil || movieID == "" {
		return DeleteResult{}, nil
	}
	for i := range db.Movies {
		if db.Movies[i].ID != movieID {
			continue
		}
		removed := db.Movies[i]
		db.Movies = append(db.Movies[:i], db.Movies[i+1:]...)
		return DeleteResult{
			Movie:   &removed,
			Changed: true,
			EventPayload: map[string]any{
				"title": removed.Title,
			},
		}, nil
	}
	return DeleteResult{}, nil
}

// UpdateResult reports the outcome of an in-place movie update.
type UpdateResult struct {
	Movie        *model.Movie
	Changed      bool
	EventPayload map[string]any
}

// EditMovie applies a detail-screen save: the entry keeps its id, title,
// description, and position, while rating and comment are replaced. The
// comment is trimmed and the result is stored even when empty, as a literal
// "". Unlike descriptions, a cleared comment stays visible in the stored
// data. An id with no match discards the edit silently.
// Callers are responsible for saving db and appending the movie.edit event.
func EditMovie(db *store.DB, movieID string, ratingVal float64, comment string) (UpdateResult, error) {
	movieID = strings.TrimSpace(movieID)
	if db == nil || movieID == "" {
		return UpdateResult{}, nil
	}
	if !rating.Valid(ratingVal) {
		return UpdateResult{}, RatingRangeError{Value: ratingVal}
	}
	m, ok := db.FindMovie(movieID)
	if !ok {
		return UpdateResult{}, nil
	}
	trimmed := strings.TrimSpace(comment)
	prev := m.Rating
	m.Rating = ratingVal
	m.Comment = &trimmed
	return UpdateResult{
		Movie:   m,
		Changed: true,
		EventPayload: map[string]any{
			"from":   prev,
			"rating": m.Rating,
		},
	}, nil
}

// SetRating sets only the rating of one movie. This is the command-line
// surface, so a missing movie is a NotFoundError rather than a silent no-op.
// Callers are responsible for saving db and appending the movie.rate event.
func SetRating(db *store.DB, movieID string, ratingVal float64) (UpdateResult, error) {
	movieID = strings.TrimSpace(movieID)
	if db == nil || movieID == "" {
		return UpdateResult{}, nil
	}
	if !rating.Valid(ratingVal) {
		return UpdateResult{}, RatingRangeError{Value: ratingVal}
	}
	m, ok := db.FindMovie(movieID)
	if !ok {
		return UpdateResult{}, NotFoundError{Kind: "movie", ID: movieID}
	}
	if m.Rating == ratingVal {
		return UpdateResult{Movie: m}, nil
	}
	prev := m.Rating
	m.Rating = ratingVal
	return UpdateResult{
		Movie:   m,
		Changed: true,
		EventPayload: map[string]any{
			"from": prev,
			"to":   ratingVal,
		},
	}, nil
}

// SetComment trims and stores the comment on one movie; an empty result is
// stored as a literal "". With clear set the comment is removed entirely,
// which is the only way back to an absent comment. Callers are responsible
// for saving db and appending the movie.comment event.
func SetComment(db *store.DB, movieID, body string, clear bool) (UpdateResult, error) {
	movieID = strings.TrimSpace(movieID)
	if db == nil || movieID == "" {
		return UpdateResult{}, nil
	}
	m, ok := db.FindMovie(movieID)
	if !ok {
		return UpdateResult{}, NotFoundError{Kind: "movie", ID: movieID}
	}
	if clear {
		if m.Comment == nil {
			return UpdateResult{Movie: m}, nil
		}
		m.Comment = nil
		return UpdateResult{
			Movie:   m,
			Changed: true,
			EventPayload: map[string]any{
				"cleared": true,
			},
		}, nil
	}
	trimmed := strings.TrimSpace(body)
	if m.Comment != nil && *m.Comment == trimmed {
		return UpdateResult{Movie: m}, nil
	}
	m.Comment = &trimmed
	return UpdateResult{
		Movie:   m,
		Changed: true,
		EventPayload: map[string]any{
			"comment": trimmed,
		},
	}, nil
}

// SortResult reports the outcome of SortByRating. Changed is false when the
// list was already in order; callers persist either way since a sort counts
// as a list mutation.
type SortResult struct {
	Changed      bool
	EventPayload map[string]any
}

// SortByRating reorders the list by rating, highest first. The sort is
// stable: movies with equal ratings keep their relative order. Callers are
// responsible for saving db and appending the list.sort event.
func SortByRating(db *store.DB) SortResult {
	if db == nil {
		return SortResult{}
	}
	before := make([]string, len(db.Movies))
	for i := range db.Movies {
		before[i] = db.Movies[i].ID
	}
	sort.SliceStable(db.Movies, func(i, j int) bool {
		return db.Movies[i].Rating > db.Movies[j].Rating
	})
	changed := false
	for i := range db.Movies {
		if db.Movies[i].ID != before[i] {
			changed = true
			break
		}
	}
	return SortResult{
		Changed: changed,
		EventPayload: map[string]any{
			"count": len(db.Movies),
		},
	}
}

// ResetResult reports the outcome of ResetMovies.
type ResetResult struct {
	Movies       []model.Movie
	EventPayload map[string]any
}

// ResetMovies discards the whole list and replaces it with the default set.
// The replacements carry freshly generated ids, so no record is shared with
// what was there before. Callers are responsible for saving db and appending
// the list.reset event.
func ResetMovies(db *store.DB) ResetResult {
	if db == nil {
		return ResetResult{}
	}
	db.Movies = store.DefaultMovies()
	return ResetResult{
		Movies: db.Movies,
		EventPayload: map[string]any{
			"count": len(db.Movies),
		},
	}
}
