package mutate

import (
	"errors"
	"fmt"

	"reelist-cli/internal/rating"
)

var ErrEmptyTitle = errors.New("title must not be empty")

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

type RatingRangeError struct {
	Value float64
}

func (e RatingRangeError) Error() string {
	return fmt.Sprintf("rating %s out of range [0, 5]", rating.Format(e.Value))
}
