package model

import "time"

// Movie is one entry in the list. IDs are generated locally, unique within
// the list, and never change after creation.
//
// Description and Comment distinguish absent (nil) from empty. A description
// is never stored as ""; a comment edited down to nothing is stored as a
// literal "" rather than cleared. The asymmetry must survive a save/load
// round trip.
type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
}

type Event struct {
	ID      string    `json:"id"`
	TS      time.Time `json:"ts"`
	Type    string    `json:"type"`
	MovieID string    `json:"movieId"`
	Payload any       `json:"payload"`
}
