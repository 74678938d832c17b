package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase, no padding).
// 8 chars base32 ~= 40 bits (~1 trillion) of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

func idExists(db *DB, id string) bool {
	for i := range db.Movies {
		if db.Movies[i].ID == id {
			return true
		}
	}
	return false
}

// NewMovieID returns a fresh id that does not collide with the current list.
func (s Store) NewMovieID(db *DB) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID("mov")
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// Fallback when crypto/rand fails or we collide repeatedly.
	for n := len(db.Movies) + 1; ; n++ {
		id := fmt.Sprintf("mov-%d", n)
		if !idExists(db, id) {
			return id
		}
	}
}
