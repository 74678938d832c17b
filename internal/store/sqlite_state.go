package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"reelist-cli/internal/model"
	"reelist-cli/internal/rating"

	_ "modernc.org/sqlite"
)

const (
	stateFileName = "reelist.sqlite"

	// The whole list lives under this one key as a serialized JSON array.
	stateKeyMovies  = "movies"
	stateKeyVersion = "version"
)

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, stateFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database is locked"
	// flakiness when the CLI and TUI touch the same workspace.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLiteState(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLiteState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS state (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			movie_id TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at_unixms);`,
		`CREATE INDEX IF NOT EXISTS idx_events_movie ON events(movie_id, created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// LoadSQLite reads the list blob from the workspace db. An absent, empty, or
// malformed blob degrades to the default set; only the storage medium itself
// can fail.
func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	out := &DB{Version: 1}

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, stateKeyMovies).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		out.Movies = DefaultMovies()
		return out, nil
	case err != nil:
		return nil, err
	}

	movies, ok := decodeMovies(raw)
	if !ok {
		// Best-effort; if corrupted, treat as missing.
		out.Movies = DefaultMovies()
		return out, nil
	}
	out.Movies = movies

	var ver string
	_ = db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, stateKeyVersion).Scan(&ver)
	if n, err := strconv.Atoi(strings.TrimSpace(ver)); err == nil && n > 0 {
		out.Version = n
	}
	return out, nil
}

// SaveSQLite overwrites the blob with the full list in one transaction.
func (s Store) SaveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	movies := st.Movies
	if movies == nil {
		movies = []model.Movie{}
	}
	b, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	version := st.Version
	if version == 0 {
		version = 1
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, stateKeyVersion, strconv.Itoa(version)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, stateKeyMovies, string(b)); err != nil {
		return err
	}
	return tx.Commit()
}

// decodeMovies parses a stored blob. ok is false when the value is empty, not
// a JSON array, or fails the shape checks; callers fall back to the defaults.
func decodeMovies(raw string) ([]model.Movie, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	var ms []model.Movie
	if err := json.Unmarshal([]byte(raw), &ms); err != nil {
		return nil, false
	}
	if ms == nil {
		// "null" decodes without error but is not a list.
		return nil, false
	}
	if len(movieShapeProblems(ms)) > 0 {
		return nil, false
	}
	for i := range ms {
		// An optional field read back empty means "no value"; descriptions are
		// never stored as "". Comments may legitimately be "".
		if ms[i].Description != nil && strings.TrimSpace(*ms[i].Description) == "" {
			ms[i].Description = nil
		}
	}
	return ms, true
}

// movieShapeProblems lists whatever keeps a decoded list from being usable as
// state. Load falls back to the default set on any; doctor reports them.
func movieShapeProblems(ms []model.Movie) []string {
	var problems []string
	seen := map[string]bool{}
	for i, m := range ms {
		id := strings.TrimSpace(m.ID)
		switch {
		case id == "":
			problems = append(problems, fmt.Sprintf("movie[%d]: empty id", i))
		case seen[id]:
			problems = append(problems, fmt.Sprintf("movie[%d]: duplicate id %s", i, id))
		default:
			seen[id] = true
		}
		if strings.TrimSpace(m.Title) == "" {
			problems = append(problems, fmt.Sprintf("movie[%d]: empty title", i))
		}
		if !rating.Valid(m.Rating) {
			problems = append(problems, fmt.Sprintf("movie[%d]: rating %v out of range [0, 5]", i, m.Rating))
		}
	}
	return problems
}
