package store

import (
	"context"
	"os"
	"path/filepath"

	"reelist-cli/internal/model"
)

type DB struct {
	Version int           `json:"version"`
	Movies  []model.Movie `json:"movies"`
}

type Store struct {
	Dir string
}

func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".reelist")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store directory: a .reelist directory in the
// current directory or any parent wins, otherwise the per-user one.
func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return ConfigDir()
}

func WorkspaceDir(name string) (string, error) {
	name, err := NormalizeWorkspaceName(name)
	if err != nil {
		return "", err
	}
	if cfg, err := LoadConfig(); err == nil {
		if ref, ok := cfg.Workspaces[name]; ok && ref.Path != "" {
			return ref.Path, nil
		}
	}
	return LegacyWorkspaceDir(name)
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load returns the persisted list, or the default set when nothing usable is
// stored. Parse failures never surface as errors; only the storage medium
// itself can fail.
func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.LoadSQLite(context.Background())
}

// Save overwrites the persisted list with the full contents of db.
func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.SaveSQLite(context.Background(), db)
}

func (s Store) AppendEvent(typ, movieID string, payload any) error {
	return s.appendEventSQLite(context.Background(), typ, movieID, payload)
}

func (db *DB) FindMovie(id string) (*model.Movie, bool) {
	for i := range db.Movies {
		if db.Movies[i].ID == id {
			return &db.Movies[i], true
		}
	}
	return nil, false
}

func ReadEvents(dir string, limit int) ([]model.Event, error) {
	st := Store{Dir: dir}
	return st.readEventsSQLite(context.Background(), limit)
}

// ReadEventsForMovie returns the activity for one movie, oldest first.
func ReadEventsForMovie(dir, movieID string, limit int) ([]model.Event, error) {
	st := Store{Dir: dir}
	return st.readEventsForMovieSQLite(context.Background(), movieID, limit)
}
