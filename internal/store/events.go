package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"reelist-cli/internal/model"
)

func newUUIDv4() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	// RFC 4122 variant + v4
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uint32(b[0])<<24|uint32(b[1])<<16|uint32(b[2])<<8|uint32(b[3]),
		uint16(b[4])<<8|uint16(b[5]),
		uint16(b[6])<<8|uint16(b[7]),
		uint16(b[8])<<8|uint16(b[9]),
		uint64(b[10])<<40|uint64(b[11])<<32|uint64(b[12])<<24|uint64(b[13])<<16|uint64(b[14])<<8|uint64(b[15]),
	), nil
}

// appendEventSQLite records one activity-log row. movieID may be empty for
// whole-list events (sort, reset).
func (s Store) appendEventSQLite(ctx context.Context, typ, movieID string, payload any) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return errors.New("missing event type")
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pb, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	eventID, err := newUUIDv4()
	if err != nil {
		return err
	}
	nowMs := time.Now().UTC().UnixMilli()

	_, err = db.ExecContext(ctx, `INSERT INTO events(event_id, type, movie_id, payload_json, created_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		eventID, typ, strings.TrimSpace(movieID), string(pb), nowMs)
	return err
}

func (s Store) readEventsSQLite(ctx context.Context, limit int) ([]model.Event, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, created_at_unixms, type, movie_id, payload_json
	      FROM events
	      ORDER BY created_at_unixms ASC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (s Store) readEventsForMovieSQLite(ctx context.Context, movieID string, limit int) ([]model.Event, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return []model.Event{}, nil
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, created_at_unixms, type, movie_id, payload_json
	      FROM events
	      WHERE movie_id = ?
	      ORDER BY created_at_unixms ASC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, movieID, limit)
	} else {
		rows, err = db.QueryContext(ctx, q, movieID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]model.Event, error) {
	var out []model.Event
	for rows.Next() {
		var id, typ, movieID, payloadJSON string
		var tsMs int64
		if err := rows.Scan(&id, &tsMs, &typ, &movieID, &payloadJSON); err != nil {
			return nil, err
		}
		var payload any
		_ = json.Unmarshal([]byte(payloadJSON), &payload)
		out = append(out, model.Event{
			ID:      id,
			TS:      time.UnixMilli(tsMs).UTC(),
			Type:    typ,
			MovieID: movieID,
			Payload: payload,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Event{}
	}
	return out, nil
}
