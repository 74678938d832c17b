package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"reelist-cli/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Path    string           `json:"path,omitempty"`

	MovieID string `json:"movieId,omitempty"`
	EventID string `json:"eventId,omitempty"`
	Type    string `json:"type,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

var ErrDoctorIssuesFound = errors.New("doctor: issues found")

// DoctorState inspects a workspace store without repairing anything. Every
// state_* error here means the next load will quietly replace the stored list
// with the default set, so run this before trusting a workspace you care
// about.
func DoctorState(dir string) DoctorReport {
	st := Store{Dir: dir}
	ctx := context.Background()

	var issues []DoctorIssue

	db, err := st.openSQLite(ctx)
	if err != nil {
		return DoctorReport{Issues: []DoctorIssue{{
			Level:   DoctorIssueLevelError,
			Code:    "db_open_failed",
			Message: err.Error(),
			Path:    st.sqlitePath(),
		}}}
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, stateKeyMovies).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Fresh store; load seeds the default set. Not an issue.
	case err != nil:
		issues = append(issues, DoctorIssue{
			Level:   DoctorIssueLevelError,
			Code:    "state_read_failed",
			Message: err.Error(),
		})
	case strings.TrimSpace(raw) == "":
		issues = append(issues, DoctorIssue{
			Level:   DoctorIssueLevelError,
			Code:    "state_empty",
			Message: "empty list blob; next load falls back to the default set",
		})
	default:
		var ms []model.Movie
		if jsonErr := json.Unmarshal([]byte(raw), &ms); jsonErr != nil || ms == nil {
			msg := "not a JSON array"
			if jsonErr != nil {
				msg = jsonErr.Error()
			}
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "state_unparsable",
				Message: msg + "; next load falls back to the default set",
			})
		} else {
			for _, p := range movieShapeProblems(ms) {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "state_invalid_record",
					Message: p,
				})
			}
		}
	}

	issues = append(issues, doctorEvents(ctx, db)...)

	return DoctorReport{Issues: issuesOrEmpty(issues)}
}

func doctorEvents(ctx context.Context, db *sql.DB) []DoctorIssue {
	var issues []DoctorIssue

	rows, err := db.QueryContext(ctx, `SELECT event_id, type, movie_id, payload_json, created_at_unixms FROM events ORDER BY created_at_unixms ASC`)
	if err != nil {
		return []DoctorIssue{{
			Level:   DoctorIssueLevelError,
			Code:    "events_read_failed",
			Message: err.Error(),
		}}
	}
	defer rows.Close()

	for rows.Next() {
		var id, typ, movieID, payloadJSON string
		var tsMs int64
		if err := rows.Scan(&id, &typ, &movieID, &payloadJSON, &tsMs); err != nil {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "events_scan_failed",
				Message: err.Error(),
			})
			break
		}
		if strings.TrimSpace(id) == "" {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "missing_event_id",
				Message: "missing eventId",
				Type:    strings.TrimSpace(typ),
			})
		}
		if strings.TrimSpace(typ) == "" {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "missing_type",
				Message: "missing event type",
				EventID: strings.TrimSpace(id),
			})
		}
		if tsMs <= 0 {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "missing_created_at",
				Message: "missing createdAt timestamp",
				EventID: strings.TrimSpace(id),
				Type:    strings.TrimSpace(typ),
			})
		}
		trimmed := strings.TrimSpace(payloadJSON)
		if trimmed == "" || trimmed == "null" {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "empty_payload",
				Message: "empty payload (expected JSON object)",
				EventID: strings.TrimSpace(id),
				MovieID: strings.TrimSpace(movieID),
				Type:    strings.TrimSpace(typ),
			})
		}
	}
	if err := rows.Err(); err != nil {
		issues = append(issues, DoctorIssue{
			Level:   DoctorIssueLevelError,
			Code:    "events_scan_failed",
			Message: err.Error(),
		})
	}
	return issues
}

func issuesOrEmpty(xs []DoctorIssue) []DoctorIssue {
	if xs == nil {
		return []DoctorIssue{}
	}
	return xs
}
