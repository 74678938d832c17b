package store

import (
	"testing"

	"reelist-cli/internal/model"
)

func TestDoctorState_CleanStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}

	// Fresh store: nothing persisted yet is healthy.
	report := DoctorState(dir)
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues on fresh store; got %+v", report.Issues)
	}

	db := &DB{Version: 1, Movies: []model.Movie{
		{ID: "mov-a", Title: "Alien", Rating: 4.0},
		{ID: "mov-b", Title: "Heat", Description: strPtr("Crime saga."), Rating: 4.5, Comment: strPtr("")},
	}}
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.AppendEvent("movie.add", "mov-a", map[string]any{"title": "Alien"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	report = DoctorState(dir)
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues on valid store; got %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Fatalf("expected no errors")
	}
}

func TestDoctorState_CorruptBlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}
	writeStateBlob(t, s, `{not json`)

	report := DoctorState(dir)
	if !report.HasErrors() {
		t.Fatalf("expected errors; got %+v", report.Issues)
	}
	found := false
	for _, is := range report.Issues {
		if is.Code == "state_unparsable" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected state_unparsable issue; got %+v", report.Issues)
	}
}

func TestDoctorState_InvalidRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}
	writeStateBlob(t, s, `[{"id":"mov-a","title":"A","rating":1},{"id":"mov-a","title":"","rating":7}]`)

	report := DoctorState(dir)
	if !report.HasErrors() {
		t.Fatalf("expected errors; got %+v", report.Issues)
	}
	codes := map[string]int{}
	for _, is := range report.Issues {
		codes[is.Code]++
	}
	// Duplicate id, empty title, and out-of-range rating on the second record.
	if codes["state_invalid_record"] != 3 {
		t.Fatalf("expected 3 state_invalid_record issues; got %+v", report.Issues)
	}
}

func TestDoctorState_EmptyEventPayloadWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := s.AppendEvent("movie.delete", "mov-a", nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	report := DoctorState(dir)
	if report.HasErrors() {
		t.Fatalf("expected warnings only; got %+v", report.Issues)
	}
	if len(report.Issues) != 1 || report.Issues[0].Code != "empty_payload" {
		t.Fatalf("expected one empty_payload warning; got %+v", report.Issues)
	}
}
