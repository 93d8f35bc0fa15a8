package seminar

import (
	"context"
	"errors"
	"testing"

	"github.com/seminar-portal/backend/internal/sheets"
)

type fakeStore struct {
	rows [][]string
}

func (f *fakeStore) GetSheetData(_ context.Context, _, _ string) ([][]string, error) {
	return f.rows, nil
}

func (f *fakeStore) FindRowByID(_ context.Context, _, _, id string) ([]string, error) {
	for i, row := range f.rows {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == id {
			return row, nil
		}
	}
	return nil, sheets.ErrRowNotFound
}

func fullRow(id, title, date, status string) []string {
	return []string{
		id, title, "desc", date, "16:00", "100", "42",
		"Dr. Speaker", "https://meet.example.com/x", "ev-1", status, "sheet-" + id,
		"Professor", "online", "public", " INV123 ", "https://img.example.com/x.png",
		"2026-01-01", "2026-01-02", "https://speaker.example.com",
	}
}

func TestFromRowFull(t *testing.T) {
	s := FromRow(fullRow("sem-1", "Spring Seminar", "2026-04-10T14:30:00", "published"))
	if s.ID != "sem-1" || s.Title != "Spring Seminar" {
		t.Errorf("unexpected seminar: %+v", s)
	}
	if s.Capacity != 100 || s.CurrentBookings != 42 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.InvitationCode != "INV123" {
		t.Errorf("invitation code must be trimmed, got %q", s.InvitationCode)
	}
	if s.SpeakerReferenceURL != "https://speaker.example.com" {
		t.Errorf("unexpected last column: %q", s.SpeakerReferenceURL)
	}
}

// The sheet provider omits trailing empty cells; short rows read as if
// right-padded with empty strings.
func TestFromRowShort(t *testing.T) {
	s := FromRow([]string{"sem-2", "Minimal"})
	if s.ID != "sem-2" || s.Title != "Minimal" {
		t.Errorf("unexpected seminar: %+v", s)
	}
	if s.Status != StatusDraft {
		t.Errorf("empty status must default to draft, got %q", s.Status)
	}
	if s.Format != "online" || s.Target != "public" {
		t.Errorf("missing format/target must default: %+v", s)
	}
	if s.Capacity != 0 || s.CurrentBookings != 0 {
		t.Errorf("missing counts must read as zero: %+v", s)
	}
}

func TestGetByID(t *testing.T) {
	repo := NewRepository(&fakeStore{rows: [][]string{
		{"ID", "Title"},
		fullRow("sem-1", "One", "2026-04-10", "published"),
	}}, "master-sheet")

	s, err := repo.GetByID(context.Background(), "sem-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if s.Title != "One" {
		t.Errorf("unexpected seminar: %+v", s)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPublished(t *testing.T) {
	repo := NewRepository(&fakeStore{rows: [][]string{
		{"ID", "Title"},
		fullRow("sem-late", "Later", "2026-06-01T10:00:00", "published"),
		fullRow("sem-draft", "Draft", "2026-01-01T10:00:00", "draft"),
		fullRow("sem-early", "Sooner", "2026-04-10T14:30:00", "published"),
		{"  ", "row without id"},
		fullRow("sem-closed", "Closed", "2026-02-01T10:00:00", "closed"),
	}}, "master-sheet")

	list, err := repo.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 published seminars, got %d", len(list))
	}
	// Soonest first.
	if list[0].ID != "sem-early" || list[1].ID != "sem-late" {
		t.Errorf("unexpected order: %q, %q", list[0].ID, list[1].ID)
	}
}
