package reservation

import (
	"context"
	"testing"

	"github.com/seminar-portal/backend/internal/sheets"
)

type fakeStore struct {
	data map[string][][]string
}

func (f *fakeStore) GetSheetData(_ context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	return f.data[spreadsheetID+"/"+sheetName], nil
}

func (f *fakeStore) FindRowByID(_ context.Context, spreadsheetID, sheetName, id string) ([]string, error) {
	for i, row := range f.data[spreadsheetID+"/"+sheetName] {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == id {
			return row, nil
		}
	}
	return nil, sheets.ErrRowNotFound
}

func TestFromRowPadsShortRows(t *testing.T) {
	// Provider omitted trailing empty cells after the status column.
	r := FromRow([]string{"res-1", "Taro Yamada", "taro@example.org", "ACME", "", "", "confirmed"})
	if r.ID != "res-1" || r.Name != "Taro Yamada" {
		t.Errorf("unexpected reservation: %+v", r)
	}
	if r.PreSurveyCompleted || r.PostSurveyCompleted {
		t.Error("missing survey cells must read as false")
	}
	if r.Note != "" || r.CreatedAt != "" {
		t.Errorf("missing trailing cells must read as empty: %+v", r)
	}
}

func TestFromRowDefaults(t *testing.T) {
	r := FromRow([]string{"res-2", "Hanako", "h@example.org", "", "", "", "", "TRUE", "FALSE", "2026-04-01", "note"})
	if r.Status != StatusConfirmed {
		t.Errorf("empty status must default to confirmed, got %q", r.Status)
	}
	if !r.PreSurveyCompleted {
		t.Error("expected pre-survey flag set for TRUE cell")
	}
	if r.PostSurveyCompleted {
		t.Error("FALSE cell must not set post-survey flag")
	}
}

func TestListSkipsHeader(t *testing.T) {
	store := &fakeStore{data: map[string][][]string{
		"sheet-1/" + SheetName: {
			{"ID", "Name", "Email"},
			{"res-1", "Taro", "taro@example.org"},
			{"res-2", "Hanako", "hanako@example.org"},
		},
	}}
	repo := NewRepository(store)

	list, err := repo.List(context.Background(), "sheet-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(list))
	}
	if list[0].ID != "res-1" || list[1].ID != "res-2" {
		t.Errorf("unexpected order: %+v", list)
	}
}

func TestNextSequence(t *testing.T) {
	store := &fakeStore{data: map[string][][]string{
		"sheet-1/" + SheetName: {
			{"ID"},
			{"res-1"},
			{"res-2"},
			{"res-3"},
		},
		"empty/" + SheetName: {
			{"ID"},
		},
	}}
	repo := NewRepository(store)

	seq, err := repo.NextSequence(context.Background(), "sheet-1")
	if err != nil {
		t.Fatalf("NextSequence: %v", err)
	}
	if seq != 4 {
		t.Errorf("expected sequence 4, got %d", seq)
	}

	seq, err = repo.NextSequence(context.Background(), "empty")
	if err != nil {
		t.Fatalf("NextSequence: %v", err)
	}
	if seq != 1 {
		t.Errorf("first booking should be sequence 1, got %d", seq)
	}
}
