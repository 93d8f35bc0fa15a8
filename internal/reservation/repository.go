package reservation

import (
	"context"

	"github.com/seminar-portal/backend/internal/sheets"
)

// SheetName is the reservation sheet inside each seminar's spreadsheet.
const SheetName = "reservations"

// Repository reads reservation rows for a seminar.
type Repository struct {
	store sheets.Store
}

// NewRepository creates a repository over the sheet store.
func NewRepository(store sheets.Store) *Repository {
	return &Repository{store: store}
}

// List returns all reservations in a seminar's spreadsheet, header row
// skipped.
func (r *Repository) List(ctx context.Context, spreadsheetID string) ([]Reservation, error) {
	rows, err := r.store.GetSheetData(ctx, spreadsheetID, SheetName)
	if err != nil {
		return nil, err
	}
	var list []Reservation
	for i, row := range rows {
		if i == 0 {
			continue
		}
		list = append(list, FromRow(row))
	}
	return list, nil
}

// NextSequence returns the 1-based receipt sequence for the next booking:
// the current reservation count plus one.
func (r *Repository) NextSequence(ctx context.Context, spreadsheetID string) (int, error) {
	list, err := r.List(ctx, spreadsheetID)
	if err != nil {
		return 0, err
	}
	return len(list) + 1, nil
}
