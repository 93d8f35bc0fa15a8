package seminar

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/seminar-portal/backend/internal/sheets"
)

// MasterSheetName is the sheet holding the seminar list inside a tenant's
// master spreadsheet.
const MasterSheetName = "seminar-list"

// ErrNotFound is returned when no seminar matches an id.
var ErrNotFound = errors.New("seminar not found")

// Repository reads seminars from a tenant's master spreadsheet.
type Repository struct {
	store         sheets.Store
	spreadsheetID string
}

// NewRepository creates a repository bound to one master spreadsheet.
func NewRepository(store sheets.Store, spreadsheetID string) *Repository {
	return &Repository{store: store, spreadsheetID: spreadsheetID}
}

// GetByID returns a single seminar by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*Seminar, error) {
	row, err := r.store.FindRowByID(ctx, r.spreadsheetID, MasterSheetName, id)
	if err != nil {
		if errors.Is(err, sheets.ErrRowNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s := FromRow(row)
	return &s, nil
}

// ListPublished returns published seminars sorted by date, soonest first.
// The header row and rows without an id are skipped.
func (r *Repository) ListPublished(ctx context.Context) ([]Seminar, error) {
	rows, err := r.store.GetSheetData(ctx, r.spreadsheetID, MasterSheetName)
	if err != nil {
		return nil, err
	}
	var list []Seminar
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		s := FromRow(row)
		if s.Status == StatusPublished {
			list = append(list, s)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return parseDate(list[i].Date).Before(parseDate(list[j].Date))
	})
	return list, nil
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
