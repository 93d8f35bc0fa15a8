// Package sheets defines the contract for the external row-oriented sheet
// store backing all tenant data. The network implementation lives outside
// this repository; consumers depend only on the Store interface.
package sheets

import (
	"context"
	"errors"
)

// ErrRowNotFound is returned by FindRowByID when no row matches.
var ErrRowNotFound = errors.New("row not found")

// Store reads rows from a spreadsheet. Each row is a flat ordered list of
// cell strings; the provider may omit trailing empty cells, so consumers
// must pad short rows to their expected column count (see PadRow).
type Store interface {
	// GetSheetData returns all rows of a named sheet, header row included.
	GetSheetData(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error)
	// FindRowByID returns the first row whose first cell equals id, or
	// ErrRowNotFound.
	FindRowByID(ctx context.Context, spreadsheetID, sheetName, id string) ([]string, error)
}

// PadRow right-pads row with empty strings up to n cells. The input slice is
// not modified.
func PadRow(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
