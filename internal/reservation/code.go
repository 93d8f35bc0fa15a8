// Package reservation generates and validates human-facing reservation
// codes and reads reservation rows from a seminar's spreadsheet.
//
// A code has the form YYMM-SSRR: year/month of the seminar, a two-digit
// base36 tag derived from the seminar id, and a two-digit base36 tag for the
// booking order. Codes are a display and lookup convenience, never a primary
// key: the sequence tag wraps silently past 1296 bookings, so uniqueness is
// not guaranteed.
package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var codePattern = regexp.MustCompile(`^\d{4}-[0-9a-z]{4}$`)

// GenerateCode derives a reservation code from the seminar date, the
// seminar id and the 1-based receipt sequence (existing booking count + 1).
// Same inputs always yield the same code, in any process.
func GenerateCode(seminarDate, seminarID string, receiptSequence int) (string, error) {
	d, err := parseSeminarDate(seminarDate)
	if err != nil {
		return "", fmt.Errorf("generate reservation code: %w", err)
	}
	yymm := fmt.Sprintf("%02d%02d", d.Year()%100, int(d.Month()))
	seminarTag := toBase36Two(hashTo1296(seminarID))
	// The sequence is encoded zero-based so the first booking reads "00".
	receiptTag := toBase36Two(receiptSequence - 1)
	return yymm + "-" + seminarTag + receiptTag, nil
}

// IsValidCodeFormat reports whether s has the shape of a reservation code.
// Shape only: a well-formed code may still match no reservation.
func IsValidCodeFormat(s string) bool {
	return codePattern.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// toBase36Two encodes n as exactly two base36 digits, clamping to [0, 1295].
func toBase36Two(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 1295 {
		n = 1295
	}
	return string(base36[n/36]) + string(base36[n%36])
}

// hashTo1296 maps a seminar id to a stable value in [0, 1296) with an
// order-dependent rolling hash.
func hashTo1296(s string) int {
	h := 0
	for _, r := range s {
		h = (h*31 + int(r)) % 1296
	}
	if h < 0 {
		h = -h
	}
	return h
}

func parseSeminarDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
