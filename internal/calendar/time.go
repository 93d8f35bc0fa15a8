// Package calendar derives timezone-qualified event windows from locally
// entered seminar times and defines the calendar provider contract.
package calendar

import (
	"errors"
	"regexp"

	"github.com/seminar-portal/backend/config"
)

var (
	// ErrBadLocalTime means the start input does not begin with a
	// YYYY-MM-DDTHH:MM date-time.
	ErrBadLocalTime = errors.New("malformed local date-time")
	// ErrBadEndTime means the end time is not HH:MM.
	ErrBadEndTime = errors.New("malformed end time")
)

var (
	localTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)
	endTimePattern   = regexp.MustCompile(`^\d{2}:\d{2}$`)
	// suffixPattern strips fractional seconds, an existing offset, or a Z
	// marker so the wall-clock portion can be relabeled.
	suffixPattern = regexp.MustCompile(`(\..*$|\+.*$|Z$)`)
)

// Window is a timezone-qualified start/end pair handed to the calendar
// provider. TimeZone repeats the zone the offsets already encode because the
// provider API requires both.
type Window struct {
	Start    string
	End      string
	TimeZone string
}

// TimeResolver relabels locally entered seminar times with the portal's
// fixed timezone. Inputs are trusted to be wall-clock time in that zone, so
// no conversion arithmetic happens, only suffix replacement.
type TimeResolver struct {
	offset   string
	timeZone string
}

// NewTimeResolver creates a resolver for the configured zone.
func NewTimeResolver(cfg config.CalendarConfig) *TimeResolver {
	return &TimeResolver{offset: cfg.Offset, timeZone: cfg.TimeZone}
}

// Resolve builds the event window from a local start date-time (e.g.
// "2025-02-15T14:30:00") and an end time of day ("16:00"). The end falls on
// the same calendar date as the start; events crossing midnight are not
// supported.
func (r *TimeResolver) Resolve(localStart, endTimeOfDay string) (Window, error) {
	if !localTimePattern.MatchString(localStart) {
		return Window{}, ErrBadLocalTime
	}
	if !endTimePattern.MatchString(endTimeOfDay) {
		return Window{}, ErrBadEndTime
	}
	start := suffixPattern.ReplaceAllString(localStart, "") + r.offset
	end := start[:10] + "T" + endTimeOfDay + ":00" + r.offset
	return Window{Start: start, End: end, TimeZone: r.timeZone}, nil
}
