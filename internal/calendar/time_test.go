package calendar

import (
	"testing"

	"github.com/seminar-portal/backend/config"
)

func tokyoResolver() *TimeResolver {
	return NewTimeResolver(config.CalendarConfig{TimeZone: "Asia/Tokyo", Offset: "+09:00"})
}

func TestResolveWindow(t *testing.T) {
	w, err := tokyoResolver().Resolve("2025-02-15T14:30:00", "16:00")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if w.Start != "2025-02-15T14:30:00+09:00" {
		t.Errorf("unexpected start: %q", w.Start)
	}
	if w.End != "2025-02-15T16:00:00+09:00" {
		t.Errorf("unexpected end: %q", w.End)
	}
	if w.TimeZone != "Asia/Tokyo" {
		t.Errorf("unexpected timezone: %q", w.TimeZone)
	}
}

// Existing zone markers are stripped, never converted: the input is trusted
// to be wall-clock time in the target zone.
func TestResolveStripsExistingSuffix(t *testing.T) {
	cases := []string{
		"2025-02-15T14:30:00Z",
		"2025-02-15T14:30:00+00:00",
		"2025-02-15T14:30:00.123",
		"2025-02-15T14:30:00.123Z",
	}
	for _, in := range cases {
		w, err := tokyoResolver().Resolve(in, "16:00")
		if err != nil {
			t.Fatalf("Resolve(%q): %v", in, err)
		}
		if w.Start != "2025-02-15T14:30:00+09:00" {
			t.Errorf("Resolve(%q) start = %q", in, w.Start)
		}
	}
}

// The end time is a time of day on the start's calendar date.
func TestResolveEndSameDate(t *testing.T) {
	w, err := tokyoResolver().Resolve("2025-12-31T09:00:00", "23:30")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if w.Start[:10] != w.End[:10] {
		t.Errorf("end date %q differs from start date %q", w.End[:10], w.Start[:10])
	}
	if w.End != "2025-12-31T23:30:00+09:00" {
		t.Errorf("unexpected end: %q", w.End)
	}
}

func TestResolveRejectsMalformedInput(t *testing.T) {
	r := tokyoResolver()

	if _, err := r.Resolve("15/02/2025 14:30", "16:00"); err != ErrBadLocalTime {
		t.Errorf("expected ErrBadLocalTime, got %v", err)
	}
	if _, err := r.Resolve("", "16:00"); err != ErrBadLocalTime {
		t.Errorf("expected ErrBadLocalTime, got %v", err)
	}
	if _, err := r.Resolve("2025-02-15T14:30:00", "4pm"); err != ErrBadEndTime {
		t.Errorf("expected ErrBadEndTime, got %v", err)
	}
	if _, err := r.Resolve("2025-02-15T14:30:00", "16:00:00"); err != ErrBadEndTime {
		t.Errorf("expected ErrBadEndTime, got %v", err)
	}
}

func TestMeetURL(t *testing.T) {
	ev := &Event{ConferenceData: &ConferenceData{EntryPoints: []EntryPoint{
		{EntryPointType: "phone", URI: "tel:+81-3-0000-0000"},
		{EntryPointType: "video", URI: "https://meet.example.com/abc-defg-hij"},
	}}}
	if got := MeetURL(ev); got != "https://meet.example.com/abc-defg-hij" {
		t.Errorf("unexpected meet url: %q", got)
	}
}

// Seminars without a join link yield an empty string, never an error.
func TestMeetURLAbsent(t *testing.T) {
	if got := MeetURL(nil); got != "" {
		t.Errorf("nil event should yield empty url, got %q", got)
	}
	if got := MeetURL(&Event{}); got != "" {
		t.Errorf("event without conference should yield empty url, got %q", got)
	}
	ev := &Event{ConferenceData: &ConferenceData{EntryPoints: []EntryPoint{
		{EntryPointType: "phone", URI: "tel:+81-3-0000-0000"},
	}}}
	if got := MeetURL(ev); got != "" {
		t.Errorf("no video entry point should yield empty url, got %q", got)
	}
}

func TestNewEvent(t *testing.T) {
	w, _ := tokyoResolver().Resolve("2025-02-15T14:30:00", "16:00")
	ev := NewEvent("Spring Seminar", "desc", w)
	// The provider requires the zone id alongside the offset-qualified
	// instants.
	if ev.Start.TimeZone != "Asia/Tokyo" || ev.End.TimeZone != "Asia/Tokyo" {
		t.Errorf("event must carry the explicit timezone: %+v", ev)
	}
	if ev.Start.DateTime != w.Start || ev.End.DateTime != w.End {
		t.Errorf("event times must match the window: %+v", ev)
	}
}

func TestNewConferenceRequest(t *testing.T) {
	a := NewConferenceRequest()
	b := NewConferenceRequest()
	if a.Type != "hangoutsMeet" {
		t.Errorf("unexpected conference type %q", a.Type)
	}
	if a.RequestID == "" || a.RequestID == b.RequestID {
		t.Error("request ids must be fresh per request")
	}
}
