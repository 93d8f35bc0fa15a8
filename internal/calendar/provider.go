package calendar

import (
	"context"

	"github.com/google/uuid"
)

// EventDateTime is a timezone-qualified instant in the provider's wire
// format.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// EntryPoint is one way to join an event's conference.
type EntryPoint struct {
	EntryPointType string `json:"entryPointType"`
	URI            string `json:"uri"`
}

// ConferenceRequest asks the provider to attach a video conference to a new
// event.
type ConferenceRequest struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
}

// ConferenceData carries the conference attached to an event, if any.
type ConferenceData struct {
	EntryPoints []EntryPoint `json:"entryPoints,omitempty"`
}

// Event is the provider's event payload.
type Event struct {
	ID             string          `json:"id,omitempty"`
	Summary        string          `json:"summary"`
	Description    string          `json:"description"`
	Start          EventDateTime   `json:"start"`
	End            EventDateTime   `json:"end"`
	ConferenceData *ConferenceData `json:"conferenceData,omitempty"`
}

// Provider is the external calendar collaborator. Implementations perform
// the network calls outside this repository. DeleteEvent must treat a
// provider-reported already-removed event as success, not failure.
type Provider interface {
	CreateEvent(ctx context.Context, calendarID string, ev Event) (*Event, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, ev Event) error
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// NewConferenceRequest builds a video conference request with a fresh
// idempotency id.
func NewConferenceRequest() ConferenceRequest {
	return ConferenceRequest{Type: "hangoutsMeet", RequestID: uuid.New().String()}
}

// NewEvent assembles an event from a resolved window.
func NewEvent(title, description string, w Window) Event {
	return Event{
		Summary:     title,
		Description: description,
		Start:       EventDateTime{DateTime: w.Start, TimeZone: w.TimeZone},
		End:         EventDateTime{DateTime: w.End, TimeZone: w.TimeZone},
	}
}

// MeetURL extracts the join link from an event's conference entry points:
// the first one whose type denotes a video entry point. Seminars without a
// join link yield an empty string, never an error.
func MeetURL(ev *Event) string {
	if ev == nil || ev.ConferenceData == nil {
		return ""
	}
	for _, ep := range ev.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.URI
		}
	}
	return ""
}
