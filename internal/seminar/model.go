package seminar

import (
	"strconv"
	"strings"

	"github.com/seminar-portal/backend/internal/sheets"
)

// Master sheet column order (20 columns fixed):
// A:ID B:title C:description D:date E:end_time F:capacity G:current_bookings
// H:speaker I:meet_url J:calendar_event_id K:status L:spreadsheet_id
// M:speaker_title N:format O:target P:invitation_code Q:image_url
// R:created_at S:updated_at T:speaker_reference_url
const masterColumns = 20

// Status of a seminar in the master sheet.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
)

// Seminar is one row of the master sheet.
type Seminar struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Date                string `json:"date"`
	EndTime             string `json:"end_time"`
	Capacity            int    `json:"capacity"`
	CurrentBookings     int    `json:"current_bookings"`
	Speaker             string `json:"speaker"`
	MeetURL             string `json:"meet_url"`
	CalendarEventID     string `json:"calendar_event_id"`
	Status              Status `json:"status"`
	SpreadsheetID       string `json:"spreadsheet_id"`
	SpeakerTitle        string `json:"speaker_title"`
	Format              string `json:"format"`
	Target              string `json:"target"`
	InvitationCode      string `json:"invitation_code"`
	ImageURL            string `json:"image_url"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
	SpeakerReferenceURL string `json:"speaker_reference_url"`
}

// FromRow converts a master sheet row into a Seminar. The sheet provider
// omits trailing empty cells, so the row is padded to the full column count
// before any cell is read.
func FromRow(row []string) Seminar {
	r := sheets.PadRow(row, masterColumns)
	capacity, _ := strconv.Atoi(r[5])
	bookings, _ := strconv.Atoi(r[6])

	status := Status(r[10])
	if status == "" {
		status = StatusDraft
	}
	format := r[13]
	if format == "" {
		format = "online"
	}
	target := r[14]
	if target == "" {
		target = "public"
	}

	return Seminar{
		ID:                  r[0],
		Title:               r[1],
		Description:         r[2],
		Date:                r[3],
		EndTime:             r[4],
		Capacity:            capacity,
		CurrentBookings:     bookings,
		Speaker:             r[7],
		MeetURL:             r[8],
		CalendarEventID:     r[9],
		Status:              status,
		SpreadsheetID:       r[11],
		SpeakerTitle:        r[12],
		Format:              format,
		Target:              target,
		InvitationCode:      strings.TrimSpace(r[15]),
		ImageURL:            r[16],
		CreatedAt:           r[17],
		UpdatedAt:           r[18],
		SpeakerReferenceURL: r[19],
	}
}
