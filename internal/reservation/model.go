package reservation

import "github.com/seminar-portal/backend/internal/sheets"

// Reservation sheet column order (11 columns):
// A:ID B:name C:email D:company E:department F:phone G:status
// H:pre_survey_completed I:post_survey_completed J:created_at K:note
const reservationColumns = 11

// Status of a reservation row.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Reservation is one row of a seminar spreadsheet's reservation sheet. The
// opaque ID is owned by the external store; the reservation code is layered
// on top of it for display only.
type Reservation struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Company             string `json:"company"`
	Department          string `json:"department"`
	Phone               string `json:"phone"`
	Status              Status `json:"status"`
	PreSurveyCompleted  bool   `json:"pre_survey_completed"`
	PostSurveyCompleted bool   `json:"post_survey_completed"`
	CreatedAt           string `json:"created_at"`
	Note                string `json:"note"`
}

// FromRow converts a reservation sheet row, padding short rows before any
// cell is read. Survey flags are stored as the string "TRUE".
func FromRow(row []string) Reservation {
	r := sheets.PadRow(row, reservationColumns)
	status := Status(r[6])
	if status == "" {
		status = StatusConfirmed
	}
	return Reservation{
		ID:                  r[0],
		Name:                r[1],
		Email:               r[2],
		Company:             r[3],
		Department:          r[4],
		Phone:               r[5],
		Status:              status,
		PreSurveyCompleted:  r[7] == "TRUE",
		PostSurveyCompleted: r[8] == "TRUE",
		CreatedAt:           r[9],
		Note:                r[10],
	}
}
