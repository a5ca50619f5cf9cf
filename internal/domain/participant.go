package domain

import (
	"context"
	"time"
)

// AttendanceStatus marks whether a registered participant showed up.
type AttendanceStatus string

const (
	AttendancePending AttendanceStatus = "pending"
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Participant is one RSVP record in an event's roster. Email is the natural
// key: within one event, addresses are unique case-insensitively.
// swagger:model Participant
type Participant struct {
	ID           string           `json:"id"`
	EventID      string           `json:"event_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Attendance   AttendanceStatus `json:"attendance"`
	RegisteredAt time.Time        `json:"registered_at"`
}

// NewParticipant returns a new pending Participant. ID is typically set by the repository on create.
func NewParticipant(eventID, name, email string, registeredAt time.Time) *Participant {
	return &Participant{
		EventID:      eventID,
		Name:         name,
		Email:        email,
		Attendance:   AttendancePending,
		RegisteredAt: registeredAt,
	}
}

// ImportSummary reports the outcome of a bulk roster import. Rows without a
// usable name or email are dropped without being counted in either bucket.
// swagger:model ImportSummary
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Table is a parsed tabular source: one header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// SheetFetcher retrieves a published spreadsheet as a Table. A sheet that is
// not publicly published surfaces as a transport error, never as an empty
// table.
type SheetFetcher interface {
	Fetch(ctx context.Context, sheetURL string) (*Table, error)
}

// ParticipantRepository defines storage for event rosters. Roster writes
// persist immediately and independently of the combined task/budget save.
type ParticipantRepository interface {
	// Create inserts p and returns ErrDuplicateParticipant when the event
	// already has a participant with the same case-folded email.
	Create(ctx context.Context, p *Participant) error
	ListByEventID(ctx context.Context, eventID string) ([]*Participant, error)
	// SetAttendance updates one participant's attendance. An unknown id is a
	// no-op, not an error.
	SetAttendance(ctx context.Context, participantID string, status AttendanceStatus) error
	Delete(ctx context.Context, participantID string) error
}
