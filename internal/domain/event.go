package domain

import (
	"context"
	"time"
)

// DateLayout is the calendar-date format used throughout the engine.
const DateLayout = "2006-01-02"

// EventStatus is the lifecycle state of a club event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// Event represents a club-run activity: the aggregate root owning the task
// board, budget ledger, and participant roster.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	ClubID      string      `json:"club_id"`
	ClubName    string      `json:"club_name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	// TimeDisplay is the free-form range shown to users ("2:00 PM - 4:00 PM").
	TimeDisplay string `json:"time_display"`
	// StartTime is the machine-parseable 12-hour start ("2:00 PM"). Empty
	// means the event has no start time and is excluded from collision checks.
	StartTime string      `json:"start_time"`
	Status    EventStatus `json:"status"`
	CreatedBy string      `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(clubID, clubName, title, description string, date time.Time, timeDisplay, startTime, createdBy string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		ClubID:      clubID,
		ClubName:    clubName,
		Title:       title,
		Description: description,
		Date:        date,
		TimeDisplay: timeDisplay,
		StartTime:   startTime,
		Status:      EventStatusDraft,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Collision describes one published event occupying the same date and
// normalized start time as a candidate.
// swagger:model Collision
type Collision struct {
	EventID  string `json:"event_id"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	ClubName string `json:"club_name"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListPublishedByDate returns every published event on the given
	// calendar date, across all clubs.
	ListPublishedByDate(ctx context.Context, date time.Time) ([]*Event, error)
	Update(ctx context.Context, eventID string, title, description *string, date *time.Time, timeDisplay, startTime *string, status *EventStatus) (*Event, error)
}
