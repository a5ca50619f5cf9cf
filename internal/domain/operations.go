package domain

import (
	"context"
	"time"
)

// EventOperations bundles the task board and budget ledger of one event as
// loaded from the store, together with the derived budget totals.
// swagger:model EventOperations
type EventOperations struct {
	EventID     string        `json:"event_id"`
	Tasks       []*Task       `json:"tasks"`
	BudgetItems []*BudgetItem `json:"budget_items"`
	Totals      BudgetTotals  `json:"totals"`
}

// EventOperationsRepository persists the task and budget collections of one
// event. Save replaces both collections in a single transaction: if it
// fails, neither collection is considered saved.
type EventOperationsRepository interface {
	Load(ctx context.Context, eventID string) (tasks []*Task, items []*BudgetItem, err error)
	Save(ctx context.Context, eventID string, tasks []*Task, items []*BudgetItem) error
}

// EventOperationsService is the façade over the collision detector, task
// board, budget ledger, and participant roster of one event. Mutations are
// gated on the principal (platform admin, or officer of the owning club);
// reads are unrestricted within the engine's scope.
type EventOperationsService interface {
	// Events and scheduling.
	CreateEvent(ctx context.Context, principal Principal, event *Event, allowConflicts bool) (*Event, []Collision, error)
	UpdateEvent(ctx context.Context, principal Principal, eventID string, title, description *string, date *time.Time, timeDisplay, startTime *string, status *EventStatus) (*Event, error)
	// FindCollisions returns every published event on the date with an
	// identical normalized start time, excluding excludeEventID. A read
	// failure propagates: collision status is never silently "none".
	FindCollisions(ctx context.Context, date time.Time, startTime string, excludeEventID string) ([]Collision, error)

	// Combined load/save of the task board and budget ledger.
	LoadEventOperations(ctx context.Context, eventID string) (*EventOperations, error)
	SaveEventOperations(ctx context.Context, principal Principal, eventID string, tasks []*Task, items []*BudgetItem) error

	// Task board.
	CreateTask(ctx context.Context, principal Principal, eventID, title string, assigneeNames []string, deadline *time.Time) (*Task, error)
	SetTaskStatus(ctx context.Context, principal Principal, eventID, taskID string, status TaskStatus) error
	DeleteTask(ctx context.Context, principal Principal, eventID, taskID string) error

	// Budget ledger.
	AddBudgetItem(ctx context.Context, principal Principal, eventID, description string, category BudgetCategory, estimatedCost float64) (*BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, principal Principal, eventID, itemID string, upd BudgetItemUpdate) (*BudgetItem, error)
	DeleteBudgetItem(ctx context.Context, principal Principal, eventID, itemID string) error

	// Participant roster. Roster writes persist immediately, outside the
	// combined save.
	ListParticipants(ctx context.Context, eventID string) ([]*Participant, error)
	AddParticipant(ctx context.Context, principal Principal, eventID, name, email string) (*Participant, bool, error)
	ImportParticipants(ctx context.Context, principal Principal, eventID, sheetURL string) (*ImportSummary, error)
	SetAttendance(ctx context.Context, principal Principal, eventID, participantID string, status AttendanceStatus) error
	RemoveParticipant(ctx context.Context, principal Principal, eventID, participantID string) error
}
