package domain

import "time"

// TaskStatus is the lifecycle state of a work item. Transitions are
// unrestricted in both directions; this is a manual tracking tool with no
// terminal state.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is one of the three known states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// UnassignedSentinel is the assignee name used when no member is selected.
// Its presence suppresses notification dispatch for the task.
const UnassignedSentinel = "Unassigned"

// Task is a delegated work item belonging to exactly one event.
// AssigneeEmails is resolved from the club member roster at creation time
// only; later roster changes do not retroactively update a task, so the
// email list may be shorter than the name list.
// swagger:model Task
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	AssigneeNames  []string   `json:"assignee_names"`
	AssigneeEmails []string   `json:"assignee_emails"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Status         TaskStatus `json:"status"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}
