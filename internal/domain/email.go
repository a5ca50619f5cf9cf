package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TaskAssignmentEmailData holds data for one assignee's task notification.
type TaskAssignmentEmailData struct {
	Email        string
	AssigneeName string
	TaskTitle    string
	Deadline     *time.Time
	EventTitle   string
	AssignedBy   string
}

// EmailService defines the contract for sending domain-level emails.
// Dispatch is best-effort: a per-recipient failure is isolated and never
// blocks or reverts the operation that requested it.
type EmailService interface {
	SendTaskAssignment(ctx context.Context, data *TaskAssignmentEmailData) error
}
