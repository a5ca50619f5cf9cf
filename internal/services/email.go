package services

import (
	"context"
	"fmt"
	"log"

	"clubops/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTaskAssignment sends one assignee's notification using the
// "task_assignment" template and the given data.
func (s *emailService) SendTaskAssignment(ctx context.Context, data *domain.TaskAssignmentEmailData) error {
	if data == nil {
		return fmt.Errorf("task assignment data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("task_assignment", data)
	if err != nil {
		return fmt.Errorf("failed to render task_assignment template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send task assignment email: %w", err)
	}
	log.Printf("[EMAIL] Task assignment sent to %s", data.Email)
	return nil
}
