package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"clubops/internal/domain"
)

// taskBoard manages the work items of one event. Tasks live inside the
// event's operations document, so every mutation is load-modify-save.
type taskBoard struct {
	opsRepo      domain.EventOperationsRepository
	memberRepo   domain.ClubMemberRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// resolvedAssignee pairs an assignee name with the contact address looked up
// from the club roster at creation time.
type resolvedAssignee struct {
	name  string
	email string
}

func (b *taskBoard) createTask(ctx context.Context, event *domain.Event, principal domain.Principal, title string, assigneeNames []string, deadline *time.Time) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrInvalidInput)
	}
	if len(assigneeNames) == 0 {
		assigneeNames = []string{domain.UnassignedSentinel}
	}

	assignees, err := b.resolveAssignees(ctx, event.ClubID, assigneeNames)
	if err != nil {
		return nil, err
	}

	tasks, items, err := b.opsRepo.Load(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("load event operations: %w", err)
	}

	task := &domain.Task{
		ID:            uuid.NewString(),
		Title:         title,
		AssigneeNames: assigneeNames,
		Status:        domain.TaskStatusPending,
		Deadline:      deadline,
		CreatedBy:     principal.Name,
		CreatedAt:     time.Now(),
	}
	for _, a := range assignees {
		task.AssigneeEmails = append(task.AssigneeEmails, a.email)
	}

	tasks = append(tasks, task)
	if err := b.opsRepo.Save(ctx, event.ID, tasks, items); err != nil {
		return nil, fmt.Errorf("save event operations: %w", err)
	}

	b.notifyAssignees(ctx, event, task, assignees)
	return task, nil
}

// resolveAssignees looks up each name in the club member roster. A name with
// no roster entry or no stored address contributes no pair; the address list
// is therefore at most as long as the name list. The lookup happens at
// creation time only.
func (b *taskBoard) resolveAssignees(ctx context.Context, clubID string, names []string) ([]resolvedAssignee, error) {
	members, err := b.memberRepo.ListByClubID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list club members: %w", err)
	}
	byName := make(map[string]string, len(members))
	for _, m := range members {
		if m.Email != "" {
			byName[strings.ToLower(m.Name)] = m.Email
		}
	}
	var out []resolvedAssignee
	for _, name := range names {
		if email, ok := byName[strings.ToLower(name)]; ok {
			out = append(out, resolvedAssignee{name: name, email: email})
		}
	}
	return out, nil
}

// notifyAssignees fires one notification per resolved address, in parallel.
// Deliveries are independent: a failure is logged as a warning and never
// fails or rolls back the created task. No dispatch happens when nothing
// resolved or when the task is unassigned.
func (b *taskBoard) notifyAssignees(ctx context.Context, event *domain.Event, task *domain.Task, assignees []resolvedAssignee) {
	if len(assignees) == 0 {
		return
	}
	for _, name := range task.AssigneeNames {
		if name == domain.UnassignedSentinel {
			return
		}
	}

	var wg sync.WaitGroup
	for _, a := range assignees {
		wg.Add(1)
		go func(a resolvedAssignee) {
			defer wg.Done()
			err := b.emailService.SendTaskAssignment(ctx, &domain.TaskAssignmentEmailData{
				Email:        a.email,
				AssigneeName: a.name,
				TaskTitle:    task.Title,
				Deadline:     task.Deadline,
				EventTitle:   event.Title,
				AssignedBy:   task.CreatedBy,
			})
			if err != nil {
				b.logger.Warn("task assignment email failed",
					"event_id", event.ID, "task_id", task.ID, "assignee", a.name, "err", err)
			}
		}(a)
	}
	wg.Wait()
}

func (b *taskBoard) setStatus(ctx context.Context, eventID, taskID string, status domain.TaskStatus) error {
	if !domain.ValidTaskStatus(status) {
		return fmt.Errorf("%w: task status %q", domain.ErrInvalidInput, status)
	}
	tasks, items, err := b.opsRepo.Load(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event operations: %w", err)
	}
	var task *domain.Task
	for _, t := range tasks {
		if t.ID == taskID {
			task = t
			break
		}
	}
	if task == nil {
		return domain.ErrNotFound
	}
	// Unconditional overwrite: any transition in either direction is allowed.
	task.Status = status
	if err := b.opsRepo.Save(ctx, eventID, tasks, items); err != nil {
		return fmt.Errorf("save event operations: %w", err)
	}
	return nil
}

func (b *taskBoard) deleteTask(ctx context.Context, eventID, taskID string) error {
	tasks, items, err := b.opsRepo.Load(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event operations: %w", err)
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return domain.ErrNotFound
	}
	if err := b.opsRepo.Save(ctx, eventID, kept, items); err != nil {
		return fmt.Errorf("save event operations: %w", err)
	}
	return nil
}
