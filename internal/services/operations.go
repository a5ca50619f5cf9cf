package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clubops/internal/domain"
)

// operationsService is the façade over the collision detector, task board,
// budget ledger, and participant roster of one event. It owns the officer
// gate; no sub-engine checks permissions on its own.
type operationsService struct {
	eventRepo      domain.EventRepository
	fetcher        domain.SheetFetcher
	schedule       *scheduleEngine
	tasks          *taskBoard
	budget         *budgetLedger
	roster         *rosterEngine
	opsRepo        domain.EventOperationsRepository
	contextTimeout time.Duration
}

// NewEventOperationsService wires the façade and its sub-engines.
func NewEventOperationsService(
	eventRepo domain.EventRepository,
	opsRepo domain.EventOperationsRepository,
	participantRepo domain.ParticipantRepository,
	memberRepo domain.ClubMemberRepository,
	emailService domain.EmailService,
	fetcher domain.SheetFetcher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventOperationsService {
	return &operationsService{
		eventRepo: eventRepo,
		opsRepo:   opsRepo,
		fetcher:   fetcher,
		schedule:  &scheduleEngine{eventRepo: eventRepo},
		tasks: &taskBoard{
			opsRepo:      opsRepo,
			memberRepo:   memberRepo,
			emailService: emailService,
			logger:       logger,
		},
		budget:         &budgetLedger{opsRepo: opsRepo},
		roster:         &rosterEngine{participantRepo: participantRepo},
		contextTimeout: timeout,
	}
}

// authorize loads the event and applies the mutation gate: platform admin,
// or officer of the owning club.
func (s *operationsService) authorize(ctx context.Context, principal domain.Principal, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !principal.CanManage(event) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *operationsService) CreateEvent(ctx context.Context, principal domain.Principal, event *domain.Event, allowConflicts bool) (*domain.Event, []domain.Collision, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(event.Title) == "" || event.ClubID == "" || event.Date.IsZero() {
		return nil, nil, fmt.Errorf("%w: event title, club, and date are required", domain.ErrInvalidInput)
	}
	if !principal.CanManage(event) {
		return nil, nil, domain.ErrForbidden
	}

	// Collision check runs before anything is written. A read failure means
	// collision status is unknown and creation is refused, never silently
	// treated as "no collisions".
	collisions, err := s.schedule.findCollisions(ctx, event.Date, event.StartTime, "")
	if err != nil {
		return nil, nil, err
	}
	if len(collisions) > 0 && !allowConflicts {
		return nil, collisions, domain.ErrScheduleConflict
	}

	if event.Status == "" {
		event.Status = domain.EventStatusDraft
	}
	event.CreatedBy = principal.UserID
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, nil, fmt.Errorf("create event: %w", err)
	}
	return event, collisions, nil
}

func (s *operationsService) UpdateEvent(ctx context.Context, principal domain.Principal, eventID string, title, description *string, date *time.Time, timeDisplay, startTime *string, status *domain.EventStatus) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return nil, err
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("%w: event title is required", domain.ErrInvalidInput)
	}
	if status != nil && *status != domain.EventStatusDraft && *status != domain.EventStatusPublished {
		return nil, fmt.Errorf("%w: event status %q", domain.ErrInvalidInput, *status)
	}
	updated, err := s.eventRepo.Update(ctx, eventID, title, description, date, timeDisplay, startTime, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *operationsService) FindCollisions(ctx context.Context, date time.Time, startTime string, excludeEventID string) ([]domain.Collision, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.schedule.findCollisions(ctx, date, startTime, excludeEventID)
}

func (s *operationsService) LoadEventOperations(ctx context.Context, eventID string) (*domain.EventOperations, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	tasks, items, err := s.opsRepo.Load(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event operations: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	if items == nil {
		items = []*domain.BudgetItem{}
	}
	return &domain.EventOperations{
		EventID:     eventID,
		Tasks:       tasks,
		BudgetItems: items,
		Totals:      domain.ComputeBudgetTotals(items),
	}, nil
}

func (s *operationsService) SaveEventOperations(ctx context.Context, principal domain.Principal, eventID string, tasks []*domain.Task, items []*domain.BudgetItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	for _, t := range tasks {
		if !domain.ValidTaskStatus(t.Status) {
			return fmt.Errorf("%w: task status %q", domain.ErrInvalidInput, t.Status)
		}
	}
	for _, it := range items {
		if !domain.ValidBudgetCategory(it.Category) {
			return fmt.Errorf("%w: budget category %q", domain.ErrInvalidInput, it.Category)
		}
	}
	if err := s.opsRepo.Save(ctx, eventID, tasks, items); err != nil {
		return fmt.Errorf("save event operations: %w", err)
	}
	return nil
}

func (s *operationsService) CreateTask(ctx context.Context, principal domain.Principal, eventID, title string, assigneeNames []string, deadline *time.Time) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.authorize(ctx, principal, eventID)
	if err != nil {
		return nil, err
	}
	return s.tasks.createTask(ctx, event, principal, title, assigneeNames, deadline)
}

func (s *operationsService) SetTaskStatus(ctx context.Context, principal domain.Principal, eventID, taskID string, status domain.TaskStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	return s.tasks.setStatus(ctx, eventID, taskID, status)
}

func (s *operationsService) DeleteTask(ctx context.Context, principal domain.Principal, eventID, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	return s.tasks.deleteTask(ctx, eventID, taskID)
}

func (s *operationsService) AddBudgetItem(ctx context.Context, principal domain.Principal, eventID, description string, category domain.BudgetCategory, estimatedCost float64) (*domain.BudgetItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return nil, err
	}
	return s.budget.addItem(ctx, eventID, description, category, estimatedCost)
}

func (s *operationsService) UpdateBudgetItem(ctx context.Context, principal domain.Principal, eventID, itemID string, upd domain.BudgetItemUpdate) (*domain.BudgetItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return nil, err
	}
	return s.budget.updateItem(ctx, eventID, itemID, upd)
}

func (s *operationsService) DeleteBudgetItem(ctx context.Context, principal domain.Principal, eventID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	return s.budget.deleteItem(ctx, eventID, itemID)
}

func (s *operationsService) ListParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, err := s.roster.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}

func (s *operationsService) AddParticipant(ctx context.Context, principal domain.Principal, eventID, name, email string) (*domain.Participant, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return nil, false, err
	}
	return s.roster.addParticipant(ctx, eventID, name, email)
}

func (s *operationsService) ImportParticipants(ctx context.Context, principal domain.Principal, eventID, sheetURL string) (*domain.ImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return nil, err
	}
	table, err := s.fetcher.Fetch(ctx, sheetURL)
	if err != nil {
		// Surfaced as user-actionable: typically the sheet is not published
		// to the web. Never a silent empty import.
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	return s.roster.importFromTable(ctx, eventID, table)
}

func (s *operationsService) SetAttendance(ctx context.Context, principal domain.Principal, eventID, participantID string, status domain.AttendanceStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	return s.roster.setAttendance(ctx, participantID, status)
}

func (s *operationsService) RemoveParticipant(ctx context.Context, principal domain.Principal, eventID, participantID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authorize(ctx, principal, eventID); err != nil {
		return err
	}
	return s.roster.removeParticipant(ctx, participantID)
}
