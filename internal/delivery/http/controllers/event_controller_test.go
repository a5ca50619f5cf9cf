package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/delivery/http/middleware"
	"clubops/internal/domain"
)

// mockOpsService implements domain.EventOperationsService with canned returns.
type mockOpsService struct {
	event        *domain.Event
	collisions   []domain.Collision
	ops          *domain.EventOperations
	participants []*domain.Participant
	participant  *domain.Participant
	created      bool
	summary      *domain.ImportSummary
	task         *domain.Task
	item         *domain.BudgetItem
	err          error
}

func (m *mockOpsService) CreateEvent(ctx context.Context, principal domain.Principal, event *domain.Event, allowConflicts bool) (*domain.Event, []domain.Collision, error) {
	return m.event, m.collisions, m.err
}

func (m *mockOpsService) UpdateEvent(ctx context.Context, principal domain.Principal, eventID string, title, description *string, date *time.Time, timeDisplay, startTime *string, status *domain.EventStatus) (*domain.Event, error) {
	return m.event, m.err
}

func (m *mockOpsService) FindCollisions(ctx context.Context, date time.Time, startTime string, excludeEventID string) ([]domain.Collision, error) {
	return m.collisions, m.err
}

func (m *mockOpsService) LoadEventOperations(ctx context.Context, eventID string) (*domain.EventOperations, error) {
	return m.ops, m.err
}

func (m *mockOpsService) SaveEventOperations(ctx context.Context, principal domain.Principal, eventID string, tasks []*domain.Task, items []*domain.BudgetItem) error {
	return m.err
}

func (m *mockOpsService) CreateTask(ctx context.Context, principal domain.Principal, eventID, title string, assigneeNames []string, deadline *time.Time) (*domain.Task, error) {
	return m.task, m.err
}

func (m *mockOpsService) SetTaskStatus(ctx context.Context, principal domain.Principal, eventID, taskID string, status domain.TaskStatus) error {
	return m.err
}

func (m *mockOpsService) DeleteTask(ctx context.Context, principal domain.Principal, eventID, taskID string) error {
	return m.err
}

func (m *mockOpsService) AddBudgetItem(ctx context.Context, principal domain.Principal, eventID, description string, category domain.BudgetCategory, estimatedCost float64) (*domain.BudgetItem, error) {
	return m.item, m.err
}

func (m *mockOpsService) UpdateBudgetItem(ctx context.Context, principal domain.Principal, eventID, itemID string, upd domain.BudgetItemUpdate) (*domain.BudgetItem, error) {
	return m.item, m.err
}

func (m *mockOpsService) DeleteBudgetItem(ctx context.Context, principal domain.Principal, eventID, itemID string) error {
	return m.err
}

func (m *mockOpsService) ListParticipants(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	return m.participants, m.err
}

func (m *mockOpsService) AddParticipant(ctx context.Context, principal domain.Principal, eventID, name, email string) (*domain.Participant, bool, error) {
	return m.participant, m.created, m.err
}

func (m *mockOpsService) ImportParticipants(ctx context.Context, principal domain.Principal, eventID, sheetURL string) (*domain.ImportSummary, error) {
	return m.summary, m.err
}

func (m *mockOpsService) SetAttendance(ctx context.Context, principal domain.Principal, eventID, participantID string, status domain.AttendanceStatus) error {
	return m.err
}

func (m *mockOpsService) RemoveParticipant(ctx context.Context, principal domain.Principal, eventID, participantID string) error {
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func authedRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.SetPrincipal(req.Context(), domain.Principal{
		UserID: "u-1", Name: "Dana", Role: domain.RoleSecretary, ClubID: "club-1",
	})
	return req.WithContext(ctx)
}

func TestEventController_CreateEvent_Unauthorized(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockOpsService{})

	body := `{"club_id":"club-1","title":"Demo","date":"2026-04-10"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestEventController_CreateEvent_BadDate(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockOpsService{})

	body := `{"club_id":"club-1","title":"Demo","date":"April 10"}`
	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, authedRequest(http.MethodPost, "/events", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_CreateEvent_Conflict(t *testing.T) {
	svc := &mockOpsService{
		collisions: []domain.Collision{{EventID: "ev-2", Title: "Chess Finals", Time: "2:00 PM", ClubName: "Chess Club"}},
		err:        domain.ErrScheduleConflict,
	}
	ctrl := NewEventController(testLogger(), svc)

	body := `{"club_id":"club-1","title":"Demo","date":"2026-04-10","start_time":"2:00 PM"}`
	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, authedRequest(http.MethodPost, "/events", body))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || !strings.Contains(resp.Error.Message, "Chess Finals at 2:00 PM (Chess Club)") {
		t.Fatalf("expected collision details in error, got %+v", resp.Error)
	}
}

func TestEventController_CreateEvent_Success(t *testing.T) {
	svc := &mockOpsService{
		event:      &domain.Event{ID: "ev-1", Title: "Demo", Status: domain.EventStatusDraft},
		collisions: []domain.Collision{{EventID: "ev-2", Title: "Chess Finals"}},
	}
	ctrl := NewEventController(testLogger(), svc)

	body := `{"club_id":"club-1","title":"Demo","date":"2026-04-10","start_time":"2:00 PM","allow_conflicts":true}`
	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, authedRequest(http.MethodPost, "/events", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestEventController_CheckSchedule_MissingStartTime(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockOpsService{})

	req := httptest.NewRequest(http.MethodGet, "/events/schedule-check?date=2026-04-10", nil)
	w := httptest.NewRecorder()
	ctrl.CheckSchedule(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_CheckSchedule_Success(t *testing.T) {
	svc := &mockOpsService{collisions: []domain.Collision{}}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/schedule-check?date=2026-04-10&start_time=2%3A00+PM", nil)
	w := httptest.NewRecorder()
	ctrl.CheckSchedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestEventController_GetOperations_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockOpsService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/events/ev-missing/operations", nil)
	req.SetPathValue("eventID", "ev-missing")
	w := httptest.NewRecorder()
	ctrl.GetOperations(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_SaveOperations_Forbidden(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockOpsService{err: domain.ErrForbidden})

	req := authedRequest(http.MethodPut, "/events/ev-1/operations", `{"tasks":[],"budget_items":[]}`)
	req.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	ctrl.SaveOperations(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
