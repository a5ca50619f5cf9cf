package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/domain"
)

// EventController handles event creation, updates, scheduling checks, and
// the combined load/save of an event's task board and budget ledger.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventOperationsService
}

func NewEventController(logger *slog.Logger, svc domain.EventOperationsService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	ClubID         string `json:"club_id"`
	ClubName       string `json:"club_name"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	TimeDisplay    string `json:"time_display"`
	StartTime      string `json:"start_time"`
	Publish        bool   `json:"publish"`
	AllowConflicts bool   `json:"allow_conflicts"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.ClubID == "" {
		errs = append(errs, "club_id is required")
	}
	if _, err := time.Parse(domain.DateLayout, c.Date); err != nil {
		errs = append(errs, "date must be formatted YYYY-MM-DD")
	}
	if c.StartTime != "" {
		if _, err := domain.ParseClockTime(c.StartTime); err != nil {
			errs = append(errs, "start_time must be formatted H:MM AM/PM")
		}
	}
	return errs
}

// CreateEventResponse carries the created event plus any collisions the
// officer chose to override.
type CreateEventResponse struct {
	Event      *domain.Event      `json:"event"`
	Collisions []domain.Collision `json:"collisions"`
}

// CreateEvent godoc
// @Summary Create a club event
// @Description Creates an event after a platform-wide collision check on its date and start time. A conflicting slot is refused with 409 unless allow_conflicts is set; overridden collisions are echoed back as a warning.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event and overridden collisions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)
	now := time.Now()
	event := domain.NewEvent(req.ClubID, req.ClubName, req.Title, req.Description, date, req.TimeDisplay, req.StartTime, principal.UserID, now, now)
	if req.Publish {
		event.Status = domain.EventStatusPublished
	}

	created, collisions, err := c.Service.CreateEvent(r.Context(), principal, event, req.AllowConflicts)
	if err != nil {
		if len(collisions) > 0 {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, formatCollisions(collisions))
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateEventResponse{Event: created, Collisions: collisions})
}

func formatCollisions(collisions []domain.Collision) string {
	parts := make([]string, 0, len(collisions))
	for _, col := range collisions {
		parts = append(parts, fmt.Sprintf("%s at %s (%s)", col.Title, col.Time, col.ClubName))
	}
	return "schedule conflict with: " + strings.Join(parts, ", ")
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// Nil fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	TimeDisplay *string `json:"time_display,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Date != nil {
		if _, err := time.Parse(domain.DateLayout, *u.Date); err != nil {
			errs = append(errs, "date must be formatted YYYY-MM-DD")
		}
	}
	if u.StartTime != nil && *u.StartTime != "" {
		if _, err := domain.ParseClockTime(*u.StartTime); err != nil {
			errs = append(errs, "start_time must be formatted H:MM AM/PM")
		}
	}
	return errs
}

// UpdateEvent handles PATCH /events/{eventID}.
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	var date *time.Time
	if req.Date != nil {
		d, _ := time.Parse(domain.DateLayout, *req.Date)
		date = &d
	}
	var status *domain.EventStatus
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		status = &s
	}
	updated, err := c.Service.UpdateEvent(r.Context(), principal, r.PathValue("eventID"), req.Title, req.Description, date, req.TimeDisplay, req.StartTime, status)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// CheckSchedule godoc
// @Summary Check a candidate slot for collisions
// @Description Returns every published event, across all clubs, sharing the date and normalized start time. An empty list means the slot is free. exclude_event_id drops the candidate itself when re-checking an existing event.
// @Tags events
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param start_time query string true "Start time (H:MM AM/PM)"
// @Param exclude_event_id query string false "Event id to exclude"
// @Success 200 {object} helpers.APIResponse "data contains the colliding events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events/schedule-check [get]
func (c *EventController) CheckSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date, err := time.Parse(domain.DateLayout, q.Get("date"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}
	startTime := q.Get("start_time")
	if startTime == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start_time is required")
		return
	}
	collisions, err := c.Service.FindCollisions(r.Context(), date, startTime, q.Get("exclude_event_id"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, collisions)
}

// GetOperations handles GET /events/{eventID}/operations: the event's task
// board and budget ledger plus derived totals.
func (c *EventController) GetOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := c.Service.LoadEventOperations(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ops)
}

// SaveOperationsRequest is the request body for PUT /events/{eventID}/operations.
type SaveOperationsRequest struct {
	Tasks       []*domain.Task       `json:"tasks"`
	BudgetItems []*domain.BudgetItem `json:"budget_items"`
}

// SaveOperations handles PUT /events/{eventID}/operations: persists both
// collections as one atomic save.
func (c *EventController) SaveOperations(w http.ResponseWriter, r *http.Request) {
	var req SaveOperationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	if err := c.Service.SaveEventOperations(r.Context(), principal, r.PathValue("eventID"), req.Tasks, req.BudgetItems); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "saved"})
}
