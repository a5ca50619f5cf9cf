package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/domain"
)

// TaskController handles the task board endpoints of one event.
type TaskController struct {
	Logger  *slog.Logger
	Service domain.EventOperationsService
}

func NewTaskController(logger *slog.Logger, svc domain.EventOperationsService) *TaskController {
	return &TaskController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTaskRequest is the request body for POST /events/{eventID}/tasks.
type CreateTaskRequest struct {
	Title         string   `json:"title"`
	AssigneeNames []string `json:"assignee_names"`
	Deadline      *string  `json:"deadline,omitempty"`
}

// Validate implements Validator.
func (c CreateTaskRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.Deadline != nil {
		if _, err := time.Parse(domain.DateLayout, *c.Deadline); err != nil {
			errs = append(errs, "deadline must be formatted YYYY-MM-DD")
		}
	}
	return errs
}

// CreateTask godoc
// @Summary Create a work item on the event's task board
// @Description Resolves assignee contact addresses from the club member roster at creation time and dispatches best-effort notification emails per assignee.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param task body CreateTaskRequest true "Task data"
// @Success 201 {object} helpers.APIResponse "data contains the created task"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /events/{eventID}/tasks [post]
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	var deadline *time.Time
	if req.Deadline != nil {
		d, _ := time.Parse(domain.DateLayout, *req.Deadline)
		deadline = &d
	}
	task, err := c.Service.CreateTask(r.Context(), principal, r.PathValue("eventID"), req.Title, req.AssigneeNames, deadline)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, task)
}

// SetTaskStatusRequest is the request body for PATCH /events/{eventID}/tasks/{taskID}/status.
type SetTaskStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (s SetTaskStatusRequest) Validate() []string {
	if !domain.ValidTaskStatus(domain.TaskStatus(s.Status)) {
		return []string{"status must be pending, in-progress, or completed"}
	}
	return nil
}

// SetTaskStatus handles PATCH /events/{eventID}/tasks/{taskID}/status.
func (c *TaskController) SetTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req SetTaskStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	err := c.Service.SetTaskStatus(r.Context(), principal, r.PathValue("eventID"), r.PathValue("taskID"), domain.TaskStatus(req.Status))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": req.Status})
}

// DeleteTask handles DELETE /events/{eventID}/tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	err := c.Service.DeleteTask(r.Context(), principal, r.PathValue("eventID"), r.PathValue("taskID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
