package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/domain"
)

// RosterController handles the participant roster endpoints of one event.
type RosterController struct {
	Logger  *slog.Logger
	Service domain.EventOperationsService
}

func NewRosterController(logger *slog.Logger, svc domain.EventOperationsService) *RosterController {
	return &RosterController{
		Logger:  logger,
		Service: svc,
	}
}

// ParticipantListResponse is the paginated roster listing.
type ParticipantListResponse struct {
	Participants []*domain.Participant  `json:"participants"`
	Pagination   helpers.PaginationMeta `json:"pagination"`
}

// ListParticipants handles GET /events/{eventID}/participants.
func (c *RosterController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.ListParticipants(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	params := helpers.ParsePagination(r)
	total := len(participants)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ParticipantListResponse{
		Participants: participants[start:end],
		Pagination:   helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// AddParticipantRequest is the request body for POST /events/{eventID}/participants.
type AddParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (a AddParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !strings.Contains(a.Email, "@") {
		errs = append(errs, "email is required")
	}
	return errs
}

// AddParticipantResponse reports whether the registration created a new row
// or merged into an existing one.
type AddParticipantResponse struct {
	Participant *domain.Participant `json:"participant"`
	Created     bool                `json:"created"`
}

// AddParticipant godoc
// @Summary Register a participant
// @Description Registers one participant. Email is the natural key, compared case-insensitively; a duplicate registration is a no-op merge returning created=false, never a duplicate row.
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param participant body AddParticipantRequest true "Participant data"
// @Success 201 {object} helpers.APIResponse "data contains the participant and created flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /events/{eventID}/participants [post]
func (c *RosterController) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	participant, created, err := c.Service.AddParticipant(r.Context(), principal, r.PathValue("eventID"), req.Name, req.Email)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	helpers.WriteJSONSuccess(w, status, AddParticipantResponse{Participant: participant, Created: created})
}

// ImportParticipantsRequest is the request body for POST /events/{eventID}/participants/import.
type ImportParticipantsRequest struct {
	SheetURL string `json:"sheet_url"`
}

// Validate implements Validator.
func (i ImportParticipantsRequest) Validate() []string {
	if strings.TrimSpace(i.SheetURL) == "" {
		return []string{"sheet_url is required"}
	}
	return nil
}

// ImportParticipants godoc
// @Summary Bulk-import participants from a published spreadsheet
// @Description Fetches the sheet as CSV, discovers the name and email columns by case-insensitive substring match, and reconciles rows against the roster in source order. Duplicates (against the roster or earlier rows of the batch) are skipped; rows without a usable name or email are dropped uncounted.
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param source body ImportParticipantsRequest true "Sheet URL"
// @Success 200 {object} helpers.APIResponse "data contains imported and skipped counts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing name/email column)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway (sheet not published or unreachable)"
// @Router /events/{eventID}/participants/import [post]
func (c *RosterController) ImportParticipants(w http.ResponseWriter, r *http.Request) {
	var req ImportParticipantsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	summary, err := c.Service.ImportParticipants(r.Context(), principal, r.PathValue("eventID"), req.SheetURL)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// SetAttendanceRequest is the request body for PATCH /events/{eventID}/participants/{participantID}/attendance.
type SetAttendanceRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator. Only present and absent may be set; pending
// exists only as the registration default.
func (s SetAttendanceRequest) Validate() []string {
	if s.Status != string(domain.AttendancePresent) && s.Status != string(domain.AttendanceAbsent) {
		return []string{"status must be present or absent"}
	}
	return nil
}

// SetAttendance handles PATCH /events/{eventID}/participants/{participantID}/attendance.
func (c *RosterController) SetAttendance(w http.ResponseWriter, r *http.Request) {
	var req SetAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	err := c.Service.SetAttendance(r.Context(), principal, r.PathValue("eventID"), r.PathValue("participantID"), domain.AttendanceStatus(req.Status))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": req.Status})
}

// RemoveParticipant handles DELETE /events/{eventID}/participants/{participantID}.
// Confirmation happens at the UI boundary; the API removes unconditionally.
func (c *RosterController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	err := c.Service.RemoveParticipant(r.Context(), principal, r.PathValue("eventID"), r.PathValue("participantID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "removed"})
}
