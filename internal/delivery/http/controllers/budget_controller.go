package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"clubops/internal/delivery/http/helpers"
	"clubops/internal/domain"
)

// BudgetController handles the expense ledger endpoints of one event.
type BudgetController struct {
	Logger  *slog.Logger
	Service domain.EventOperationsService
}

func NewBudgetController(logger *slog.Logger, svc domain.EventOperationsService) *BudgetController {
	return &BudgetController{
		Logger:  logger,
		Service: svc,
	}
}

// AddBudgetItemRequest is the request body for POST /events/{eventID}/budget.
type AddBudgetItemRequest struct {
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Validate implements Validator. Negative amounts are rejected here; the
// ledger itself does not re-check.
func (a AddBudgetItemRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Description) == "" {
		errs = append(errs, "description is required")
	}
	if !domain.ValidBudgetCategory(domain.BudgetCategory(a.Category)) {
		errs = append(errs, "category must be one of venue, catering, equipment, marketing, prizes, transport, misc")
	}
	if a.EstimatedCost < 0 {
		errs = append(errs, "estimated_cost must not be negative")
	}
	return errs
}

// AddBudgetItem godoc
// @Summary Add an expense line to the event's budget ledger
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param item body AddBudgetItemRequest true "Budget item data"
// @Success 201 {object} helpers.APIResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /events/{eventID}/budget [post]
func (c *BudgetController) AddBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req AddBudgetItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	item, err := c.Service.AddBudgetItem(r.Context(), principal, r.PathValue("eventID"), req.Description, domain.BudgetCategory(req.Category), req.EstimatedCost)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// UpdateBudgetItemRequest is the request body for PATCH /events/{eventID}/budget/{itemID}.
// Nil fields are left unchanged.
type UpdateBudgetItemRequest struct {
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	ActualCost    *float64 `json:"actual_cost,omitempty"`
	Paid          *bool    `json:"paid,omitempty"`
}

// Validate implements Validator.
func (u UpdateBudgetItemRequest) Validate() []string {
	var errs []string
	if u.Category != nil && !domain.ValidBudgetCategory(domain.BudgetCategory(*u.Category)) {
		errs = append(errs, "category must be one of venue, catering, equipment, marketing, prizes, transport, misc")
	}
	if u.EstimatedCost != nil && *u.EstimatedCost < 0 {
		errs = append(errs, "estimated_cost must not be negative")
	}
	if u.ActualCost != nil && *u.ActualCost < 0 {
		errs = append(errs, "actual_cost must not be negative")
	}
	return errs
}

// UpdateBudgetItem handles PATCH /events/{eventID}/budget/{itemID}.
func (c *BudgetController) UpdateBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateBudgetItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	var category *domain.BudgetCategory
	if req.Category != nil {
		cat := domain.BudgetCategory(*req.Category)
		category = &cat
	}
	item, err := c.Service.UpdateBudgetItem(r.Context(), principal, r.PathValue("eventID"), r.PathValue("itemID"), domain.BudgetItemUpdate{
		Description:   req.Description,
		Category:      category,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Paid:          req.Paid,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// DeleteBudgetItem handles DELETE /events/{eventID}/budget/{itemID}.
func (c *BudgetController) DeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	err := c.Service.DeleteBudgetItem(r.Context(), principal, r.PathValue("eventID"), r.PathValue("itemID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
