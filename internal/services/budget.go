package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"clubops/internal/domain"
)

// budgetLedger manages the expense lines of one event. Aggregates are
// recomputed from the live item set on every query and never stored.
type budgetLedger struct {
	opsRepo domain.EventOperationsRepository
}

func (l *budgetLedger) addItem(ctx context.Context, eventID, description string, category domain.BudgetCategory, estimatedCost float64) (*domain.BudgetItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: budget item description is required", domain.ErrInvalidInput)
	}
	if !domain.ValidBudgetCategory(category) {
		return nil, fmt.Errorf("%w: budget category %q", domain.ErrInvalidInput, category)
	}

	tasks, items, err := l.opsRepo.Load(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event operations: %w", err)
	}
	item := &domain.BudgetItem{
		ID:            uuid.NewString(),
		Description:   description,
		Category:      category,
		EstimatedCost: estimatedCost,
		ActualCost:    0,
		Paid:          false,
	}
	items = append(items, item)
	if err := l.opsRepo.Save(ctx, eventID, tasks, items); err != nil {
		return nil, fmt.Errorf("save event operations: %w", err)
	}
	return item, nil
}

// updateItem overwrites any subset of the item's fields independently; no
// field triggers recomputation of another.
func (l *budgetLedger) updateItem(ctx context.Context, eventID, itemID string, upd domain.BudgetItemUpdate) (*domain.BudgetItem, error) {
	if upd.Category != nil && !domain.ValidBudgetCategory(*upd.Category) {
		return nil, fmt.Errorf("%w: budget category %q", domain.ErrInvalidInput, *upd.Category)
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return nil, fmt.Errorf("%w: budget item description is required", domain.ErrInvalidInput)
	}

	tasks, items, err := l.opsRepo.Load(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event operations: %w", err)
	}
	var item *domain.BudgetItem
	for _, it := range items {
		if it.ID == itemID {
			item = it
			break
		}
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if upd.Description != nil {
		item.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.EstimatedCost != nil {
		item.EstimatedCost = *upd.EstimatedCost
	}
	if upd.ActualCost != nil {
		item.ActualCost = *upd.ActualCost
	}
	if upd.Paid != nil {
		item.Paid = *upd.Paid
	}
	if err := l.opsRepo.Save(ctx, eventID, tasks, items); err != nil {
		return nil, fmt.Errorf("save event operations: %w", err)
	}
	return item, nil
}

func (l *budgetLedger) deleteItem(ctx context.Context, eventID, itemID string) error {
	tasks, items, err := l.opsRepo.Load(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event operations: %w", err)
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrNotFound
	}
	if err := l.opsRepo.Save(ctx, eventID, tasks, kept); err != nil {
		return fmt.Errorf("save event operations: %w", err)
	}
	return nil
}
