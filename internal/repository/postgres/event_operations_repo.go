package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"clubops/internal/domain"
)

type eventOperationsRepository struct {
	DB *sql.DB
}

// NewEventOperationsRepository returns the store for an event's embedded
// task and budget collections.
func NewEventOperationsRepository(db *sql.DB) domain.EventOperationsRepository {
	return &eventOperationsRepository{
		DB: db,
	}
}

func (r *eventOperationsRepository) Load(ctx context.Context, eventID string) ([]*domain.Task, []*domain.BudgetItem, error) {
	taskQuery := `
		SELECT id, title, assignee_names, assignee_emails, deadline, status, created_by, created_at
		FROM tasks
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, taskQuery, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t := &domain.Task{}
		var deadline sql.NullTime
		if err := rows.Scan(
			&t.ID, &t.Title, pq.Array(&t.AssigneeNames), pq.Array(&t.AssigneeEmails),
			&deadline, &t.Status, &t.CreatedBy, &t.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scan task: %w", err)
		}
		if deadline.Valid {
			t.Deadline = &deadline.Time
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate tasks: %w", err)
	}

	itemQuery := `
		SELECT id, description, category, estimated_cost, actual_cost, paid
		FROM budget_items
		WHERE event_id = $1
		ORDER BY id ASC
	`
	itemRows, err := r.DB.QueryContext(ctx, itemQuery, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("query budget items: %w", err)
	}
	defer itemRows.Close()

	var items []*domain.BudgetItem
	for itemRows.Next() {
		it := &domain.BudgetItem{}
		if err := itemRows.Scan(&it.ID, &it.Description, &it.Category, &it.EstimatedCost, &it.ActualCost, &it.Paid); err != nil {
			return nil, nil, fmt.Errorf("scan budget item: %w", err)
		}
		items = append(items, it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate budget items: %w", err)
	}

	return tasks, items, nil
}

// Save replaces both collections inside one transaction. If anything fails,
// the transaction rolls back and neither collection is considered saved.
func (r *eventOperationsRepository) Save(ctx context.Context, eventID string, tasks []*domain.Task, items []*domain.BudgetItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM budget_items WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear budget items: %w", err)
	}

	taskInsert := `
		INSERT INTO tasks (id, event_id, title, assignee_names, assignee_emails, deadline, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, t := range tasks {
		var deadline sql.NullTime
		if t.Deadline != nil {
			deadline = sql.NullTime{Time: *t.Deadline, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, taskInsert,
			t.ID, eventID, t.Title, pq.Array(t.AssigneeNames), pq.Array(t.AssigneeEmails),
			deadline, t.Status, t.CreatedBy, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	itemInsert := `
		INSERT INTO budget_items (id, event_id, description, category, estimated_cost, actual_cost, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, itemInsert,
			it.ID, eventID, it.Description, it.Category, it.EstimatedCost, it.ActualCost, it.Paid,
		); err != nil {
			return fmt.Errorf("insert budget item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
