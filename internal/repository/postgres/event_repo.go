package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubops/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, club_id, club_name, title, description, date, time_display, start_time, status, created_by, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (club_id, club_name, title, description, date, time_display, start_time, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ClubID, e.ClubName, e.Title, e.Description, e.Date, e.TimeDisplay, e.StartTime,
		e.Status, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, timeDisplayNull, startTimeNull sql.NullString
	err := row.Scan(
		&e.ID, &e.ClubID, &e.ClubName, &e.Title, &descNull, &e.Date,
		&timeDisplayNull, &startTimeNull, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = descNull.String
	e.TimeDisplay = timeDisplayNull.String
	e.StartTime = startTimeNull.String
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListPublishedByDate(ctx context.Context, date time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE date = $1 AND status = $2
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, date, domain.EventStatusPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, eventID string, title, description *string, date *time.Time, timeDisplay, startTime *string, status *domain.EventStatus) (*domain.Event, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if title != nil {
		add("title", *title)
	}
	if description != nil {
		add("description", *description)
	}
	if date != nil {
		add("date", *date)
	}
	if timeDisplay != nil {
		add("time_display", *timeDisplay)
	}
	if startTime != nil {
		add("start_time", *startTime)
	}
	if status != nil {
		add("status", *status)
	}
	add("updated_at", time.Now())

	args = append(args, eventID)
	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING `+eventColumns, strings.Join(sets, ", "), len(args))

	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
