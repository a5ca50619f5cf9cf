package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"clubops/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

// uniqueViolation is the Postgres error code for unique_violation; the
// participants table carries a unique index on (event_id, lower(email)).
const uniqueViolation = "23505"

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (event_id, name, email, attendance, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.EventID, p.Name, p.Email, p.Attendance, p.RegisteredAt).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateParticipant
		}
		return err
	}
	return nil
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, event_id, name, email, attendance, registered_at
		FROM participants
		WHERE event_id = $1
		ORDER BY registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Participant
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Email, &p.Attendance, &p.RegisteredAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SetAttendance updates one participant's attendance. Zero matched rows is a
// no-op, not an error.
func (r *participantRepository) SetAttendance(ctx context.Context, participantID string, status domain.AttendanceStatus) error {
	query := `
		UPDATE participants
		SET attendance = $1
		WHERE id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, status, participantID)
	return err
}

func (r *participantRepository) Delete(ctx context.Context, participantID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, participantID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
