package postgres

import (
	"context"
	"database/sql"

	"clubops/internal/domain"
)

type clubMemberRepository struct {
	DB *sql.DB
}

func NewClubMemberRepository(db *sql.DB) domain.ClubMemberRepository {
	return &clubMemberRepository{
		DB: db,
	}
}

func (r *clubMemberRepository) ListByClubID(ctx context.Context, clubID string) ([]*domain.ClubMember, error) {
	query := `
		SELECT id, club_id, name, email, role
		FROM club_members
		WHERE club_id = $1
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ClubMember
	for rows.Next() {
		m := &domain.ClubMember{}
		var emailNull sql.NullString
		if err := rows.Scan(&m.ID, &m.ClubID, &m.Name, &emailNull, &m.Role); err != nil {
			return nil, err
		}
		m.Email = emailNull.String
		out = append(out, m)
	}
	return out, rows.Err()
}
