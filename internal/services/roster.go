package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clubops/internal/domain"
)

// rosterEngine manages the registered participants of one event. Roster
// writes persist immediately, outside the combined task/budget save.
type rosterEngine struct {
	participantRepo domain.ParticipantRepository
}

// addParticipant registers one participant. Email is the natural key: a
// second registration with the same case-folded address returns the existing
// record with created=false and mutates nothing.
func (r *rosterEngine) addParticipant(ctx context.Context, eventID, name, email string) (*domain.Participant, bool, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !strings.Contains(email, "@") {
		return nil, false, fmt.Errorf("%w: participant name and email are required", domain.ErrInvalidInput)
	}

	existing, err := r.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("list participants: %w", err)
	}
	folded := strings.ToLower(email)
	for _, p := range existing {
		if strings.ToLower(p.Email) == folded {
			return p, false, nil
		}
	}

	p := domain.NewParticipant(eventID, name, email, time.Now())
	if err := r.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateParticipant) {
			// Lost a race with another registration; still a no-op merge
			// returning the row that won.
			return r.findByEmail(ctx, eventID, folded)
		}
		return nil, false, fmt.Errorf("create participant: %w", err)
	}
	return p, true, nil
}

// findByEmail re-reads the roster after a unique-violation race and returns
// the participant that won it.
func (r *rosterEngine) findByEmail(ctx context.Context, eventID, folded string) (*domain.Participant, bool, error) {
	existing, err := r.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("list participants: %w", err)
	}
	for _, p := range existing {
		if strings.ToLower(p.Email) == folded {
			return p, false, nil
		}
	}
	return nil, false, domain.ErrDuplicateParticipant
}

// importFromTable reconciles a parsed tabular source against the roster.
// Column discovery is case-insensitive by substring: a header containing
// "name" is the name column, one containing "email" or "mail" the email
// column; missing either fails wholesale before any row is processed.
//
// Rows run in source order. A duplicate against the pre-import roster or an
// earlier row of the same batch counts as skipped (first occurrence wins);
// rows without a usable name or an @-containing email are dropped without
// being counted.
func (r *rosterEngine) importFromTable(ctx context.Context, eventID string, table *domain.Table) (*domain.ImportSummary, error) {
	nameIdx, emailIdx := -1, -1
	for i, h := range table.Header {
		folded := strings.ToLower(h)
		if nameIdx == -1 && strings.Contains(folded, "name") {
			nameIdx = i
		}
		if emailIdx == -1 && (strings.Contains(folded, "email") || strings.Contains(folded, "mail")) {
			emailIdx = i
		}
	}
	if nameIdx == -1 || emailIdx == -1 {
		return nil, domain.ErrMissingColumns
	}

	existing, err := r.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[strings.ToLower(p.Email)] = struct{}{}
	}

	summary := &domain.ImportSummary{}
	for _, row := range table.Rows {
		if nameIdx >= len(row) || emailIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		email := strings.TrimSpace(row[emailIdx])
		if name == "" || !strings.Contains(email, "@") {
			continue
		}
		folded := strings.ToLower(email)
		if _, dup := seen[folded]; dup {
			summary.Skipped++
			continue
		}
		p := domain.NewParticipant(eventID, name, email, time.Now())
		if err := r.participantRepo.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrDuplicateParticipant) {
				summary.Skipped++
				seen[folded] = struct{}{}
				continue
			}
			return nil, fmt.Errorf("create participant: %w", err)
		}
		seen[folded] = struct{}{}
		summary.Imported++
	}
	return summary, nil
}

// setAttendance overwrites one participant's attendance. Only present and
// absent may be set explicitly; pending exists only as the default. An
// unknown participant id is a no-op.
func (r *rosterEngine) setAttendance(ctx context.Context, participantID string, status domain.AttendanceStatus) error {
	if status != domain.AttendancePresent && status != domain.AttendanceAbsent {
		return fmt.Errorf("%w: attendance status %q", domain.ErrInvalidInput, status)
	}
	if err := r.participantRepo.SetAttendance(ctx, participantID, status); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}
	return nil
}

func (r *rosterEngine) removeParticipant(ctx context.Context, participantID string) error {
	if err := r.participantRepo.Delete(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
