package services

import (
	"context"
	"fmt"
	"time"

	"clubops/internal/domain"
)

// scheduleEngine detects scheduling collisions between a candidate slot and
// the published events of the whole platform. Pure query: it never mutates
// anything.
type scheduleEngine struct {
	eventRepo domain.EventRepository
}

// findCollisions returns every published event occupying the same TimeSlot
// as the candidate (calendar date plus normalized minute-of-day; durations
// are not modeled). excludeEventID drops the candidate itself when checking
// an update. An empty startTime can never collide and yields an empty list.
//
// A repository read error propagates: collision status is then unknown and
// the caller must warn instead of silently proceeding.
func (e *scheduleEngine) findCollisions(ctx context.Context, date time.Time, startTime string, excludeEventID string) ([]domain.Collision, error) {
	if startTime == "" {
		return []domain.Collision{}, nil
	}
	candidate, err := domain.NewTimeSlot(date.Format(domain.DateLayout), startTime)
	if err != nil {
		return nil, err
	}

	events, err := e.eventRepo.ListPublishedByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list events for collision check: %w", err)
	}

	collisions := []domain.Collision{}
	for _, ev := range events {
		if ev.ID == excludeEventID || ev.StartTime == "" {
			continue
		}
		slot, err := domain.NewTimeSlot(ev.Date.Format(domain.DateLayout), ev.StartTime)
		if err != nil {
			// An event whose stored start time cannot be normalized is
			// excluded from collision checks, same as having none.
			continue
		}
		if slot != candidate {
			continue
		}
		shown := ev.TimeDisplay
		if shown == "" {
			shown = ev.StartTime
		}
		collisions = append(collisions, domain.Collision{
			EventID:  ev.ID,
			Title:    ev.Title,
			Time:     shown,
			ClubName: ev.ClubName,
		})
	}
	return collisions, nil
}
