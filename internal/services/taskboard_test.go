package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMembers(f *fixture) {
	f.members.members = []*domain.ClubMember{
		{ID: "m1", ClubID: "club-1", Name: "Alice", Email: "alice@campus.edu", Role: domain.RoleMember},
		{ID: "m2", ClubID: "club-1", Name: "Bob", Email: "", Role: domain.RoleMember},
		{ID: "m3", ClubID: "club-2", Name: "Carol", Email: "carol@campus.edu", Role: domain.RoleMember},
	}
}

func TestCreateTask_ResolvesAddressesFromRosterSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMembers(f)
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)

	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	task, err := f.svc.CreateTask(ctx, officer, e.ID, "Order banners", []string{"Alice", "Bob"}, &deadline)
	require.NoError(t, err)

	// Bob has no stored address: addresses list is shorter than names list.
	assert.Equal(t, []string{"Alice", "Bob"}, task.AssigneeNames)
	assert.Equal(t, []string{"alice@campus.edu"}, task.AssigneeEmails)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, "Dana", task.CreatedBy)
	assert.NotEmpty(t, task.ID)

	// Dispatch targets only Alice.
	assert.Equal(t, []string{"alice@campus.edu"}, f.email.sentTo())
	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "Order banners", f.email.sent[0].TaskTitle)
	assert.Equal(t, "Spring Gala", f.email.sent[0].EventTitle)
	assert.Equal(t, "Dana", f.email.sent[0].AssignedBy)
}

func TestCreateTask_UnassignedSuppressesDispatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMembers(f)
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)

	task, err := f.svc.CreateTask(ctx, officer, e.ID, "Find a volunteer", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.UnassignedSentinel}, task.AssigneeNames)
	assert.Empty(t, f.email.sentTo())
}

func TestCreateTask_EmailFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.members.members = []*domain.ClubMember{
		{ID: "m1", ClubID: "club-1", Name: "Alice", Email: "alice@campus.edu"},
		{ID: "m2", ClubID: "club-1", Name: "Bob", Email: "bob@campus.edu"},
	}
	f.email.failFor = map[string]error{"bob@campus.edu": errors.New("mailbox full")}
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)

	task, err := f.svc.CreateTask(ctx, officer, e.ID, "Order banners", []string{"Alice", "Bob"}, nil)
	require.NoError(t, err, "a failed delivery must not fail task creation")
	require.NotNil(t, task)

	// The task was saved despite the failure.
	saved, _, loadErr := f.ops.Load(ctx, e.ID)
	require.NoError(t, loadErr)
	require.Len(t, saved, 1)

	// Alice's delivery is independent of Bob's failure.
	assert.Equal(t, []string{"alice@campus.edu"}, f.email.sentTo())
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	f := newFixture()
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)
	_, err := f.svc.CreateTask(context.Background(), officer, e.ID, "   ", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetTaskStatus_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMembers(f)
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)
	task, err := f.svc.CreateTask(ctx, officer, e.ID, "Order banners", []string{"Alice"}, nil)
	require.NoError(t, err)

	// completed and back to pending, in either direction, without touching assignees.
	require.NoError(t, f.svc.SetTaskStatus(ctx, officer, e.ID, task.ID, domain.TaskStatusCompleted))
	require.NoError(t, f.svc.SetTaskStatus(ctx, officer, e.ID, task.ID, domain.TaskStatusPending))

	tasks, _, err := f.ops.Load(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskStatusPending, tasks[0].Status)
	assert.Equal(t, []string{"Alice"}, tasks[0].AssigneeNames)
}

func TestSetTaskStatus_Invalid(t *testing.T) {
	f := newFixture()
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)
	err := f.svc.SetTaskStatus(context.Background(), officer, e.ID, "t-1", "done")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetTaskStatus_UnknownTask(t *testing.T) {
	f := newFixture()
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)
	err := f.svc.SetTaskStatus(context.Background(), officer, e.ID, "t-missing", domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMembers(f)
	e := seedEvent(f, "club-1", "Spring Gala", "2026-04-10", "", domain.EventStatusPublished)
	task, err := f.svc.CreateTask(ctx, officer, e.ID, "Order banners", []string{"Alice"}, nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTask(ctx, officer, e.ID, task.ID))
	tasks, _, err := f.ops.Load(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, f.svc.DeleteTask(ctx, officer, e.ID, task.ID), domain.ErrNotFound)
}
