package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/auth"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
)

func testUser(email string) *model.User {
	now := time.Now().UTC()
	return &model.User{
		ID: uuid.New().String(), Email: email, PasswordHash: "hash",
		Role: auth.RoleEventCreator, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
}

func testEvent(creatorID string, start time.Time) *model.Event {
	now := time.Now().UTC()
	return &model.Event{
		ID: uuid.New().String(), Name: "Event", Description: "desc", Location: "loc",
		StartTime: start, EndTime: start.Add(time.Hour), CreatorID: creatorID,
		CreatedAt: now, UpdatedAt: now,
	}
}

func testRegistration(eventID, email string, createdAt time.Time) *model.Registration {
	return &model.Registration{
		ID: uuid.New().String(), Name: "Jane", PhoneNumber: "555-0100", Email: email,
		EventID: eventID, CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

func mustCommit(t *testing.T, store Store, stage func(uow UnitOfWork)) {
	t.Helper()
	ctx := context.Background()
	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	stage(uow)
	require.NoError(t, uow.Commit(ctx))
}

func TestMemoryStoreStagesUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("a@b.c")

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Users().Add(ctx, user))

	// Not visible to another unit of work before commit.
	other, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = other.Users().GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	require.NoError(t, uow.Commit(ctx))

	got, err := other.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestMemoryStoreRollbackDiscardsStagedChanges(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("a@b.c")

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Users().Add(ctx, user))
	require.NoError(t, uow.Rollback(ctx))
	// Commit after rollback is a no-op.
	require.NoError(t, uow.Commit(ctx))

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = check.Users().GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemoryStoreRejectsDuplicateUserEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Users().Add(ctx, testUser("a@b.c")))
	})

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Users().Add(ctx, testUser("a@b.c")))
	err = uow.Commit(ctx)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestMemoryStoreRejectedBatchLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("creator@b.c")
	event := testEvent(user.ID, time.Now().UTC().Add(time.Hour))
	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Users().Add(ctx, user))
		require.NoError(t, uow.Events().Add(ctx, event))
	})

	// Two registrations with the same email staged in one batch: the
	// whole batch must fail and neither row may land.
	now := time.Now().UTC()
	first := testRegistration(event.ID, "dup@b.c", now)
	second := testRegistration(event.ID, "dup@b.c", now)

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Registrations().Add(ctx, first))
	require.NoError(t, uow.Registrations().Add(ctx, second))
	err = uow.Commit(ctx)
	require.True(t, errors.Is(err, apperror.ErrConflict))

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	count, err := check.Registrations().CountByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryStoreDeleteEventCascadesRegistrations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("creator@b.c")
	event := testEvent(user.ID, time.Now().UTC().Add(time.Hour))
	reg := testRegistration(event.ID, "jane@b.c", time.Now().UTC())
	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Users().Add(ctx, user))
		require.NoError(t, uow.Events().Add(ctx, event))
		require.NoError(t, uow.Registrations().Add(ctx, reg))
	})

	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Events().Delete(ctx, event.ID))
	})

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = check.Registrations().GetByID(ctx, reg.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemoryStoreListUpcomingFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("creator@b.c")
	now := time.Now().UTC()
	past := testEvent(user.ID, now.Add(-time.Hour))
	soon := testEvent(user.ID, now.Add(time.Hour))
	later := testEvent(user.ID, now.Add(48*time.Hour))
	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Users().Add(ctx, user))
		require.NoError(t, uow.Events().Add(ctx, later))
		require.NoError(t, uow.Events().Add(ctx, past))
		require.NoError(t, uow.Events().Add(ctx, soon))
	})

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	events, err := check.Events().ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, soon.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)
}

func TestMemoryStoreListByEventOrdersByCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	user := testUser("creator@b.c")
	event := testEvent(user.ID, time.Now().UTC().Add(time.Hour))
	now := time.Now().UTC()
	second := testRegistration(event.ID, "second@b.c", now)
	first := testRegistration(event.ID, "first@b.c", now.Add(-time.Minute))
	mustCommit(t, store, func(uow UnitOfWork) {
		require.NoError(t, uow.Users().Add(ctx, user))
		require.NoError(t, uow.Events().Add(ctx, event))
		require.NoError(t, uow.Registrations().Add(ctx, second))
		require.NoError(t, uow.Registrations().Add(ctx, first))
	})

	check, err := store.Begin(ctx)
	require.NoError(t, err)
	regs, err := check.Registrations().ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "first@b.c", regs[0].Email)
	assert.Equal(t, "second@b.c", regs[1].Email)
}
