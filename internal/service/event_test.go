package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/auth"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
)

func TestEventCreate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewEventService(store)
	creator := seedUser(t, store, "creator@example.com", auth.RoleEventCreator, true)

	event, err := svc.Create(ctx, validCreateEventRequest(), creator.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", event.Name)
	assert.Equal(t, creator.ID, event.CreatorID)
	assert.Zero(t, event.RegistrationCount)
	assert.True(t, event.IsRegistrationOpen())
}

func TestEventCreateUnknownCreator(t *testing.T) {
	svc := NewEventService(repository.NewMemoryStore())
	_, err := svc.Create(context.Background(), validCreateEventRequest(), "no-such-user")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEventCreateValidationFailureStagesNothing(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewEventService(store)
	creator := seedUser(t, store, "creator@example.com", auth.RoleEventCreator, true)

	req := validCreateEventRequest()
	req.Name = "   "
	_, err := svc.Create(ctx, req, creator.ID)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	events, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventUpdate(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewEventService(store)
	creator := seedUser(t, store, "creator@example.com", auth.RoleEventCreator, true)
	created, err := svc.Create(ctx, validCreateEventRequest(), creator.ID)
	require.NoError(t, err)

	req := validCreateEventRequest()
	req.Name = "Renamed Meetup"
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Meetup", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Meetup", fetched.Name)
}

func TestEventUpdateNotFound(t *testing.T) {
	svc := NewEventService(repository.NewMemoryStore())
	_, err := svc.Update(context.Background(), "no-such-event", validCreateEventRequest())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEventDeleteNotFound(t *testing.T) {
	svc := NewEventService(repository.NewMemoryStore())
	err := svc.Delete(context.Background(), "no-such-event")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEventDeleteCascadesRegistrations(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	events := NewEventService(store)
	regs := NewRegistrationService(store)
	creator := seedUser(t, store, "creator@example.com", auth.RoleEventCreator, true)
	event := seedEvent(t, store, creator.ID, time.Now().UTC().Add(time.Hour))

	reg, err := regs.RegisterForEvent(ctx, event.ID, validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, events.Delete(ctx, event.ID))

	_, err = events.Get(ctx, event.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	err = regs.Delete(ctx, reg.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEventListUpcoming(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewEventService(store)
	creator := seedUser(t, store, "creator@example.com", auth.RoleEventCreator, true)
	now := time.Now().UTC()
	seedEvent(t, store, creator.ID, now.Add(-time.Hour)) // already started
	later := seedEvent(t, store, creator.ID, now.Add(48*time.Hour))
	soon := seedEvent(t, store, creator.ID, now.Add(time.Hour))

	events, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, soon.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)
}
