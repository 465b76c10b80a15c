// Package service implements the use-case orchestration between HTTP
// handlers and the repository layer. Every operation follows the same
// sequence: open a unit of work, load what it needs (failing fast on
// missing entities), run its precondition checks, construct or mutate
// entities, stage them, commit.
package service

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/event-management/internal/model"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
)

// EventService orchestrates event use cases.
type EventService struct {
	store repository.Store
}

// NewEventService constructs an EventService.
func NewEventService(store repository.Store) *EventService {
	return &EventService{store: store}
}

// Create validates and persists a new event for an existing creator.
func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest, creatorID string) (*model.EventResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Users().GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	event, err := model.NewEvent(req.Name, req.Description, req.Location, req.StartTime, req.EndTime, creatorID)
	if err != nil {
		return nil, err
	}

	if err := uow.Events().Add(ctx, event); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &model.EventResponse{Event: *event, RegistrationCount: 0}, nil
}

// Update re-validates and replaces an event's mutable details.
func (s *EventService) Update(ctx context.Context, eventID string, req model.CreateEventRequest) (*model.EventResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	event, err := uow.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := event.UpdateDetails(req.Name, req.Description, req.Location, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := uow.Events().Update(ctx, event); err != nil {
		return nil, err
	}
	count, err := uow.Registrations().CountByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &model.EventResponse{Event: *event, RegistrationCount: count}, nil
}

// Delete removes an event. Its registrations are removed with it.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Events().GetByID(ctx, eventID); err != nil {
		return err
	}
	if err := uow.Events().Delete(ctx, eventID); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// Get returns a single event with its registration count.
func (s *EventService) Get(ctx context.Context, eventID string) (*model.EventResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	event, err := uow.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	count, err := uow.Registrations().CountByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &model.EventResponse{Event: *event, RegistrationCount: count}, nil
}

// ListUpcoming returns events that have not started yet, soonest first,
// each with its registration count.
func (s *EventService) ListUpcoming(ctx context.Context) ([]model.EventResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	events, err := uow.Events().ListUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.EventResponse, 0, len(events))
	for _, event := range events {
		count, err := uow.Registrations().CountByEvent(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count registrations for event %s: %w", event.ID, err)
		}
		out = append(out, model.EventResponse{Event: event, RegistrationCount: count})
	}
	return out, nil
}
