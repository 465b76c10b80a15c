package service

import (
	"context"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
)

// RegistrationService orchestrates registration use cases.
type RegistrationService struct {
	store repository.Store
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(store repository.Store) *RegistrationService {
	return &RegistrationService{store: store}
}

// RegisterForEvent signs a registrant up for an open event. The event row
// stays locked for the whole unit of work, so the duplicate check and the
// insert cannot interleave with a concurrent registration; the store's
// unique constraint on (event_id, email) is the final backstop either way.
func (s *RegistrationService) RegisterForEvent(ctx context.Context, eventID string, req model.RegisterRequest) (*model.RegistrationResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	event, err := uow.Events().GetByIDForUpdate(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsRegistrationOpen() {
		return nil, apperror.Conflict("registration", "registration is closed for this event")
	}
	registered, err := uow.Registrations().EmailRegistered(ctx, eventID, req.Email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, apperror.Conflict("registration", "email is already registered for this event")
	}

	reg, err := model.NewRegistration(req.Name, req.PhoneNumber, req.Email, eventID)
	if err != nil {
		return nil, err
	}
	if err := uow.Registrations().Add(ctx, reg); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &model.RegistrationResponse{Registration: *reg, EventName: event.Name}, nil
}

// ListByEvent returns an event's registrations in signup order.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string) ([]model.RegistrationResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	event, err := uow.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	regs, err := uow.Registrations().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]model.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, model.RegistrationResponse{Registration: reg, EventName: event.Name})
	}
	return out, nil
}

// Delete removes a registration.
func (s *RegistrationService) Delete(ctx context.Context, registrationID string) error {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Registrations().GetByID(ctx, registrationID); err != nil {
		return err
	}
	if err := uow.Registrations().Delete(ctx, registrationID); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
