// Package repository implements persistence for the event management system:
// per-entity repositories bound to a transactional unit of work. The
// PostgreSQL implementation uses pgx directly (no ORM); an in-memory
// implementation backs tests.
package repository

import (
	"context"

	"github.com/Shivanand-hulikatti/event-management/internal/model"
)

// UserRepository stages and queries user accounts.
type UserRepository interface {
	Add(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// EventRepository stages and queries events.
type EventRepository interface {
	Add(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	// GetByIDForUpdate loads an event and locks its row for the remainder
	// of the unit of work, serializing concurrent registrations.
	GetByIDForUpdate(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	// ListUpcoming returns events whose StartTime is in the future,
	// ascending by StartTime.
	ListUpcoming(ctx context.Context) ([]model.Event, error)
}

// RegistrationRepository stages and queries registrations.
type RegistrationRepository interface {
	Add(ctx context.Context, reg *model.Registration) error
	GetByID(ctx context.Context, id string) (*model.Registration, error)
	Delete(ctx context.Context, id string) error
	// ListByEvent returns an event's registrations ascending by CreatedAt.
	ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error)
	EmailRegistered(ctx context.Context, eventID, email string) (bool, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}

// UnitOfWork groups entity mutations for one use case and commits them
// atomically. An instance is scoped to a single operation and must not be
// shared across concurrent requests.
type UnitOfWork interface {
	Users() UserRepository
	Events() EventRepository
	Registrations() RegistrationRepository
	// Commit persists all staged changes as one atomic batch. A uniqueness
	// violation surfaces as a ConflictError; nothing partial is persisted.
	Commit(ctx context.Context) error
	// Rollback discards staged changes. Safe to call after Commit.
	Rollback(ctx context.Context) error
}

// Store opens units of work against the backing store.
type Store interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
