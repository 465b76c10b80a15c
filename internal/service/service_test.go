package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-management/internal/auth"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
)

func testTokenIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(auth.TokenConfig{
		Secret:          "test-secret",
		Issuer:          "event-management",
		Audience:        "event-management",
		ExpirationHours: 1,
	})
}

// seedUser commits a user directly into the store, bypassing the signup
// flow, so tests can control fields like IsActive.
func seedUser(t *testing.T, store repository.Store, email string, role auth.Role, active bool) *model.User {
	t.Helper()
	ctx := context.Background()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	now := time.Now().UTC()
	user := &model.User{
		ID: uuid.New().String(), Email: email, PasswordHash: hash,
		Role: role, IsActive: active, CreatedAt: now, UpdatedAt: now,
	}
	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Users().Add(ctx, user))
	require.NoError(t, uow.Commit(ctx))
	return user
}

// seedEvent commits an event directly, allowing start times the validating
// constructor rejects (already-started events).
func seedEvent(t *testing.T, store repository.Store, creatorID string, start time.Time) *model.Event {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	event := &model.Event{
		ID: uuid.New().String(), Name: "Seeded Event", Description: "desc", Location: "loc",
		StartTime: start, EndTime: start.Add(time.Hour), CreatorID: creatorID,
		CreatedAt: now, UpdatedAt: now,
	}
	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Events().Add(ctx, event))
	require.NoError(t, uow.Commit(ctx))
	return event
}

func validCreateEventRequest() model.CreateEventRequest {
	start := time.Now().UTC().Add(24 * time.Hour)
	return model.CreateEventRequest{
		Name:        "Go Meetup",
		Description: "Monthly Go user group",
		Location:    "Bengaluru",
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
	}
}

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Name:        "John Doe",
		PhoneNumber: "+1234567890",
		Email:       "john@example.com",
	}
}
