package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
)

// Registration represents one attendee signed up for an event.
type Registration struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	EventID     string    `json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRegistration validates the registrant data and returns a Registration
// with a generated id and creation timestamp. Cross-entity checks (event
// exists, window open, email not already registered) belong to the service
// layer, not here.
func NewRegistration(name, phoneNumber, email, eventID string) (*Registration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.Validation("registration", "name", "registration name cannot be empty")
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, apperror.Validation("registration", "phone_number", "phone number cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperror.Validation("registration", "email", "email cannot be empty")
	}
	// Minimal shape check, deliberately not RFC-complete.
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, apperror.Validation("registration", "email", "invalid email format")
	}
	now := time.Now().UTC()
	return &Registration{
		ID:          uuid.New().String(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		EventID:     eventID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
