// Package model defines the core domain types for the event management
// system. Entities are created through validating constructors and mutated
// only through update methods that re-run the same validation; a failed
// update leaves the entity untouched.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
)

// Event represents a scheduled event created by an organizer.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent validates the event data and returns a fully-initialized Event
// with a generated id and creation timestamp.
func NewEvent(name, description, location string, startTime, endTime time.Time, creatorID string) (*Event, error) {
	if err := validateEventData(name, description, location, startTime, endTime); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Event{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Location:    location,
		StartTime:   startTime,
		EndTime:     endTime,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateDetails replaces the five mutable fields after re-validating them
// and stamps a new update timestamp. Identity and creator are untouched.
// On validation failure the event keeps its prior state.
func (e *Event) UpdateDetails(name, description, location string, startTime, endTime time.Time) error {
	if err := validateEventData(name, description, location, startTime, endTime); err != nil {
		return err
	}
	e.Name = name
	e.Description = description
	e.Location = location
	e.StartTime = startTime
	e.EndTime = endTime
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// IsRegistrationOpen reports whether signups are still accepted: true while
// the current instant is strictly before StartTime. Evaluated fresh on
// every call.
func (e *Event) IsRegistrationOpen() bool {
	return time.Now().UTC().Before(e.StartTime)
}

// validateEventData checks the event invariants in a fixed order and
// reports the first violation.
func validateEventData(name, description, location string, startTime, endTime time.Time) error {
	if strings.TrimSpace(name) == "" {
		return apperror.Validation("event", "name", "event name cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.Validation("event", "description", "event description cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return apperror.Validation("event", "location", "event location cannot be empty")
	}
	if !startTime.After(time.Now().UTC()) {
		return apperror.Validation("event", "start_time", "event start time must be in the future")
	}
	if !endTime.After(startTime) {
		return apperror.Validation("event", "end_time", "event end time must be after start time")
	}
	return nil
}
