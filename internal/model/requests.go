package model

import "time"

// CreateEventRequest is the payload for creating or updating an event.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// SignupRequest is the payload for creating a user account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EventResponse is an Event enriched with its registration count.
type EventResponse struct {
	Event
	RegistrationCount int `json:"registration_count"`
}

// RegistrationResponse is a Registration enriched with its event's name.
type RegistrationResponse struct {
	Registration
	EventName string `json:"event_name"`
}

// AuthResponse carries a signed token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
