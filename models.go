package theralink

import (
	"time"

	"github.com/theralink/client-go/internal/api"
)

// Page is the pagination metadata returned by list endpoints.
type Page = api.Page

// RateLimit is the informational rate-limit state from the most recent
// response. The SDK reports it but never enforces it.
type RateLimit = api.RateLimit

// User is a practitioner or administrator account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientRecord is a client (patient) record.
type ClientRecord struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Diagnosis      string    `json:"diagnosis,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	PractitionerID string    `json:"practitionerId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Exercise is one prescribed exercise within a program.
type Exercise struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	HoldSeconds int    `json:"holdSeconds,omitempty"`
	RestSeconds int    `json:"restSeconds,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Program is a rehabilitation exercise program, optionally assigned to
// a client.
type Program struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	ClientID       string     `json:"clientId,omitempty"`
	PractitionerID string     `json:"practitionerId"`
	Status         string     `json:"status"`
	Exercises      []Exercise `json:"exercises,omitempty"`
	StartDate      string     `json:"startDate,omitempty"`
	EndDate        string     `json:"endDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Session is the result of a successful login.
type Session struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         *User     `json:"user,omitempty"`
}
