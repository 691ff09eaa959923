package domain

import "time"

// Name holds the two-part display name supplied at registration.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
}

// User is the domain model for account holders who own todo items.
type User struct {
	ID           string
	Name         Name
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
