package dto

import "github.com/spec-kit/todo-service/internal/domain"

// NameRequest carries the two-part name on registration.
type NameRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
}

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     NameRequest `json:"name"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
}

// LoginRequest payload for login. Fields are deliberately unvalidated;
// a blank email falls through to the same "Invalid credentials" answer
// as an unknown one.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToName maps the request name to its domain shape.
func ToName(name NameRequest) domain.Name {
	return domain.Name{FirstName: name.FirstName, LastName: name.LastName}
}
