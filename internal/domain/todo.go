package domain

import "time"

// TodoStatus enumerates lifecycle states for todo items.
type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "pending"
	TodoStatusCompleted TodoStatus = "completed"
)

// Todo is the aggregate for a single to-do item. Every todo belongs to
// exactly one user and is only reachable through requests authenticated
// as that user.
type Todo struct {
	ID          string
	Title       string
	Description string
	Status      TodoStatus
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
