package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/todo-service/internal/domain"
	"github.com/spec-kit/todo-service/internal/repository"
)

// TodoService coordinates todo workflows. All operations are scoped to
// the owning user; a foreign-owned id surfaces as pgx.ErrNoRows from the
// repository, same as a nonexistent one.
type TodoService struct {
	todos repository.TodoRepository
}

// TodoCreateInput describes todo creation payload.
type TodoCreateInput struct {
	Title       string
	Description string
}

// TodoUpdateInput describes the mutable fields of a todo.
type TodoUpdateInput struct {
	Title       string
	Description string
}

// NewTodoService constructs the service.
func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// Create persists a new pending todo owned by the caller.
func (s *TodoService) Create(ctx context.Context, ownerID string, input TodoCreateInput) (*domain.Todo, error) {
	todo := &domain.Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TodoStatusPending,
		UserID:      ownerID,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// List returns all todos owned by the caller in creation order.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return s.todos.ListByOwner(ctx, ownerID)
}

// Get looks up a single todo by id and owner.
func (s *TodoService) Get(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return s.todos.GetByID(ctx, id, ownerID)
}

// Update applies a new title and description to an owned todo and
// returns the post-update record.
func (s *TodoService) Update(ctx context.Context, ownerID, id string, input TodoUpdateInput) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// MarkComplete transitions a todo to completed. The transition is
// idempotent: a todo that is already completed is left untouched and
// reported back with already=true. The lookup is branched on before any
// field access so a miss cleanly propagates instead of faulting.
func (s *TodoService) MarkComplete(ctx context.Context, ownerID, id string) (todo *domain.Todo, already bool, err error) {
	todo, err = s.todos.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, false, err
	}

	if todo.Status == domain.TodoStatusCompleted {
		return todo, true, nil
	}

	todo.Status = domain.TodoStatusCompleted
	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, false, err
	}
	return todo, false, nil
}

// Delete removes an owned todo.
func (s *TodoService) Delete(ctx context.Context, ownerID, id string) error {
	return s.todos.Delete(ctx, id, ownerID)
}
