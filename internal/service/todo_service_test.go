package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/todo-service/internal/domain"
)

type memoryTodoRepo struct {
	todos []*domain.Todo
}

func newMemoryTodoRepo() *memoryTodoRepo {
	return &memoryTodoRepo{}
}

func (r *memoryTodoRepo) Create(ctx context.Context, todo *domain.Todo) error {
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	stored := *todo
	r.todos = append(r.todos, &stored)
	return nil
}

func (r *memoryTodoRepo) Update(ctx context.Context, todo *domain.Todo) error {
	for _, existing := range r.todos {
		if existing.ID == todo.ID && existing.UserID == todo.UserID {
			existing.Title = todo.Title
			existing.Description = todo.Description
			existing.Status = todo.Status
			existing.UpdatedAt = time.Now()
			todo.UpdatedAt = existing.UpdatedAt
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryTodoRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	for _, existing := range r.todos {
		if existing.ID == id && existing.UserID == ownerID {
			found := *existing
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryTodoRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	var result []domain.Todo
	for _, existing := range r.todos {
		if existing.UserID == ownerID {
			result = append(result, *existing)
		}
	}
	return result, nil
}

func (r *memoryTodoRepo) Delete(ctx context.Context, id, ownerID string) error {
	for i, existing := range r.todos {
		if existing.ID == id && existing.UserID == ownerID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())

	todo, err := svc.Create(context.Background(), "owner-1", TodoCreateInput{Title: "Test Todo", Description: "Test Description"})
	require.NoError(t, err)
	require.NotEmpty(t, todo.ID)
	require.Equal(t, domain.TodoStatusPending, todo.Status)
	require.Equal(t, "owner-1", todo.UserID)
}

func TestListReturnsOnlyOwnedTodosInCreationOrder(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "First", Description: "d"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "Second", Description: "d"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-2", TodoCreateInput{Title: "Other", Description: "d"})
	require.NoError(t, err)

	todos, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	require.Equal(t, first.ID, todos[0].ID)
	require.Equal(t, second.ID, todos[1].ID)
}

func TestGetForeignOwnerBehavesAsMissing(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "Test Todo", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "owner-2", todo.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = svc.Get(ctx, "owner-1", "no-such-id")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateAppliesFields(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "Test Todo", Description: "Test Description"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner-1", todo.ID, TodoUpdateInput{Title: "Updated Todo", Description: "Updated Description"})
	require.NoError(t, err)
	require.Equal(t, "Updated Todo", updated.Title)
	require.Equal(t, "Updated Description", updated.Description)

	fetched, err := svc.Get(ctx, "owner-1", todo.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated Todo", fetched.Title)
}

func TestUpdateMissingTodo(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())

	_, err := svc.Update(context.Background(), "owner-1", "no-such-id", TodoUpdateInput{Title: "t", Description: "d"})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "Test Todo", Description: "d"})
	require.NoError(t, err)

	completed, already, err := svc.MarkComplete(ctx, "owner-1", todo.ID)
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, domain.TodoStatusCompleted, completed.Status)

	again, already, err := svc.MarkComplete(ctx, "owner-1", todo.ID)
	require.NoError(t, err)
	require.True(t, already)
	require.Equal(t, domain.TodoStatusCompleted, again.Status)
}

func TestMarkCompleteMissingTodo(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())

	_, _, err := svc.MarkComplete(context.Background(), "owner-1", "no-such-id")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDeleteThenGetMisses(t *testing.T) {
	svc := NewTodoService(newMemoryTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "owner-1", TodoCreateInput{Title: "Test Todo", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner-1", todo.ID))

	_, err = svc.Get(ctx, "owner-1", todo.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.ErrorIs(t, svc.Delete(ctx, "owner-1", todo.ID), pgx.ErrNoRows)
}
