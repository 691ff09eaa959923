package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/todo-service/internal/domain"
)

// TodoRepository encapsulates todo persistence. Every lookup and
// mutation is keyed by id AND owner, so an id belonging to another user
// behaves exactly like a nonexistent one.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	Update(ctx context.Context, todo *domain.Todo) error
	GetByID(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type todoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository instantiates repository.
func NewTodoRepository(pool *pgxpool.Pool) TodoRepository {
	return &todoRepository{pool: pool}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	const query = `
        INSERT INTO todos (id, title, description, status, user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.UserID,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	const query = `
        UPDATE todos SET title=$1, description=$2, status=$3, updated_at=NOW()
        WHERE id=$4 AND user_id=$5
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.ID,
		todo.UserID,
	).Scan(&todo.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *todoRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	const query = `
        SELECT id, title, description, status, user_id, created_at, updated_at
        FROM todos WHERE id=$1 AND user_id=$2`

	var todo domain.Todo
	if err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Status,
		&todo.UserID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	const query = `
        SELECT id, title, description, status, user_id, created_at, updated_at
        FROM todos WHERE user_id=$1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Status,
			&todo.UserID,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, todo)
	}
	return result, rows.Err()
}

func (r *todoRepository) Delete(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM todos WHERE id=$1 AND user_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
