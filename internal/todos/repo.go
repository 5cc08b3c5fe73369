package todos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskforge/taskforge/internal/shared"
)

// Repository defines persistence operations for todos. Every operation
// is scoped to the owning user.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Todo, error)
	Get(ctx context.Context, id, userID int64) (*Todo, error)
	Create(ctx context.Context, todo *Todo) (*Todo, error)
	Update(ctx context.Context, id, userID int64, title *string, completed *bool) (*Todo, error)
	Delete(ctx context.Context, id, userID int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const todoColumns = "id, title, completed, user_id, created_at, updated_at"

// List returns the user's todos, newest first.
func (r *PGRepository) List(ctx context.Context, userID int64) ([]Todo, error) {
	const query = "SELECT " + todoColumns + " FROM todos WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// Get fetches one todo owned by the user.
func (r *PGRepository) Get(ctx context.Context, id, userID int64) (*Todo, error) {
	const query = "SELECT " + todoColumns + " FROM todos WHERE id = $1 AND user_id = $2"
	var t Todo
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a new todo.
func (r *PGRepository) Create(ctx context.Context, todo *Todo) (*Todo, error) {
	const query = `
		INSERT INTO todos (title, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	created := *todo
	err := r.pool.QueryRow(ctx, query, todo.Title, todo.Completed, todo.UserID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies the provided fields to a todo owned by the user. Nil
// fields are left untouched.
func (r *PGRepository) Update(ctx context.Context, id, userID int64, title *string, completed *bool) (*Todo, error) {
	const query = `
		UPDATE todos
		SET title = COALESCE($3, title),
		    completed = COALESCE($4, completed),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns

	var t Todo
	err := r.pool.QueryRow(ctx, query, id, userID, title, completed).Scan(
		&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a todo owned by the user.
func (r *PGRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = "DELETE FROM todos WHERE id = $1 AND user_id = $2"
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
