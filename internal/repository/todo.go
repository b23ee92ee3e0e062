package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DevBytes-J/todo-app/internal/database"
	"github.com/DevBytes-J/todo-app/internal/models"
)

type TodoRepository struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	todo.ID = uuid.NewString()
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO todos (id, user_id, title, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		todo.ID, todo.UserID, todo.Title, todo.Completed,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)
}

// GetByUserID returns the owner's full collection, newest first.
func (r *TodoRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Todo, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, user_id, title, completed, created_at, updated_at
		 FROM todos WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed,
			&todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, todoID, userID string) (*models.Todo, error) {
	todo := &models.Todo{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, user_id, title, completed, created_at, updated_at
		 FROM todos WHERE id = $1 AND user_id = $2`,
		todoID, userID,
	).Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed,
		&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Update applies a partial update and returns the stored row. Missing rows
// (including rows owned by someone else) surface as pgx.ErrNoRows.
func (r *TodoRepository) Update(ctx context.Context, todoID, userID string, in models.TodoUpdate) (*models.Todo, error) {
	todo := &models.Todo{}
	err := r.db.Pool.QueryRow(ctx,
		`UPDATE todos
		 SET title = COALESCE($3, title),
		     completed = COALESCE($4, completed),
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at, updated_at`,
		todoID, userID, in.Title, in.Completed,
	).Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed,
		&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *TodoRepository) Delete(ctx context.Context, todoID, userID string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		todoID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
