package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/DevBytes-J/todo-app/internal/models"
	"github.com/DevBytes-J/todo-app/internal/todocache"
)

// TodoStore is the persistence surface TodoService needs. All methods are
// owner-scoped; a row belonging to a different owner reads as pgx.ErrNoRows.
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByUserID(ctx context.Context, userID string) ([]*models.Todo, error)
	GetByID(ctx context.Context, todoID, userID string) (*models.Todo, error)
	Update(ctx context.Context, todoID, userID string, in models.TodoUpdate) (*models.Todo, error)
	Delete(ctx context.Context, todoID, userID string) error
}

// TodoService wraps the store with the collection cache: reads go through the
// cache, every successful mutation invalidates the owner's entry, and a
// failed mutation leaves the cache untouched.
type TodoService struct {
	todos TodoStore
	cache *todocache.Cache
}

func NewTodoService(todos TodoStore, cache *todocache.Cache) *TodoService {
	return &TodoService{todos: todos, cache: cache}
}

// List returns the owner's full collection, newest first, from the cache.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	todos, err := s.cache.Get(ctx, ownerID, func(ctx context.Context) ([]*models.Todo, error) {
		return s.todos.GetByUserID(ctx, ownerID)
	})
	if err != nil {
		return nil, remoteError(err)
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, todoID, ownerID string) (*models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, todoID, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, remoteError(err)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, ownerID, title string, completed bool) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title must not be empty")
	}

	todo := &models.Todo{UserID: ownerID, Title: title, Completed: completed}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, remoteError(err)
	}
	s.cache.Invalidate(ownerID)
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, todoID, ownerID string, in models.TodoUpdate) (*models.Todo, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if trimmed == "" {
			return nil, validationError("title must not be empty")
		}
		in.Title = &trimmed
	}

	todo, err := s.todos.Update(ctx, todoID, ownerID, in)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, remoteError(err)
	}
	s.cache.Invalidate(ownerID)
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, todoID, ownerID string) error {
	if err := s.todos.Delete(ctx, todoID, ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return remoteError(err)
	}
	s.cache.Invalidate(ownerID)
	return nil
}
