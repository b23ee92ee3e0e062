// Package server exposes the application over HTTP: auth endpoints issuing
// the session cookie, owner-scoped todo CRUD, and the list endpoints that
// apply the search/filter/pagination view state.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DevBytes-J/todo-app/internal/models"
	"github.com/DevBytes-J/todo-app/internal/todoview"
)

// AuthService gates every todo operation on a current user.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// TodoService is the data-access layer for todo intents.
type TodoService interface {
	List(ctx context.Context, ownerID string) ([]*models.Todo, error)
	Get(ctx context.Context, todoID, ownerID string) (*models.Todo, error)
	Create(ctx context.Context, ownerID, title string, completed bool) (*models.Todo, error)
	Update(ctx context.Context, todoID, ownerID string, in models.TodoUpdate) (*models.Todo, error)
	Delete(ctx context.Context, todoID, ownerID string) error
}

// AdviceProvider feeds the advice line on the list view.
type AdviceProvider interface {
	Advice(ctx context.Context) (string, error)
}

type Server struct {
	echo   *echo.Echo
	auth   AuthService
	todos  TodoService
	advice AdviceProvider
	views  *todoview.Registry
}

func New(auth AuthService, todos TodoService, advice AdviceProvider) *Server {
	s := &Server{
		auth:   auth,
		todos:  todos,
		advice: advice,
		views:  todoview.NewRegistry(),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	api := e.Group("/api")
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/signout", s.handleSignout)
	api.GET("/theme", s.handleGetTheme)
	api.PUT("/theme", s.handleSetTheme)

	authed := api.Group("", s.requireAuth)
	authed.GET("/me", s.handleMe)
	authed.GET("/advice", s.handleAdvice)

	authed.GET("/todos", s.handleListTodos)
	authed.POST("/todos", s.handleCreateTodo)
	authed.GET("/todos/:id", s.handleGetTodo)
	authed.PATCH("/todos/:id", s.handleUpdateTodo)
	authed.DELETE("/todos/:id", s.handleDeleteTodo)

	authed.POST("/todos/search", s.handleSetSearch)
	authed.POST("/todos/filter", s.handleSetFilter)
	authed.POST("/todos/next", s.handleNextPage)
	authed.POST("/todos/prev", s.handlePrevPage)
	authed.POST("/todos/edit/:id", s.handleStartEdit)
	authed.DELETE("/todos/edit", s.handleStopEdit)

	s.echo = e
	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
