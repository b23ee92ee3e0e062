package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DevBytes-J/todo-app/internal/models"
	"github.com/DevBytes-J/todo-app/internal/todoview"
)

type createTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type listResponse struct {
	todoview.Page
	Editing string `json:"editing,omitempty"`
}

// handleListTodos runs the list transformation: the owner's stored view state,
// optionally overridden by search/filter/page query params, applied to the
// cached collection.
func (s *Server) handleListTodos(c echo.Context) error {
	user := currentUser(c)
	state := s.views.For(user.ID)

	params := c.QueryParams()
	if params.Has("search") {
		state.SetSearch(params.Get("search"))
	}
	if params.Has("filter") {
		filter, err := todoview.ParseFilter(params.Get("filter"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		state.SetFilter(filter)
	}
	if params.Has("page") {
		page, err := strconv.Atoi(params.Get("page"))
		if err != nil || page < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "page must be a positive integer"})
		}
		state.SetPage(page)
	}

	todos, err := s.todos.List(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(c, err)
	}

	search, filter, page := state.Snapshot()
	resp := listResponse{Page: todoview.BuildPage(todos, search, filter, page)}
	if editing, ok := state.Editing(); ok {
		resp.Editing = editing
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateTodo(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user := currentUser(c)
	todo, err := s.todos.Create(c.Request().Context(), user.ID, req.Title, req.Completed)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

func (s *Server) handleGetTodo(c echo.Context) error {
	user := currentUser(c)
	todo, err := s.todos.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (s *Server) handleUpdateTodo(c echo.Context) error {
	var req models.TodoUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user := currentUser(c)
	state := s.views.For(user.ID)

	todo, err := s.todos.Update(c.Request().Context(), c.Param("id"), user.ID, req)
	if err != nil {
		return httpError(c, err)
	}

	// Saving an in-place edit closes its form.
	if editing, ok := state.Editing(); ok && editing == todo.ID {
		state.StopEdit()
	}
	return c.JSON(http.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(c echo.Context) error {
	user := currentUser(c)
	state := s.views.For(user.ID)

	todoID := c.Param("id")
	if err := s.todos.Delete(c.Request().Context(), todoID, user.ID); err != nil {
		return httpError(c, err)
	}

	if editing, ok := state.Editing(); ok && editing == todoID {
		state.StopEdit()
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleSetSearch(c echo.Context) error {
	var req struct {
		Q string `json:"q"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	s.views.For(currentUser(c).ID).SetSearch(req.Q)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (s *Server) handleSetFilter(c echo.Context) error {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	filter, err := todoview.ParseFilter(req.Mode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s.views.For(currentUser(c).ID).SetFilter(filter)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// handleNextPage advances the page, clamped against the current filtered
// total so "next" is a no-op on the last page.
func (s *Server) handleNextPage(c echo.Context) error {
	user := currentUser(c)
	state := s.views.For(user.ID)

	todos, err := s.todos.List(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(c, err)
	}

	search, filter, _ := state.Snapshot()
	state.Next(todoview.TotalPages(todos, search, filter))
	_, _, page := state.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{"page": page})
}

func (s *Server) handlePrevPage(c echo.Context) error {
	state := s.views.For(currentUser(c).ID)
	state.Prev()
	_, _, page := state.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{"page": page})
}

// handleStartEdit opens the single in-place edit slot on the given todo,
// silently closing any previously open form.
func (s *Server) handleStartEdit(c echo.Context) error {
	user := currentUser(c)

	todo, err := s.todos.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return httpError(c, err)
	}

	s.views.For(user.ID).StartEdit(todo.ID)
	return c.JSON(http.StatusOK, echo.Map{"editing": todo.ID})
}

func (s *Server) handleStopEdit(c echo.Context) error {
	s.views.For(currentUser(c).ID).StopEdit()
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (s *Server) handleAdvice(c echo.Context) error {
	line, err := s.advice.Advice(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to fetch advice"})
	}
	return c.JSON(http.StatusOK, echo.Map{"advice": line})
}
