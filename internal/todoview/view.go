// Package todoview derives the visible page of a user's todo collection from
// the full fetched list plus ephemeral view state (search term, filter mode,
// page number, edit target). All derivation is pure; nothing here talks to
// storage.
package todoview

import (
	"fmt"
	"strings"

	"github.com/DevBytes-J/todo-app/internal/models"
)

// PageSize is the fixed number of todos per page.
const PageSize = 10

type Filter string

const (
	FilterAll        Filter = "all"
	FilterCompleted  Filter = "completed"
	FilterIncomplete Filter = "incomplete"
)

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterCompleted, FilterIncomplete:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Matches reports whether a todo passes both predicates: its title contains
// the search term case-insensitively (empty term matches everything) and its
// completion state agrees with the filter mode.
func Matches(todo *models.Todo, search string, filter Filter) bool {
	if !strings.Contains(strings.ToLower(todo.Title), strings.ToLower(search)) {
		return false
	}
	switch filter {
	case FilterCompleted:
		return todo.Completed
	case FilterIncomplete:
		return !todo.Completed
	default:
		return true
	}
}

// Page is the render-ready slice of a filtered collection plus pagination
// metadata. HasMatches distinguishes "no todos at all" from "search/filter
// excluded everything".
type Page struct {
	Todos      []*models.Todo `json:"todos"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	HasMatches bool           `json:"has_matches"`
}

// BuildPage filters the collection (order preserved) and cuts out the
// requested 1-based page. The page number is taken as given: a page past the
// end of the filtered results yields an empty slice rather than snapping back
// to page 1. Navigation is expected to clamp via State.Prev/State.Next.
func BuildPage(todos []*models.Todo, search string, filter Filter, page int) Page {
	var filtered []*models.Todo
	for _, todo := range todos {
		if Matches(todo, search, filter) {
			filtered = append(filtered, todo)
		}
	}

	total := (len(filtered) + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Todos:      filtered[start:end],
		Page:       page,
		TotalPages: total,
		HasMatches: len(filtered) > 0,
	}
}

// TotalPages reports how many pages the collection yields under the given
// search and filter, without cutting a slice.
func TotalPages(todos []*models.Todo, search string, filter Filter) int {
	count := 0
	for _, todo := range todos {
		if Matches(todo, search, filter) {
			count++
		}
	}
	return (count + PageSize - 1) / PageSize
}
