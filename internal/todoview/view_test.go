package todoview

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/DevBytes-J/todo-app/internal/models"
)

func makeTodos(n int) []*models.Todo {
	todos := make([]*models.Todo, 0, n)
	for i := 0; i < n; i++ {
		todos = append(todos, &models.Todo{
			ID:        fmt.Sprintf("todo-%d", i),
			Title:     fmt.Sprintf("Task %d", i),
			Completed: i%2 == 0,
		})
	}
	return todos
}

func TestMatchesSearchCaseInsensitive(t *testing.T) {
	todo := &models.Todo{Title: "Buy Milk"}

	for _, term := range []string{"", "buy", "MILK", "y m"} {
		if !Matches(todo, term, FilterAll) {
			t.Errorf("expected %q to match title %q", term, todo.Title)
		}
	}
	if Matches(todo, "bread", FilterAll) {
		t.Errorf("did not expect %q to match", "bread")
	}
}

func TestBuildPageEmptySearchReturnsAllInOrder(t *testing.T) {
	todos := makeTodos(5)
	page := BuildPage(todos, "", FilterAll, 1)

	if !reflect.DeepEqual(page.Todos, todos) {
		t.Fatalf("expected collection unchanged, got %d items", len(page.Todos))
	}
	if page.TotalPages != 1 || !page.HasMatches {
		t.Fatalf("unexpected metadata: total=%d matches=%v", page.TotalPages, page.HasMatches)
	}
}

func TestFilterModes(t *testing.T) {
	todos := makeTodos(6) // even indexes completed

	t.Run("completed", func(t *testing.T) {
		page := BuildPage(todos, "", FilterCompleted, 1)
		if len(page.Todos) != 3 {
			t.Fatalf("expected 3 completed, got %d", len(page.Todos))
		}
		for _, todo := range page.Todos {
			if !todo.Completed {
				t.Errorf("todo %s is not completed", todo.ID)
			}
		}
	})

	t.Run("incomplete", func(t *testing.T) {
		page := BuildPage(todos, "", FilterIncomplete, 1)
		if len(page.Todos) != 3 {
			t.Fatalf("expected 3 incomplete, got %d", len(page.Todos))
		}
		for _, todo := range page.Todos {
			if todo.Completed {
				t.Errorf("todo %s is completed", todo.ID)
			}
		}
	})

	t.Run("all_preserves_order", func(t *testing.T) {
		page := BuildPage(todos, "", FilterAll, 1)
		if !reflect.DeepEqual(page.Todos, todos) {
			t.Fatal("expected order preserved")
		}
	})
}

func TestSearchAndFilterAreConjunctive(t *testing.T) {
	todos := []*models.Todo{
		{ID: "a", Title: "buy milk", Completed: true},
		{ID: "b", Title: "buy bread", Completed: false},
		{ID: "c", Title: "walk dog", Completed: true},
	}

	page := BuildPage(todos, "buy", FilterCompleted, 1)
	if len(page.Todos) != 1 || page.Todos[0].ID != "a" {
		t.Fatalf("expected only todo a, got %v", page.Todos)
	}
}

func TestPaginationShape(t *testing.T) {
	todos := makeTodos(25)

	cases := []struct {
		page  int
		first string
		count int
	}{
		{1, "todo-0", 10},
		{2, "todo-10", 10},
		{3, "todo-20", 5},
	}
	for _, tc := range cases {
		page := BuildPage(todos, "", FilterAll, tc.page)
		if page.TotalPages != 3 {
			t.Fatalf("page %d: expected 3 total pages, got %d", tc.page, page.TotalPages)
		}
		if len(page.Todos) != tc.count {
			t.Fatalf("page %d: expected %d items, got %d", tc.page, tc.count, len(page.Todos))
		}
		if page.Todos[0].ID != tc.first {
			t.Fatalf("page %d: expected first item %s, got %s", tc.page, tc.first, page.Todos[0].ID)
		}
	}
}

func TestBuildPageIdempotent(t *testing.T) {
	todos := makeTodos(25)

	first := BuildPage(todos, "task 1", FilterIncomplete, 1)
	second := BuildPage(todos, "task 1", FilterIncomplete, 1)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different pages")
	}
}

// A page past the end of the shrunken results stays where it is and renders
// empty; it does not snap back to page 1.
func TestBuildPagePastEnd(t *testing.T) {
	todos := makeTodos(25)

	page := BuildPage(todos, "task 3", FilterAll, 3)
	if len(page.Todos) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(page.Todos))
	}
	if page.Page != 3 {
		t.Fatalf("expected requested page kept, got %d", page.Page)
	}
	if !page.HasMatches {
		t.Fatal("matches exist even though the page is empty")
	}
}

func TestBuildPageNoMatches(t *testing.T) {
	page := BuildPage(makeTodos(5), "nothing matches this", FilterAll, 1)
	if page.HasMatches {
		t.Fatal("expected no matches")
	}
	if page.TotalPages != 0 {
		t.Fatalf("expected 0 pages, got %d", page.TotalPages)
	}
	if len(page.Todos) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(page.Todos))
	}
}

func TestBuildPageEmptyCollection(t *testing.T) {
	page := BuildPage(nil, "", FilterAll, 1)
	if page.HasMatches || page.TotalPages != 0 || len(page.Todos) != 0 {
		t.Fatalf("unexpected page for empty collection: %+v", page)
	}
}

func TestParseFilter(t *testing.T) {
	for _, valid := range []string{"all", "completed", "incomplete"} {
		if _, err := ParseFilter(valid); err != nil {
			t.Errorf("ParseFilter(%q): %v", valid, err)
		}
	}
	if _, err := ParseFilter("done"); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestTotalPages(t *testing.T) {
	todos := makeTodos(25)
	if got := TotalPages(todos, "", FilterAll); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := TotalPages(todos, "no match", FilterAll); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
