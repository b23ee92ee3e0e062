package todocache

import (
	"context"
	"errors"
	"testing"

	"github.com/DevBytes-J/todo-app/internal/models"
)

func fetchCounter(todos []*models.Todo) (FetchFunc, *int) {
	calls := 0
	return func(ctx context.Context) ([]*models.Todo, error) {
		calls++
		return todos, nil
	}, &calls
}

func TestGetFetchesOnceThenServesCached(t *testing.T) {
	ctx := context.Background()
	cache := New()
	fetch, calls := fetchCounter([]*models.Todo{{ID: "a"}})

	for i := 0; i < 3; i++ {
		todos, err := cache.Get(ctx, "owner", fetch)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(todos) != 1 || todos[0].ID != "a" {
			t.Fatalf("unexpected collection: %v", todos)
		}
	}
	if *calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", *calls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	cache := New()
	fetch, calls := fetchCounter(nil)

	if _, err := cache.Get(ctx, "owner", fetch); err != nil {
		t.Fatalf("get: %v", err)
	}

	cache.Invalidate("owner")
	cache.Invalidate("owner") // idempotent

	if _, err := cache.Get(ctx, "owner", fetch); err != nil {
		t.Fatalf("get: %v", err)
	}
	if *calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", *calls)
	}
}

func TestFailedFetchCachesNothing(t *testing.T) {
	ctx := context.Background()
	cache := New()

	boom := errors.New("backend down")
	failures := 0
	if _, err := cache.Get(ctx, "owner", func(ctx context.Context) ([]*models.Todo, error) {
		failures++
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	fetch, calls := fetchCounter(nil)
	if _, err := cache.Get(ctx, "owner", fetch); err != nil {
		t.Fatalf("get: %v", err)
	}
	if failures != 1 || *calls != 1 {
		t.Fatalf("expected the miss to refetch, failures=%d calls=%d", failures, *calls)
	}
}

func TestEntriesAreKeyedByOwner(t *testing.T) {
	ctx := context.Background()
	cache := New()

	aliceFetch, aliceCalls := fetchCounter([]*models.Todo{{ID: "a", UserID: "alice"}})
	bobFetch, bobCalls := fetchCounter([]*models.Todo{{ID: "b", UserID: "bob"}})

	aliceTodos, _ := cache.Get(ctx, "alice", aliceFetch)
	bobTodos, _ := cache.Get(ctx, "bob", bobFetch)
	if aliceTodos[0].UserID != "alice" || bobTodos[0].UserID != "bob" {
		t.Fatal("cross-account collections mixed up")
	}

	// Invalidating one owner must not evict the other.
	cache.Invalidate("alice")
	if _, err := cache.Get(ctx, "bob", bobFetch); err != nil {
		t.Fatalf("get: %v", err)
	}
	if *bobCalls != 1 {
		t.Fatalf("bob's entry was evicted, fetches=%d", *bobCalls)
	}
	if _, err := cache.Get(ctx, "alice", aliceFetch); err != nil {
		t.Fatalf("get: %v", err)
	}
	if *aliceCalls != 2 {
		t.Fatalf("expected alice refetched, fetches=%d", *aliceCalls)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	cache := New()
	fetch, calls := fetchCounter(nil)

	cache.Get(ctx, "owner", fetch)
	cache.Clear()
	cache.Get(ctx, "owner", fetch)
	if *calls != 2 {
		t.Fatalf("expected refetch after clear, fetches=%d", *calls)
	}
}
