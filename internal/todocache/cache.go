// Package todocache holds the last-fetched todo collection per owner.
// Invalidation only marks an entry stale; the next read refetches in full, so
// the view always reflects server-confirmed state and never a local patch.
package todocache

import (
	"context"
	"sync"

	"github.com/DevBytes-J/todo-app/internal/models"
)

// FetchFunc loads an owner's full collection from storage.
type FetchFunc func(ctx context.Context) ([]*models.Todo, error)

// Cache is keyed by owner id so switching accounts cannot serve stale
// cross-account data. Entries are only ever replaced wholesale.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]*models.Todo
}

func New() *Cache {
	return &Cache{entries: make(map[string][]*models.Todo)}
}

// Get returns the cached collection for the owner, running fetch on a miss.
// A failed fetch caches nothing.
func (c *Cache) Get(ctx context.Context, ownerID string, fetch FetchFunc) ([]*models.Todo, error) {
	c.mu.RLock()
	todos, ok := c.entries[ownerID]
	c.mu.RUnlock()
	if ok {
		return todos, nil
	}

	todos, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[ownerID] = todos
	c.mu.Unlock()
	return todos, nil
}

// Invalidate marks the owner's collection stale. Idempotent: two mutations
// racing to invalidate the same key are order-independent.
func (c *Cache) Invalidate(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, ownerID)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]*models.Todo)
}
