package todoview

import "sync"

// State is one user's ephemeral view state. It owns nothing persistent and is
// safe for concurrent use; the collection it is applied to lives in the cache.
type State struct {
	mu      sync.Mutex
	search  string
	filter  Filter
	page    int
	editing string
}

func NewState() *State {
	return &State{filter: FilterAll, page: 1}
}

func (s *State) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

func (s *State) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Prev moves back one page, never below page 1.
func (s *State) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page > 1 {
		s.page--
	}
}

// Next moves forward one page, never past totalPages.
func (s *State) Next(totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page < totalPages {
		s.page++
	}
}

// StartEdit opens the in-place edit form for the given todo. Only one slot
// exists: opening a second target silently closes the first.
func (s *State) StartEdit(todoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = todoID
}

func (s *State) StopEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = ""
}

func (s *State) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.editing != ""
}

// Snapshot returns a consistent read of the transform inputs.
func (s *State) Snapshot() (search string, filter Filter, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search, s.filter, s.page
}
