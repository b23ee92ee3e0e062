package todoview

import "sync"

// Registry holds one State per owner so two accounts never share view state.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// For returns the owner's state, creating a fresh one on first use.
func (r *Registry) For(ownerID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[ownerID]
	if !ok {
		state = NewState()
		r.states[ownerID] = state
	}
	return state
}

// Drop discards the owner's state, e.g. on sign-out.
func (r *Registry) Drop(ownerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, ownerID)
}
