// Package session owns one recent-files stack per session.
//
// Store serializes every operation on its stacks, so callers such as the
// HTTP server may use it from many goroutines.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/beekhof/file-stack/pkg/config"
	"github.com/beekhof/file-stack/pkg/stack"
)

// ErrNoSession is returned when an operation is given an empty session ID
var ErrNoSession = errors.New("no session")

// Store maps session IDs to their stacks
type Store struct {
	mu       sync.Mutex
	saveMu   sync.Mutex // held across snapshot and write so saves land in order
	maxItems int
	stacks   map[string]*stack.Stack
	path     string
}

// NewStore creates a store whose stacks hold maxItems entries. path is the
// state file used by Load and Save; it may be empty for a memory-only store.
func NewStore(path string, maxItems int) *Store {
	if maxItems <= 0 {
		maxItems = stack.DefaultMaxItems
	}
	return &Store{
		maxItems: maxItems,
		stacks:   make(map[string]*stack.Stack),
		path:     path,
	}
}

// Load replaces the store contents with the state file
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}

	state, err := config.LoadState(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stacks = make(map[string]*stack.Stack, len(state.Sessions))
	for id, paths := range state.Sessions {
		s.stacks[id] = stack.Restore(s.maxItems, paths)
	}
	return nil
}

// Save writes every non-empty stack to the state file
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	state := &config.State{Sessions: make(map[string][]string, len(s.stacks))}
	for id, st := range s.stacks {
		if st.Len() > 0 {
			state.Sessions[id] = st.Paths()
		}
	}
	s.mu.Unlock()

	if err := config.SaveState(state, s.path); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}

// Add pushes ref onto the session's stack, creating the stack on first use
func (s *Store) Add(id string, ref stack.FileReference) (stack.AddResult, error) {
	if id == "" {
		return stack.AddResult{}, ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stacks[id]
	if !ok {
		st = stack.New(s.maxItems)
		s.stacks[id] = st
	}
	return st.Add(ref), nil
}

// List returns up to limit entries of the session's stack. A negative limit
// means the whole stack. Unknown sessions have an empty stack.
func (s *Store) List(id string, limit int) []stack.FileReference {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stacks[id]
	if !ok {
		return []stack.FileReference{}
	}
	if limit < 0 {
		return st.List()
	}
	return st.ListN(limit)
}

// Forget drops the session's stack
func (s *Store) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.stacks, id)
}

// Clear drops every stack
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stacks = make(map[string]*stack.Stack)
}

// Sessions returns the known session IDs in sorted order
func (s *Store) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.stacks))
	for id := range s.stacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MaxItems returns the bound applied to new stacks
func (s *Store) MaxItems() int {
	return s.maxItems
}
