// Package stack keeps a bounded, most-recent-first list of file references.
//
// A Stack performs no locking. Callers that share one between goroutines
// must serialize Add themselves (see pkg/session).
package stack

// DefaultMaxItems is used when a stack is created without a positive bound
const DefaultMaxItems = 7

// Stack is an ordered set of file references, newest first
type Stack struct {
	maxItems int
	items    []FileReference
}

// AddResult reports what an Add did. Evicted is nil unless the oldest entry
// was pushed out to stay within the bound.
type AddResult struct {
	Inserted FileReference
	Evicted  *FileReference
}

// New creates an empty stack holding at most maxItems references
func New(maxItems int) *Stack {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Stack{
		maxItems: maxItems,
		items:    make([]FileReference, 0, maxItems),
	}
}

// Restore rebuilds a stack from persisted paths, most recent first.
// Empty paths and later duplicates are dropped and the result is cut to the bound.
func Restore(maxItems int, paths []string) *Stack {
	s := New(maxItems)
	for _, p := range paths {
		if len(s.items) == s.maxItems {
			break
		}
		ref := NewFileReference(p)
		if ref.IsZero() || s.Contains(ref) {
			continue
		}
		s.items = append(s.items, ref)
	}
	return s
}

// Add puts ref at the front. A reference already on the stack is moved to
// the front instead of being duplicated, so only a new reference can evict.
func (s *Stack) Add(ref FileReference) AddResult {
	result := AddResult{Inserted: ref}

	if i := s.indexOf(ref); i >= 0 {
		copy(s.items[1:i+1], s.items[:i])
		s.items[0] = ref
		return result
	}

	if len(s.items) == s.maxItems {
		evicted := s.items[len(s.items)-1]
		result.Evicted = &evicted
		s.items = s.items[:len(s.items)-1]
	}

	s.items = append(s.items, FileReference{})
	copy(s.items[1:], s.items[:len(s.items)-1])
	s.items[0] = ref

	return result
}

// List returns a copy of every entry, newest first
func (s *Stack) List() []FileReference {
	return s.ListN(len(s.items))
}

// ListN returns at most limit entries, newest first. A zero or negative
// limit yields an empty slice.
func (s *Stack) ListN(limit int) []FileReference {
	if limit > len(s.items) {
		limit = len(s.items)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]FileReference, limit)
	copy(out, s.items[:limit])
	return out
}

// Paths returns the entries as plain strings for persistence
func (s *Stack) Paths() []string {
	paths := make([]string, len(s.items))
	for i, ref := range s.items {
		paths[i] = ref.Path()
	}
	return paths
}

// Contains reports whether ref is on the stack
func (s *Stack) Contains(ref FileReference) bool {
	return s.indexOf(ref) >= 0
}

// Len returns the number of entries
func (s *Stack) Len() int {
	return len(s.items)
}

// MaxItems returns the capacity bound fixed at construction
func (s *Stack) MaxItems() int {
	return s.maxItems
}

func (s *Stack) indexOf(ref FileReference) int {
	for i, existing := range s.items {
		if existing == ref {
			return i
		}
	}
	return -1
}
