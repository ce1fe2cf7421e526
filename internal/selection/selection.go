// Package selection tracks the food numbers the caregiver has marked as
// already enjoyed during the active browsing session.
package selection

import "sync"

// Session is the set of selected food numbers. Only the browsing surface
// mutates it; the suggestion workflow reads it through Numbers. Cleared
// explicitly or replaced at navigation boundaries.
type Session struct {
	mu    sync.Mutex
	order []int
	set   map[int]bool
}

// NewSession creates an empty selection.
func NewSession() *Session {
	return &Session{set: make(map[int]bool)}
}

// Toggle adds the food number if absent and removes it if present. Toggling
// twice restores the prior state.
func (s *Session) Toggle(foodNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set[foodNumber] {
		delete(s.set, foodNumber)
		for i, n := range s.order {
			if n == foodNumber {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.set[foodNumber] = true
	s.order = append(s.order, foodNumber)
}

// IsSelected reports whether the food number is in the set.
func (s *Session) IsSelected(foodNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set[foodNumber]
}

// Clear empties the set.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = make(map[int]bool)
	s.order = nil
}

// Numbers returns a copy of the selected food numbers in selection order.
func (s *Session) Numbers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected foods.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
