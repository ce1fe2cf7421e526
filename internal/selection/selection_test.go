package selection

import (
	"reflect"
	"sync"
	"testing"
)

func TestToggle(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Toggle(588)
	s.Toggle(590)
	s.Toggle(1200)

	if !s.IsSelected(590) {
		t.Error("Expected 590 to be selected")
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 selections, got %d", s.Len())
	}
	if got := s.Numbers(); !reflect.DeepEqual(got, []int{588, 590, 1200}) {
		t.Errorf("Expected selection order preserved, got %v", got)
	}

	// Toggling an already-selected number removes it.
	s.Toggle(590)
	if s.IsSelected(590) {
		t.Error("Expected 590 to be deselected after second toggle")
	}
	if got := s.Numbers(); !reflect.DeepEqual(got, []int{588, 1200}) {
		t.Errorf("Expected remaining order preserved, got %v", got)
	}

	// Toggling twice restores the prior state.
	s.Toggle(590)
	s.Toggle(590)
	if got := s.Numbers(); !reflect.DeepEqual(got, []int{588, 1200}) {
		t.Errorf("Expected double toggle to be a no-op, got %v", got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Toggle(588)
	s.Toggle(590)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Expected empty selection, got %d", s.Len())
	}
	if s.IsSelected(588) {
		t.Error("Expected 588 to be deselected after clear")
	}

	// The session stays usable after clearing.
	s.Toggle(66)
	if got := s.Numbers(); !reflect.DeepEqual(got, []int{66}) {
		t.Errorf("Expected fresh selection, got %v", got)
	}
}

func TestNumbersReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Toggle(588)
	s.Toggle(590)

	got := s.Numbers()
	got[0] = 99999
	if fresh := s.Numbers(); fresh[0] != 588 {
		t.Errorf("Caller mutation leaked into session state: %v", fresh)
	}
}

func TestConcurrentToggles(t *testing.T) {
	t.Parallel()

	s := NewSession()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Toggle(n)
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Expected 50 selections, got %d", s.Len())
	}
}
