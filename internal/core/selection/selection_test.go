package selection

import "testing"

func TestSelection(t *testing.T) {
	var s Selection
	if _, _, ok := s.Range(); ok {
		t.Fatalf("zero selection should be empty")
	}

	s.Extend(5, 6)
	s.Extend(5, 2) // anchor stays at 5
	start, end, ok := s.Range()
	if !ok || start != 2 || end != 5 {
		t.Fatalf("Range=%d,%d,%v want 2,5,true", start, end, ok)
	}

	s.Extend(0, 5)
	if _, _, ok := s.Range(); ok {
		t.Fatalf("collapsed selection should be empty")
	}

	s.Set(1, 4)
	if start, end, _ := s.Range(); start != 1 || end != 4 {
		t.Fatalf("Set range=%d,%d", start, end)
	}
	s.Clear()
	if _, _, ok := s.Range(); ok {
		t.Fatalf("Clear left a selection")
	}
}
