package find

import "testing"

func TestForward(t *testing.T) {
	text := "the needle in haystack, needle again"
	tests := []struct {
		name        string
		from        int
		wantStart   int
		wantWrapped bool
	}{
		{"from start", 0, 4, false},
		{"second occurrence", 5, 24, false},
		{"wraps to first", 25, 4, true},
		{"from end wraps", len(text), 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Forward(text, "needle", tt.from)
			if !ok {
				t.Fatalf("Forward from %d: not found", tt.from)
			}
			if m.Start != tt.wantStart || m.End != tt.wantStart+6 || m.Wrapped != tt.wantWrapped {
				t.Fatalf("got %+v, want start %d wrapped %v", m, tt.wantStart, tt.wantWrapped)
			}
		})
	}
}

func TestForward_NotFound(t *testing.T) {
	if _, ok := Forward("abc", "zzz", 0); ok {
		t.Fatalf("expected no match")
	}
	if _, ok := Forward("abc", "", 0); ok {
		t.Fatalf("empty needle must not match")
	}
}

func TestIndex_RuneOffsets(t *testing.T) {
	text := "ünï ünï"
	if got := Index(text, "ï", 0); got != 2 {
		t.Fatalf("Index=%d, want 2", got)
	}
	if got := Index(text, "ï", 3); got != 6 {
		t.Fatalf("Index from 3=%d, want 6", got)
	}
	if got := Index(text, "ï", 100); got != -1 {
		t.Fatalf("Index past end=%d, want -1", got)
	}
}

func TestAll(t *testing.T) {
	got := All("aaaa", "aa")
	if len(got) != 2 || got[0].Start != 0 || got[1].Start != 2 {
		t.Fatalf("All=%+v, want non-overlapping at 0 and 2", got)
	}
	got = All("é-é-é", "é")
	if len(got) != 3 || got[2].Start != 4 || got[2].End != 5 {
		t.Fatalf("All=%+v", got)
	}
}

func TestInvalidUTF8NeedleNeverMatches(t *testing.T) {
	text := "aé b"
	needle := "\xa9" // second byte of é
	if got := Index(text, needle, 0); got != -1 {
		t.Fatalf("Index=%d, want -1", got)
	}
	if _, ok := Forward(text, needle, 2); ok {
		t.Fatalf("Forward matched inside a rune")
	}
	if got := All(text, needle); got != nil {
		t.Fatalf("All=%+v, want none", got)
	}
}
