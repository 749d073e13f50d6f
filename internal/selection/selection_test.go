package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToggleParity(t *testing.T) {
	// Membership after any sequence of toggles equals toggle-count mod 2.
	tests := []struct {
		name    string
		toggles int
		want    bool
	}{
		{name: "once", toggles: 1, want: true},
		{name: "twice", toggles: 2, want: false},
		{name: "three times", toggles: 3, want: true},
		{name: "ten times", toggles: 10, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			var last bool
			for i := 0; i < tt.toggles; i++ {
				last = s.Toggle(42)
			}
			if s.Has(42) != tt.want {
				t.Errorf("Has(42) = %v after %d toggles, want %v", s.Has(42), tt.toggles, tt.want)
			}
			if last != tt.want {
				t.Errorf("last Toggle returned %v, want %v", last, tt.want)
			}
		})
	}
}

func TestCountMatchesMembership(t *testing.T) {
	s := New()
	if s.Count() != 0 {
		t.Fatalf("new set count = %d, want 0", s.Count())
	}

	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	s.Toggle(2) // deselect
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}
	if diff := cmp.Diff([]int64{1, 3}, s.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	s := New()
	for _, id := range []int64{5, 9, 12, 40} {
		s.Toggle(id)
	}
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("count after Clear = %d, want 0", s.Count())
	}
	if s.Has(9) {
		t.Error("id 9 still selected after Clear")
	}
	if diff := cmp.Diff([]int64{}, s.IDs()); diff != "" {
		t.Errorf("IDs after Clear (-want +got):\n%s", diff)
	}

	// The set stays usable after a reset.
	s.Toggle(7)
	if !s.Has(7) || s.Count() != 1 {
		t.Error("set unusable after Clear")
	}
}
