package domain

import (
	"reflect"
	"testing"
)

func TestStateSet(t *testing.T) {
	tests := []struct {
		name    string
		ids     []StateID
		wantIDs []StateID
		wantLen int
	}{
		{name: "Empty", ids: nil, wantIDs: []StateID{}, wantLen: 0},
		{name: "Duplicates Collapse", ids: []StateID{2, 2, 0, 2}, wantIDs: []StateID{0, 2}, wantLen: 2},
		{name: "Declaration Order", ids: []StateID{5, 1, 3}, wantIDs: []StateID{1, 3, 5}, wantLen: 3},
		{name: "Crosses Word Boundary", ids: []StateID{130, 63, 64}, wantIDs: []StateID{63, 64, 130}, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStateSet(tt.ids...)
			if got := s.IDs(); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("IDs() = %v, want %v", got, tt.wantIDs)
			}
			if got := s.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := s.IsEmpty(); got != (tt.wantLen == 0) {
				t.Errorf("IsEmpty() = %v", got)
			}
		})
	}
}

func TestStateSet_AddReportsNovelty(t *testing.T) {
	var s StateSet
	if !s.Add(3) {
		t.Fatal("first Add(3) should report true")
	}
	if s.Add(3) {
		t.Error("second Add(3) should report false")
	}
	if s.Add(-1) {
		t.Error("negative IDs are never members")
	}
	if !s.Has(3) || s.Has(4) || s.Has(1000) {
		t.Errorf("membership mismatch: %v", s.IDs())
	}
}

func TestStateSet_Algebra(t *testing.T) {
	a := NewStateSet(1, 2)
	b := NewStateSet(2, 200)

	if !a.Intersects(b) {
		t.Error("a and b share state 2")
	}
	if a.Intersects(NewStateSet(3)) {
		t.Error("a and {3} are disjoint")
	}
	if !NewStateSet(2).IsSubsetOf(a) {
		t.Error("{2} is a subset of a")
	}
	if b.IsSubsetOf(a) {
		t.Error("b is not a subset of a")
	}

	u := a.Clone()
	u.Union(b)
	if want := []StateID{1, 2, 200}; !reflect.DeepEqual(u.IDs(), want) {
		t.Errorf("Union = %v, want %v", u.IDs(), want)
	}
	if a.Len() != 2 {
		t.Errorf("Clone must isolate the original, a = %v", a.IDs())
	}

	// Trailing empty words do not affect equality.
	wide := NewStateSet(1, 2, 500)
	if !NewStateSet(2, 1).Equal(a) || wide.Equal(a) {
		t.Error("Equal must compare members only")
	}
	var zero StateSet
	if !zero.Equal(StateSet{words: make([]uint64, 4)}) {
		t.Error("empty sets of different capacity are equal")
	}
}
