package domain

import "math/bits"

// StateID is the interned identifier of a state: its index in declaration order.
type StateID int

// StateSet is a set of states backed by a growable bitset.
// Iteration is always in declaration order, which keeps traces deterministic.
// The zero value is an empty set ready to use.
type StateSet struct {
	words []uint64
}

// NewStateSet returns a set holding the given states.
func NewStateSet(ids ...StateID) StateSet {
	var s StateSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was not already present.
func (s *StateSet) Add(id StateID) bool {
	if id < 0 {
		return false
	}
	w, mask := int(id)/64, uint64(1)<<(uint(id)%64)
	if w >= len(s.words) {
		grown := make([]uint64, w+1)
		copy(grown, s.words)
		s.words = grown
	}
	if s.words[w]&mask != 0 {
		return false
	}
	s.words[w] |= mask
	return true
}

// Has reports whether id is a member.
func (s StateSet) Has(id StateID) bool {
	if id < 0 {
		return false
	}
	w := int(id) / 64
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(uint64(1)<<(uint(id)%64)) != 0
}

// Len returns the number of members.
func (s StateSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s StateSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IDs returns the members in ascending (declaration) order.
func (s StateSet) IDs() []StateID {
	ids := make([]StateID, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			ids = append(ids, StateID(i*64+tz))
			w &= w - 1
		}
	}
	return ids
}

// Clone returns an independent copy.
func (s StateSet) Clone() StateSet {
	if s.words == nil {
		return StateSet{}
	}
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return StateSet{words: words}
}

// Union adds every member of other to s.
func (s *StateSet) Union(other StateSet) {
	if len(other.words) > len(s.words) {
		grown := make([]uint64, len(other.words))
		copy(grown, s.words)
		s.words = grown
	}
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// Intersects reports whether s and other share at least one member.
func (s StateSet) Intersects(other StateSet) bool {
	n := min(len(s.words), len(other.words))
	for i := 0; i < n; i++ {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every member of s is also in other.
func (s StateSet) IsSubsetOf(other StateSet) bool {
	for i, w := range s.words {
		var o uint64
		if i < len(other.words) {
			o = other.words[i]
		}
		if w&^o != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same members.
func (s StateSet) Equal(other StateSet) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}
