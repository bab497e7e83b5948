// internal/hsp/hsp.go
package hsp

import (
	"fmt"
	"sort"
)

// Location addresses one residue window: protein index + start position.
type Location struct {
	Index    int
	Position int
}

// Less orders locations by protein index, then position.
func (l Location) Less(o Location) bool {
	if l.Index != o.Index {
		return l.Index < o.Index
	}
	return l.Position < o.Position
}

// HSP is an ungapped, equal-length high-scoring region shared by two
// proteins. Loc1 is always the lower location; construct with New.
type HSP struct {
	Loc1   Location
	Loc2   Location
	Length int
}

// New builds an HSP in canonical order.
func New(a, b Location, length int) HSP {
	if b.Less(a) {
		a, b = b, a
	}
	return HSP{Loc1: a, Loc2: b, Length: length}
}

// Location returns Loc1 (i=0) or Loc2 (i=1). Any other i is a programming
// error and panics.
func (h HSP) Location(i int) Location {
	switch i {
	case 0:
		return h.Loc1
	case 1:
		return h.Loc2
	}
	panic(fmt.Sprintf("hsp: bad location index %d", i))
}

// Tuple is the flat record form (index1, pos1, index2, pos2, length).
type Tuple [5]int

// Tuple returns the flat form.
func (h HSP) Tuple() Tuple {
	return Tuple{h.Loc1.Index, h.Loc1.Position, h.Loc2.Index, h.Loc2.Position, h.Length}
}

// FromTuple builds a canonical HSP from its flat form.
func FromTuple(t Tuple) HSP {
	return New(Location{t[0], t[1]}, Location{t[2], t[3]}, t[4])
}

// Set is a deduplicated collection of HSPs.
type Set map[HSP]struct{}

// NewSet returns a Set holding hs.
func NewSet(hs ...HSP) Set {
	s := make(Set, len(hs))
	for _, h := range hs {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts h.
func (s Set) Add(h HSP) { s[h] = struct{}{} }

// Has reports membership.
func (s Set) Has(h HSP) bool {
	_, ok := s[h]
	return ok
}

// Union adds every member of o to s.
func (s Set) Union(o Set) {
	for h := range o {
		s[h] = struct{}{}
	}
}

// Sorted returns the members ordered by (Loc1, Loc2, Length).
func (s Set) Sorted() []HSP {
	out := make([]HSP, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Less is the index-based total order used by Sorted.
func Less(a, b HSP) bool {
	if a.Loc1 != b.Loc1 {
		return a.Loc1.Less(b.Loc1)
	}
	if a.Loc2 != b.Loc2 {
		return a.Loc2.Less(b.Loc2)
	}
	return a.Length < b.Length
}
