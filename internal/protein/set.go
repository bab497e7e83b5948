// internal/protein/set.go
package protein

import "fmt"

// Record is a named raw sequence, as read from a FASTA file.
type Record struct {
	Name string
	Seq  string
}

// Set is an ordered collection of proteins with stable indices.
type Set struct {
	proteins []Protein
	index    map[string]int
}

// NewSet builds a Set from records; indices follow record order.
// Duplicate names are a configuration error.
func NewSet(recs []Record) (*Set, error) {
	s := &Set{index: make(map[string]int, len(recs))}
	if err := s.append(recs, false); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Set) append(recs []Record, isNew bool) error {
	for _, r := range recs {
		if _, dup := s.index[r.Name]; dup {
			return fmt.Errorf("duplicate protein name %q", r.Name)
		}
		p, err := New(len(s.proteins), r.Name, r.Seq, isNew)
		if err != nil {
			return err
		}
		s.index[p.Name] = p.Index
		s.proteins = append(s.proteins, p)
	}
	return nil
}

// AddNew appends recs after the existing proteins and flags them new.
// On error the set is left unchanged.
func (s *Set) AddNew(recs []Record) error {
	n := len(s.proteins)
	if err := s.append(recs, true); err != nil {
		for _, p := range s.proteins[n:] {
			delete(s.index, p.Name)
		}
		s.proteins = s.proteins[:n]
		return err
	}
	return nil
}

// Len is the number of proteins.
func (s *Set) Len() int { return len(s.proteins) }

// ByIndex returns the protein at index i. It panics when i is out of range.
func (s *Set) ByIndex(i int) *Protein { return &s.proteins[i] }

// ByName looks a protein up by name.
func (s *Set) ByName(name string) (*Protein, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.proteins[i], true
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// IsNew reports the new flag of protein i.
func (s *Set) IsNew(i int) bool { return s.proteins[i].New }

// Proteins returns the proteins in index order. Callers must not modify them.
func (s *Set) Proteins() []Protein { return s.proteins }

// CountNew returns how many proteins are flagged new.
func (s *Set) CountNew() int {
	n := 0
	for i := range s.proteins {
		if s.proteins[i].New {
			n++
		}
	}
	return n
}

// Name returns the name of protein i.
func (s *Set) Name(i int) string { return s.proteins[i].Name }

// Index returns the index of the named protein.
func (s *Set) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
