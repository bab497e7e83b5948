// internal/protein/protein.go
package protein

import (
	"fmt"

	"sprint/internal/residue"
)

// Protein is one immutable sequence of a Set.
type Protein struct {
	Index    int
	Name     string
	Seq      string
	Residues []residue.Code
	New      bool // appended after the base set (query / peptide)
}

// New encodes seq and builds a Protein.
func New(index int, name, seq string, isNew bool) (Protein, error) {
	codes, err := residue.EncodeSequence([]byte(seq))
	if err != nil {
		return Protein{}, fmt.Errorf("protein %s: %w", name, err)
	}
	return Protein{Index: index, Name: name, Seq: seq, Residues: codes, New: isNew}, nil
}

// Len is the number of residues.
func (p *Protein) Len() int { return len(p.Residues) }

// Residue returns the code at position i.
func (p *Protein) Residue(i int) residue.Code { return p.Residues[i] }
