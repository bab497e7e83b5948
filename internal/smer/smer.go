// internal/smer/smer.go
package smer

import (
	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/residue"
	"sprint/internal/seed"
)

// Smer is one seed window of a protein reduced to its masked value.
type Smer struct {
	Value uint64
	Loc   hsp.Location
}

// Pack packs codes[start:start+s.Len()] into 5-bit fields (most significant
// first) and applies the seed mask.
func Pack(codes []residue.Code, start int, s seed.Seed) uint64 {
	var v uint64
	for _, c := range codes[start : start+s.Len()] {
		v = v<<residue.Bits | uint64(c)
	}
	return v & s.Mask
}

// Count returns the number of windows of seed s in a protein of length n.
func Count(n int, s seed.Seed) int {
	if n < s.Len() {
		return 0
	}
	return n - s.Len() + 1
}

// Extract returns every s-mer of p, in position order.
func Extract(p *protein.Protein, s seed.Seed) []Smer {
	n := Count(p.Len(), s)
	if n == 0 {
		return nil
	}
	out := make([]Smer, n)
	for pos := 0; pos < n; pos++ {
		out[pos] = Smer{Value: Pack(p.Residues, pos, s), Loc: hsp.Location{Index: p.Index, Position: pos}}
	}
	return out
}

// Digit returns the residue code held in the field at pattern offset i.
func Digit(v uint64, s seed.Seed, i int) residue.Code {
	return residue.Code((v >> s.Shift(i)) & 31)
}

// String renders a masked value with '-' for don't-care fields.
func String(v uint64, s seed.Seed) string {
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = residue.Letter(Digit(v, s, i))
	}
	return string(b)
}
