// internal/scoring/table.go
package scoring

import (
	"sort"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/residue"
)

// Entry is one HSP seen from the side of a protein: who it is shared
// with and how strongly.
type Entry struct {
	Partner    int
	PartnerLen int
	HSPLen     int
	Score      int
	OwnPos     int
	PartnerPos int
}

// Table lists the entries of every protein, sorted by partner.
type Table [][]Entry

// Interactors returns the set of indices appearing in any pair.
func Interactors(pairs [][2]int) map[int]bool {
	out := make(map[int]bool, 2*len(pairs))
	for _, p := range pairs {
		out[p[0]] = true
		out[p[1]] = true
	}
	return out
}

// BuildTable records every HSP touching an interactor on both of its
// proteins (once for an HSP within a single protein).
func BuildTable(set *protein.Set, hsps hsp.Set, interactors map[int]bool, k int) Table {
	t := make(Table, set.Len())
	for h := range hsps {
		a, b := h.Loc1, h.Loc2
		if !interactors[a.Index] && !interactors[b.Index] {
			continue
		}
		p1, p2 := set.ByIndex(a.Index), set.ByIndex(b.Index)
		score := residue.ScoreHSP(p1.Residues, p2.Residues, a.Position, b.Position, h.Length, k)
		t[a.Index] = append(t[a.Index], Entry{
			Partner: b.Index, PartnerLen: p2.Len(), HSPLen: h.Length, Score: score,
			OwnPos: a.Position, PartnerPos: b.Position,
		})
		if a.Index != b.Index {
			t[b.Index] = append(t[b.Index], Entry{
				Partner: a.Index, PartnerLen: p1.Len(), HSPLen: h.Length, Score: score,
				OwnPos: b.Position, PartnerPos: a.Position,
			})
		}
	}
	for _, row := range t {
		sort.Slice(row, func(i, j int) bool {
			if row[i].Partner != row[j].Partner {
				return row[i].Partner < row[j].Partner
			}
			if row[i].OwnPos != row[j].OwnPos {
				return row[i].OwnPos < row[j].OwnPos
			}
			if row[i].PartnerPos != row[j].PartnerPos {
				return row[i].PartnerPos < row[j].PartnerPos
			}
			return row[i].HSPLen < row[j].HSPLen
		})
	}
	return t
}

// Contribution is the evidence that the partners of e1 and e2 interact,
// given that the owners of e1 and e2 do.
func Contribution(e1, e2 Entry, k int) float64 {
	t1 := float64(e1.Score) * float64(e2.HSPLen-k+1)
	t2 := float64(e2.Score) * float64(e1.HSPLen-k+1)
	return (t1 + t2) / (float64(e1.PartnerLen) * float64(e2.PartnerLen))
}

// forEachCombination calls fn for every entry combination of pair (p, q);
// for p == q only combinations i <= j are visited.
func forEachCombination(t Table, p, q int, fn func(e1, e2 Entry)) {
	if p == q {
		row := t[p]
		for i := range row {
			for j := i; j < len(row); j++ {
				fn(row[i], row[j])
			}
		}
		return
	}
	for _, e1 := range t[p] {
		for _, e2 := range t[q] {
			fn(e1, e2)
		}
	}
}
