// Package processing filters HSPs that cover promiscuous positions, i.e.
// window starts shared by more than t_count HSPs.
package processing

import (
	"sprint/internal/hsp"
	"sprint/internal/protein"
)

// Counts holds, per protein, how many HSP windows start at each position.
// Each row has one extra slot past the protein end.
type Counts [][]int

// CountOccurrences counts k-window starts of every HSP at least k long.
func CountOccurrences(set *protein.Set, hsps hsp.Set, k int) Counts {
	c := make(Counts, set.Len())
	for i := range c {
		c[i] = make([]int, set.ByIndex(i).Len()+1)
	}
	for h := range hsps {
		if h.Length < k {
			continue
		}
		for i := 0; i <= h.Length-k; i++ {
			c[h.Loc1.Index][h.Loc1.Position+i]++
			c[h.Loc2.Index][h.Loc2.Position+i]++
		}
	}
	return c
}

// Process splits every HSP at its first promiscuous window. The clean
// prefix is kept when at least k long; the suffix after the offending
// window is filtered again when longer than k and dropped otherwise.
func Process(set *protein.Set, hsps hsp.Set, k, tCount int) hsp.Set {
	counts := CountOccurrences(set, hsps, k)
	out := make(hsp.Set, len(hsps))
	for h := range hsps {
		split(h, counts, k, tCount, out)
	}
	return out
}

func split(h hsp.HSP, c Counts, k, t int, out hsp.Set) {
	for h.Length >= k {
		bad := -1
		for i := 0; i <= h.Length-k; i++ {
			if c[h.Loc1.Index][h.Loc1.Position+i] > t || c[h.Loc2.Index][h.Loc2.Position+i] > t {
				bad = i
				break
			}
		}
		if bad < 0 {
			out.Add(h)
			return
		}
		if bad != 0 {
			out.Add(hsp.HSP{Loc1: h.Loc1, Loc2: h.Loc2, Length: k - 1 + bad})
		}
		if h.Length-bad < k+1 {
			return
		}
		h = hsp.HSP{
			Loc1:   hsp.Location{Index: h.Loc1.Index, Position: h.Loc1.Position + bad + 1},
			Loc2:   hsp.Location{Index: h.Loc2.Index, Position: h.Loc2.Position + bad + 1},
			Length: h.Length - bad - 1,
		}
	}
}
