// internal/engine/engine.go
package engine

import (
	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/residue"
	"sprint/internal/similarity"
	"sprint/internal/smer"
)

// Config holds the HSP detection parameters.
type Config struct {
	KmerSize int  // minimum HSP length and scoring window width
	TSim     int  // s-mer similarity threshold
	THit     int  // window score threshold for hits and extension
	NewOnly  bool // skip location pairs where neither protein is new
}

// Engine finds HSPs within one protein set.
type Engine struct {
	cfg Config
	set *protein.Set
}

// New creates an Engine over set.
func New(c Config, set *protein.Set) *Engine { return &Engine{cfg: c, set: set} }

// Config returns the engine parameters.
func (e *Engine) Config() Config { return e.cfg }

// Hit is a k-long window pair scoring at least THit. Loc1 is on the
// lower-index protein.
type Hit struct {
	Loc1, Loc2 hsp.Location
	Score      int
}

// FindHits slides a k-long window backwards from the s-mer anchors a and b
// and returns the first offset whose window scores at least THit (at most
// one hit). Identical locations never hit.
func (e *Engine) FindHits(a, b hsp.Location, seedLen int) []Hit {
	if a == b {
		return nil
	}
	k := e.cfg.KmerSize
	p1, p2 := e.set.ByIndex(a.Index), e.set.ByIndex(b.Index)
	for off := 0; off <= k-seedLen; off++ {
		s1, s2 := a.Position-off, b.Position-off
		if s1+k-1 >= p1.Len() || s2+k-1 >= p2.Len() {
			continue
		}
		if s1 < 0 || s2 < 0 {
			break
		}
		score := residue.ScoreWindow(p1.Residues, p2.Residues, s1, s2, k)
		if score < e.cfg.THit {
			continue
		}
		l1 := hsp.Location{Index: a.Index, Position: s1}
		l2 := hsp.Location{Index: b.Index, Position: s2}
		if b.Index < a.Index {
			l1, l2 = l2, l1
		}
		return []Hit{{Loc1: l1, Loc2: l2, Score: score}}
	}
	return nil
}

// Extend grows h greedily to the right, then to the left, sliding a
// k-long window while its score stays at least THit.
func (e *Engine) Extend(h Hit) hsp.HSP {
	k := e.cfg.KmerSize
	r1 := e.set.ByIndex(h.Loc1.Index).Residues
	r2 := e.set.ByIndex(h.Loc2.Index).Residues
	st1, st2 := h.Loc1.Position, h.Loc2.Position

	// rightward
	end1 := st1 + k - 1
	avail := min(len(r1)-st1, len(r2)-st2) - k
	cur := h.Score
	for i := 0; i < avail; i++ {
		cur += residue.Score(r1[end1+1], r2[st2+(end1-st1)+1]) - residue.Score(r1[st1+i], r2[st2+i])
		if cur < e.cfg.THit {
			break
		}
		end1++
	}

	// leftward
	new1, new2 := st1, st2
	cur = h.Score
	for i := 0; i < min(st1, st2); i++ {
		cur += residue.Score(r1[new1-1], r2[new2-1]) - residue.Score(r1[new1+k-1], r2[new2+k-1])
		if cur < e.cfg.THit {
			break
		}
		new1--
		new2--
	}

	return hsp.New(
		hsp.Location{Index: h.Loc1.Index, Position: new1},
		hsp.Location{Index: h.Loc2.Index, Position: new2},
		end1-new1+1,
	)
}

// HSPsForSmer computes the HSPs seeded by collection i of x: pairs of its
// own locations, and pairs against every similar collection whose value is
// greater.
func (e *Engine) HSPsForSmer(x *smer.Index, i int) hsp.Set {
	out := make(hsp.Set)
	c := x.Collections[i]
	seedLen := x.Seed.Len()

	for _, v := range similarity.Similar(c.Value, x.Seed, e.cfg.TSim) {
		if v < c.Value {
			continue
		}
		j, ok := x.Lookup(v)
		if !ok {
			continue
		}
		if j == i {
			locs := c.Locations
			for a := 0; a < len(locs); a++ {
				for b := a + 1; b < len(locs); b++ {
					e.pair(locs[a], locs[b], seedLen, out)
				}
			}
			continue
		}
		for _, la := range c.Locations {
			for _, lb := range x.Collections[j].Locations {
				e.pair(la, lb, seedLen, out)
			}
		}
	}
	return out
}

func (e *Engine) pair(a, b hsp.Location, seedLen int, out hsp.Set) {
	if e.cfg.NewOnly && !e.set.IsNew(a.Index) && !e.set.IsNew(b.Index) {
		return
	}
	for _, h := range e.FindHits(a, b, seedLen) {
		out.Add(e.Extend(h))
	}
}
