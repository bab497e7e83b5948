// internal/similarity/similarity.go
//
// Branch-and-bound enumeration of the masked s-mer values whose PAM120
// score against a query value reaches a threshold.
package similarity

import (
	"sprint/internal/residue"
	"sprint/internal/seed"
	"sprint/internal/smer"
)

// Compare returns the summed substitution score of two masked values over
// the seed's match-required positions.
func Compare(a, b uint64, s seed.Seed) int {
	score := 0
	for _, i := range s.Significant {
		score += residue.Score(smer.Digit(a, s, i), smer.Digit(b, s, i))
	}
	return score
}

// Similar returns every masked value w with Compare(v, w, s) >= tSim,
// plus v itself, which is always reported.
func Similar(v uint64, s seed.Seed, tSim int) []uint64 {
	sig := s.Significant
	budget := tSim
	for _, i := range sig[1:] {
		q := smer.Digit(v, s, i)
		budget -= residue.Score(q, q)
	}
	out := expand(v, s, 0, budget, nil)
	if Compare(v, v, s) < tSim {
		out = append(out, v)
	}
	return out
}

// expand varies the k-th significant field of v. budget is the minimum
// score that field must earn given perfect matches on every later field.
func expand(v uint64, s seed.Seed, k, budget int, out []uint64) []uint64 {
	sig := s.Significant
	shift := s.Shift(sig[k])
	q := smer.Digit(v, s, sig[k])
	last := k == len(sig)-1

	var selfNext int
	if !last {
		qn := smer.Digit(v, s, sig[k+1])
		selfNext = residue.Score(qn, qn)
	}

	for _, r := range residue.Ranked(q) {
		sc := residue.Score(q, r)
		if sc < budget {
			break // ranked descending: nothing further can qualify
		}
		y := v&^(31<<shift) | uint64(r)<<shift
		if last {
			out = append(out, y)
			continue
		}
		out = expand(y, s, k+1, budget+selfNext-sc, out)
	}
	return out
}
