// Package scoring turns HSPs and known interactions into interaction
// scores for every protein pair, and into per-residue site contributions
// on one target protein.
package scoring

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/shard"
)

// Config controls a scoring run.
type Config struct {
	KmerSize int
	Threads  int // number of worker goroutines (>=1)
	Rank     int
	World    int
}

const stripes = 64

// ScoreInteractions accumulates the contributions of this shard's training
// pairs into a symmetric matrix indexed by protein.
func ScoreInteractions(ctx context.Context, cfg Config, set *protein.Set, hsps hsp.Set, pairs [][2]int) (*mat.SymDense, error) {
	cfg, err := normalize(cfg)
	if err != nil {
		return nil, err
	}
	n := set.Len()
	table := BuildTable(set, hsps, Interactors(pairs), cfg.KmerSize)
	if n == 0 {
		return &mat.SymDense{}, nil
	}
	m := mat.NewSymDense(n, nil)
	raw := m.RawSymmetric()

	var locks [stripes]sync.Mutex
	add := func(a, b int, v float64) {
		if a > b {
			a, b = b, a
		}
		l := &locks[a%stripes]
		l.Lock()
		raw.Data[a*raw.Stride+b] += v
		l.Unlock()
	}

	err = forEachPair(ctx, cfg, pairs, func(p [2]int) {
		forEachCombination(table, p[0], p[1], func(e1, e2 Entry) {
			add(e1.Partner, e2.Partner, Contribution(e1, e2, cfg.KmerSize))
		})
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Contributions distributes, for every new protein, the contributions
// linking it to target over the target residues covered by the HSP. The
// result maps new protein index to a vector of target length.
func Contributions(ctx context.Context, cfg Config, target int, set *protein.Set, hsps hsp.Set, pairs [][2]int) (map[int][]float64, error) {
	cfg, err := normalize(cfg)
	if err != nil {
		return nil, err
	}
	if target < 0 || target >= set.Len() {
		return nil, fmt.Errorf("target index %d out of range", target)
	}
	table := BuildTable(set, hsps, Interactors(pairs), cfg.KmerSize)

	tlen := set.ByIndex(target).Len()
	out := make(map[int][]float64)
	locks := make(map[int]*sync.Mutex)
	for _, p := range set.Proteins() {
		if p.New {
			out[p.Index] = make([]float64, tlen)
			locks[p.Index] = new(sync.Mutex)
		}
	}

	spread := func(newIdx int, onTarget Entry, c float64) {
		vec := out[newIdx]
		share := c / float64(onTarget.HSPLen)
		l := locks[newIdx]
		l.Lock()
		for i := 0; i < onTarget.HSPLen; i++ {
			vec[onTarget.PartnerPos+i] += share
		}
		l.Unlock()
	}

	err = forEachPair(ctx, cfg, pairs, func(p [2]int) {
		forEachCombination(table, p[0], p[1], func(e1, e2 Entry) {
			n1, n2 := set.IsNew(e1.Partner), set.IsNew(e2.Partner)
			switch {
			case e1.Partner == target && n2:
				spread(e2.Partner, e1, Contribution(e1, e2, cfg.KmerSize))
			case e2.Partner == target && n1:
				spread(e1.Partner, e2, Contribution(e1, e2, cfg.KmerSize))
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Max returns the largest entry of m, or 0 when every entry is negative
// or m is empty.
func Max(m mat.Symmetric) float64 {
	var best float64
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := m.At(i, j); v > best {
				best = v
			}
		}
	}
	return best
}

func normalize(cfg Config) (Config, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.World < 1 {
		cfg.World = 1
	}
	if cfg.KmerSize < 1 {
		return cfg, fmt.Errorf("kmer size must be >= 1 (got %d)", cfg.KmerSize)
	}
	return cfg, shard.Validate(cfg.Rank, cfg.World)
}

// forEachPair runs fn over the pairs owned by this shard on cfg.Threads
// workers. It returns ctx.Err() if cancelled.
func forEachPair(ctx context.Context, cfg Config, pairs [][2]int, fn func([2]int)) error {
	jobs := make(chan [2]int, cfg.Threads*2)
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-jobs:
					if !ok {
						return
					}
					fn(p)
				}
			}
		}()
	}

feed:
	for i, p := range pairs {
		if !shard.Owns(i, cfg.Rank, cfg.World) {
			continue
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()
	return ctx.Err()
}
