// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/seed"
	"sprint/internal/shard"
	"sprint/internal/smer"
)

// Config controls an extraction run.
type Config struct {
	Threads int         // number of worker goroutines (>=1)
	Rank    int         // this process's shard
	World   int         // number of shards (>=1)
	Seeds   []seed.Seed // nil means seed.Fixed()
	NewOnly bool        // trivial HSPs only for new proteins
	Trivial bool        // add a full-length self-HSP per protein
}

// Extract returns the HSPs owned by this shard across all seeds. It
// returns the first error encountered (including context cancellation).
func Extract(ctx context.Context, cfg Config, set *protein.Set, f Finder, obs Observer) (hsp.Set, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.World < 1 {
		cfg.World = 1
	}
	if err := shard.Validate(cfg.Rank, cfg.World); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = nopObserver{}
	}
	seeds := cfg.Seeds
	if seeds == nil {
		seeds = seed.Fixed()
	}

	all := make(hsp.Set)
	for _, s := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		x := smer.Build(set, s, cfg.Threads)
		owned := shard.Positions(x.Len(), cfg.Rank, cfg.World)
		obs.SeedStarted(s, len(owned))
		found, err := run(ctx, cfg.Threads, x, owned, f, obs)
		if err != nil {
			return nil, err
		}
		obs.SeedDone(s, len(found))
		all.Union(found)
	}

	if cfg.Trivial {
		for _, p := range set.Proteins() {
			if cfg.NewOnly && !p.New {
				continue
			}
			loc := hsp.Location{Index: p.Index}
			all.Add(hsp.New(loc, loc, p.Len()))
		}
	}
	return all, nil
}

func run(ctx context.Context, threads int, x *smer.Index, owned []int, f Finder, obs Observer) (hsp.Set, error) {
	jobs := make(chan int, threads*2)
	results := make(chan hsp.Set, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					hs := f.HSPsForSmer(x, i)
					select {
					case results <- hs:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cwg sync.WaitGroup
		out = make(hsp.Set)
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for hs := range results {
			out.Union(hs)
			obs.CollectionDone()
		}
	}()

	// Feed work
feed:
	for _, i := range owned {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return out, nil
}
