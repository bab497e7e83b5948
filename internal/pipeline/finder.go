// internal/pipeline/finder.go
package pipeline

import (
	"sprint/internal/hsp"
	"sprint/internal/seed"
	"sprint/internal/smer"
)

// Finder is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Finder interface {
	HSPsForSmer(x *smer.Index, i int) hsp.Set
}

// Observer receives progress events. All methods are called from the
// pipeline's own goroutines, one at a time.
type Observer interface {
	SeedStarted(s seed.Seed, collections int)
	CollectionDone()
	SeedDone(s seed.Seed, found int)
}

type nopObserver struct{}

func (nopObserver) SeedStarted(seed.Seed, int) {}
func (nopObserver) CollectionDone()            {}
func (nopObserver) SeedDone(seed.Seed, int)    {}
