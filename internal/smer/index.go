// internal/smer/index.go
package smer

import (
	"sort"
	"sync"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/seed"
)

// Collection groups every location that produced the same masked value.
type Collection struct {
	Value     uint64
	Locations []hsp.Location // sorted
}

// Index holds the collections of one seed sorted by value, with a
// value → position lookup.
type Index struct {
	Seed        seed.Seed
	Collections []Collection
	pos         map[uint64]int
}

// Build extracts the s-mers of every protein in set and groups them.
// Extraction runs on up to threads goroutines.
func Build(set *protein.Set, s seed.Seed, threads int) *Index {
	if threads < 1 {
		threads = 1
	}
	ps := set.Proteins()
	per := make([][]Smer, len(ps))

	var wg sync.WaitGroup
	next := make(chan int, threads*2)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				per[i] = Extract(&ps[i], s)
			}
		}()
	}
	for i := range ps {
		next <- i
	}
	close(next)
	wg.Wait()

	grouped := make(map[uint64][]hsp.Location)
	for _, list := range per {
		for _, sm := range list {
			grouped[sm.Value] = append(grouped[sm.Value], sm.Loc)
		}
	}

	idx := &Index{
		Seed:        s,
		Collections: make([]Collection, 0, len(grouped)),
		pos:         make(map[uint64]int, len(grouped)),
	}
	for v, locs := range grouped {
		sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })
		idx.Collections = append(idx.Collections, Collection{Value: v, Locations: locs})
	}
	sort.Slice(idx.Collections, func(i, j int) bool {
		return idx.Collections[i].Value < idx.Collections[j].Value
	})
	for i, c := range idx.Collections {
		idx.pos[c.Value] = i
	}
	return idx
}

// Len is the number of distinct masked values.
func (x *Index) Len() int { return len(x.Collections) }

// Lookup returns the position of value v in the index.
func (x *Index) Lookup(v uint64) (int, bool) {
	i, ok := x.pos[v]
	return i, ok
}

// Contains reports whether v occurs in the index.
func (x *Index) Contains(v uint64) bool {
	_, ok := x.pos[v]
	return ok
}
