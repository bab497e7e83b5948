// internal/engine/engine_test.go
package engine

import (
	"testing"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/residue"
	"sprint/internal/seed"
	"sprint/internal/smer"
)

const twin = "MKWVTFISLLLLFSSAYSRGVFRRDTHKSE"

func mustSet(t *testing.T, recs ...protein.Record) *protein.Set {
	t.Helper()
	s, err := protein.NewSet(recs)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

// Two identical proteins must yield one HSP covering both in full.
func TestIdenticalProteinsFullLength(t *testing.T) {
	set := mustSet(t,
		protein.Record{Name: "a", Seq: twin},
		protein.Record{Name: "b", Seq: twin},
	)
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 35}, set)

	hits := eng.FindHits(hsp.Location{Index: 0, Position: 5}, hsp.Location{Index: 1, Position: 5}, 12)
	if len(hits) != 1 {
		t.Fatalf("want 1 hit, got %d", len(hits))
	}
	got := eng.Extend(hits[0])
	want := hsp.New(hsp.Location{Index: 0}, hsp.Location{Index: 1}, len(twin))
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestHSPsForSmerFindsTwin(t *testing.T) {
	set := mustSet(t,
		protein.Record{Name: "a", Seq: twin},
		protein.Record{Name: "b", Seq: twin},
	)
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 35}, set)
	x := smer.Build(set, seed.MustCompile(seed.Defaults[0]), 2)

	all := make(hsp.Set)
	for i := range x.Collections {
		all.Union(eng.HSPsForSmer(x, i))
	}
	want := hsp.New(hsp.Location{Index: 0}, hsp.Location{Index: 1}, len(twin))
	if !all.Has(want) {
		t.Fatalf("full-length HSP missing from %v", all.Sorted())
	}
	for h := range all {
		if h.Length < 12 {
			t.Errorf("HSP shorter than k: %+v", h)
		}
	}
}

func TestFindHitsIdenticalLocation(t *testing.T) {
	set := mustSet(t, protein.Record{Name: "a", Seq: twin})
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 0}, set)
	l := hsp.Location{Index: 0, Position: 3}
	if hits := eng.FindHits(l, l, 12); len(hits) != 0 {
		t.Fatalf("identical location produced hits: %v", hits)
	}
}

func TestFindHitsOutOfBounds(t *testing.T) {
	set := mustSet(t,
		protein.Record{Name: "a", Seq: twin},
		protein.Record{Name: "b", Seq: twin},
	)
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 0}, set)
	// window past the end for the only offset
	hits := eng.FindHits(hsp.Location{Index: 0, Position: 25}, hsp.Location{Index: 1, Position: 25}, 12)
	if len(hits) != 0 {
		t.Fatalf("want no hits, got %v", hits)
	}
}

func TestFindHitsOrdersByIndex(t *testing.T) {
	set := mustSet(t,
		protein.Record{Name: "a", Seq: twin},
		protein.Record{Name: "b", Seq: twin},
	)
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 35}, set)
	hits := eng.FindHits(hsp.Location{Index: 1, Position: 7}, hsp.Location{Index: 0, Position: 7}, 12)
	if len(hits) != 1 {
		t.Fatalf("want 1 hit, got %d", len(hits))
	}
	if hits[0].Loc1.Index != 0 || hits[0].Loc2.Index != 1 {
		t.Fatalf("hit not ordered: %+v", hits[0])
	}
}

// Re-extending from the leftmost window of an HSP gives the same HSP.
func TestExtendIdempotent(t *testing.T) {
	core := "MKWVTFISLLLLFSS"
	set := mustSet(t,
		protein.Record{Name: "a", Seq: "DDDDD" + core + "DDDDD"},
		protein.Record{Name: "b", Seq: "WWWWW" + core + "WWWWW"},
	)
	cfg := Config{KmerSize: 8, TSim: 15, THit: 30}
	eng := New(cfg, set)

	hits := eng.FindHits(hsp.Location{Index: 0, Position: 8}, hsp.Location{Index: 1, Position: 8}, 8)
	if len(hits) != 1 {
		t.Fatalf("want 1 hit, got %d", len(hits))
	}
	first := eng.Extend(hits[0])

	r1 := set.ByIndex(0).Residues
	r2 := set.ByIndex(1).Residues
	s1, s2 := first.Loc1.Position, first.Loc2.Position
	again := eng.Extend(Hit{
		Loc1:  first.Loc1,
		Loc2:  first.Loc2,
		Score: residue.ScoreWindow(r1, r2, s1, s2, cfg.KmerSize),
	})
	if again != first {
		t.Fatalf("re-extension changed HSP: %+v -> %+v", first, again)
	}
	if first.Length < len(core) {
		t.Fatalf("HSP %+v shorter than shared core", first)
	}
}

func TestNewOnlySkipsOldPairs(t *testing.T) {
	set := mustSet(t,
		protein.Record{Name: "a", Seq: twin},
		protein.Record{Name: "b", Seq: twin},
	)
	x := smer.Build(set, seed.MustCompile(seed.Defaults[0]), 1)
	eng := New(Config{KmerSize: 12, TSim: 15, THit: 35, NewOnly: true}, set)
	for i := range x.Collections {
		if got := eng.HSPsForSmer(x, i); len(got) != 0 {
			t.Fatalf("old-old pair produced %v", got.Sorted())
		}
	}

	if err := set.AddNew([]protein.Record{{Name: "c", Seq: twin}}); err != nil {
		t.Fatal(err)
	}
	x = smer.Build(set, seed.MustCompile(seed.Defaults[0]), 1)
	all := make(hsp.Set)
	for i := range x.Collections {
		all.Union(eng.HSPsForSmer(x, i))
	}
	if len(all) == 0 {
		t.Fatal("new protein produced no HSPs")
	}
	for h := range all {
		if !set.IsNew(h.Loc1.Index) && !set.IsNew(h.Loc2.Index) {
			t.Errorf("HSP between old proteins: %+v", h)
		}
	}
}
