package scoring

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/residue"
)

const (
	seqA = "MKWVTFISLLLLFSSAYSRGVFRRDTHKSE"
	seqB = "GHPETLEKFDKFKHLKSEDEMKASEDLKKHG"
	k    = 12
)

func loc(i, p int) hsp.Location { return hsp.Location{Index: i, Position: p} }

func newSet(t *testing.T, recs ...protein.Record) *protein.Set {
	t.Helper()
	s, err := protein.NewSet(recs)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func entry(set *protein.Set, own, partner hsp.Location, length int) Entry {
	p1, p2 := set.ByIndex(own.Index), set.ByIndex(partner.Index)
	return Entry{
		Partner:    partner.Index,
		PartnerLen: p2.Len(),
		HSPLen:     length,
		Score:      residue.ScoreHSP(p1.Residues, p2.Residues, own.Position, partner.Position, length, k),
		OwnPos:     own.Position,
		PartnerPos: partner.Position,
	}
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

// C shares a region with A, and A interacts with B: C-B gets evidence.
func TestScoreTransfersThroughSimilarity(t *testing.T) {
	set := newSet(t,
		protein.Record{Name: "A", Seq: seqA},
		protein.Record{Name: "B", Seq: seqB},
		protein.Record{Name: "C", Seq: "PP" + seqA[:20]},
	)
	hsps := hsp.NewSet(
		hsp.New(loc(2, 2), loc(0, 0), 20),
		hsp.New(loc(1, 0), loc(1, 0), len(seqB)),
	)
	m, err := ScoreInteractions(context.Background(), Config{KmerSize: k, Threads: 2}, set, hsps, [][2]int{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}

	want := Contribution(entry(set, loc(0, 0), loc(2, 2), 20), entry(set, loc(1, 0), loc(1, 0), len(seqB)), k)
	if want <= 0 {
		t.Fatalf("expected positive contribution, got %v", want)
	}
	if got := m.At(2, 1); !near(got, want) {
		t.Fatalf("score[C][B] = %v, want %v", got, want)
	}
	if m.At(1, 2) != m.At(2, 1) {
		t.Fatal("matrix not symmetric")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			if (i == 2 && j == 1) || m.At(i, j) == 0 {
				continue
			}
			t.Errorf("unexpected score[%d][%d] = %v", i, j, m.At(i, j))
		}
	}
	if got := Max(m); !near(got, want) {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

// A pair with itself counts each entry combination once, diagonal included.
func TestScoreSelfPair(t *testing.T) {
	set := newSet(t,
		protein.Record{Name: "A", Seq: seqA},
		protein.Record{Name: "C", Seq: seqA},
	)
	hsps := hsp.NewSet(hsp.New(loc(0, 0), loc(1, 0), len(seqA)))
	m, err := ScoreInteractions(context.Background(), Config{KmerSize: k}, set, hsps, [][2]int{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	e := entry(set, loc(0, 0), loc(1, 0), len(seqA))
	if got, want := m.At(1, 1), Contribution(e, e, k); !near(got, want) {
		t.Fatalf("diagonal = %v, want %v", got, want)
	}
}

func TestScoreShardsSumToSingleRun(t *testing.T) {
	set := newSet(t,
		protein.Record{Name: "A", Seq: seqA},
		protein.Record{Name: "B", Seq: seqB},
		protein.Record{Name: "C", Seq: seqA},
		protein.Record{Name: "D", Seq: seqB},
	)
	hsps := hsp.NewSet(
		hsp.New(loc(0, 0), loc(2, 0), 30),
		hsp.New(loc(1, 3), loc(3, 3), 25),
		hsp.New(loc(0, 5), loc(0, 5), 20),
		hsp.New(loc(1, 0), loc(1, 0), 31),
	)
	pairs := [][2]int{{0, 1}, {2, 3}, {0, 3}, {1, 1}, {2, 0}}

	ctx := context.Background()
	single, err := ScoreInteractions(ctx, Config{KmerSize: k, Threads: 3}, set, hsps, pairs)
	if err != nil {
		t.Fatal(err)
	}
	sum := mat.NewSymDense(set.Len(), nil)
	for r := 0; r < 2; r++ {
		part, err := ScoreInteractions(ctx, Config{KmerSize: k, Rank: r, World: 2}, set, hsps, pairs)
		if err != nil {
			t.Fatal(err)
		}
		sum.AddSym(sum, part)
	}
	if !mat.EqualApprox(single, sum, 1e-9) {
		t.Fatalf("shard sum %v != single %v", mat.Formatted(sum), mat.Formatted(single))
	}
	if Max(single) == 0 {
		t.Fatal("expected some non-zero scores")
	}
}

func TestScoreRejectsBadShard(t *testing.T) {
	set := newSet(t, protein.Record{Name: "A", Seq: seqA})
	_, err := ScoreInteractions(context.Background(), Config{KmerSize: k, Rank: 1, World: 1}, set, nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestScoreCancelled(t *testing.T) {
	set := newSet(t, protein.Record{Name: "A", Seq: seqA})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScoreInteractions(ctx, Config{KmerSize: k}, set, nil, [][2]int{{0, 0}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestContributionsOnTarget(t *testing.T) {
	set := newSet(t,
		protein.Record{Name: "T", Seq: seqA},
		protein.Record{Name: "Y", Seq: seqB},
	)
	if err := set.AddNew([]protein.Record{{Name: "N", Seq: seqB[:20]}}); err != nil {
		t.Fatal(err)
	}
	hsps := hsp.NewSet(
		hsp.New(loc(0, 0), loc(0, 0), len(seqA)),
		hsp.New(loc(1, 0), loc(2, 0), 20),
	)
	out, err := Contributions(context.Background(), Config{KmerSize: k, Threads: 2}, 0, set, hsps, [][2]int{{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("want one vector, got %d", len(out))
	}
	vec, ok := out[2]
	if !ok || len(vec) != len(seqA) {
		t.Fatalf("vector for new protein missing or wrong length: %v", out)
	}
	c := Contribution(entry(set, loc(0, 0), loc(0, 0), len(seqA)), entry(set, loc(1, 0), loc(2, 0), 20), k)
	var total float64
	for i, v := range vec {
		if !near(v, c/float64(len(seqA))) {
			t.Fatalf("vec[%d] = %v, want %v", i, v, c/float64(len(seqA)))
		}
		total += v
	}
	if !near(total, c) {
		t.Fatalf("total %v, want %v", total, c)
	}
}

func TestContributionsBadTarget(t *testing.T) {
	set := newSet(t, protein.Record{Name: "T", Seq: seqA})
	if _, err := Contributions(context.Background(), Config{KmerSize: k}, 5, set, nil, nil); err == nil {
		t.Fatal("expected error")
	}
}
