package pairs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"sprint/internal/protein"
)

func TestReadDelimitersAndDedup(t *testing.T) {
	in := strings.Join([]string{
		"A B",
		"B,A",  // reverse of line 1
		"C\tD", // tab
		"E  F", // repeated spaces
		"G,H",
		"",
		"lonely",
		"A B",
	}, "\n")
	got, bad, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{"A", "B"}, {"C", "D"}, {"E", "F"}, {"G", "H"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !reflect.DeepEqual(bad, []int{7}) {
		t.Fatalf("bad lines %v, want [7]", bad)
	}
}

func TestReadStripsWhitespace(t *testing.T) {
	got, _, err := Read(strings.NewReader("P1,\tP2\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []Pair{{"P1", "P2"}}) {
		t.Fatalf("got %v", got)
	}
}

func TestLoadAndMap(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pairs.txt")
	if err := os.WriteFile(fn, []byte("a b\nb zz\nc a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ps, bad, err := Load(fn)
	if err != nil || len(bad) != 0 {
		t.Fatalf("Load: %v %v", bad, err)
	}
	set, err := protein.NewSet([]protein.Record{
		{Name: "a", Seq: "MK"}, {Name: "b", Seq: "MK"}, {Name: "c", Seq: "MK"},
	})
	if err != nil {
		t.Fatal(err)
	}
	idx, skipped := Map(set, ps)
	if skipped != 1 {
		t.Fatalf("skipped %d, want 1", skipped)
	}
	if !reflect.DeepEqual(idx, [][2]int{{0, 1}, {2, 0}}) {
		t.Fatalf("idx %v", idx)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error")
	}
}
