// Package pairs loads training interaction pairs and maps them onto a
// protein set.
package pairs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"sprint/internal/protein"
)

// Pair is an unordered pair of protein names.
type Pair struct {
	A, B string
}

// Load reads a pair file. See Read.
func Load(path string) ([]Pair, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	ps, bad, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, bad, nil
}

// Read parses one pair per line, split on the first of space, comma or
// tab present in the line. Whitespace inside a field is removed. A pair
// and its reverse are kept once, in first-seen order. Blank lines are
// ignored; lines without a second field are skipped and their 1-based
// numbers returned in bad.
func Read(r io.Reader) (ps []Pair, bad []int, err error) {
	seen := make(map[Pair]struct{})
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		var fields []string
		switch {
		case strings.Contains(text, " "):
			fields = strings.Fields(text)
		case strings.Contains(text, ","):
			fields = strings.Split(text, ",")
		case strings.Contains(text, "\t"):
			fields = strings.Split(text, "\t")
		}
		if len(fields) < 2 {
			bad = append(bad, line)
			continue
		}
		p := Pair{A: strip(fields[0]), B: strip(fields[1])}
		if p.A == "" || p.B == "" {
			bad = append(bad, line)
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		seen[Pair{A: p.B, B: p.A}] = struct{}{}
		ps = append(ps, p)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return ps, bad, nil
}

func strip(s string) string { return strings.Join(strings.Fields(s), "") }

// Map resolves names to protein indices. Pairs naming an unknown protein
// are dropped and counted.
func Map(set *protein.Set, ps []Pair) (idx [][2]int, skipped int) {
	idx = make([][2]int, 0, len(ps))
	for _, p := range ps {
		a, okA := set.Index(p.A)
		b, okB := set.Index(p.B)
		if !okA || !okB {
			skipped++
			continue
		}
		idx = append(idx, [2]int{a, b})
	}
	return idx, skipped
}
