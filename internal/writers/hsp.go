// internal/writers/hsp.go
package writers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"sprint/internal/hsp"
	"sprint/internal/jsonlutil"
	"sprint/internal/protein"
	"sprint/internal/residue"
	"sprint/pkg/api"
)

// HSPTable is an HSP set together with the proteins it refers to.
// KmerSize > 0 adds the HSP alignment score to JSON records.
type HSPTable struct {
	HSPs     hsp.Set
	Set      *protein.Set
	KmerSize int
}

func init() {
	RegisterHSP("text", writeHSPText)
	RegisterHSP("jsonl", writeHSPJSONL)
}

// row is one HSP with the record it is persisted as.
type row struct {
	h   hsp.HSP
	rec api.HSPV1
}

// rows returns the HSPs of t in name order, the order of the columns
// they are written with.
func (t HSPTable) rows(withScore bool) []row {
	out := make([]row, 0, len(t.HSPs))
	for h := range t.HSPs {
		out = append(out, row{h, toAPIHSP(h, t, withScore)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].rec, out[j].rec
		switch {
		case a.Protein1 != b.Protein1:
			return a.Protein1 < b.Protein1
		case a.Protein2 != b.Protein2:
			return a.Protein2 < b.Protein2
		case a.Pos1 != b.Pos1:
			return a.Pos1 < b.Pos1
		case a.Pos2 != b.Pos2:
			return a.Pos2 < b.Pos2
		}
		return a.Length < b.Length
	})
	return out
}

func writeHSPText(w io.Writer, t HSPTable) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	for _, r := range t.rows(false) {
		if _, err := bw.WriteString(hsp.Format(r.h, t.Set)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHSPJSONL(w io.Writer, t HSPTable) error {
	in, done := jsonlutil.Start[api.HSPV1](w, 256,
		func(enc *json.Encoder, rec api.HSPV1) error { return enc.Encode(rec) },
		IsBrokenPipe,
	)
	for _, r := range t.rows(t.KmerSize > 0) {
		in <- r.rec
	}
	close(in)
	return <-done
}

func toAPIHSP(h hsp.HSP, t HSPTable, withScore bool) api.HSPV1 {
	a, b := h.Loc1, h.Loc2
	// same orientation as the text format
	if t.Set.Name(b.Index) < t.Set.Name(a.Index) {
		a, b = b, a
	}
	out := api.HSPV1{
		Protein1: t.Set.Name(a.Index),
		Protein2: t.Set.Name(b.Index),
		Pos1:     a.Position,
		Pos2:     b.Position,
		Length:   h.Length,
	}
	if withScore {
		p1, p2 := t.Set.ByIndex(a.Index), t.Set.ByIndex(b.Index)
		out.Score = residue.ScoreHSP(p1.Residues, p2.Residues, a.Position, b.Position, h.Length, t.KmerSize)
	}
	return out
}

// fromAPIHSP maps a JSONL record back onto set.
func fromAPIHSP(rec api.HSPV1, set *protein.Set) (hsp.HSP, error) {
	if rec.Pos1 < 0 || rec.Pos2 < 0 || rec.Length < 0 {
		return hsp.HSP{}, fmt.Errorf("negative position or length in %+v", rec)
	}
	i1, ok := set.Index(rec.Protein1)
	if !ok {
		return hsp.HSP{}, fmt.Errorf("%w %q", hsp.ErrUnknownProtein, rec.Protein1)
	}
	i2, ok := set.Index(rec.Protein2)
	if !ok {
		return hsp.HSP{}, fmt.Errorf("%w %q", hsp.ErrUnknownProtein, rec.Protein2)
	}
	return hsp.New(hsp.Location{Index: i1, Position: rec.Pos1}, hsp.Location{Index: i2, Position: rec.Pos2}, rec.Length), nil
}

func parseHSPLine(text string, set *protein.Set) (hsp.HSP, error) {
	if !strings.HasPrefix(text, "{") {
		return hsp.Parse(text, set)
	}
	var rec api.HSPV1
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return hsp.HSP{}, err
	}
	return fromAPIHSP(rec, set)
}

// ReadHSPs parses HSPs from r, one per line, in either the text or the
// jsonl format (lines may mix). Lines naming proteins unknown to set are
// skipped and counted; any other malformed line, including one reaching
// past a protein end, is an error reported as src:line.
func ReadHSPs(r io.Reader, src string, set *protein.Set) (hsp.Set, int, error) {
	out := make(hsp.Set)
	skipped := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		h, err := parseHSPLine(text, set)
		if errors.Is(err, hsp.ErrUnknownProtein) {
			skipped++
			continue
		}
		if err == nil {
			err = inBounds(h, set)
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%s:%d: %w", src, line, err)
		}
		out.Add(h)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", src, err)
	}
	return out, skipped, nil
}

func inBounds(h hsp.HSP, set *protein.Set) error {
	for _, l := range [2]hsp.Location{h.Loc1, h.Loc2} {
		if p := set.ByIndex(l.Index); l.Position+h.Length > p.Len() {
			return fmt.Errorf("hsp %d+%d exceeds %s (length %d)", l.Position, h.Length, p.Name, p.Len())
		}
	}
	return nil
}

// LoadHSPs reads an HSP file written in either format. See ReadHSPs.
func LoadHSPs(path string, set *protein.Set) (hsp.Set, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadHSPs(f, path, set)
}
