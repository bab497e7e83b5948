// internal/writers/contributions.go
package writers

import (
	"bufio"
	"io"
	"sort"

	"sprint/internal/hsp"
	"sprint/internal/jsonutil"
	"sprint/pkg/api"
)

// ContributionTable holds the site contribution vectors keyed by query
// protein index, all measured on Target.
type ContributionTable struct {
	Values map[int][]float64
	Names  hsp.Namer
	Target string
}

func init() {
	RegisterContribution("text", writeContributionsText)
	RegisterContribution("json", writeContributionsJSON)
}

func (t ContributionTable) order() []int {
	idx := make([]int, 0, len(t.Values))
	for i := range t.Values {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Peak returns the first position holding the largest value, or -1 for an
// empty vector.
func Peak(vec []float64) int {
	best := -1
	for i, v := range vec {
		if best < 0 || v > vec[best] {
			best = i
		}
	}
	return best
}

// text: one line per query protein, its name then one value per target
// residue.
func writeContributionsText(w io.Writer, t ContributionTable) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	for _, i := range t.order() {
		if _, err := bw.WriteString(t.Names.Name(i)); err != nil {
			return err
		}
		for _, v := range t.Values[i] {
			if _, err := bw.WriteString(" " + FormatScore(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeContributionsJSON(w io.Writer, t ContributionTable) error {
	out := make([]api.ContributionV1, 0, len(t.Values))
	for _, i := range t.order() {
		out = append(out, api.ContributionV1{
			Protein: t.Names.Name(i),
			Target:  t.Target,
			Values:  t.Values[i],
			Peak:    Peak(t.Values[i]),
		})
	}
	return jsonutil.EncodePretty(w, out)
}
