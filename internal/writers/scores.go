// internal/writers/scores.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"sprint/internal/hsp"
	"sprint/internal/jsonlutil"
	"sprint/internal/jsonutil"
	"sprint/pkg/api"
)

// ScoreTable selects the lower triangle of a score matrix for output.
// Rows, when set, restricts output to the rows it accepts; Keep, when set,
// drops cells it rejects.
type ScoreTable struct {
	Matrix mat.Symmetric
	Names  hsp.Namer
	Rows   func(i int) bool
	Keep   func(v float64) bool
}

func init() {
	RegisterScore("text", writeScoresText)
	RegisterScore("json", writeScoresJSON)
	RegisterScore("jsonl", writeScoresJSONL)
}

// each visits the selected cells (i, j) with j <= i in row-major order.
func (t ScoreTable) each(fn func(i, j int, v float64) error) error {
	n := t.Matrix.SymmetricDim()
	for i := 0; i < n; i++ {
		if t.Rows != nil && !t.Rows(i) {
			continue
		}
		for j := 0; j <= i; j++ {
			v := t.Matrix.At(i, j)
			if t.Keep != nil && !t.Keep(v) {
				continue
			}
			if err := fn(i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatScore renders a score with the shortest exact representation.
func FormatScore(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeScoresText(w io.Writer, t ScoreTable) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	err := t.each(func(i, j int, v float64) error {
		_, err := bw.WriteString(t.Names.Name(i) + " " + t.Names.Name(j) + " " + FormatScore(v) + "\n")
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (t ScoreTable) record(i, j int, v float64) api.ScoreV1 {
	return api.ScoreV1{Protein1: t.Names.Name(i), Protein2: t.Names.Name(j), Score: v}
}

func writeScoresJSON(w io.Writer, t ScoreTable) error {
	out := []api.ScoreV1{}
	_ = t.each(func(i, j int, v float64) error {
		out = append(out, t.record(i, j, v))
		return nil
	})
	return jsonutil.EncodePretty(w, out)
}

func writeScoresJSONL(w io.Writer, t ScoreTable) error {
	in, done := jsonlutil.Start[api.ScoreV1](w, 256,
		func(enc *json.Encoder, s api.ScoreV1) error { return enc.Encode(s) },
		IsBrokenPipe,
	)
	_ = t.each(func(i, j int, v float64) error {
		in <- t.record(i, j, v)
		return nil
	})
	close(in)
	return <-done
}
