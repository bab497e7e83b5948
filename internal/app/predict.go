// internal/app/predict.go
package app

import (
	"context"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"

	"sprint/internal/cli"
	"sprint/internal/cmdutil"
	"sprint/internal/hsp"
	"sprint/internal/protein"
	"sprint/internal/scoring"
	"sprint/internal/writers"
)

// RunPredictContext scores every protein pair from HSPs and training pairs.
func RunPredictContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sprint-predict", "protein-protein interaction scoring")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParsePredictArgs(fs, argv)
	if code, done := parsed("sprint-predict", fs, opts.Common, err, stdout, stderr); done {
		return code
	}
	return exitCode(runPredict(ctx, opts, stdout, stderr), stderr)
}

func RunPredict(argv []string, stdout, stderr io.Writer) int {
	return RunPredictContext(context.Background(), argv, stdout, stderr)
}

func runPredict(ctx context.Context, opts cli.PredictOptions, stdout, stderr io.Writer) error {
	set, err := loadSet(ctx, opts.Common, stderr)
	if err != nil {
		return err
	}
	hs, err := loadHSPs(opts.HSPs, set, opts.Common, stderr)
	if err != nil {
		return err
	}
	m, err := score(ctx, opts, set, hs, stderr)
	if err != nil {
		return err
	}
	return writeScores(opts, set, m, nil, stdout)
}

func score(ctx context.Context, opts cli.PredictOptions, set *protein.Set, hs hsp.Set, stderr io.Writer) (*mat.SymDense, error) {
	tp, err := loadPairs(opts.Pairs, set, opts.Common, stderr)
	if err != nil {
		return nil, err
	}
	m, err := scoring.ScoreInteractions(ctx, scoringConfig(opts.Common), set, hs, tp)
	if err != nil {
		return nil, err
	}
	cmdutil.Infof(stderr, opts.Quiet, "scored %s proteins, max score %s", cmdutil.Count(set.Len()), writers.FormatScore(scoring.Max(m)))
	return m, nil
}

func scoringConfig(c cli.Common) scoring.Config {
	return scoring.Config{KmerSize: c.KmerSize, Threads: threads(c.Threads), Rank: c.Rank, World: c.World}
}

func writeScores(opts cli.PredictOptions, set *protein.Set, m *mat.SymDense, rows func(int) bool, stdout io.Writer) error {
	tab := writers.ScoreTable{Matrix: m, Names: set, Rows: rows}
	if !math.IsInf(opts.MinScore, -1) {
		floor := opts.MinScore
		tab.Keep = func(v float64) bool { return v >= floor }
	}
	return writeOutput(opts.Output, stdout, func(w io.Writer) error {
		return writers.WriteScores(opts.Format, w, tab)
	})
}
