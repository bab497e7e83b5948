// internal/app/peptides.go
package app

import (
	"context"
	"io"

	"sprint/internal/cli"
	"sprint/internal/cmdutil"
	"sprint/internal/fasta"
	"sprint/internal/hsp"
	"sprint/internal/protein"
)

// RunPeptidesContext scores new proteins against a scored reference set.
func RunPeptidesContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sprint-peptides", "interaction scoring for new proteins")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParsePeptidesArgs(fs, argv)
	if code, done := parsed("sprint-peptides", fs, opts.Common, err, stdout, stderr); done {
		return code
	}
	return exitCode(runPeptides(ctx, opts, stdout, stderr), stderr)
}

func RunPeptides(argv []string, stdout, stderr io.Writer) int {
	return RunPeptidesContext(context.Background(), argv, stdout, stderr)
}

func runPeptides(ctx context.Context, opts cli.PeptidesOptions, stdout, stderr io.Writer) error {
	set, hs, err := withPeptides(ctx, opts, stderr)
	if err != nil {
		return err
	}
	m, err := score(ctx, opts.PredictOptions, set, hs, stderr)
	if err != nil {
		return err
	}
	return writeScores(opts.PredictOptions, set, m, set.IsNew, stdout)
}

// withPeptides loads the reference set and its HSPs, appends the peptides
// as new proteins and adds the HSPs touching them.
func withPeptides(ctx context.Context, opts cli.PeptidesOptions, stderr io.Writer) (*protein.Set, hsp.Set, error) {
	set, err := loadSet(ctx, opts.Common, stderr)
	if err != nil {
		return nil, nil, err
	}
	hs, err := loadHSPs(opts.HSPs, set, opts.Common, stderr)
	if err != nil {
		return nil, nil, err
	}
	peps, err := fasta.Load(ctx, opts.Peptides)
	if err != nil {
		return nil, nil, err
	}
	if err := set.AddNew(peps); err != nil {
		return nil, nil, configError{err}
	}
	cmdutil.Infof(stderr, opts.Quiet, "added %s new proteins from %s", cmdutil.Count(set.CountNew()), opts.Peptides)

	// every shard needs all new HSPs; only scoring is split
	added, err := extract(ctx, opts.Common, opts.Search, set, 0, 1, true, stderr)
	if err != nil {
		return nil, nil, err
	}
	hs.Union(added)
	return set, hs, nil
}
