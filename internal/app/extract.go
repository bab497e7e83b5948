// internal/app/extract.go
package app

import (
	"context"
	"io"

	"sprint/internal/cli"
	"sprint/internal/cmdutil"
	"sprint/internal/engine"
	"sprint/internal/hsp"
	"sprint/internal/pipeline"
	"sprint/internal/protein"
	"sprint/internal/writers"
)

// RunExtractContext finds the HSPs among all proteins of --sequences.
func RunExtractContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sprint-extract", "high-scoring segment pair extraction")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseExtractArgs(fs, argv)
	if code, done := parsed("sprint-extract", fs, opts.Common, err, stdout, stderr); done {
		return code
	}
	return exitCode(runExtract(ctx, opts, stdout, stderr), stderr)
}

func RunExtract(argv []string, stdout, stderr io.Writer) int {
	return RunExtractContext(context.Background(), argv, stdout, stderr)
}

func runExtract(ctx context.Context, opts cli.ExtractOptions, stdout, stderr io.Writer) error {
	set, err := loadSet(ctx, opts.Common, stderr)
	if err != nil {
		return err
	}
	hs, err := extract(ctx, opts.Common, opts.Search, set, opts.Rank, opts.World, false, stderr)
	if err != nil {
		return err
	}
	return writeOutput(opts.Output, stdout, func(w io.Writer) error {
		return writers.WriteHSPs(opts.Format, w, writers.HSPTable{HSPs: hs, Set: set, KmerSize: opts.KmerSize})
	})
}

// extract runs the seed pipeline over shard (rank, world) and adds the
// full-length self-HSP of every protein. newOnly restricts both to HSPs
// touching a new protein.
func extract(ctx context.Context, c cli.Common, s cli.Search, set *protein.Set, rank, world int, newOnly bool, stderr io.Writer) (hsp.Set, error) {
	eng := engine.New(engine.Config{KmerSize: c.KmerSize, TSim: s.TSim, THit: s.THit, NewOnly: newOnly}, set)
	obs, wait := observer(c, stderr)
	hs, err := pipeline.Extract(ctx, pipeline.Config{
		Threads: threads(c.Threads),
		Rank:    rank,
		World:   world,
		NewOnly: newOnly,
		Trivial: true,
	}, set, eng, obs)
	wait()
	if err != nil {
		return nil, err
	}
	cmdutil.Infof(stderr, c.Quiet, "extracted %s HSPs (shard %d/%d)", cmdutil.Count(len(hs)), rank, world)
	return hs, nil
}
