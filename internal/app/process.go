// internal/app/process.go
package app

import (
	"context"
	"io"

	"sprint/internal/cli"
	"sprint/internal/cmdutil"
	"sprint/internal/processing"
	"sprint/internal/writers"
)

// RunProcessContext removes promiscuous regions from an HSP file.
func RunProcessContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sprint-process", "HSP promiscuity filtering")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseProcessArgs(fs, argv)
	if code, done := parsed("sprint-process", fs, opts.Common, err, stdout, stderr); done {
		return code
	}
	return exitCode(runProcess(ctx, opts, stdout, stderr), stderr)
}

func RunProcess(argv []string, stdout, stderr io.Writer) int {
	return RunProcessContext(context.Background(), argv, stdout, stderr)
}

func runProcess(ctx context.Context, opts cli.ProcessOptions, stdout, stderr io.Writer) error {
	set, err := loadSet(ctx, opts.Common, stderr)
	if err != nil {
		return err
	}
	hs, err := loadHSPs(opts.HSPs, set, opts.Common, stderr)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := processing.Process(set, hs, opts.KmerSize, opts.TCount)
	cmdutil.Infof(stderr, opts.Quiet, "kept %s of %s HSPs after filtering", cmdutil.Count(len(out)), cmdutil.Count(len(hs)))
	return writeOutput(opts.Output, stdout, func(w io.Writer) error {
		return writers.WriteHSPs(opts.Format, w, writers.HSPTable{HSPs: out, Set: set, KmerSize: opts.KmerSize})
	})
}
