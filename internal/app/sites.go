// internal/app/sites.go
package app

import (
	"context"
	"io"

	"sprint/internal/cli"
	"sprint/internal/scoring"
	"sprint/internal/writers"
)

// RunSitesContext locates the target residues behind each new protein's
// predicted interaction.
func RunSitesContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sprint-sites", "interaction site contributions on a target protein")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseSitesArgs(fs, argv)
	if code, done := parsed("sprint-sites", fs, opts.Common, err, stdout, stderr); done {
		return code
	}
	return exitCode(runSites(ctx, opts, stdout, stderr), stderr)
}

func RunSites(argv []string, stdout, stderr io.Writer) int {
	return RunSitesContext(context.Background(), argv, stdout, stderr)
}

func runSites(ctx context.Context, opts cli.SitesOptions, stdout, stderr io.Writer) error {
	set, hs, err := withPeptides(ctx, opts.PeptidesOptions, stderr)
	if err != nil {
		return err
	}
	target, ok := set.Index(opts.Target)
	if !ok {
		return configErr("target %q is not in %s or %s", opts.Target, opts.Sequences, opts.Peptides)
	}
	tp, err := loadPairs(opts.Pairs, set, opts.Common, stderr)
	if err != nil {
		return err
	}
	vals, err := scoring.Contributions(ctx, scoringConfig(opts.Common), target, set, hs, tp)
	if err != nil {
		return err
	}
	return writeOutput(opts.Output, stdout, func(w io.Writer) error {
		return writers.WriteContributions(opts.Format, w, writers.ContributionTable{Values: vals, Names: set, Target: opts.Target})
	})
}
