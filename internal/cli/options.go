// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"math"
)

// ExtractOptions configures sprint-extract.
type ExtractOptions struct {
	Common
	Search
}

// ProcessOptions configures sprint-process.
type ProcessOptions struct {
	Common
	HSPs   string
	TCount int
}

// PredictOptions configures sprint-predict.
type PredictOptions struct {
	Common
	HSPs     string
	Pairs    string
	MinScore float64 // -Inf keeps every cell
}

// PeptidesOptions configures sprint-peptides.
type PeptidesOptions struct {
	PredictOptions
	Search
	Peptides string
}

// SitesOptions configures sprint-sites.
type SitesOptions struct {
	PeptidesOptions
	Target string
}

// ParseExtractArgs registers and parses the flags of sprint-extract.
func ParseExtractArgs(fs *flag.FlagSet, argv []string) (ExtractOptions, error) {
	var opt ExtractOptions
	registerCommon(fs, &opt.Common, "text | jsonl")
	registerSearch(fs, &opt.Search)
	if done, err := parse(fs, &opt.Common, argv); done {
		return opt, err
	}
	return opt, validateCommon(&opt.Common, "text", "jsonl")
}

// ParseProcessArgs registers and parses the flags of sprint-process.
func ParseProcessArgs(fs *flag.FlagSet, argv []string) (ProcessOptions, error) {
	var opt ProcessOptions
	registerCommon(fs, &opt.Common, "text | jsonl")
	fs.StringVar(&opt.HSPs, "hsps", "", "HSP file from sprint-extract, text or jsonl [*]")
	fs.StringVar(&opt.HSPs, "s", "", "alias of --hsps")
	fs.IntVar(&opt.TCount, "t-count", DefaultTCount, "promiscuity threshold per residue [40]")
	if done, err := parse(fs, &opt.Common, argv); done {
		return opt, err
	}
	if err := validateCommon(&opt.Common, "text", "jsonl"); err != nil {
		return opt, err
	}
	if opt.HSPs == "" {
		return opt, errors.New("--hsps is required")
	}
	if opt.TCount < 0 {
		return opt, errors.New("--t-count must be ≥ 0")
	}
	return opt, nil
}

func registerPredict(fs *flag.FlagSet, opt *PredictOptions, formats string) {
	registerCommon(fs, &opt.Common, formats)
	fs.StringVar(&opt.HSPs, "hsps", "", "HSP file, text or jsonl [*]")
	fs.StringVar(&opt.HSPs, "s", "", "alias of --hsps")
	fs.StringVar(&opt.Pairs, "pairs", "", "training pairs file [*]")
	fs.StringVar(&opt.Pairs, "r", "", "alias of --pairs")
	fs.Float64Var(&opt.MinScore, "min-score", math.Inf(-1), "only output scores ≥ this value [all]")
}

func validatePredict(opt *PredictOptions) error {
	if err := validateCommon(&opt.Common, "text", "json", "jsonl"); err != nil {
		return err
	}
	if opt.HSPs == "" {
		return errors.New("--hsps is required")
	}
	if opt.Pairs == "" {
		return errors.New("--pairs is required")
	}
	return nil
}

// ParsePredictArgs registers and parses the flags of sprint-predict.
func ParsePredictArgs(fs *flag.FlagSet, argv []string) (PredictOptions, error) {
	var opt PredictOptions
	registerPredict(fs, &opt, "text | json | jsonl")
	if done, err := parse(fs, &opt.Common, argv); done {
		return opt, err
	}
	return opt, validatePredict(&opt)
}

func registerPeptides(fs *flag.FlagSet, opt *PeptidesOptions, formats string) {
	registerPredict(fs, &opt.PredictOptions, formats)
	registerSearch(fs, &opt.Search)
	fs.StringVar(&opt.Peptides, "peptides", "", "FASTA of new proteins / peptides [*]")
	fs.StringVar(&opt.Peptides, "p", "", "alias of --peptides")
}

// ParsePeptidesArgs registers and parses the flags of sprint-peptides.
func ParsePeptidesArgs(fs *flag.FlagSet, argv []string) (PeptidesOptions, error) {
	var opt PeptidesOptions
	registerPeptides(fs, &opt, "text | json | jsonl")
	if done, err := parse(fs, &opt.Common, argv); done {
		return opt, err
	}
	if err := validatePredict(&opt.PredictOptions); err != nil {
		return opt, err
	}
	if opt.Peptides == "" {
		return opt, errors.New("--peptides is required")
	}
	return opt, nil
}

// ParseSitesArgs registers and parses the flags of sprint-sites.
func ParseSitesArgs(fs *flag.FlagSet, argv []string) (SitesOptions, error) {
	var opt SitesOptions
	registerPeptides(fs, &opt.PeptidesOptions, "text | json")
	fs.StringVar(&opt.Target, "target", "", "name of the target protein [*]")
	if done, err := parse(fs, &opt.Common, argv); done {
		return opt, err
	}
	if err := validateCommon(&opt.Common, "text", "json"); err != nil {
		return opt, err
	}
	if opt.HSPs == "" || opt.Pairs == "" || opt.Peptides == "" {
		return opt, errors.New("--hsps, --pairs and --peptides are required")
	}
	if opt.Target == "" {
		return opt, errors.New("--target is required")
	}
	return opt, nil
}
