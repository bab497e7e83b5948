// internal/cli/common.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"sprint/internal/shard"
)

// Default thresholds.
const (
	DefaultKmerSize = 20
	DefaultTSim     = 15
	DefaultTHit     = 35
	DefaultTCount   = 40
)

// Common holds CLI fields shared by every sprint binary.
type Common struct {
	Sequences string
	KmerSize  int
	Threads   int
	Rank      int
	World     int
	Output    string // path, "-" = stdout
	Format    string

	Quiet    bool
	Progress bool
	Version  bool
	help     bool
}

// Search holds the HSP search thresholds.
type Search struct {
	TSim int
	THit int
}

func registerCommon(fs *flag.FlagSet, c *Common, formats string) {
	fs.StringVar(&c.Sequences, "sequences", "", "protein FASTA file (gzip ok, '-' = stdin) [*]")
	fs.StringVar(&c.Sequences, "i", "", "alias of --sequences")
	fs.IntVar(&c.KmerSize, "kmer-size", DefaultKmerSize, fmt.Sprintf("minimum HSP length / scoring window [%d]", DefaultKmerSize))
	fs.IntVar(&c.KmerSize, "k", DefaultKmerSize, "alias of --kmer-size")
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&c.Rank, "rank", 0, "shard index of this process [0]")
	fs.IntVar(&c.World, "world-size", 1, "number of shards [1]")
	fs.StringVar(&c.Output, "output", "-", "output path ('-' = stdout) [-]")
	fs.StringVar(&c.Output, "o", "-", "alias of --output")
	fs.StringVar(&c.Format, "format", "text", "output format: "+formats+" [text]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings and info lines [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Progress, "progress", false, "show progress bars on stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.help, "h", false, "show this help message [false]")
}

func registerSearch(fs *flag.FlagSet, s *Search) {
	fs.IntVar(&s.TSim, "t-sim", DefaultTSim, fmt.Sprintf("s-mer similarity threshold [%d]", DefaultTSim))
	fs.IntVar(&s.THit, "t-hsp", DefaultTHit, fmt.Sprintf("hit / extension window threshold [%d]", DefaultTHit))
}

// parse runs fs.Parse and handles -h, --version and stray positionals.
// done reports that the caller should return opt as-is.
func parse(fs *flag.FlagSet, c *Common, argv []string) (done bool, err error) {
	if err := fs.Parse(argv); err != nil {
		return true, err
	}
	if c.help {
		return true, flag.ErrHelp
	}
	if c.Version {
		return true, nil
	}
	if fs.NArg() > 0 {
		return true, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return false, nil
}

func validateCommon(c *Common, formats ...string) error {
	if c.Sequences == "" {
		return errors.New("--sequences is required")
	}
	if c.KmerSize < 1 {
		return errors.New("--kmer-size must be ≥ 1")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if err := shard.Validate(c.Rank, c.World); err != nil {
		return fmt.Errorf("--rank/--world-size: %w", err)
	}
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --format %q", c.Format)
}
