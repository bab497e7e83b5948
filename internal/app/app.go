// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"sprint/internal/cli"
	"sprint/internal/cmdutil"
	"sprint/internal/fasta"
	"sprint/internal/hsp"
	"sprint/internal/pairs"
	"sprint/internal/pipeline"
	"sprint/internal/protein"
	"sprint/internal/version"
	"sprint/internal/writers"
)

// configError marks failures caused by invalid input or flags (exit 2).
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func configErr(format string, a ...any) error { return configError{fmt.Errorf(format, a...)} }

// exitCode maps err to the process exit status and reports it on stderr.
func exitCode(err error, stderr io.Writer) int {
	var ce configError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		_, _ = fmt.Fprintln(stderr, "cancelled")
		return 130
	case writers.IsBrokenPipe(err):
		return 0
	case errors.As(err, &ce):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 3
	}
}

// parsed handles help, version and flag errors. It returns done=true with
// the exit code when the command should stop.
func parsed(name string, fs *flag.FlagSet, c cli.Common, err error, stdout, stderr io.Writer) (int, bool) {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) (int, bool) {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0, true
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3, true
		}
		return code, true
	}
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(2)
	}
	if c.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}
	return 0, false
}

func threads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func loadSet(ctx context.Context, c cli.Common, stderr io.Writer) (*protein.Set, error) {
	recs, err := fasta.Load(ctx, c.Sequences)
	if err != nil {
		return nil, err
	}
	set, err := protein.NewSet(recs)
	if err != nil {
		return nil, configError{fmt.Errorf("%s: %w", c.Sequences, err)}
	}
	cmdutil.Infof(stderr, c.Quiet, "loaded %s proteins from %s", cmdutil.Count(set.Len()), c.Sequences)
	return set, nil
}

func loadHSPs(path string, set *protein.Set, c cli.Common, stderr io.Writer) (hsp.Set, error) {
	hs, skipped, err := writers.LoadHSPs(path, set)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, configError{err}
	}
	if skipped > 0 {
		cmdutil.Warnf(stderr, c.Quiet, "%s: skipped %s HSPs naming unknown proteins", path, cmdutil.Count(skipped))
	}
	cmdutil.Infof(stderr, c.Quiet, "loaded %s HSPs from %s", cmdutil.Count(len(hs)), path)
	return hs, nil
}

func loadPairs(path string, set *protein.Set, c cli.Common, stderr io.Writer) ([][2]int, error) {
	ps, bad, err := pairs.Load(path)
	if err != nil {
		return nil, err
	}
	for _, line := range bad {
		cmdutil.Warnf(stderr, c.Quiet, "%s:%d: pairs must be separated by a space, a comma or a tab; line skipped", path, line)
	}
	idx, skipped := pairs.Map(set, ps)
	if skipped > 0 {
		cmdutil.Warnf(stderr, c.Quiet, "%s: skipped %s pairs naming unknown proteins", path, cmdutil.Count(skipped))
	}
	cmdutil.Infof(stderr, c.Quiet, "loaded %s training pairs from %s", cmdutil.Count(len(idx)), path)
	return idx, nil
}

// observer picks the progress reporter for an extraction run. The returned
// func must be called once the run is over.
func observer(c cli.Common, stderr io.Writer) (pipeline.Observer, func()) {
	if c.Progress && !c.Quiet {
		p := cmdutil.NewProgressObserver(stderr)
		return p, p.Wait
	}
	return cmdutil.LogObserver{Out: stderr, Quiet: c.Quiet}, func() {}
}

// writeOutput opens the destination named by path ("-" = stdout), runs
// write on a buffered writer and flushes it.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	dst := stdout
	if path != "-" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		dst = f
	}
	bw := bufio.NewWriterSize(dst, 64<<10)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
