// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// Writer registries (format → handler).
// Register in init() blocks from the hsp/score/contribution writer files.
var (
	HSPWriters          = map[string]func(w io.Writer, t HSPTable) error{}
	ScoreWriters        = map[string]func(w io.Writer, t ScoreTable) error{}
	ContributionWriters = map[string]func(w io.Writer, t ContributionTable) error{}
)

// Register helpers (idempotent last-wins)
func RegisterHSP(format string, fn func(io.Writer, HSPTable) error)     { HSPWriters[format] = fn }
func RegisterScore(format string, fn func(io.Writer, ScoreTable) error) { ScoreWriters[format] = fn }
func RegisterContribution(format string, fn func(io.Writer, ContributionTable) error) {
	ContributionWriters[format] = fn
}

// Formats lists the registered formats of one registry, sorted.
func Formats[T any](reg map[string]func(io.Writer, T) error) []string {
	out := make([]string, 0, len(reg))
	for f := range reg {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteHSPs dispatches to the HSP writer registered for format.
func WriteHSPs(format string, w io.Writer, t HSPTable) error {
	fn, ok := HSPWriters[format]
	if !ok {
		return fmt.Errorf("unknown hsp format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// WriteScores dispatches to the score writer registered for format.
func WriteScores(format string, w io.Writer, t ScoreTable) error {
	fn, ok := ScoreWriters[format]
	if !ok {
		return fmt.Errorf("unknown score format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// WriteContributions dispatches to the contribution writer registered for format.
func WriteContributions(format string, w io.Writer, t ContributionTable) error {
	fn, ok := ContributionWriters[format]
	if !ok {
		return fmt.Errorf("unknown contribution format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// IsBrokenPipe reports whether writing stopped because the reader went away
// (sprint-predict | head). Callers treat it as a clean exit.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
