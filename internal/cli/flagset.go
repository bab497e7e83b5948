// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"sprint/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and a usage banner.
func NewFlagSet(name, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: %s

Version: %s

Usage of %s:
`, name, summary, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
