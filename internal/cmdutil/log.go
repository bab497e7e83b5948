// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Count renders n with thousands separators.
func Count(n int) string { return humanize.Comma(int64(n)) }
