// Package jsonutil holds the document-style JSON encoder used by the json
// output formats.
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncodePretty writes v to w as one indented JSON document. Names are
// written verbatim, so '<' and '&' in FASTA headers are not escaped.
func EncodePretty(w io.Writer, v any) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}
