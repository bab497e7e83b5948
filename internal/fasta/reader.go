// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"sprint/internal/protein"
)

// Stream scans FASTA from r and calls emit once per record, in file
// order. The record name is the header up to the first blank; a trailing
// stop symbol '*' is dropped from the sequence. Cancellation via ctx is
// honored between lines. Return a non-nil error from emit to stop early.
func Stream(ctx context.Context, r io.Reader, emit func(protein.Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		name   string
		inside bool
		seq    = make([]byte, 0, 4096)
	)
	flush := func() error {
		if !inside {
			return nil
		}
		s := bytes.TrimSuffix(seq, []byte("*"))
		return emit(protein.Record{Name: name, Seq: string(s)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			name = headerName(line[1:])
			inside = true
			seq = seq[:0]
			continue
		}
		for _, f := range bytes.Fields(line) {
			seq = append(seq, f...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Load reads every record of path ("-" for stdin, gzip detected).
func Load(ctx context.Context, path string) ([]protein.Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []protein.Record
	err = Stream(ctx, rc, func(r protein.Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func headerName(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
