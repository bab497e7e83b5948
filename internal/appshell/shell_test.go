package appshell

import (
	"context"
	"io"
	"testing"
)

func TestRunDefaultsToHelp(t *testing.T) {
	var got []string
	code := Run(context.Background(), func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	if code != 0 || len(got) != 1 || got[0] != "-h" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}

func TestRunCancelledIs130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := func(context.Context, []string, io.Writer, io.Writer) int { return 0 }
	if code := Run(ctx, ok, []string{"-i", "x"}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("code=%d", code)
	}
}

func TestRunKeepsFailureCode(t *testing.T) {
	fail := func(context.Context, []string, io.Writer, io.Writer) int { return 3 }
	if code := Run(context.Background(), fail, []string{"x"}, io.Discard, io.Discard); code != 3 {
		t.Fatalf("code=%d", code)
	}
}
