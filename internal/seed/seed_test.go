package seed

import (
	"errors"
	"testing"
)

func TestCompileMask(t *testing.T) {
	s, err := Compile("1*1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := uint64(31<<10 | 31)
	if s.Mask != want {
		t.Fatalf("mask=%b want %b", s.Mask, want)
	}
	if len(s.Significant) != 2 || s.Significant[0] != 0 || s.Significant[1] != 2 {
		t.Fatalf("significant=%v", s.Significant)
	}
	if s.Len() != 3 {
		t.Fatalf("len=%d", s.Len())
	}
}

func TestCompileDefaults(t *testing.T) {
	seeds := Fixed()
	if len(seeds) != 4 {
		t.Fatalf("got %d seeds", len(seeds))
	}
	for _, s := range seeds {
		if s.Len() != 12 {
			t.Errorf("%s: len %d", s, s.Len())
		}
		for i := 0; i < s.Len(); i++ {
			field := (s.Mask >> s.Shift(i)) & 31
			isSig := s.Pattern[i] == '1'
			if isSig && field != 31 || !isSig && field != 0 {
				t.Errorf("%s: field %d = %d", s, i, field)
			}
		}
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []string{"", "11x1", "1111111111111", "**111111111111", "****"}
	for _, c := range cases {
		if _, err := Compile(c); err == nil {
			t.Errorf("Compile(%q) expected error", c)
		}
	}
	_, err := Compile("11?1")
	var pe *PatternError
	if !errors.As(err, &pe) || pe.Pos != 2 || pe.Char != '?' {
		t.Fatalf("want PatternError at 2, got %v", err)
	}
	if _, err := Compile("***"); !errors.Is(err, ErrNoSignificant) {
		t.Fatalf("want ErrNoSignificant, got %v", err)
	}
}

func TestCompileThirteenPositions(t *testing.T) {
	long, err := Compile("*11****11***1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	short := MustCompile("11****11***1")
	if long.Mask != short.Mask || long.Len() != 13 {
		t.Fatalf("mask %b len %d, want %b len 13", long.Mask, long.Len(), short.Mask)
	}
	if long.Significant[0] != 1 || long.Shift(1) != short.Shift(0) {
		t.Fatalf("significant=%v shift=%d", long.Significant, long.Shift(1))
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustCompile("1a1")
}
