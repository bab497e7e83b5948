// internal/seed/seed.go
package seed

import (
	"errors"
	"fmt"
)

// MaxLength is the longest accepted pattern. Twelve 5-bit fields fit in a
// uint64; a thirteenth spills past bit 63 and is only accepted as a leading
// '*', whose field holds no bits.
const MaxLength = 64/5 + 1

// Defaults are the spaced seeds used for every extraction run.
var Defaults = [...]string{
	"11****11***1",
	"1**1*1***1*1",
	"11**1***1**1",
	"1*1******111",
}

// Seed is a compiled spaced-seed pattern. Match-required positions occupy
// a 5-bit all-ones field of Mask, most significant field first.
type Seed struct {
	Pattern     string
	Mask        uint64
	Significant []int // pattern offsets of the '1' characters
}

// PatternError reports a malformed seed pattern.
type PatternError struct {
	Pattern string
	Pos     int
	Char    byte
	Reason  string
}

func (e *PatternError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("seed %q: %s", e.Pattern, e.Reason)
	}
	return fmt.Sprintf("seed %q: invalid character %q at %d", e.Pattern, e.Char, e.Pos)
}

// ErrNoSignificant is wrapped when a pattern has no '1' position.
var ErrNoSignificant = errors.New("no match-required position")

// Compile turns a pattern over {'1','*'} into a Seed.
func Compile(pattern string) (Seed, error) {
	switch {
	case len(pattern) == 0:
		return Seed{}, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	case len(pattern) > MaxLength:
		return Seed{}, &PatternError{Pattern: pattern, Reason: fmt.Sprintf("longer than %d positions", MaxLength)}
	case len(pattern) == MaxLength && pattern[0] != '*':
		return Seed{}, &PatternError{Pattern: pattern, Reason: fmt.Sprintf("a %d-position pattern must start with '*'", MaxLength)}
	}
	var mask uint64
	var sig []int
	for i := 0; i < len(pattern); i++ {
		mask <<= 5
		switch pattern[i] {
		case '*':
		case '1':
			mask |= 31
			sig = append(sig, i)
		default:
			return Seed{}, &PatternError{Pattern: pattern, Pos: i, Char: pattern[i]}
		}
	}
	if len(sig) == 0 {
		return Seed{}, fmt.Errorf("seed %q: %w", pattern, ErrNoSignificant)
	}
	return Seed{Pattern: pattern, Mask: mask, Significant: sig}, nil
}

// MustCompile is Compile for patterns known at build time.
func MustCompile(pattern string) Seed {
	s, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Fixed returns the compiled default seeds.
func Fixed() []Seed {
	out := make([]Seed, len(Defaults))
	for i, p := range Defaults {
		out[i] = MustCompile(p)
	}
	return out
}

// Len is the number of residues a window of this seed spans.
func (s Seed) Len() int { return len(s.Pattern) }

// String returns the pattern.
func (s Seed) String() string { return s.Pattern }

// Shift returns the bit offset of the field at pattern offset i.
func (s Seed) Shift(i int) uint { return uint(5 * (len(s.Pattern) - 1 - i)) }
