// internal/residue/codec.go
package residue

import (
	"errors"
	"fmt"
)

// Code is a residue code: 1..20 for the standard amino acids, 0 for
// "no residue / don't care".
type Code = uint8

// Count is the number of distinct residue codes (excluding 0).
const Count = 20

// Bits is the width of one packed residue field.
const Bits = 5

// ErrUnknownResidue is returned for letters outside the tolerated
// amino-acid alphabet.
var ErrUnknownResidue = errors.New("unknown residue")

/* ------------------------- letter → code table ------------------------- */

var codes [256]Code // 0 = not a residue

// letters maps a code back to its one-letter symbol.
const letters = "-ARNDCQEGHILKMFPSTWYV"

func init() {
	for i := 1; i < len(letters); i++ {
		set(letters[i], Code(i))
	}
	// Ambiguous / non-standard letters share V's code.
	for _, c := range []byte("BZXUO") {
		set(c, 20)
	}
}

func set(c byte, v Code) {
	codes[c] = v
	codes[c|0x20] = v // lower case
}

// Encode maps one amino-acid letter (either case) to its code.
func Encode(c byte) (Code, error) {
	v := codes[c]
	if v == 0 {
		return 0, fmt.Errorf("%w %q", ErrUnknownResidue, c)
	}
	return v, nil
}

// EncodeSequence converts a whole sequence. The error names the first
// offending position.
func EncodeSequence(seq []byte) ([]Code, error) {
	out := make([]Code, len(seq))
	for i, c := range seq {
		v, err := Encode(c)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Letter returns the one-letter symbol of a code ('-' for 0).
func Letter(c Code) byte {
	if int(c) >= len(letters) {
		return 'X'
	}
	return letters[c]
}
