// internal/hsp/text.go
package hsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Namer resolves protein indices and names; *protein.Set satisfies it.
type Namer interface {
	Name(index int) string
	Index(name string) (int, bool)
}

// ErrUnknownProtein is returned by Parse when a name is not in the set.
var ErrUnknownProtein = errors.New("unknown protein")

// Format renders h as "name1 name2 pos1 pos2 length" with names in
// lexicographic order. For a self-HSP the lower position comes first.
func Format(h HSP, n Namer) string {
	n1, n2 := n.Name(h.Loc1.Index), n.Name(h.Loc2.Index)
	p1, p2 := h.Loc1.Position, h.Loc2.Position
	switch {
	case n1 == n2:
		if p2 < p1 {
			p1, p2 = p2, p1
		}
	case n2 < n1:
		n1, n2 = n2, n1
		p1, p2 = p2, p1
	}
	return fmt.Sprintf("%s %s %d %d %d", n1, n2, p1, p2, h.Length)
}

// Parse reads one line produced by Format.
func Parse(line string, n Namer) (HSP, error) {
	f := strings.Fields(line)
	if len(f) != 5 {
		return HSP{}, fmt.Errorf("want 5 fields, got %d", len(f))
	}
	var nums [3]int
	for i := range nums {
		v, err := strconv.Atoi(f[2+i])
		if err != nil || v < 0 {
			return HSP{}, fmt.Errorf("bad integer %q", f[2+i])
		}
		nums[i] = v
	}
	i1, ok := n.Index(f[0])
	if !ok {
		return HSP{}, fmt.Errorf("%w %q", ErrUnknownProtein, f[0])
	}
	i2, ok := n.Index(f[1])
	if !ok {
		return HSP{}, fmt.Errorf("%w %q", ErrUnknownProtein, f[1])
	}
	return New(Location{i1, nums[0]}, Location{i2, nums[1]}, nums[2]), nil
}
