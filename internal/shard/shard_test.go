package shard

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		rank, world int
		ok          bool
	}{
		{0, 1, true},
		{3, 4, true},
		{4, 4, false},
		{-1, 2, false},
		{0, 0, false},
	}
	for _, c := range cases {
		err := Validate(c.rank, c.world)
		if (err == nil) != c.ok {
			t.Errorf("Validate(%d,%d) err=%v, want ok=%v", c.rank, c.world, err, c.ok)
		}
	}
}

// Every position is owned by exactly one rank.
func TestPositionsPartition(t *testing.T) {
	const n, world = 17, 4
	seen := make([]int, n)
	for r := 0; r < world; r++ {
		for _, i := range Positions(n, r, world) {
			if !Owns(i, r, world) {
				t.Fatalf("rank %d listed %d it does not own", r, i)
			}
			seen[i]++
		}
	}
	for i, c := range seen {
		if c != 1 {
			t.Errorf("position %d owned %d times", i, c)
		}
	}
	if got := Positions(2, 3, world); got != nil {
		t.Errorf("rank beyond n: got %v", got)
	}
}
