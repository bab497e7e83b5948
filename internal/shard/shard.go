// Package shard splits index positions across cooperating processes.
package shard

import "fmt"

// Validate checks a (rank, world) pair.
func Validate(rank, world int) error {
	if world < 1 {
		return fmt.Errorf("world size must be >= 1 (got %d)", world)
	}
	if rank < 0 || rank >= world {
		return fmt.Errorf("rank must be in [0,%d) (got %d)", world, rank)
	}
	return nil
}

// Owns reports whether position i belongs to rank.
func Owns(i, rank, world int) bool { return i%world == rank }

// Positions lists the positions in [0,n) owned by rank.
func Positions(n, rank, world int) []int {
	if rank >= n {
		return nil
	}
	out := make([]int, 0, (n-rank+world-1)/world)
	for i := rank; i < n; i += world {
		out = append(out, i)
	}
	return out
}
