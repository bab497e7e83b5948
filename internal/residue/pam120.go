// internal/residue/pam120.go
package residue

import "sort"

// pam120 is indexed by residue code. Row and column 0 belong to the
// don't-care code and score 0 against everything; the remaining rows
// follow the code order A R N D C Q E G H I L K M F P S T W Y V.
var pam120 = [Count + 1][Count + 1]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 3, -3, -1, 0, -3, -1, 0, 1, -3, -1, -3, -2, -2, -4, 1, 1, 1, -7, -4, 0},
	{0, -3, 6, -1, -3, -4, 1, -3, -4, 1, -2, -4, 2, -1, -5, -1, -1, -2, 1, -5, -3},
	{0, -1, -1, 4, 2, -5, 0, 1, 0, 2, -2, -4, 1, -3, -4, -2, 1, 0, -4, -2, -3},
	{0, 0, -3, 2, 5, -7, 1, 3, 0, 0, -3, -5, -1, -4, -7, -3, 0, -1, -8, -5, -3},
	{0, -3, -4, -5, -7, 9, -7, -7, -4, -4, -3, -7, -7, -6, -6, -4, 0, -3, -8, -1, -3},
	{0, -1, 1, 0, 1, -7, 6, 2, -3, 3, -3, -2, 0, -1, -6, 0, -2, -2, -6, -5, -3},
	{0, 0, -3, 1, 3, -7, 2, 5, -1, -1, -3, -4, -1, -3, -7, -2, -1, -2, -8, -5, -3},
	{0, 1, -4, 0, 0, -4, -3, -1, 5, -4, -4, -5, -3, -4, -5, -2, 1, -1, -8, -6, -2},
	{0, -3, 1, 2, 0, -4, 3, -1, -4, 7, -4, -3, -2, -4, -3, -1, -2, -3, -3, -1, -3},
	{0, -1, -2, -2, -3, -3, -3, -3, -4, -4, 6, 1, -3, 1, 0, -3, -2, 0, -6, -2, 3},
	{0, -3, -4, -4, -5, -7, -2, -4, -5, -3, 1, 5, -4, 3, 0, -3, -4, -3, -3, -2, 1},
	{0, -2, 2, 1, -1, -7, 0, -1, -3, -2, -3, -4, 5, 0, -7, -2, -1, -1, -5, -5, -4},
	{0, -2, -1, -3, -4, -6, -1, -3, -4, -4, 1, 3, 0, 8, -1, -3, -2, -1, -6, -4, 1},
	{0, -4, -5, -4, -7, -6, -6, -7, -5, -3, 0, 0, -7, -1, 8, -5, -3, -4, -1, 4, -3},
	{0, 1, -1, -2, -3, -4, 0, -2, -2, -1, -3, -3, -2, -3, -5, 6, 1, -1, -7, -6, -2},
	{0, 1, -1, 1, 0, 0, -2, -1, 1, -2, -2, -4, -1, -2, -3, 1, 3, 2, -2, -3, -2},
	{0, 1, -2, 0, -1, -3, -2, -2, -1, -3, 0, -3, -1, -1, -4, -1, 2, 4, -6, -3, 0},
	{0, -7, 1, -4, -8, -8, -6, -8, -8, -3, -6, -3, -5, -6, -1, -7, -2, -6, 12, -2, -8},
	{0, -4, -5, -2, -5, -1, -5, -5, -6, -1, -2, -2, -5, -4, 4, -6, -3, -3, -2, 8, -3},
	{0, 0, -3, -3, -3, -3, -3, -3, -2, -3, 3, 1, -4, 1, -3, -2, -2, 0, -8, -3, 5},
}

// ranked[q] lists the 20 residue codes ordered by descending PAM120 score
// against q (ties broken by code). Row 0 is unused.
var ranked [Count + 1][Count]Code

func init() {
	for q := 1; q <= Count; q++ {
		row := make([]Code, Count)
		for i := range row {
			row[i] = Code(i + 1)
		}
		sort.SliceStable(row, func(i, j int) bool {
			return pam120[q][row[i]] > pam120[q][row[j]]
		})
		copy(ranked[q][:], row)
	}
}

// Score returns the PAM120 substitution score of two residue codes.
func Score(a, b Code) int { return pam120[a][b] }

// Ranked returns the candidate replacement residues for q, best first.
// The returned array is a copy.
func Ranked(q Code) [Count]Code { return ranked[q] }
