// internal/residue/score.go
package residue

// ScoreWindow sums the substitution scores of a[s1:s1+n] against b[s2:s2+n].
// Callers are responsible for bounds.
func ScoreWindow(a, b []Code, s1, s2, n int) int {
	score := 0
	for i := 0; i < n; i++ {
		score += pam120[a[s1+i]][b[s2+i]]
	}
	return score
}

// ScoreHSP sums the window score of every k-long window of an ungapped
// alignment of the given length. An alignment shorter than k scores 0.
func ScoreHSP(a, b []Code, s1, s2, length, k int) int {
	if k <= 0 || length < k {
		return 0
	}
	win := ScoreWindow(a, b, s1, s2, k)
	total := win
	for i := 1; i <= length-k; i++ {
		win += pam120[a[s1+i+k-1]][b[s2+i+k-1]] - pam120[a[s1+i-1]][b[s2+i-1]]
		total += win
	}
	return total
}
