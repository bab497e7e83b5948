// pkg/api/sprint_v1.go
package api

// HSPV1 is the stable JSON/JSONL schema for one high-scoring segment pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HSPV1 struct {
	Protein1 string `json:"protein1"`
	Protein2 string `json:"protein2"`
	Pos1     int    `json:"pos1"`
	Pos2     int    `json:"pos2"`
	Length   int    `json:"length"`
	Score    int    `json:"score,omitempty"`
}

// ScoreV1 is one cell of the interaction score matrix.
type ScoreV1 struct {
	Protein1 string  `json:"protein1"`
	Protein2 string  `json:"protein2"`
	Score    float64 `json:"score"`
}

// ContributionV1 holds the per-residue contributions of one query
// protein on the target.
type ContributionV1 struct {
	Protein string    `json:"protein"`
	Target  string    `json:"target"`
	Values  []float64 `json:"values"`
	Peak    int       `json:"peak"` // 0-based target position of the largest value
}
