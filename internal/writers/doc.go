// Package writers turns HSP sets, score matrices and site contributions
// into serialized outputs, and reads HSP files back.
//
// Design:
//   - Writers own all presentation knowledge (text, JSON, JSONL).
//   - Engine and scoring stay domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
