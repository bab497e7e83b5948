// Package pipeline runs HSP extraction over every spaced seed: it builds
// the s-mer index, hands this shard's collections to a pool of workers
// around a Finder, and merges their results in a single collector.
//
// The only contract to implement is Finder (HSPsForSmer).
// This keeps the pipeline swappable and testable.
package pipeline
