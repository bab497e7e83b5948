// Package engine contains the seed-and-extend core: hit detection around
// similar s-mers and greedy ungapped extension into HSPs. It never imports
// app, writers, cli, or pipeline; keep it domain-only.
package engine
