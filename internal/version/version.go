// Package version holds the release string, set at build time with
// -ldflags "-X sprint/internal/version.Version=...".
package version

var Version = "dev"
