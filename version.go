// Package quill holds build metadata for the quill CLI.
package quill

// Version is the release version, overridable with
// -ldflags "-X github.com/simonhull/quill.Version=...".
var Version = "0.1.0"
