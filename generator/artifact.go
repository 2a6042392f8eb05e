package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Artifact is a generated file that has not been written yet.
type Artifact struct {
	Cwd      string // Working directory at generation time
	Base     string // Output root the artifact is addressed under
	Path     string // Absolute destination path
	Contents []byte
}

// NewArtifact creates an artifact. String contents are converted to bytes;
// byte slices are used as is.
func NewArtifact[T string | []byte](cwd, base, path string, contents T) *Artifact {
	return &Artifact{
		Cwd:      cwd,
		Base:     base,
		Path:     path,
		Contents: []byte(contents),
	}
}

// Relative returns the destination relative to the output root.
// Destinations outside the root are returned as absolute paths.
func (a *Artifact) Relative() string {
	rel, err := filepath.Rel(a.Base, a.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return a.Path
	}
	return rel
}

func (a *Artifact) String() string {
	return fmt.Sprintf("%s (%d bytes)", a.Relative(), len(a.Contents))
}
