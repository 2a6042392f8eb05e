package schema

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// APIVersion is the only document version understood.
const APIVersion = "quill/v1"

// Document kinds
const (
	KindPlugin = "Plugin"
	KindTypes  = "Types"
)

// Definition is the envelope shared by all quill documents
type Definition struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Name       string         `yaml:"name"`
	Metadata   map[string]any `yaml:"metadata,omitempty"`
	Spec       yaml.Node      `yaml:"spec"`

	// Source is the path the definition was read from, if any.
	Source string `yaml:"-"`
}

// Parse reads and parses a YAML document from fsys
func Parse(fsys afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	def, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// ParseBytes parses a document from bytes
func ParseBytes(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &def, nil
}

// Decode decodes the spec section into out.
// An absent spec leaves out untouched.
func (d *Definition) Decode(out any) error {
	if d.Spec.Kind == 0 {
		return nil
	}
	if err := d.Spec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode spec of %s %q: %w", d.Kind, d.Name, err)
	}
	return nil
}

// Line returns the line number of the spec section, or 0 when unknown.
func (d *Definition) Line() int {
	return d.Spec.Line
}
