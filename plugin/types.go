package plugin

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/quill/generator"
	"github.com/simonhull/quill/schema"
)

// Type is a named entity a plugin is applied to, e.g. "user" in the
// modules "models/auth".
type Type struct {
	name    string
	modules []string
}

var _ generator.Entity = Type{}

// NewType creates a type.
func NewType(name string, modules ...string) Type {
	return Type{name: name, modules: modules}
}

// ParseTypeRef parses "models/auth/user": the last segment is the name,
// the rest are module names.
func ParseTypeRef(ref string) (Type, error) {
	var parts []string
	for _, p := range strings.Split(strings.TrimSpace(ref), "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Type{}, fmt.Errorf("invalid type reference %q", ref)
	}
	return NewType(parts[len(parts)-1], parts[:len(parts)-1]...), nil
}

func (t Type) Name() string {
	return t.name
}

func (t Type) ModuleNames() []string {
	return t.modules
}

// Ref returns the type in ParseTypeRef form.
func (t Type) Ref() string {
	return strings.Join(append(append([]string{}, t.modules...), t.name), "/")
}

func (t Type) String() string {
	return t.Ref()
}

type typesSpec struct {
	Types []struct {
		Name    string   `yaml:"name"`
		Modules []string `yaml:"modules"`
	} `yaml:"types"`
}

// LoadTypes reads a Types document:
//
//	apiVersion: quill/v1
//	kind: Types
//	name: app
//	spec:
//	  types:
//	    - name: user
//	      modules: [models, auth]
func LoadTypes(fsys afero.Fs, path string) ([]Type, error) {
	def, err := schema.Parse(fsys, path)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateKind(def, schema.KindTypes); err != nil {
		return nil, fmt.Errorf("invalid types file %s: %w", path, err)
	}

	var spec typesSpec
	if err := def.Decode(&spec); err != nil {
		return nil, err
	}

	var errs schema.ValidationErrors
	types := make([]Type, 0, len(spec.Types))
	for i, entry := range spec.Types {
		if strings.TrimSpace(entry.Name) == "" {
			errs.Add(fmt.Sprintf("spec.types[%d].name", i), "name is required", "")
			continue
		}
		types = append(types, NewType(entry.Name, entry.Modules...))
	}
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("invalid types file %s: %w", path, err)
	}
	return types, nil
}
