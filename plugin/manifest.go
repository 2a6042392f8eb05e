package plugin

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/quill/env"
	"github.com/simonhull/quill/schema"
)

// ManifestFile is the name of the manifest inside a plugin directory.
const ManifestFile = "plugin.yml"

// Each says how often a rule is applied.
type Each string

const (
	EachOnce Each = "once" // One artifact with RunData as context
	EachType Each = "type" // One artifact per type, with the type as context
)

// FileRule maps one plugin file to a destination pattern.
type FileRule struct {
	Src       string `yaml:"src"`
	Dest      string `yaml:"dest"`
	Each      Each   `yaml:"each"`
	Overwrite *bool  `yaml:"overwrite"`
}

// Overwrites reports whether an existing destination is replaced. Default true.
func (r FileRule) Overwrites() bool {
	return r.Overwrite == nil || *r.Overwrite
}

// TreeRule applies every file under a plugin subdirectory.
// Templates lose their suffix in the destination.
type TreeRule struct {
	Dir       string `yaml:"dir"`
	Dest      string `yaml:"dest"`
	Each      Each   `yaml:"each"`
	Overwrite *bool  `yaml:"overwrite"`

	files []string
}

// Files returns the tree's files relative to Dir, as found by Load.
func (r TreeRule) Files() []string {
	return r.files
}

// Spec is the spec section of a plugin manifest.
type Spec struct {
	Description string         `yaml:"description"`
	Options     map[string]any `yaml:"options"`
	Files       []FileRule     `yaml:"files"`
	Trees       []TreeRule     `yaml:"trees"`
	After       []string       `yaml:"after"`
}

// Plugin is a loaded plugin.
type Plugin struct {
	Name string
	Dir  string // Absolute plugin directory; sources resolve against it
	Spec Spec
}

// Description returns the plugin's one-line description.
func (p *Plugin) Description() string {
	return p.Spec.Description
}

// Load reads and validates the manifest in dir and lists its trees.
func Load(fsys afero.Fs, dir string) (*Plugin, error) {
	def, err := schema.Parse(fsys, filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateKind(def, schema.KindPlugin); err != nil {
		return nil, fmt.Errorf("invalid plugin %s: %w", dir, err)
	}

	var spec Spec
	if err := def.Decode(&spec); err != nil {
		return nil, err
	}
	if err := validate(&spec); err != nil {
		return nil, fmt.Errorf("invalid plugin %s: %w", def.Name, err)
	}

	for i := range spec.Trees {
		tree := &spec.Trees[i]
		files, err := env.Files(fsys, filepath.Join(dir, tree.Dir), env.WalkOptions{})
		if err != nil {
			return nil, fmt.Errorf("plugin %s: tree %s: %w", def.Name, tree.Dir, err)
		}
		tree.files = files
	}

	return &Plugin{Name: def.Name, Dir: dir, Spec: spec}, nil
}

// validate fills defaults and reports every problem at once.
func validate(spec *Spec) error {
	var errs schema.ValidationErrors

	for i := range spec.Files {
		rule := &spec.Files[i]
		field := fmt.Sprintf("spec.files[%d]", i)
		if rule.Src == "" {
			errs.Add(field+".src", "src is required", "")
		}
		if rule.Dest == "" {
			errs.Add(field+".dest", "dest is required", "use the source name to keep it")
		}
		if err := checkEach(&rule.Each); err != "" {
			errs.Add(field+".each", err, "use 'type' or 'once'")
		}
		if rule.Each == EachType && !strings.Contains(rule.Dest, "*") {
			errs.Add(field+".dest", "per-type rules need a '*' in dest", "e.g. underscore:models/*.go")
		}
	}

	for i := range spec.Trees {
		tree := &spec.Trees[i]
		field := fmt.Sprintf("spec.trees[%d]", i)
		if tree.Dir == "" {
			errs.Add(field+".dir", "dir is required", "")
		} else if strings.HasPrefix(path.Clean(filepath.ToSlash(tree.Dir)), "..") {
			errs.Add(field+".dir", "dir must stay inside the plugin", "")
		}
		if err := checkEach(&tree.Each); err != "" {
			errs.Add(field+".each", err, "use 'type' or 'once'")
		}
		if tree.Each == EachType && !strings.Contains(tree.Dest, "*") {
			errs.Add(field+".dest", "per-type trees need a '*' in dest", "e.g. upperCamelCase:pkg/**/*")
		}
	}

	for i, cmd := range spec.After {
		if strings.TrimSpace(cmd) == "" {
			errs.Add(fmt.Sprintf("spec.after[%d]", i), "command is empty", "")
		}
	}

	return errs.Err()
}

func checkEach(e *Each) string {
	switch *e {
	case "":
		*e = EachOnce
	case EachOnce, EachType:
	default:
		return fmt.Sprintf("unknown each %q", string(*e))
	}
	return ""
}
