package plugin

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/quill/env"
)

// Registry holds plugins by name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]*Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]*Plugin)}
}

// Discover loads every plugin under root. A directory is a plugin when it
// holds a manifest; directories nested inside a plugin are part of it.
// Manifests are loaded concurrently and registered in path order.
func Discover(fsys afero.Fs, root string) (*Registry, error) {
	dirs, err := env.FindDirsContaining(fsys, root, ManifestFile, env.WalkOptions{})
	if err != nil {
		return nil, err
	}

	var top []string
	for _, dir := range dirs {
		if !nestedIn(dir, top) {
			top = append(top, dir)
		}
	}

	loaded := make([]*Plugin, len(top))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, dir := range top {
		i, dir := i, dir
		g.Go(func() error {
			p, err := Load(fsys, dir)
			if err != nil {
				return err
			}
			loaded[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := NewRegistry()
	for _, p := range loaded {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func nestedIn(dir string, parents []string) bool {
	for _, p := range parents {
		if strings.HasPrefix(dir, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Merge adds the plugins of other whose names are not taken yet and
// returns the names that were shadowed.
func (r *Registry) Merge(other *Registry) []string {
	var shadowed []string
	for _, name := range other.List() {
		p, _ := other.Get(name)
		if r.Has(name) {
			shadowed = append(shadowed, name)
			continue
		}
		_ = r.Register(p)
	}
	return shadowed
}

// Register adds p. Names must be unique.
func (r *Registry) Register(p *Plugin) error {
	if p == nil {
		return fmt.Errorf("cannot register nil plugin")
	}
	if p.Name == "" {
		return fmt.Errorf("cannot register plugin with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.plugins[p.Name]; ok {
		return fmt.Errorf("plugin '%s' is defined twice: %s and %s", p.Name, existing.Dir, p.Dir)
	}
	r.plugins[p.Name] = p
	return nil
}

// Get retrieves a plugin by name
func (r *Registry) Get(name string) (*Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	return p, ok
}

// Lookup is Get with a helpful error listing the known plugins.
func (r *Registry) Lookup(name string) (*Plugin, error) {
	if p, ok := r.Get(name); ok {
		return p, nil
	}
	names := r.List()
	if len(names) == 0 {
		return nil, fmt.Errorf("plugin '%s' not found: no plugins installed", name)
	}
	return nil, fmt.Errorf("plugin '%s' not found (available: %s)", name, strings.Join(names, ", "))
}

// List returns all plugin names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a plugin is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Size returns the number of registered plugins
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plugins)
}
