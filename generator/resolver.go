package generator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/simonhull/quill/env"
)

// resolver loads plugin files and compiled templates, caching both by
// absolute path.
type resolver struct {
	env       env.Environment
	root      string
	engine    TemplateEngine
	files     *Cache[string]
	templates *Cache[RenderFunc]
	log       zerolog.Logger
}

func newResolver(e env.Environment, root string, engine TemplateEngine, log zerolog.Logger) *resolver {
	return &resolver{
		env:       e,
		root:      root,
		engine:    engine,
		files:     NewCache[string](),
		templates: NewCache[RenderFunc](),
		log:       log,
	}
}

// resolve maps a plugin relative path to its absolute path.
// Absolute input is returned cleaned.
func (r *resolver) resolve(rel string) string {
	return r.env.ResolvePath(r.root, rel)
}

// loadRaw returns the contents of a plugin file.
func (r *resolver) loadRaw(rel string) (string, error) {
	return r.loadRawAt(r.resolve(rel))
}

func (r *resolver) loadRawAt(path string) (string, error) {
	return r.files.GetOrCompute(path, func() (string, error) {
		r.log.Debug().Str("path", path).Msg("reading plugin file")
		content, err := r.env.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return content, nil
	})
}

// loadTemplate returns the compiled template of a plugin file. The source is
// read through the raw file cache using the resolved path.
func (r *resolver) loadTemplate(rel string) (RenderFunc, error) {
	path := r.resolve(rel)
	return r.templates.GetOrCompute(path, func() (RenderFunc, error) {
		source, err := r.loadRawAt(path)
		if err != nil {
			return nil, err
		}
		r.log.Debug().Str("path", path).Msg("compiling template")
		return r.engine.Compile(rel, source)
	})
}
