package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/simonhull/quill/env"
)

// DefaultTemplateSuffix marks plugin files that are rendered rather than copied.
const DefaultTemplateSuffix = ".tmpl"

var missingKeyModes = map[string]bool{"": true, "default": true, "invalid": true, "zero": true, "error": true}

// Config configures a Generator
type Config struct {
	Env       env.Environment // Required
	OutputDir string          // Resolved against the current directory at construction
	PluginDir string          // Root for sources; resolved on every lookup

	TemplateOptions TemplateOptions
	Engine          TemplateEngine  // Default: NewTextEngine(nil)
	TemplateSuffix  string          // Default: DefaultTemplateSuffix
	Logger          *zerolog.Logger // Default: disabled
}

// Generator produces artifacts from plugin sources.
type Generator struct {
	env       env.Environment
	outputDir string
	suffix    string
	options   TemplateOptions
	resolver  *resolver
	artifacts []*Artifact
	base      zerolog.Logger
	log       zerolog.Logger
}

// New creates a Generator. The output directory is resolved immediately.
func New(cfg Config) (*Generator, error) {
	if cfg.Env == nil {
		return nil, fmt.Errorf("generator: environment is required")
	}
	if !missingKeyModes[cfg.TemplateOptions.MissingKey] {
		return nil, fmt.Errorf("generator: invalid missingkey mode %q", cfg.TemplateOptions.MissingKey)
	}

	engine := cfg.Engine
	if engine == nil {
		engine = NewTextEngine(nil)
	}
	suffix := cfg.TemplateSuffix
	if suffix == "" {
		suffix = DefaultTemplateSuffix
	}
	base := zerolog.Nop()
	if cfg.Logger != nil {
		base = *cfg.Logger
	}
	log := base.With().Str("component", "generator").Logger()

	return &Generator{
		env:       cfg.Env,
		outputDir: cfg.Env.ResolvePath(cfg.OutputDir),
		suffix:    suffix,
		options:   cfg.TemplateOptions,
		resolver:  newResolver(cfg.Env, cfg.PluginDir, engine, log),
		base:      base,
		log:       log,
	}, nil
}

// OutputDir returns the absolute output root.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Artifacts returns a copy of the generated artifacts in call order.
func (g *Generator) Artifacts() []*Artifact {
	return slices.Clone(g.artifacts)
}

// Logger returns the logger the generator was configured with, without the
// generator component tag. Callers driving a generator derive from it.
func (g *Generator) Logger() zerolog.Logger {
	return g.base
}

// TemplateSuffix returns the file suffix that marks templates.
func (g *Generator) TemplateSuffix() string {
	return g.suffix
}

// IsTemplate reports whether src is rendered when a context is supplied.
func (g *Generator) IsTemplate(src string) bool {
	return len(src) > len(g.suffix) && strings.HasSuffix(src, g.suffix)
}

// Generate produces the artifact for src at dest.
//
// An entity context expands wildcards in dest (see ExpandPattern). When a
// context is present and src is a template it is rendered with the context;
// otherwise src is copied verbatim. With SkipExisting set and the
// destination already present no artifact is produced and Generate returns
// nil, nil.
//
// Read, compile and render failures are returned and nothing is recorded.
func (g *Generator) Generate(src, dest string, opts GenerateOptions) (*Artifact, error) {
	if e, ok := opts.Context.Entity(); ok {
		dest = ExpandPattern(dest, e)
	}
	path := g.env.ResolvePath(g.outputDir, dest)

	contents, err := g.contents(src, opts.Context)
	if err != nil {
		return nil, err
	}

	if opts.SkipExisting && g.env.Exists(path) {
		g.log.Debug().Str("src", src).Str("dest", path).Msg("destination exists, skipping")
		return nil, nil
	}

	art := NewArtifact(g.env.CurrentDirectory(), g.outputDir, path, contents)
	g.artifacts = append(g.artifacts, art)
	g.log.Debug().Str("src", src).Str("dest", path).Int("bytes", len(art.Contents)).Msg("generated artifact")
	return art, nil
}

// GenerateUnlessExist is Generate that never overwrites.
func (g *Generator) GenerateUnlessExist(src, dest string, ctx Context) (*Artifact, error) {
	return g.Generate(src, dest, GenerateOptions{Context: ctx, SkipExisting: true})
}

func (g *Generator) contents(src string, ctx Context) (string, error) {
	if !ctx.Present() || !g.IsTemplate(src) {
		return g.resolver.loadRaw(src)
	}

	render, err := g.resolver.loadTemplate(src)
	if err != nil {
		return "", err
	}
	return render(ctx.Data(), g.options)
}
