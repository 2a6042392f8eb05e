package plugin

import (
	"fmt"
	"path"
	"strings"

	"github.com/simonhull/quill/env"
	"github.com/simonhull/quill/generator"
)

// RunData is the context of "once" rules.
//
//	{{ range .Types }}{{ upperCamelCase .Name }}{{ end }}
type RunData struct {
	Types   []Type
	Options map[string]any
}

// Result summarises a Run.
type Result struct {
	Artifacts []*generator.Artifact
	Skipped   int // Rules declined because the destination exists
}

// Generated returns the number of artifacts produced.
func (r *Result) Generated() int {
	return len(r.Artifacts)
}

// GeneratorConfig returns a generator config rooted at the plugin with its
// options exposed to templates.
func (p *Plugin) GeneratorConfig(e env.Environment, outputDir string) generator.Config {
	return generator.Config{
		Env:       e,
		OutputDir: outputDir,
		PluginDir: p.Dir,
		TemplateOptions: generator.TemplateOptions{
			Data: p.Spec.Options,
		},
	}
}

// Run applies every file and tree rule of p, in manifest order.
// gen must be rooted at p.Dir; Run logs through gen's logger.
func Run(gen *generator.Generator, p *Plugin, types []Type) (*Result, error) {
	logger := gen.Logger().With().Str("component", "plugin").Str("plugin", p.Name).Logger()
	r := &runner{gen: gen, data: RunData{Types: types, Options: p.Spec.Options}, result: &Result{}}

	for _, rule := range p.Spec.Files {
		if err := r.apply(rule.Src, rule.Dest, rule.Each, rule.Overwrites()); err != nil {
			return r.result, fmt.Errorf("plugin %s: %w", p.Name, err)
		}
	}

	for _, tree := range p.Spec.Trees {
		overwrite := tree.Overwrite == nil || *tree.Overwrite
		for _, file := range tree.files {
			src := path.Join(tree.Dir, file)
			dest := path.Join(tree.Dest, strings.TrimSuffix(file, treeSuffix(gen, file)))
			if err := r.apply(src, dest, tree.Each, overwrite); err != nil {
				return r.result, fmt.Errorf("plugin %s: %w", p.Name, err)
			}
		}
	}

	logger.Debug().
		Int("generated", r.result.Generated()).
		Int("skipped", r.result.Skipped).
		Int("types", len(types)).
		Msg("plugin applied")
	return r.result, nil
}

func treeSuffix(gen *generator.Generator, file string) string {
	if gen.IsTemplate(file) {
		return gen.TemplateSuffix()
	}
	return ""
}

type runner struct {
	gen    *generator.Generator
	data   RunData
	result *Result
}

func (r *runner) apply(src, dest string, each Each, overwrite bool) error {
	if each != EachType {
		return r.generate(src, dest, generator.WithData(r.data), overwrite)
	}
	for _, t := range r.data.Types {
		if err := r.generate(src, dest, generator.WithEntity(t), overwrite); err != nil {
			return fmt.Errorf("type %s: %w", t, err)
		}
	}
	return nil
}

func (r *runner) generate(src, dest string, ctx generator.Context, overwrite bool) error {
	var (
		art *generator.Artifact
		err error
	)
	if overwrite {
		art, err = r.gen.Generate(src, dest, generator.GenerateOptions{Context: ctx})
	} else {
		art, err = r.gen.GenerateUnlessExist(src, dest, ctx)
	}
	if err != nil {
		return err
	}
	if art == nil {
		r.result.Skipped++
		return nil
	}
	r.result.Artifacts = append(r.result.Artifacts, art)
	return nil
}
