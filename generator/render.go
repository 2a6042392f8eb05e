package generator

import (
	"bytes"
	"fmt"
	"text/template"
)

// RenderFunc renders a compiled template with data and per-instance options.
type RenderFunc func(data any, opts TemplateOptions) (string, error)

// TemplateEngine compiles template sources.
type TemplateEngine interface {
	Compile(name, source string) (RenderFunc, error)
}

// TemplateOptions are fixed per Generator and passed to every render.
type TemplateOptions struct {
	// Data is exposed to templates through the option helper:
	//	{{ option "author" }}
	Data map[string]any

	// MissingKey sets the text/template missingkey option
	// ("default", "zero" or "error"). Empty keeps the default.
	MissingKey string
}

// TextEngine compiles sources with text/template and the default helpers.
type TextEngine struct {
	funcMap template.FuncMap
}

// NewTextEngine creates an engine with the built-in helpers plus extra.
// Entries in extra replace built-ins of the same name.
func NewTextEngine(extra template.FuncMap) *TextEngine {
	funcs := defaultFuncMap()
	for name, fn := range extra {
		funcs[name] = fn
	}
	return &TextEngine{funcMap: funcs}
}

// Compile parses source. The returned RenderFunc renders a private clone so
// options never leak between calls.
func (e *TextEngine) Compile(name, source string) (RenderFunc, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	return func(data any, opts TemplateOptions) (string, error) {
		clone, err := tmpl.Clone()
		if err != nil {
			return "", fmt.Errorf("failed to clone template '%s': %w", name, err)
		}
		clone.Funcs(template.FuncMap{"option": optionLookup(opts.Data)})
		if opts.MissingKey != "" {
			clone.Option("missingkey=" + opts.MissingKey)
		}

		var buf bytes.Buffer
		if err := clone.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to render template '%s': %w", name, err)
		}
		return buf.String(), nil
	}, nil
}

func optionLookup(data map[string]any) func(key string) any {
	return func(key string) any {
		return data[key]
	}
}
