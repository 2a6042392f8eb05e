package generator

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEngine_Compile(t *testing.T) {
	e := NewTextEngine(nil)

	tests := []struct {
		name        string
		source      string
		data        any
		opts        TemplateOptions
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:     "plain text",
			source:   "Hello World",
			expected: "Hello World",
		},
		{
			name:     "struct data",
			source:   "Hello, {{ .Name }}!",
			data:     struct{ Name string }{Name: "Alice"},
			expected: "Hello, Alice!",
		},
		{
			name:     "case helpers",
			source:   "{{ upperCamelCase .n }} {{ lowerCamelCase .n }} {{ underscore \"BlogPost\" }}",
			data:     map[string]any{"n": "blog_post"},
			expected: "BlogPost blogPost blog_post",
		},
		{
			name:     "plural and join",
			source:   `{{ plural "category" }} {{ join .mods "::" }}`,
			data:     map[string]any{"mods": []string{"Admin", "Auth"}},
			expected: "categories Admin::Auth",
		},
		{
			name:     "option lookup",
			source:   `# by {{ option "author" }}{{ option "missing" | default "" }}`,
			opts:     TemplateOptions{Data: map[string]any{"author": "sam"}},
			expected: "# by sam",
		},
		{
			name:        "missing key error",
			source:      "{{ .name }}",
			data:        map[string]any{},
			opts:        TemplateOptions{MissingKey: "error"},
			wantErr:     true,
			errContains: "failed to render template",
		},
		{
			name:        "execution error",
			source:      "{{ .NonExistent }}",
			data:        struct{}{},
			wantErr:     true,
			errContains: "failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render, err := e.Compile(tt.name, tt.source)
			require.NoError(t, err)

			out, err := render(tt.data, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestTextEngine_ParseError(t *testing.T) {
	_, err := NewTextEngine(nil).Compile("broken", "{{ .Name }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template 'broken'")
}

func TestTextEngine_OptionsDoNotLeak(t *testing.T) {
	render, err := NewTextEngine(nil).Compile("t", `{{ option "k" }}`)
	require.NoError(t, err)

	a, err := render(nil, TemplateOptions{Data: map[string]any{"k": "a"}})
	require.NoError(t, err)
	b, err := render(nil, TemplateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "a", a)
	assert.NotEqual(t, "a", b)
}

func TestTextEngine_ExtraFuncs(t *testing.T) {
	e := NewTextEngine(template.FuncMap{
		"shout": func(s string) string { return s + "!" },
		"upper": func(s string) string { return "UP:" + s },
	})

	render, err := e.Compile("t", `{{ shout "hi" }} {{ upper "x" }}`)
	require.NoError(t, err)
	out, err := render(nil, TemplateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hi! UP:x", out)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "Hello World", Title("hello WORLD"))
	assert.Equal(t, "One Two", Title("  one   two "))
	assert.Equal(t, "Élan Vital", Title("élan vital"))
	assert.Equal(t, "Ñandú", Title("ñANDÚ"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\"b"`, Quote(`a"b`))
}

func TestDict(t *testing.T) {
	m, err := Dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	_, err = Dict("a")
	assert.ErrorContains(t, err, "even number")

	_, err = Dict(1, 2)
	assert.ErrorContains(t, err, "keys must be strings")
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "x", Default("x", nil))
	assert.Equal(t, "x", Default("x", ""))
	assert.Equal(t, "x", Default("x", []any{}))
	assert.Equal(t, "x", Default("x", []string{}))
	assert.Equal(t, "x", Default("x", map[string]any{}))
	assert.Equal(t, 0, Default("x", 0))
	assert.Equal(t, "y", Default("x", "y"))
}
