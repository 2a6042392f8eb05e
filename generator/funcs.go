package generator

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/simonhull/quill/inflect"
)

// defaultFuncMap returns the helpers available to every template
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// Case conversion, same names as destination directives
		"underscore":     inflectFunc(inflect.Underscore),
		"upperCamelCase": inflectFunc(inflect.UpperCamelCase),
		"lowerCamelCase": inflectFunc(inflect.LowerCamelCase),
		"snakeCase":      inflectFunc(inflect.Underscore),
		"pascalCase":     inflectFunc(inflect.UpperCamelCase),
		"camelCase":      inflectFunc(inflect.LowerCamelCase),

		"plural":    inflect.Pluralize,
		"quote":     Quote,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"title":     Title,
		"trim":      strings.TrimSpace,
		"join":      strings.Join,
		"split":     strings.Split,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"replace":   strings.ReplaceAll,

		"dict":    Dict,
		"default": Default,

		// Rebound per render from TemplateOptions.Data
		"option": optionLookup(nil),
	}
}

func inflectFunc(kind inflect.Kind) func(string) string {
	return func(s string) string {
		return inflect.Convert(s, kind)
	}
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Title upper-cases the first letter of each space separated word and
// lower-cases the rest.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Dict builds a map from alternating keys and values.
//
//	{{ template "field" (dict "name" .Name "type" "string") }}
func Dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments")
	}

	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings, got %T at position %d", values[i], i)
		}
		m[key] = values[i+1]
	}
	return m, nil
}

// Default returns fallback when val is nil, an empty string or an empty
// collection. Numeric zero is a real value and is returned as is.
//
//	{{ option "license" | default "MIT" }}
func Default(fallback, val any) any {
	switch v := val.(type) {
	case nil:
		return fallback
	case string:
		if v == "" {
			return fallback
		}
	case []any:
		if len(v) == 0 {
			return fallback
		}
	case []string:
		if len(v) == 0 {
			return fallback
		}
	case map[string]any:
		if len(v) == 0 {
			return fallback
		}
	}
	return val
}
