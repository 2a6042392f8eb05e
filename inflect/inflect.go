package inflect

import (
	"github.com/iancoleman/strcase"
)

// Kind selects a naming convention.
type Kind int

const (
	// None leaves text untouched.
	None Kind = iota
	Underscore
	UpperCamelCase
	LowerCamelCase
)

var kindNames = map[string]Kind{
	"underscore":     Underscore,
	"upperCamelCase": UpperCamelCase,
	"lowerCamelCase": LowerCamelCase,
}

// ParseKind maps a directive name to its Kind.
// Unknown and empty names report None and false.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// String returns the directive name of the kind ("" for None).
func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return ""
}

// Convert rewrites text in the naming convention selected by kind.
func Convert(text string, kind Kind) string {
	switch kind {
	case Underscore:
		return strcase.ToSnake(text)
	case UpperCamelCase:
		return strcase.ToCamel(text)
	case LowerCamelCase:
		return strcase.ToLowerCamel(text)
	default:
		return text
	}
}

// ConvertAll converts every element of names, returning a new slice.
func ConvertAll(names []string, kind Kind) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Convert(n, kind)
	}
	return out
}
