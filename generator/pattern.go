package generator

import (
	"regexp"
	"strings"

	"github.com/simonhull/quill/inflect"
)

var starPattern = regexp.MustCompile(`(underscore|upperCamelCase|lowerCamelCase)?:?(.*\*.*)`)

// ExpandPattern rewrites the wildcards of a destination pattern from e.
//
// A pattern is an optional case directive (underscore, upperCamelCase or
// lowerCamelCase), an optional colon, and a path holding "*" or "**". The
// first "**" becomes the module names joined by "/" and the first "*"
// becomes the name, each converted per the directive. A leading "/" left by
// the substitution is dropped so the result stays relative. Patterns
// without a wildcard are returned unchanged.
//
//	ExpandPattern("upperCamelCase:**/*.ts", user) // "Models/Auth/User.ts"
func ExpandPattern(pattern string, e Entity) string {
	m := starPattern.FindStringSubmatch(pattern)
	if m == nil {
		return pattern
	}

	kind, _ := inflect.ParseKind(m[1])
	modules := strings.Join(inflect.ConvertAll(e.ModuleNames(), kind), "/")

	out := strings.Replace(m[2], "**", modules, 1)
	out = strings.Replace(out, "*", inflect.Convert(e.Name(), kind), 1)
	return strings.TrimPrefix(out, "/")
}
