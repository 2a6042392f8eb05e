package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name   string
		want   Kind
		wantOK bool
	}{
		{"underscore", Underscore, true},
		{"upperCamelCase", UpperCamelCase, true},
		{"lowerCamelCase", LowerCamelCase, true},
		{"", None, false},
		{"kebab", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKind(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		want  string
	}{
		{"UserProfile", Underscore, "user_profile"},
		{"user_profile", Underscore, "user_profile"},
		{"user_profile", UpperCamelCase, "UserProfile"},
		{"user", UpperCamelCase, "User"},
		{"models", UpperCamelCase, "Models"},
		{"user_profile", LowerCamelCase, "userProfile"},
		{"UserProfile", LowerCamelCase, "userProfile"},
		{"User_Profile", None, "User_Profile"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input, tt.kind))
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	for _, kind := range []Kind{Underscore, UpperCamelCase, LowerCamelCase} {
		once := Convert("blog_post_comment", kind)
		assert.Equal(t, once, Convert(once, kind), kind.String())
	}
}

func TestConvertAll(t *testing.T) {
	in := []string{"models", "auth"}
	got := ConvertAll(in, UpperCamelCase)

	assert.Equal(t, []string{"Models", "Auth"}, got)
	assert.Equal(t, []string{"models", "auth"}, in, "input must not be modified")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "underscore", Underscore.String())
	assert.Equal(t, "", None.String())
}
