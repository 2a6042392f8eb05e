package schema

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pluginDoc = `apiVersion: quill/v1
kind: Plugin
name: rails-model
metadata:
  author: test
spec:
  options:
    indent: 2
  files:
    - src: model.rb.tmpl
      dest: "underscore:app/models/**/*.rb"
`

func TestParse(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/p/plugin.yml", []byte(pluginDoc), 0644))

	def, err := Parse(mem, "/p/plugin.yml")
	require.NoError(t, err)

	assert.Equal(t, APIVersion, def.APIVersion)
	assert.Equal(t, KindPlugin, def.Kind)
	assert.Equal(t, "rails-model", def.Name)
	assert.Equal(t, "test", def.Metadata["author"])
	assert.Equal(t, "/p/plugin.yml", def.Source)
	assert.Greater(t, def.Line(), 0)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(afero.NewMemMapFs(), "/nope.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read /nope.yml")
}

func TestParseBytes_Invalid(t *testing.T) {
	_, err := ParseBytes([]byte("kind: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestDecode(t *testing.T) {
	def, err := ParseBytes([]byte(pluginDoc))
	require.NoError(t, err)

	var spec struct {
		Options map[string]any `yaml:"options"`
		Files   []struct {
			Src  string `yaml:"src"`
			Dest string `yaml:"dest"`
		} `yaml:"files"`
	}
	require.NoError(t, def.Decode(&spec))

	assert.Equal(t, 2, spec.Options["indent"])
	require.Len(t, spec.Files, 1)
	assert.Equal(t, "model.rb.tmpl", spec.Files[0].Src)
	assert.Equal(t, "underscore:app/models/**/*.rb", spec.Files[0].Dest)
}

func TestDecode_NoSpec(t *testing.T) {
	def, err := ParseBytes([]byte("apiVersion: quill/v1\nkind: Types\nname: empty\n"))
	require.NoError(t, err)

	out := struct{ Types []string }{Types: []string{"kept"}}
	require.NoError(t, def.Decode(&out))
	assert.Equal(t, []string{"kept"}, out.Types)
}

func TestDecode_TypeMismatch(t *testing.T) {
	def, err := ParseBytes([]byte("apiVersion: quill/v1\nkind: Types\nname: bad\nspec: [1, 2]\n"))
	require.NoError(t, err)

	var out struct{ Types []string }
	err = def.Decode(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Types "bad"`)
}

func TestValidateBasicStructure(t *testing.T) {
	tests := []struct {
		name      string
		def       Definition
		wantCount int
	}{
		{"valid", Definition{APIVersion: APIVersion, Kind: KindPlugin, Name: "x"}, 0},
		{"missing everything", Definition{}, 3},
		{"wrong version", Definition{APIVersion: "v2", Kind: KindPlugin, Name: "x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBasicStructure(&tt.def)
			if tt.wantCount == 0 {
				assert.NoError(t, err)
				return
			}
			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Len(t, errs, tt.wantCount)
		})
	}
}

func TestValidateKind(t *testing.T) {
	def := &Definition{APIVersion: APIVersion, Kind: KindTypes, Name: "x"}

	assert.NoError(t, ValidateKind(def, KindTypes))

	err := ValidateKind(def, KindPlugin)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "kind", verr.Field)
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("name", "name is required", "")
	assert.Equal(t, "validation error at name: name is required", errs.Error())

	errs.Add("kind", "kind is required", "use Plugin")
	assert.Contains(t, errs.Error(), "found 2 validation errors")
	assert.Contains(t, errs.Error(), "Suggestion: use Plugin")

	withLine := ValidationError{Field: "spec", Message: "bad", Line: 4}
	assert.Equal(t, "validation error at spec (line 4): bad", withLine.Error())
}
