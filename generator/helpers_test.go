package generator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/quill/env"
)

// testEntity is a minimal Entity for tests
type testEntity struct {
	name    string
	modules []string
}

func (e testEntity) Name() string          { return e.name }
func (e testEntity) ModuleNames() []string { return e.modules }

// countingEnv counts ReadFile calls per path
type countingEnv struct {
	*env.FS
	reads map[string]int
}

func (c *countingEnv) ReadFile(path string) (string, error) {
	c.reads[path]++
	return c.FS.ReadFile(path)
}

func newTestEnv(t *testing.T, files map[string]string) (*countingEnv, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return &countingEnv{FS: env.New(mem, "/work"), reads: make(map[string]int)}, mem
}

func newTestGenerator(t *testing.T, files map[string]string, mutate ...func(*Config)) (*Generator, *countingEnv, afero.Fs) {
	t.Helper()
	e, mem := newTestEnv(t, files)
	cfg := Config{Env: e, OutputDir: "out", PluginDir: "/plugins/model"}
	for _, m := range mutate {
		m(&cfg)
	}
	gen, err := New(cfg)
	require.NoError(t, err)
	return gen, e, mem
}
