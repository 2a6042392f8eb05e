package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	return mem
}

func TestWalk_IgnoreDefaults(t *testing.T) {
	mem := writeTree(t,
		"/root/keep.txt",
		"/root/node_modules/dep.js",
		"/root/.git/HEAD",
		"/root/sub/inner.txt",
	)

	var visited []string
	err := Walk(mem, "/root", WalkOptions{}, func(path string, info os.FileInfo) error {
		if !info.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"/root/keep.txt", "/root/sub/inner.txt"}, visited)
}

func TestWalk_IncludeHiddenAndPatterns(t *testing.T) {
	mem := writeTree(t,
		"/root/.gitignore",
		"/root/main.go",
		"/root/main.go.swp",
	)

	var visited []string
	err := Walk(mem, "/root", WalkOptions{IncludeHidden: true, IgnorePatterns: []string{"*.swp"}},
		func(path string, info os.FileInfo) error {
			if !info.IsDir() {
				visited = append(visited, filepath.Base(path))
			}
			return nil
		})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{".gitignore", "main.go"}, visited)
}

func TestWalk_SkipDir(t *testing.T) {
	mem := writeTree(t, "/root/a/one.txt", "/root/b/two.txt")

	var visited []string
	err := Walk(mem, "/root", WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() && info.Name() == "a" {
			return filepath.SkipDir
		}
		if !info.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/b/two.txt"}, visited)
}

func TestFiles(t *testing.T) {
	mem := writeTree(t, "/p/tree/b.txt", "/p/tree/a/c.tmpl", "/p/tree/.keep")

	files, err := Files(mem, "/p/tree", WalkOptions{IncludeHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".keep", "a/c.tmpl", "b.txt"}, files)
}

func TestFiles_MissingRoot(t *testing.T) {
	_, err := Files(afero.NewMemMapFs(), "/nope", WalkOptions{})
	assert.Error(t, err)
}

func TestFindDirsContaining(t *testing.T) {
	mem := writeTree(t,
		"/plugins/model/plugin.yml",
		"/plugins/model/model.rb.tmpl",
		"/plugins/api/controller/plugin.yml",
		"/plugins/notes/readme.md",
	)

	dirs, err := FindDirsContaining(mem, "/plugins", "plugin.yml", WalkOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/plugins/api/controller", "/plugins/model"}, dirs)
}
