package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Environment is the set of filesystem capabilities a generator needs.
type Environment interface {
	// ResolvePath resolves segments against base the way a shell would:
	// an absolute segment restarts resolution and a relative base is taken
	// relative to the current directory. The result is always clean and absolute.
	ResolvePath(base string, segments ...string) string
	Exists(path string) bool
	ReadFile(path string) (string, error)
	CurrentDirectory() string
}

// FS implements Environment on top of an afero filesystem.
type FS struct {
	fs  afero.Fs
	cwd string
}

var _ Environment = (*FS)(nil)

// New creates an environment over fsys with cwd as the current directory.
// A relative cwd is made absolute against the root.
func New(fsys afero.Fs, cwd string) *FS {
	if !filepath.IsAbs(cwd) {
		cwd = filepath.Join(string(filepath.Separator), cwd)
	}
	return &FS{fs: fsys, cwd: filepath.Clean(cwd)}
}

// NewOS creates an environment over the real filesystem rooted at the
// process working directory.
func NewOS() (*FS, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return New(afero.NewOsFs(), wd), nil
}

// Fs returns the underlying filesystem.
func (e *FS) Fs() afero.Fs {
	return e.fs
}

func (e *FS) CurrentDirectory() string {
	return e.cwd
}

func (e *FS) ResolvePath(base string, segments ...string) string {
	resolved := base
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(e.cwd, resolved)
	}
	for _, seg := range segments {
		if filepath.IsAbs(seg) {
			resolved = seg
			continue
		}
		resolved = filepath.Join(resolved, seg)
	}
	return filepath.Clean(resolved)
}

// Exists reports whether path is present. Stat failures other than
// not-exist count as present.
func (e *FS) Exists(path string) bool {
	_, err := e.fs.Stat(path)
	if err == nil {
		return true
	}
	return !errors.Is(err, fs.ErrNotExist)
}

// ReadFile returns the contents of path as a string.
// Directories are rejected with fs.ErrInvalid.
func (e *FS) ReadFile(path string) (string, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
