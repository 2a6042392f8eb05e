package env

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultIgnoreDirs are directories skipped during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", ".svn", ".hg",
	".idea", ".vscode",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File name patterns to skip (e.g., "*.swp")
	IncludeHidden  bool     // Include hidden files/dirs (default: false)
}

// Walk traverses the tree under root on fsys.
// Return filepath.SkipDir from visitor to skip a directory.
func Walk(fsys afero.Fs, root string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path != root && !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != root && contains(ignoreDirs, info.Name()) {
				return filepath.SkipDir
			}
			return visitor(path, info)
		}

		for _, pattern := range opts.IgnorePatterns {
			if matched, _ := filepath.Match(pattern, info.Name()); matched {
				return nil
			}
		}

		return visitor(path, info)
	})
}

// Files returns the paths of all regular files under root relative to root,
// sorted lexically and using forward slashes.
func Files(fsys afero.Fs, root string, opts WalkOptions) ([]string, error) {
	var files []string
	err := Walk(fsys, root, opts, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// FindDirsContaining returns every directory under root holding a file
// named marker, sorted.
func FindDirsContaining(fsys afero.Fs, root, marker string, opts WalkOptions) ([]string, error) {
	seen := make(map[string]bool)
	err := Walk(fsys, root, opts, func(path string, info os.FileInfo) error {
		if !info.IsDir() && info.Name() == marker {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
