package env

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned by DetectModule when no go.mod is found.
var ErrNoModule = errors.New("go.mod not found")

// ModuleInfo contains information from go.mod
type ModuleInfo struct {
	Path      string // Module path (e.g., "github.com/user/repo")
	GoVersion string // Go version requirement (e.g., "1.21")
	Dir       string // Directory holding go.mod
}

// DetectModule reads the nearest go.mod at or above dir.
func DetectModule(e Environment, dir string) (*ModuleInfo, error) {
	dir = e.ResolvePath(dir)
	for {
		modPath := filepath.Join(dir, "go.mod")
		if e.Exists(modPath) {
			return parseModule(e, modPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoModule
		}
		dir = parent
	}
}

func parseModule(e Environment, modPath string) (*ModuleInfo, error) {
	data, err := e.ReadFile(modPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.ParseLax(modPath, []byte(data), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if modFile.Module == nil {
		return nil, fmt.Errorf("%s has no module directive", modPath)
	}

	info := &ModuleInfo{
		Path: modFile.Module.Mod.Path,
		Dir:  filepath.Dir(modPath),
	}
	if modFile.Go != nil {
		info.GoVersion = modFile.Go.Version
	}
	return info, nil
}
