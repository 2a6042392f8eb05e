package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/simonhull/quill/env"
	"github.com/simonhull/quill/internal/config"
	"github.com/simonhull/quill/plugin"
)

// project is the working directory a command operates on
type project struct {
	env *env.FS
	cfg *config.Config
}

func openProject(fsys afero.Fs, cwd string, flags *pflag.FlagSet) (*project, error) {
	e := env.New(fsys, cwd)
	cfg, err := config.Load(fsys, e.CurrentDirectory(), flags)
	if err != nil {
		return nil, err
	}
	return &project{env: e, cfg: cfg}, nil
}

func openOSProject(flags *pflag.FlagSet) (*project, error) {
	e, err := env.NewOS()
	if err != nil {
		return nil, err
	}
	p, err := openProject(e.Fs(), e.CurrentDirectory(), flags)
	if err != nil {
		return nil, err
	}
	if p.cfg.Verbose > 0 && !flags.Changed("verbose") {
		setVerbosity(p.cfg.Verbose)
	}
	return p, nil
}

func (p *project) fs() afero.Fs {
	return p.env.Fs()
}

func (p *project) pluginsDir() string {
	return p.env.ResolvePath(p.cfg.Plugins)
}

// plugins discovers the project plugins, then user plugins whose names
// are not taken.
func (p *project) plugins() (*plugin.Registry, error) {
	registry := plugin.NewRegistry()
	found := false

	for _, dir := range []string{p.pluginsDir(), p.cfg.UserPlugins} {
		if dir == "" {
			continue
		}
		dir = p.env.ResolvePath(dir)
		if _, err := p.fs().Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		found = true

		discovered, err := plugin.Discover(p.fs(), dir)
		if err != nil {
			return nil, err
		}
		for _, name := range registry.Merge(discovered) {
			log.Debug().Str("plugin", name).Str("dir", dir).Msg("plugin shadowed by project plugin")
		}
	}

	if !found {
		return nil, fmt.Errorf("plugins directory %s does not exist (run 'quill init' or set plugins in quill.yml)", p.pluginsDir())
	}
	return registry, nil
}
