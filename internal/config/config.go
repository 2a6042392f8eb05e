// Package config loads quill.yml project settings.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the project config file looked up in the working directory.
const FileName = "quill.yml"

// Defaults
const (
	DefaultOutput  = "."
	DefaultPlugins = ".quill/plugins"
	DefaultSuffix  = ".tmpl"
)

// Config holds project settings. Precedence, highest first: flags,
// QUILL_* environment variables, quill.yml, defaults.
type Config struct {
	Output  string // Directory artifacts are written under
	Plugins string // Directory searched for plugins
	// UserPlugins is searched after Plugins; project plugins shadow
	// user plugins of the same name.
	UserPlugins string
	Suffix  string // Template file suffix
	Verbose int

	// File is the config file that was read, empty when none exists.
	File string
}

// UserPluginsDir is the default user-wide plugin directory,
// $XDG_DATA_HOME/quill/plugins.
func UserPluginsDir() string {
	return filepath.Join(xdg.DataHome, "quill", "plugins")
}

func newViper(fsys afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigType("yaml")

	v.SetDefault("output", DefaultOutput)
	v.SetDefault("plugins", DefaultPlugins)
	v.SetDefault("user_plugins", UserPluginsDir())
	v.SetDefault("suffix", DefaultSuffix)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("QUILL")
	v.AutomaticEnv()
	return v
}

// Load reads dir/quill.yml when present. Flags named output, plugins,
// suffix or verbose in flags override the file; flags may be nil.
// QUILL_USER_PLUGINS overrides the user plugin directory.
func Load(fsys afero.Fs, dir string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper(fsys)

	if flags != nil {
		for _, key := range []string{"output", "plugins", "suffix", "verbose"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", key, err)
				}
			}
		}
	}

	path := filepath.Join(dir, FileName)
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	cfg := &Config{
		Output:      v.GetString("output"),
		Plugins:     v.GetString("plugins"),
		UserPlugins: v.GetString("user_plugins"),
		Suffix:      v.GetString("suffix"),
		Verbose:     v.GetInt("verbose"),
	}
	if exists {
		cfg.File = path
	}

	if cfg.Suffix == "" {
		return nil, fmt.Errorf("%s: suffix cannot be empty", FileName)
	}
	return cfg, nil
}

// Save writes cfg to dir/quill.yml, replacing any existing file.
func Save(fsys afero.Fs, dir string, cfg *Config) (string, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigType("yaml")

	v.Set("output", cfg.Output)
	v.Set("plugins", cfg.Plugins)
	if cfg.Suffix != "" && cfg.Suffix != DefaultSuffix {
		v.Set("suffix", cfg.Suffix)
	}

	path := filepath.Join(dir, FileName)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
