package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simonhull/quill/env"
	"github.com/simonhull/quill/input"
	"github.com/simonhull/quill/internal/config"
	"github.com/simonhull/quill/output"
	"github.com/simonhull/quill/plugin"
)

const examplePlugin = "example"

var exampleFiles = map[string]string{
	plugin.ManifestFile: `apiVersion: quill/v1
kind: Plugin
name: example
spec:
  description: Greets every type it is applied to
  options:
    greeting: Hello
  files:
    - src: greeting.txt.tmpl
      dest: underscore:examples/**/*.txt
      each: type
`,
	"greeting.txt.tmpl": "{{ option \"greeting\" }}, {{ upperCamelCase .Name }}!\n",
}

// InitCmd creates and returns the 'init' command
func InitCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create quill.yml in the current directory",
		Long: `Create quill.yml and a plugins directory, optionally with an example
plugin to start from.

Example:
  quill init
  quill generate example models/user`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.NewOS()
			if err != nil {
				return err
			}
			return runInit(e.Fs(), e.CurrentDirectory(), input.NewPrompter(os.Stdin, os.Stdout), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept all defaults without prompting")

	return cmd
}

func runInit(fsys afero.Fs, dir string, prompter *input.Prompter, yes bool) error {
	path := filepath.Join(dir, config.FileName)
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists && !yes && !prompter.Confirm(config.FileName+" already exists. Replace it?", false) {
		output.Info("Kept existing " + config.FileName)
		return nil
	}

	cfg := &config.Config{
		Output:  config.DefaultOutput,
		Plugins: config.DefaultPlugins,
		Suffix:  config.DefaultSuffix,
	}
	withExample := true
	if !yes {
		cfg.Output = prompter.Prompt("Output directory", cfg.Output)
		cfg.Plugins = prompter.Prompt("Plugins directory", cfg.Plugins)
		withExample = prompter.Confirm("Create an example plugin?", true)
	}

	if _, err := config.Save(fsys, dir, cfg); err != nil {
		return err
	}

	e := env.New(fsys, dir)
	pluginsDir := e.ResolvePath(cfg.Plugins)
	if err := fsys.MkdirAll(pluginsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", pluginsDir, err)
	}

	output.Success("Created " + config.FileName)
	if withExample {
		exampleDir := filepath.Join(pluginsDir, examplePlugin)
		for name, content := range exampleFiles {
			if err := writeIfMissing(fsys, filepath.Join(exampleDir, name), content); err != nil {
				return err
			}
		}
		output.Info("Next steps:")
		output.Step("quill generate example models/user --dry-run")
	}
	return nil
}

func writeIfMissing(fsys afero.Fs, path, content string) error {
	if exists, err := afero.Exists(fsys, path); err != nil || exists {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
