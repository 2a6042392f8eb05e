package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/quill/output"
)

// PluginsCmd creates and returns the 'plugins' command
func PluginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List installed plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openOSProject(cmd.Flags())
			if err != nil {
				return err
			}
			return runPlugins(proj)
		},
	}
	cmd.Flags().String("plugins", "", "Plugins directory (default from quill.yml or .quill/plugins)")
	return cmd
}

func runPlugins(proj *project) error {
	registry, err := proj.plugins()
	if err != nil {
		return err
	}

	names := registry.List()
	if len(names) == 0 {
		output.Warn(fmt.Sprintf("No plugins found in %s", proj.pluginsDir()))
		return nil
	}

	output.Info(fmt.Sprintf("Plugins in %s:", proj.pluginsDir()))
	for _, name := range names {
		p, _ := registry.Get(name)
		line := name
		if p.Description() != "" {
			line += " - " + p.Description()
		}
		output.Step(line)
		output.Verbose(fmt.Sprintf("%s: %d file rule(s), %d tree(s), %d after command(s)",
			p.Dir, len(p.Spec.Files), len(p.Spec.Trees), len(p.Spec.After)))
	}
	return nil
}
