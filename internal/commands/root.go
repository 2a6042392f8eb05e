package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/quill"
	"github.com/simonhull/quill/internal/logging"
	"github.com/simonhull/quill/output"
)

// RootCmd creates and returns the root command for the quill CLI
func RootCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Template-driven file generator",
		Long: `quill applies plugins (directories of files and templates with a
plugin.yml manifest) to named types and writes the results.

• Destinations like underscore:models/**/*.go expand per type
• Existing files are compared, diffed or skipped before anything is written
• Project defaults live in quill.yml

Start with: quill init`,
		Version:       quill.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setVerbosity(verbose)
		},
	}

	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")

	return cmd
}

func setVerbosity(v int) {
	logging.Setup(v)
	output.SetVerbose(v > 0)
}
