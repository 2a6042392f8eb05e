package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/quill/env"
	"github.com/simonhull/quill/generator"
	"github.com/simonhull/quill/internal/hooks"
	"github.com/simonhull/quill/output"
	"github.com/simonhull/quill/plugin"
)

type generateOptions struct {
	Plugin    string
	Types     []string // Type references, e.g. models/auth/user
	TypesFile string

	Force, Skip, Diff bool
	DryRun            bool
	NoHooks           bool
}

// GenerateCmd creates and returns the 'generate' command
func GenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <plugin> [type...]",
		Short: "Apply a plugin to types",
		Long: `Apply a plugin to zero or more types and write the files it produces.

Types are given as module paths ending in the type name
(models/auth/user) or listed in a Types document with --types.

Existing files with different contents are resolved interactively unless
one of --force, --skip or --diff is given.

Examples:
  quill generate model user
  quill generate model models/auth/user models/post --dry-run
  quill generate api --types types.yml --skip`,
		Aliases: []string{"g"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openOSProject(cmd.Flags())
			if err != nil {
				return err
			}
			opts.Plugin = args[0]
			opts.Types = args[1:]
			return runGenerate(cmd.Context(), proj, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.TypesFile, "types", "t", "", "Types document to read types from")
	cmd.Flags().StringP("output", "o", "", "Output directory (default from quill.yml or .)")
	cmd.Flags().String("plugins", "", "Plugins directory (default from quill.yml or .quill/plugins)")
	cmd.Flags().String("suffix", "", "Template file suffix (default .tmpl)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&opts.Skip, "skip", false, "Keep existing files without asking")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Show a diff for each conflict before asking")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVar(&opts.NoHooks, "no-hooks", false, "Do not run the plugin's after commands")

	return cmd
}

func runGenerate(ctx context.Context, proj *project, opts generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var resolver *generator.Resolver
	if !opts.DryRun || opts.Force || opts.Skip || opts.Diff {
		r, err := generator.NewResolver(opts.Force, opts.Skip, opts.Diff)
		if err != nil {
			return err
		}
		resolver = r
	}

	registry, err := proj.plugins()
	if err != nil {
		return err
	}
	p, err := registry.Lookup(opts.Plugin)
	if err != nil {
		return err
	}

	info, err := env.DetectModule(proj.env, proj.env.CurrentDirectory())
	switch {
	case err == nil:
		p.Spec.Options = withModule(p.Spec.Options, info)
	case !errors.Is(err, env.ErrNoModule):
		output.Warn(fmt.Sprintf("Ignoring go.mod: %v", err))
	}

	types, err := collectTypes(proj, opts)
	if err != nil {
		return err
	}
	output.Verbose(fmt.Sprintf("Applying %s from %s to %d type(s)", p.Name, p.Dir, len(types)))

	cfg := p.GeneratorConfig(proj.env, proj.cfg.Output)
	cfg.TemplateSuffix = proj.cfg.Suffix
	cfg.Logger = &log.Logger
	gen, err := generator.New(cfg)
	if err != nil {
		return err
	}

	res, err := plugin.Run(gen, p, types)
	if err != nil {
		return err
	}

	written, err := generator.Write(ctx, proj.fs(), res.Artifacts, generator.WriteOptions{
		DryRun:   opts.DryRun,
		Resolver: resolver,
		Out:      output.Writer(),
	})
	if errors.Is(err, generator.ErrCancelled) {
		output.Warn("Generation cancelled, nothing was written")
		return err
	}
	if err != nil {
		return err
	}

	summary := fmt.Sprintf("%s: %d created, %d overwritten, %d unchanged, %d skipped",
		p.Name,
		written.Count(generator.ActionCreate),
		written.Count(generator.ActionOverwrite),
		written.Count(generator.ActionUnchanged),
		written.Count(generator.ActionSkip)+res.Skipped,
	)
	if opts.DryRun {
		output.Info("[DRY RUN] " + summary)
		return nil
	}
	output.Success(summary)

	if opts.NoHooks || len(p.Spec.After) == 0 {
		return nil
	}
	runner := hooks.New(hooks.Options{
		Dir:     gen.OutputDir(),
		Stdout:  output.Writer(),
		Spinner: term.IsTerminal(int(os.Stdout.Fd())),
	})
	if err := runner.RunAll(ctx, p.Spec.After); err != nil {
		return fmt.Errorf("after hook: %w", err)
	}
	return nil
}

// withModule exposes the project's Go module to templates as the "module"
// and "goVersion" options. Options set by the plugin win.
func withModule(options map[string]any, info *env.ModuleInfo) map[string]any {
	merged := make(map[string]any, len(options)+2)
	merged["module"] = info.Path
	merged["goVersion"] = info.GoVersion
	for k, v := range options {
		merged[k] = v
	}
	return merged
}

func collectTypes(proj *project, opts generateOptions) ([]plugin.Type, error) {
	var types []plugin.Type
	if opts.TypesFile != "" {
		loaded, err := plugin.LoadTypes(proj.fs(), proj.env.ResolvePath(opts.TypesFile))
		if err != nil {
			return nil, err
		}
		types = append(types, loaded...)
	}
	for _, ref := range opts.Types {
		t, err := plugin.ParseTypeRef(ref)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
