package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hivescript/internal/logging"
	"github.com/vvka-141/hivescript/internal/output"
	"github.com/vvka-141/hivescript/internal/scaffold"
	"github.com/vvka-141/hivescript/internal/tui"
)

func newInitCmd() *cobra.Command {
	var (
		template string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "init <target_path>",
		Short: "Initialize a new hivescript project",
		Long: `Initialize a hivescript project into the specified directory.

The project holds a hivescript.yaml with default parameters, exclusions and
output settings, plus example scripts.

Target directory must be empty or non-existent.

Examples:
  hivescript init .                    # Initialize in current directory
                                       # (asks for a template on a terminal)
  hivescript init ./warehouse -t etl   # ETL layout with params.env and exclusions
  hivescript init --list               # List available templates`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runTemplatesList(cmd)
			}
			if len(args) == 0 {
				return fmt.Errorf("target path required\n\nUsage: hivescript init <target_path> [flags]\n\nUse 'hivescript init --list' to see available templates")
			}
			if !cmd.Flags().Changed("template") && isInteractive() {
				chosen, err := promptTemplate(cmd, template)
				if err != nil {
					return err
				}
				template = chosen
			}
			return runInit(cmd, args[0], template)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", scaffold.DefaultTemplate, "Template to use")
	cmd.Flags().BoolVar(&list, "list", false, "List available templates")
	_ = cmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
	return cmd
}

func runInit(cmd *cobra.Command, targetPath, template string) error {
	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	created, err := scaffold.NewScaffolder(logger).CreateProject(projectName, template, targetPath)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "\n✓ Project initialized using template '%s'\n\n", template)
	fmt.Fprintln(out, "Created files:")
	for _, f := range created {
		fmt.Fprintf(out, "  %s\n", f)
	}

	fmt.Fprintln(out, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(out, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(out, "  hivescript extract scripts/")
	fmt.Fprintln(out, "  # Or override parameters:")
	fmt.Fprintln(out, "  hivescript extract scripts/ --param key=value")
	return nil
}

func runTemplatesList(cmd *cobra.Command) error {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	for _, t := range templates {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", t, scaffold.Describe(t))
	}
	return nil
}

// isInteractive reports whether init may prompt. Replaced in tests.
var isInteractive = func() bool {
	return output.DetectTerminal(os.Stdin) && output.DetectTerminal(os.Stderr)
}

// promptTemplate lets the user pick a template, starting on current.
func promptTemplate(cmd *cobra.Command, current string) (string, error) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return "", fmt.Errorf("failed to list templates: %w", err)
	}

	options := make([]tui.Option, len(templates))
	for i, t := range templates {
		options[i] = tui.Option{Label: t, Description: scaffold.Describe(t), Value: t}
	}

	chosen, err := tui.Select(tui.NewSelector("Choose a project template", options, current), cmd.InOrStdin(), cmd.ErrOrStderr())
	if errors.Is(err, tui.ErrCancelled) {
		return "", fmt.Errorf("init cancelled")
	}
	if err != nil {
		return "", fmt.Errorf("template selection failed: %w", err)
	}
	return chosen, nil
}

// completeTemplateNames provides shell completion for --template values.
func completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return templates, cobra.ShellCompDirectiveNoFileComp
}
