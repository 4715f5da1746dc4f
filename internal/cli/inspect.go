package cli

import "github.com/spf13/cobra"

func newInspectCmd() *cobra.Command {
	var flags extractFlagValues

	cmd := &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Summarize Hive scripts without printing their statements",
		Long: `Inspect runs the same extraction as 'extract' and prints, for each script,
its path, raw checksum, statements checksum, statement counts by kind and any
unresolved placeholders.

The statements checksum changes only when the effective statements change,
so comment edits and re-indentation leave it untouched.

Examples:
  hivescript inspect ./etl
  hivescript inspect ./etl/load.hql --params-file prod.env --format json`,
		Args:              RequireScriptPath,
		ValidArgsFunction: completeScriptPaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScripts(cmd, args, &flags, true)
		},
	}

	addExtractFlags(cmd, &flags)
	return cmd
}
