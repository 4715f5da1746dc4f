package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hivescript",
		Short: "Extract executable statements from Hive scripts",
		Long: `hivescript reads Hive scripts and prints the statements the Hive CLI would run,
one per line, after removing comments and excluded lines and resolving ${name}
placeholders.

Directives (SET, ADD JAR, ADD FILE, ADD ARCHIVE, DFS) are emitted as written.
Everything else is split on ';' outside quoted literals.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  14 - Script not found, or no scripts in the given paths
  15 - Unresolved placeholders (with --strict)`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("help", false, "Help for hivescript")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
