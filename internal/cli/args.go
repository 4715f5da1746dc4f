package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireScriptPath validates that at least one script or directory argument is provided.
// Returns a helpful error message with usage and examples if missing.
func RequireScriptPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s ./etl/load.hql --param nameNode=hdfs://localhost:9000`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
