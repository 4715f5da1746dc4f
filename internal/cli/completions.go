package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// outputFormats contains valid --format values for shell completion.
var outputFormats = []string{
	hivescript.FormatAuto,
	hivescript.FormatText,
	hivescript.FormatJSON,
	hivescript.FormatPretty,
}

// completeFormats provides shell completion for --format values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range outputFormats {
		if strings.HasPrefix(f, toComplete) {
			matches = append(matches, f)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeScriptPaths lets the shell complete directories and script files.
func completeScriptPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	exts := make([]string, len(hivescript.ScriptExtensions))
	for i, e := range hivescript.ScriptExtensions {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return exts, cobra.ShellCompDirectiveFilterFileExt
}
