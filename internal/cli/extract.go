package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/internal/logging"
	"github.com/vvka-141/hivescript/internal/output"
	"github.com/vvka-141/hivescript/internal/preprocessor"
	"github.com/vvka-141/hivescript/internal/services"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

func newExtractCmd() *cobra.Command {
	var flags extractFlagValues

	cmd := &cobra.Command{
		Use:   "extract <path>...",
		Short: "Print the executable statements of Hive scripts",
		Long: `Extract reads each script and prints the statements the Hive CLI would run.

Processing, in order:
1. Whole-line comments (lines starting with --) are removed
2. Lines matching an exclusion are removed, before placeholders are resolved
3. ${name} placeholders are replaced; names without a value are left as written
4. Directives (SET, ADD JAR, ADD FILE, ADD ARCHIVE, DFS) become single statements;
   everything else is split on ';' outside quoted literals

Arguments:
  path    Script file or directory. Directories are scanned recursively for
          .hql, .q, .hive and .sql files in lexical order

Examples:
  # Print statements of one script
  hivescript extract ./etl/load.hql

  # Resolve placeholders from a file and the command line
  hivescript extract ./etl --params-file prod.env --param dt=2024-01-01

  # Drop a jar that is already on the cluster classpath
  hivescript extract ./etl/load.hql --exclude 'ADD JAR ${MY_LIB};'

  # Fail if any placeholder is left unresolved, JSON output for tooling
  hivescript extract ./etl --strict --format json`,
		Args:              RequireScriptPath,
		ValidArgsFunction: completeScriptPaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScripts(cmd, args, &flags, false)
		},
	}

	addExtractFlags(cmd, &flags)
	return cmd
}

// runScripts extracts every script in args and renders the statements, or
// one summary per script when summary is set.
func runScripts(cmd *cobra.Command, args []string, flags *extractFlagValues, summary bool) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)
	fsProvider := filesystem.NewOSFileSystem()

	settings, err := resolveSettings(cmd, flags, fsProvider, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer, err := output.NewRenderer(settings.Format, isTerminal(out))
	if err != nil {
		return err
	}

	extractor := services.NewExtractor(fsProvider, logger,
		preprocessor.WithParameters(settings.Parameters),
		preprocessor.WithExclusions(settings.Exclusions),
		preprocessor.WithDirectives(settings.Directives...),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := extractor.ExtractAll(ctx, args)
	if err != nil {
		return err
	}

	if settings.Strict {
		if err := checkUnresolved(results); err != nil {
			return err
		}
	}

	if summary {
		return renderer.RenderSummary(out, results)
	}
	return renderer.Render(out, results)
}

// checkUnresolved fails when any script kept a placeholder without a value.
func checkUnresolved(results []hivescript.ScriptResult) error {
	var problems []string
	for _, r := range results {
		if len(r.Unresolved) > 0 {
			problems = append(problems, fmt.Sprintf("%s: %s", r.Path, strings.Join(r.Unresolved, ", ")))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("strict mode: %s: %w", strings.Join(problems, "; "), hivescript.ErrUnresolvedPlaceholders)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return output.DetectTerminal(f)
}
