package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/hivescript/internal/config"
	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/internal/params"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

const (
	envFormat = hivescript.EnvPrefix + "FORMAT"
	envStrict = hivescript.EnvPrefix + "STRICT"
)

// extractFlagValues holds the flags shared by extract and inspect.
type extractFlagValues struct {
	params       []string
	paramsFiles  []string
	exclude      []string
	excludeFiles []string
	directives   []string
	format       string
	strict       bool
	configPath   string
}

// extractSettings is the effective configuration after merging every source.
type extractSettings struct {
	Parameters map[string]string
	Exclusions []string
	Directives []string
	Format     string
	Strict     bool
}

func addExtractFlags(cmd *cobra.Command, flags *extractFlagValues) {
	cmd.Flags().StringArrayVar(&flags.params, "param", nil,
		"Placeholder value as key=value (can be specified multiple times)\n"+
			"Replaces ${key} in the scripts. Overrides every params file\n"+
			"Example: --param nameNode=hdfs://localhost:9000 --param dt=2024-01-01")
	cmd.Flags().StringArrayVar(&flags.paramsFiles, "params-file", nil,
		"Load placeholder values from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, --param overrides all")
	cmd.Flags().StringArrayVar(&flags.exclude, "exclude", nil,
		"Drop script lines equal to this text after trimming (can be specified multiple times)\n"+
			"Compared before placeholders are resolved\n"+
			"Example: --exclude 'ADD JAR ${MY_LIB};'")
	cmd.Flags().StringArrayVar(&flags.excludeFiles, "exclude-file", nil,
		"Read exclusions from a file, one per line (can be specified multiple times)\n"+
			"Blank lines and lines starting with # are ignored")
	cmd.Flags().StringArrayVar(&flags.directives, "directive", nil,
		"Treat lines starting with these keywords as standalone directives\n"+
			"(can be specified multiple times, added to SET, ADD JAR, ADD FILE, ADD ARCHIVE, DFS)\n"+
			"Example: --directive RESET --directive 'DELETE JAR'")
	cmd.Flags().StringVar(&flags.format, "format", "",
		"Output format: auto|text|json|pretty\n"+
			"Precedence: --format > $"+envFormat+" > hivescript.yaml > auto\n"+
			"auto prints pretty output on a terminal and text otherwise")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"Fail with exit code 15 when a placeholder has no value\n"+
			"Precedence: --strict > $"+envStrict+" > hivescript.yaml")
	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to a project configuration file (default: ./"+hivescript.ConfigFileName+" if present)")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.MarkFlagFilename("params-file", "env")
	_ = cmd.MarkFlagFilename("config", "yaml", "yml")
}

// loadProjectConfig loads the explicit config file, or hivescript.yaml from the
// working directory when present. A missing default file is not an error.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configPath, hivescript.ErrInvalidConfig)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	return cfg, err
}

// resolveSettings merges hivescript.yaml, environment variables and flags.
//
// Parameters, lowest to highest precedence: yaml params, yaml params_files,
// --params-file in order, --param. Exclusions and directives are the union
// of all sources.
func resolveSettings(cmd *cobra.Command, flags *extractFlagValues, fsProvider filesystem.FileSystemProvider, logger hivescript.Logger) (*extractSettings, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", hivescript.ConfigFileName, err)
	}

	configFileParams, err := params.LoadEnvFiles(fsProvider, projectCfg.ResolvedParamsFiles(), logger)
	if err != nil {
		return nil, err
	}
	flagFileParams, err := params.LoadEnvFiles(fsProvider, flags.paramsFiles, logger)
	if err != nil {
		return nil, err
	}
	cliParams, err := params.ParseKeyValuePairs(flags.params)
	if err != nil {
		return nil, err
	}

	fileExclusions, err := params.LoadExclusionFiles(fsProvider, flags.excludeFiles, logger)
	if err != nil {
		return nil, err
	}
	exclusions := make([]string, 0, len(projectCfg.Exclude)+len(fileExclusions)+len(flags.exclude))
	exclusions = append(exclusions, projectCfg.Exclude...)
	exclusions = append(exclusions, fileExclusions...)
	exclusions = append(exclusions, flags.exclude...)

	directives := make([]string, 0, len(projectCfg.Directives)+len(flags.directives))
	directives = append(directives, projectCfg.Directives...)
	directives = append(directives, flags.directives...)

	format, err := resolveFormat(cmd, flags.format, projectCfg.Format)
	if err != nil {
		return nil, err
	}
	strict, err := resolveStrict(cmd, flags.strict, projectCfg.Strict)
	if err != nil {
		return nil, err
	}

	settings := &extractSettings{
		Parameters: params.Merge(projectCfg.Params, configFileParams, flagFileParams, cliParams),
		Exclusions: exclusions,
		Directives: directives,
		Format:     format,
		Strict:     strict,
	}
	logger.Verbose("Resolved %d parameter(s), %d exclusion(s), %d extra directive(s), format %s, strict %v",
		len(settings.Parameters), len(settings.Exclusions), len(settings.Directives), settings.Format, settings.Strict)
	return settings, nil
}

func resolveFormat(cmd *cobra.Command, flagValue, fileValue string) (string, error) {
	format := hivescript.FormatAuto
	switch {
	case cmd.Flags().Changed("format"):
		format = flagValue
	case os.Getenv(envFormat) != "":
		format = os.Getenv(envFormat)
	case fileValue != "":
		format = fileValue
	}

	if format == "" || !config.IsValidFormat(format) {
		return "", fmt.Errorf("unknown output format %q (expected auto, text, json or pretty): %w", format, hivescript.ErrInvalidConfig)
	}
	return format, nil
}

func resolveStrict(cmd *cobra.Command, flagValue, fileValue bool) (bool, error) {
	if cmd.Flags().Changed("strict") {
		return flagValue, nil
	}
	if raw := os.Getenv(envStrict); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return false, fmt.Errorf("%s=%q is not a boolean: %w", envStrict, raw, hivescript.ErrInvalidConfig)
		}
		return strict, nil
	}
	return fileValue, nil
}
