package params

import (
	"bytes"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// ParseEnvFile parses environment file content in .env format.
func ParseEnvFile(content []byte) (map[string]string, error) {
	result, err := godotenv.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hivescript.ErrInvalidParams, err)
	}
	return result, nil
}

// LoadEnvFiles loads parameters from .env files using the provided filesystem.
// Later files override earlier ones.
func LoadEnvFiles(fsProvider filesystem.FileSystemProvider, paths []string, logger hivescript.Logger) (map[string]string, error) {
	parameters := make(map[string]string)

	for _, path := range paths {
		logger.Verbose("Loading parameters from file: %s", path)

		content, err := fsProvider.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file '%s': %v: %w", path, err, hivescript.ErrInvalidParams)
		}

		fileParams, err := ParseEnvFile(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse params file '%s': %w", path, err)
		}

		for k, v := range fileParams {
			parameters[k] = v
		}

		logger.Verbose("Loaded %d parameters from file (total: %d)", len(fileParams), len(parameters))
	}

	return parameters, nil
}
