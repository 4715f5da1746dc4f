package params

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// ParseExclusionFile returns the exclusions listed in content, one per line.
// Blank lines and lines starting with # are skipped. Surrounding whitespace
// is trimmed; everything else, including a trailing ';', is kept.
func ParseExclusionFile(content []byte) ([]string, error) {
	var exclusions []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exclusions = append(exclusions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading content: %w", err)
	}
	return exclusions, nil
}

// LoadExclusionFiles reads every exclusion file in order and concatenates their entries.
func LoadExclusionFiles(fsProvider filesystem.FileSystemProvider, paths []string, logger hivescript.Logger) ([]string, error) {
	var exclusions []string

	for _, path := range paths {
		logger.Verbose("Loading exclusions from file: %s", path)

		content, err := fsProvider.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read exclusion file '%s': %v: %w", path, err, hivescript.ErrInvalidConfig)
		}

		entries, err := ParseExclusionFile(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse exclusion file '%s': %w", path, err)
		}
		exclusions = append(exclusions, entries...)
	}

	return exclusions, nil
}
