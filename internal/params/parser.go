package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	params, err := ParseKeyValuePairs([]string{"nameNode=hdfs://localhost:9000", "MY_LIB=/my-lib.jar"})
//	// Returns: map[string]string{"nameNode": "hdfs://localhost:9000", "MY_LIB": "/my-lib.jar"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not in key=value format (example: --param nameNode=hdfs://localhost:9000): %w", pair, hivescript.ErrInvalidParams)
		}

		if key == "" {
			return nil, fmt.Errorf("parameter has empty key: %q: %w", pair, hivescript.ErrInvalidParams)
		}

		result[key] = value
	}

	return result, nil
}

// Merge returns a new map holding every layer; later layers override earlier ones.
func Merge(layers ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			result[k] = v
		}
	}
	return result
}
