package utils

import (
	"fmt"
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// InterpolateEnv replaces every ${VAR} placeholder in data with the value
// of the corresponding environment variable. Referencing a variable that
// is not set is an error.
func InterpolateEnv(data []byte) ([]byte, error) {
	var missing []string

	resolved := envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := string(envVarPattern.FindSubmatch(match)[1])

		value, found := os.LookupEnv(name)
		if !found {
			missing = append(missing, name)
			return match
		}

		return []byte(value)
	})

	if len(missing) > 0 {
		return nil, fmt.Errorf("InterpolateEnv: environment variable %s is not set (referenced as ${%s})", missing[0], missing[0])
	}

	return resolved, nil
}
