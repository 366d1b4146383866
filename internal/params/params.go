/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package params parses the -P/--parameters flag value into the key/value
// mapping expected by the orchestration service API.
package params

import (
	"fmt"
	"strings"
)

// ParseError reports a parameter segment that is not of the form KEY=VALUE
type ParseError struct {
	Segment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed parameter %q: expected KEY=VALUE", e.Segment)
}

// Parse converts a semicolon-delimited parameter string such as
// "InstanceType=m1.large;DBUsername=admin" into a map. An empty input yields
// an empty map. Each segment must contain exactly one '='; values are kept as
// strings with no trimming. Duplicate keys overwrite, last occurrence wins.
func Parse(input string) (map[string]string, error) {
	parameters := make(map[string]string)
	if input == "" {
		return parameters, nil
	}

	for _, segment := range strings.Split(input, ";") {
		parts := strings.Split(segment, "=")
		if len(parts) != 2 {
			return nil, &ParseError{Segment: segment}
		}
		parameters[parts[0]] = parts[1]
	}

	return parameters, nil
}
