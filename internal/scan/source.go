// Package scan walks the directories of a search path in precedence order.
package scan

import (
	"fmt"
	"strings"

	"pathshadow/internal/diag"
)

// Separator splits a search path string into entries. It is fixed, unlike the
// delimiter used between paths in report lines.
const Separator = ":"

// EnvVar is the environment variable read when no explicit path is given.
const EnvVar = "PATH"

// SearchPath is the ordered list of directories. Index i takes precedence over every index > i.
type SearchPath []string

// Split breaks a raw search path string into its entries, keeping empty ones.
func Split(raw string) SearchPath {
	return SearchPath(strings.Split(raw, Separator))
}

// String joins the entries back with Separator.
func (sp SearchPath) String() string {
	return strings.Join(sp, Separator)
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolve picks the raw search path: the override when given, else the environment.
func Resolve(override string, given bool, lookup LookupFunc) (string, error) {
	if given {
		return override, nil
	}
	raw, ok := lookup(EnvVar)
	if !ok {
		return "", fmt.Errorf("could not get %s variable: %w", EnvVar, diag.ErrSourceUnavailable)
	}
	return raw, nil
}
