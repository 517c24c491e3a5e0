// Package valid holds validators for user supplied model identifiers.
package valid

import (
	"regexp"

	"github.com/GeoNet/hazard/internal/eq"
)

var (
	// source names as they appear in model definition files e.g., "Wellington Fault" or "3514a".
	name, nameErr = regexp.Compile(`^[A-Za-z0-9][A-Za-z0-9 ._()\-]*$`)
)

const nameCharLimit = 72

type Validator func(string) error

// SourceName validates an earthquake source name.
func SourceName(s string) (string, error) {
	if nameErr != nil {
		return "", nameErr
	}

	if len(s) == 0 || len(s) > nameCharLimit {
		return "", eq.ConfigErrorf("source name length out of range [1, %d]: %q", nameCharLimit, s)
	}

	if !name.MatchString(s) {
		return "", eq.ConfigErrorf("invalid source name: %q", s)
	}

	return s, nil
}
