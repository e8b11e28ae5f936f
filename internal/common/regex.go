package common

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrEmptyPattern is returned when compiling an empty pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// WordPattern anchors an alternation at word boundaries on both ends.
// The whole pattern is grouped so every alternative is anchored.
func WordPattern(pattern string) string {
	return `(?i)(?:^|\b)(?:` + pattern + `)(?:\b|$)`
}

// CompileWordPattern compiles pattern with WordPattern anchoring.
func CompileWordPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile(WordPattern(pattern))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return re, nil
}
