package generator

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/promptgen/internal/debug"
)

// IsTemplateFile reports whether name carries the template suffix.
func IsTemplateFile(name, suffix string) bool {
	return strings.HasSuffix(name, suffix)
}

// ShouldIgnoreFile reports whether a template path matches any ignore pattern.
func ShouldIgnoreFile(path string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		if MatchesPattern(path, pattern) {
			debug.Debug("[generator] Ignoring file: %s (matched pattern: %s)", path, pattern)
			return true
		}
	}
	return false
}

// MatchesPattern checks if a file path matches a glob pattern. Patterns
// without a slash are matched against the base name only.
func MatchesPattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}
