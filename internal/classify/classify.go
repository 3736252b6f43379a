// Package classify decides whether a file should be read aloud
// automatically when it lands in the hook entry point.
package classify

import (
	"path/filepath"
	"strings"
)

// defaultKeywords are the filename fragments that trigger auto-reading.
// Matching is a case-insensitive substring test on the base name.
var defaultKeywords = []string{
	"implementation-summary",
	"summary",
	"readme",
	"implementation",
	"todo",
	"plan",
	"requirements",
}

// DefaultKeywords returns a copy of the built-in keyword list.
func DefaultKeywords() []string {
	out := make([]string, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}

// Match reports whether the file's base name contains any of the given
// keywords, ignoring case.
func Match(path string, keywords []string) bool {
	name := strings.ToLower(filepath.Base(path))
	if name == "" || name == "." {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ShouldAutoRead applies the built-in keyword list.
func ShouldAutoRead(path string) bool {
	return Match(path, defaultKeywords)
}
