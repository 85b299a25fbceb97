package service

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ludo-technologies/datestamp/domain"
)

// GlobExpander implements domain.PathExpander with doublestar patterns
type GlobExpander struct{}

// NewGlobExpander creates a new GlobExpander
func NewGlobExpander() *GlobExpander {
	return &GlobExpander{}
}

// Expand resolves each pattern. Arguments without glob metacharacters are
// returned unchanged even if they do not exist, so callers report missing
// files by name. A pattern that matches nothing is an error.
func (g *GlobExpander) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid pattern: %s", pattern), nil)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid pattern: %s", pattern), err)
		}
		if len(matches) == 0 {
			return nil, domain.NewFileNotFoundError(pattern, nil)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	return paths, nil
}

// hasGlobMeta reports whether s contains doublestar metacharacters
func hasGlobMeta(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
