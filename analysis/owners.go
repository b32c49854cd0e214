package analysis

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// OwnersFor resolves the owners of a single path using CODEOWNERS matching
// rules: every entry is tried in file order and the last matching entry wins.
// Returns nil when no entry matches.
func (entries Entries) OwnersFor(path string) (owners []string) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, entry := range entries {
		if matchesPathPattern(entry.PathPattern, path) {
			owners = entry.Owners
		}
	}
	return
}

// Translate a CODEOWNERS file pattern into a doublestar glob and match it
// against a slash-separated relative path. A trailing '/' means the whole
// subtree, and a pattern without any '/' matches at any depth.
func matchesPathPattern(pattern string, path string) bool {
	glob := strings.TrimPrefix(pattern, "/")
	if strings.HasSuffix(glob, "/") {
		glob += "**"
	}
	if !strings.Contains(glob, "/") {
		glob = "**/" + glob
	}
	matched, err := doublestar.Match(glob, path)
	return err == nil && matched
}
