// This package loads the ignore file and decides which paths are excluded
// from the search scope. Patterns support '*' and '?' wildcards only - no
// negation and no directory-only anchoring, which keeps the semantics
// deliberately simpler than a real .gitignore.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Load reads one ignore pattern per line from the specified file, trimming
// whitespace and dropping blank lines and '#' comments. Unlike the
// CODEOWNERS file, the ignore file is a hard prerequisite: a read error is
// returned to the caller and ends the run.
func Load(path string) (patterns []string, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read ignore file at path '%v': %w", path, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}

// Matcher tests paths against a fixed set of ignore patterns. Each pattern
// is compiled exactly once, when the Matcher is built.
type Matcher struct {
	patterns []string
	regexps  []*regexp.Regexp
}

// NewMatcher compiles each pattern into a regular expression: regex
// metacharacters are escaped, then '*' becomes "any characters" and '?'
// becomes "any single character". The result is anchored so that a pattern
// matches the full relative path, a directory segment anywhere in the path,
// or a trailing suffix.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{patterns: patterns}
	for _, pattern := range patterns {
		m.regexps = append(m.regexps, compilePattern(pattern))
	}
	return m
}

func compilePattern(pattern string) *regexp.Regexp {
	pattern = strings.TrimSuffix(pattern, "/")
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, ".*")
	quoted = strings.ReplaceAll(quoted, `\?`, ".")
	return regexp.MustCompile(`(^|/)` + quoted + `(/|$)`)
}

// Match reports whether the specified path is excluded by the ignore set.
// The first matching pattern wins - any match excludes the path.
func (m *Matcher) Match(path string) bool {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, re := range m.regexps {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Patterns returns the pattern set the Matcher was built from.
func (m *Matcher) Patterns() []string {
	return m.patterns
}
