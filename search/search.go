// This package walks a directory tree, prunes anything the ignore set
// excludes, and scans the surviving files for a case-insensitive substring
// match. Everything is synchronous and one-shot: files are read whole, and
// no handle outlives its read.
package search

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tedspinks/codeowners-search/ignore"
)

// Searcher scans files under search targets, honoring an ignore set.
type Searcher struct {
	Ignore *ignore.Matcher
}

// Search returns the non-ignored files under the specified path whose
// contents contain the search term, ignoring case. A single file is scanned
// directly; a directory is walked first. A path that cannot be stat'ed
// contributes no matches - the overall run keeps going.
func (s Searcher) Search(path string, term string) (matches []string) {
	info, err := os.Stat(path)
	if err != nil {
		slog.Warn("skipping search path", "path", path, "error", err)
		return nil
	}
	if !info.IsDir() {
		if s.fileContains(path, term) {
			matches = append(matches, filepath.ToSlash(path))
		}
		return
	}
	for _, file := range s.Walk(path) {
		if s.fileContains(file, term) {
			matches = append(matches, file)
		}
	}
	return
}

// Walk recursively lists the files under root, pruning any entry (file or
// directory) that the ignore set flags before descending into it. Paths are
// returned slash-separated, relative to wherever root is relative to.
func (s Searcher) Walk(root string) (files []string) {
	s.walk(filepath.ToSlash(filepath.Clean(root)), &files)
	return
}

func (s Searcher) walk(dir string, files *[]string) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("skipping unreadable directory", "path", dir, "error", err)
		return
	}
	for _, dirEntry := range dirEntries {
		path := dir + "/" + dirEntry.Name()
		if dir == "." {
			path = dirEntry.Name()
		}
		if s.Ignore != nil && s.Ignore.Match(path) {
			continue
		}
		if dirEntry.IsDir() {
			s.walk(path, files)
		} else {
			*files = append(*files, path)
		}
	}
}

// Read the whole file and test for a case-insensitive substring match. An
// unreadable file is skipped with a warning, never fatal.
func (s Searcher) fileContains(path string, term string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable file", "path", path, "error", err)
		return false
	}
	return strings.Contains(strings.ToLower(string(content)), strings.ToLower(term))
}
