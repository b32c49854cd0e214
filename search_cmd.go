package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/tedspinks/codeowners-search/analysis"
	"gitlab.com/tedspinks/codeowners-search/ignore"
	"gitlab.com/tedspinks/codeowners-search/search"
)

// runSearch is the whole pipeline: parse the CODEOWNERS file, pick the
// entries for the requested owner, search their files, report. Everything
// except the ignore file degrades to a warning plus an empty result, so the
// exit code stays 0.
func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	owner := args[1]

	entries := loadEntries()
	fmt.Printf("Found %v CODEOWNERS entries\n", len(entries))
	owned := entries.ForOwner(owner)
	fmt.Printf("Found %v entries with owner '%v'\n", len(owned), owner)

	patterns, err := ignore.Load(cfg.IgnoreFileName)
	if err != nil {
		// The ignore file is a hard prerequisite - without it the search
		// scope is undefined, so the run stops here.
		slog.Error(err.Error())
		return nil
	}
	matcher := ignore.NewMatcher(patterns)
	slog.Debug("compiled ignore patterns", "patterns", matcher.Patterns())
	searcher := search.Searcher{Ignore: matcher}

	matches := collectMatches(os.Stdout, searcher, owned, term)
	printReport(os.Stdout, matches)
	return nil
}

// Find and parse the CODEOWNERS file. A repo without one is not an error -
// the search just has no entries to work with.
func loadEntries() analysis.Entries {
	coPath, err := analysis.FindPath()
	if err != nil {
		slog.Warn("continuing with no CODEOWNERS entries", "error", err)
		return nil
	}
	return analysis.ParseFile(coPath)
}

// collectMatches searches every owned entry's path and unions the results
// into a single deduplicated list. Insertion order is kept, so overlapping
// entries report each file exactly once, at its first hit.
func collectMatches(progress io.Writer, searcher contentSearcher, owned analysis.Entries, term string) (matches []string) {
	seen := map[string]bool{}
	for _, entry := range owned {
		target := normalizePathPattern(entry.PathPattern)
		fmt.Fprintf(progress, "Searching '%v' for '%v'...\n", target, term)
		for _, file := range searcher.Search(target, term) {
			if seen[file] {
				continue
			}
			seen[file] = true
			matches = append(matches, file)
		}
	}
	return
}

// normalizePathPattern turns a CODEOWNERS file pattern into a concrete path
// that can be stat'ed and walked: wildcards and the leading path separator
// are stripped. An empty result means the repo root.
func normalizePathPattern(pattern string) string {
	path := strings.NewReplacer("*", "", "?", "").Replace(pattern)
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "."
	}
	return path
}

func printReport(out io.Writer, matches []string) {
	if len(matches) == 0 {
		fmt.Fprintln(out, "No files found.")
		return
	}
	color.New(color.FgGreen).Fprintf(out, "Found %v matching file(s):\n", len(matches))
	for _, file := range matches {
		fmt.Fprintln(out, "- "+file)
	}
	fmt.Fprintln(out, strings.Join(matches, ","))
}
