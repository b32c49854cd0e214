// This package parses and analyzes a CODEOWNERS file. Assumes that the current
// directory is the root of a Git repo, which contains the CODEOWNERS file in one
// of GitLab's 3 supported locations - see
// https://docs.gitlab.com/ee/user/project/codeowners/#codeowners-file
package analysis

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// OwnerSigil is the leading marker that identifies a token as a user or
// group owner rather than a plain word.
const OwnerSigil = "@"

// SupportedLocations are GitLab's 3 supported CODEOWNERS paths, checked in order.
var SupportedLocations = [...]string{"CODEOWNERS", "docs/CODEOWNERS", ".gitlab/CODEOWNERS"}

// FindPath returns the path of the local CODEOWNERS file, checking each of
// the supported locations in order and taking the first hit.
func FindPath() (codeownersFilePath string, err error) {
	for _, location := range SupportedLocations {
		coExists, err := fileExists(location)
		if err != nil {
			slog.Debug(err.Error())
		}
		if coExists {
			return location, nil
		}
	}
	return "", fmt.Errorf("unable to find a CODEOWNERS file at the supported paths: %v", SupportedLocations)
}

// Return whether or not the specified file can be found within the file system. Note that Linux has
// a case sensitive file system, but Mac (surprisingly) and Windows do not.
func fileExists(filePath string) (bool, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return false, err
	}
	if stat.IsDir() {
		return false, fmt.Errorf("'%v' is a directory, not a file", filePath)
	}
	return true, nil
}

// ReadLines reads the specified file and splits it into lines, handling both
// Windows and Linux line endings.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read CODEOWNERS file at path '%v': %w", path, err)
	}
	return strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n"), nil
}

// ParseFile reads a CODEOWNERS file into an ordered list of entries. A file
// that cannot be read is not fatal: the search should still run, it will just
// have no entries to work with.
func ParseFile(path string) Entries {
	lines, err := ReadLines(path)
	if err != nil {
		slog.Warn("continuing with no CODEOWNERS entries", "error", err)
		return nil
	}
	return ParseLines(lines)
}

// ParseLines turns CODEOWNERS lines into entries. Blank lines, comments,
// [section headings] and lines without an owner portion produce no entry.
// Only @-prefixed owner tokens are retained; everything else on the right
// side of a line is silently dropped, just like GitLab drops it.
func ParseLines(lines []string) (entries Entries) {
	for _, line := range lines {
		sectionHeading, filePattern, ownerPart := splitCodeownersLine(line)
		if sectionHeading != "" || filePattern == "" || ownerPart == "" {
			continue
		}
		usersOrGroups, _, _ := splitOwnerPatterns(ownerPart)
		entries = append(entries, Entry{PathPattern: filePattern, Owners: usersOrGroups})
	}
	return
}

// ForOwner returns the entries whose owner set contains the specified owner.
// The comparison is an exact match, ignoring case.
func (entries Entries) ForOwner(owner string) (owned Entries) {
	for _, entry := range entries {
		for _, o := range entry.Owners {
			if strings.EqualFold(o, owner) {
				owned = append(owned, entry)
				break
			}
		}
	}
	return
}

// Analyze reads a CODEOWNERS file and reports the unique patterns it
// contains, grouped by kind.
func Analyze(path string) (*CodeownersAnatomy, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	anatomy := &CodeownersAnatomy{
		CodeownersFilePath:  path,
		CodeownersFileLines: lines,
	}
	sectionHeadings := newUniqueList()
	filePatterns := newUniqueList()
	userAndGroupPatterns := newUniqueList()
	emailPatterns := newUniqueList()
	ignoredPatterns := newUniqueList()
	for _, line := range lines {
		sectionHeading, filePattern, ownerPart := splitCodeownersLine(line)
		sectionHeadings.add(sectionHeading)
		filePatterns.add(filePattern)
		usersOrGroups, emails, ignored := splitOwnerPatterns(ownerPart)
		for _, ug := range usersOrGroups {
			userAndGroupPatterns.add(ug)
		}
		for _, e := range emails {
			emailPatterns.add(e)
		}
		for _, i := range ignored {
			ignoredPatterns.add(i)
		}
	}
	anatomy.SectionHeadings = sectionHeadings.values
	anatomy.FilePatterns = filePatterns.values
	anatomy.UserAndGroupPatterns = userAndGroupPatterns.values
	anatomy.EmailPatterns = emailPatterns.values
	anatomy.IgnoredPatterns = ignoredPatterns.values
	return anatomy, nil
}

// A set that remembers insertion order, so the lint report is deterministic.
type uniqueList struct {
	seen   map[string]bool
	values []string
}

func newUniqueList() *uniqueList {
	return &uniqueList{seen: map[string]bool{}}
}

func (u *uniqueList) add(value string) {
	if value == "" || u.seen[value] {
		return
	}
	u.seen[value] = true
	u.values = append(u.values, value)
}

// Split the owner portion of a CODEOWNERS line into its individual @user/@group and email patterns.
// Note: Owner patterns that don't contain '@' are ignored by GitLab. This behavior is described
// here: https://docs.gitlab.com/ee/user/project/codeowners/reference.html#example-codeowners-file
func splitOwnerPatterns(ownerPatterns string) (usersOrGroups []string, emails []string, ignored []string) {
	for _, o := range strings.Fields(ownerPatterns) {
		if strings.HasPrefix(o, OwnerSigil) {
			usersOrGroups = append(usersOrGroups, o)
		} else if strings.Contains(o, OwnerSigil) {
			emails = append(emails, o)
		} else {
			ignored = append(ignored, o)
		}
	}
	return
}

// Split each CODEOWNERS line into its main parts, with a [section heading] or file pattern on the
// left, and owner patterns on the right. Spaces and tabs can be escaped with '\', and a section
// heading may contain them unescaped up to its closing ']'.
func splitCodeownersLine(line string) (sectionHeading string, filePattern string, ownerPatterns string) {
	line = strings.TrimSpace(line)
	// Skip any blank/whitespace or comment lines
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	// A section heading is indicated by a line starting with "[" or "^["
	isSection := strings.HasPrefix(line, "[") || strings.HasPrefix(line, "^[")
	sectionEnded := false
	splitPosition := 0
	for i, c := range line {
		escaped := i > 0 && line[i-1] == '\\'
		if isSection && !sectionEnded {
			if !escaped && c == ']' {
				sectionEnded = true
			}
			continue
		}
		if !escaped && (c == ' ' || c == '\t') {
			splitPosition = i
			break
		}
	}

	// If no split position was found, the whole line is either a [section heading] or a naked file pattern
	if splitPosition == 0 {
		if isSection {
			sectionHeading = line
		} else {
			filePattern = line
		}
		return
	}

	if isSection {
		sectionHeading = line[:splitPosition]
	} else {
		filePattern = line[:splitPosition]
	}
	ownerPatterns = strings.TrimSpace(line[splitPosition+1:])
	return
}
