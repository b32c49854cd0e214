package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Entries
	}{
		{
			name:  "well-formed line keeps sigil owners in order",
			lines: []string{"src/ @team-a @team-b"},
			want:  Entries{{PathPattern: "src/", Owners: []string{"@team-a", "@team-b"}}},
		},
		{
			name:  "non-sigil tokens are dropped but the pattern is kept",
			lines: []string{"docs/ @writers please review"},
			want:  Entries{{PathPattern: "docs/", Owners: []string{"@writers"}}},
		},
		{
			name:  "entry survives when no valid owner remains",
			lines: []string{"config/ nobody-here"},
			want:  Entries{{PathPattern: "config/", Owners: nil}},
		},
		{
			name:  "blank and comment lines produce no entry",
			lines: []string{"", "   ", "# a comment", "\t"},
			want:  nil,
		},
		{
			name:  "line with a single token produces no entry",
			lines: []string{"naked-pattern"},
			want:  nil,
		},
		{
			name:  "section heading lines produce no entry",
			lines: []string{"[Backend] @backend-team"},
			want:  nil,
		},
		{
			name: "file order is preserved",
			lines: []string{
				"*.md @docs",
				"src/ @team-a",
				"src/deep/ @team-a @team-b",
			},
			want: Entries{
				{PathPattern: "*.md", Owners: []string{"@docs"}},
				{PathPattern: "src/", Owners: []string{"@team-a"}},
				{PathPattern: "src/deep/", Owners: []string{"@team-a", "@team-b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLines(tt.lines))
		})
	}
}

func TestSplitCodeownersLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantSection string
		wantPattern string
		wantOwners  string
	}{
		{"plain entry", "src/ @team-a", "", "src/", "@team-a"},
		{"naked pattern", "src/", "", "src/", ""},
		{"section heading alone", "[Backend]", "[Backend]", "", ""},
		{"optional section heading", "^[Backend] @team-a", "^[Backend]", "", "@team-a"},
		{"section heading with spaces", "[Data Platform] @data", "[Data Platform]", "", "@data"},
		{"escaped space in pattern", `my\ file.txt @owner`, "", `my\ file.txt`, "@owner"},
		{"comment", "# src/ @team-a", "", "", ""},
		{"blank", "   ", "", "", ""},
		{"tab separated", "src/\t@team-a", "", "src/", "@team-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, pattern, owners := splitCodeownersLine(tt.line)
			assert.Equal(t, tt.wantSection, section, "section heading")
			assert.Equal(t, tt.wantPattern, pattern, "file pattern")
			assert.Equal(t, tt.wantOwners, owners, "owner patterns")
		})
	}
}

func TestSplitOwnerPatterns(t *testing.T) {
	usersOrGroups, emails, ignored := splitOwnerPatterns("@team-a ted.spinks@cdw.com not-an-owner @ted")
	assert.Equal(t, []string{"@team-a", "@ted"}, usersOrGroups)
	assert.Equal(t, []string{"ted.spinks@cdw.com"}, emails)
	assert.Equal(t, []string{"not-an-owner"}, ignored)
}

func TestForOwner(t *testing.T) {
	entries := Entries{
		{PathPattern: "src/", Owners: []string{"@team-a"}},
		{PathPattern: "docs/", Owners: []string{"@team-b"}},
		{PathPattern: "lib/", Owners: []string{"@Team-A", "@team-b"}},
	}

	owned := entries.ForOwner("@TEAM-A")
	require.Len(t, owned, 2)
	assert.Equal(t, "src/", owned[0].PathPattern)
	assert.Equal(t, "lib/", owned[1].PathPattern)

	assert.Empty(t, entries.ForOwner("@nobody"))
	// Membership is an exact match, not a substring match
	assert.Empty(t, entries.ForOwner("@team"))
}

func TestParseFileMissing(t *testing.T) {
	entries := ParseFile(filepath.Join(t.TempDir(), "CODEOWNERS"))
	assert.Empty(t, entries)
}

func TestFindPath(t *testing.T) {
	t.Run("prefers the repo root location", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "CODEOWNERS"), []byte("a @b\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "CODEOWNERS"), []byte("a @b\n"), 0o644))
		t.Chdir(dir)

		path, err := FindPath()
		require.NoError(t, err)
		assert.Equal(t, "CODEOWNERS", path)
	})

	t.Run("falls back to docs", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "CODEOWNERS"), []byte("a @b\n"), 0o644))
		t.Chdir(dir)

		path, err := FindPath()
		require.NoError(t, err)
		assert.Equal(t, "docs/CODEOWNERS", path)
	})

	t.Run("errors when no file exists", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := FindPath()
		assert.Error(t, err)
	})
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	coPath := filepath.Join(dir, "CODEOWNERS")
	content := "# header comment\n" +
		"[Backend]\n" +
		"src/ @team-a stray-token\n" +
		"src/ @team-a\n" +
		"docs/ ted.spinks@cdw.com\n"
	require.NoError(t, os.WriteFile(coPath, []byte(content), 0o644))

	anatomy, err := Analyze(coPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"[Backend]"}, anatomy.SectionHeadings)
	assert.Equal(t, []string{"src/", "docs/"}, anatomy.FilePatterns)
	assert.Equal(t, []string{"@team-a"}, anatomy.UserAndGroupPatterns)
	assert.Equal(t, []string{"ted.spinks@cdw.com"}, anatomy.EmailPatterns)
	assert.Equal(t, []string{"stray-token"}, anatomy.IgnoredPatterns)
}

func TestReadLinesHandlesWindowsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CODEOWNERS")
	require.NoError(t, os.WriteFile(path, []byte("a @b\r\nc @d\n"), 0o644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a @b", "c @d", ""}, lines)
}
