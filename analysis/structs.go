package analysis

// Entry is one parsed CODEOWNERS line: the file pattern on the left plus
// every @-prefixed owner that followed it. Tokens without the owner sigil
// (inline comments, stray words) are dropped, but the pattern itself is kept
// even when no valid owner remains.
type Entry struct {
	PathPattern string
	Owners      []string
}

// Entries preserves file order, because real CODEOWNERS semantics give
// later entries priority over earlier ones.
type Entries []Entry

// CodeownersAnatomy records the unique patterns found across a CODEOWNERS
// file, grouped by kind, for the lint report.
type CodeownersAnatomy struct {
	CodeownersFilePath   string
	CodeownersFileLines  []string
	SectionHeadings      []string
	FilePatterns         []string
	UserAndGroupPatterns []string
	EmailPatterns        []string
	IgnoredPatterns      []string
}
