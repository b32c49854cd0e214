package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/tedspinks/codeowners-search/analysis"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report the anatomy of the local CODEOWNERS file",
	Long: `Analyze the CODEOWNERS file and report its unique section headings,
file patterns, user/group owners and e-mail owners, plus any tokens that
CODEOWNERS semantics would silently ignore.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	coPath, err := analysis.FindPath()
	if err != nil {
		return err
	}
	anatomy, err := analysis.Analyze(coPath)
	if err != nil {
		return err
	}
	fmt.Println("Analyzed " + anatomy.CodeownersFilePath)
	printPatternGroup("Section headings", anatomy.SectionHeadings)
	printPatternGroup("File patterns", anatomy.FilePatterns)
	printPatternGroup("User/group owners", anatomy.UserAndGroupPatterns)
	printPatternGroup("Email owners", anatomy.EmailPatterns)
	if len(anatomy.IgnoredPatterns) > 0 {
		color.New(color.FgYellow).Printf("Ignored tokens (no '%v'): %v\n",
			analysis.OwnerSigil, strings.Join(anatomy.IgnoredPatterns, ", "))
	}
	return nil
}

func printPatternGroup(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Println(label + ": " + strings.Join(values, ", "))
}
