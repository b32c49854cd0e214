package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var ownersCmd = &cobra.Command{
	Use:   "owners <path>",
	Short: "Resolve the owners of a single path",
	Long: `Match the given path against every CODEOWNERS entry using real
CODEOWNERS glob semantics: the last matching entry wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runOwners,
}

func init() {
	rootCmd.AddCommand(ownersCmd)
}

func runOwners(cmd *cobra.Command, args []string) error {
	path := args[0]
	owners := loadEntries().OwnersFor(path)
	if len(owners) == 0 {
		fmt.Printf("No owners found for '%v'\n", path)
		return nil
	}
	fmt.Printf("Owners of '%v': %v\n", path, strings.Join(owners, ", "))
	return nil
}
