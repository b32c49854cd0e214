package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type envVarArgs struct {
	Debug          bool   `env:"DEBUG" envDefault:"false"`
	IgnoreFileName string `env:"SEARCH_IGNORE_FILE" envDefault:".searchignore"`
}

var cfg envVarArgs

var rootCmd = &cobra.Command{
	Use:   "codeowners-search <searchTerm> <ownerIdentifier>",
	Short: "Search the files owned by a CODEOWNERS owner",
	Long: `Search the files that a CODEOWNERS owner is responsible for.

Reads the CODEOWNERS file from one of GitLab's 3 supported locations, picks
the entries belonging to the given owner, and runs a case-insensitive
substring search over the owned files. Paths matching a pattern in the
ignore file at the working-directory root are excluded from the search.

Examples:
  codeowners-search TODO @platform-team
  codeowners-search "deprecated" @ted.spinks`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: setup,
	RunE:              runSearch,
}

// Get args from env vars (with an optional .env file) and set up logging.
// Runs after cobra has validated the positional args, so a bad invocation
// never touches the file system.
func setup(cmd *cobra.Command, args []string) error {
	// A .env file is optional, so its absence is fine
	_ = godotenv.Load()
	opts := env.Options{RequiredIfNoDef: true}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return err
	}
	setLogLevel(cfg.Debug)
	return nil
}

func setLogLevel(setToDebug bool) {
	logLevel := slog.LevelInfo
	if setToDebug {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
