package cmd

import (
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"
)

const version = "0.1.0-dev"

// logger is the CLI's leveled logger for non-data diagnostics (I/O errors,
// verbose trace of which file is being parsed). The parser core itself
// never logs (SPEC_FULL.md AMBIENT STACK, "Logging").
var logger = charmlog.New(os.Stderr)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "ara-parse",
	Short:   "Parse Ara source files and inspect tokens, trees, and diagnostics",
	Version: version,
}

// Execute runs the root command, returning the error cobra produced (if
// any) after it has already been printed to stderr.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log verbose trace output")
}

func setLogLevel() {
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
		return
	}
	logger.SetLevel(charmlog.WarnLevel)
}
