package cmd

import (
	"fmt"
	"os"

	"github.com/ara-lang/ara-parser/internal/source"
	"github.com/ara-lang/ara-parser/pkg/parser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Parse a whole source map and print a combined diagnostic report",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	setLogLevel()

	var sources []source.Source
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read source file", "path", path, "err", err)
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, source.New(path, content))
	}
	logger.Debug("checking source map", "files", len(sources))

	m := source.NewMap(sources...)
	_, report := parser.ParseMap(m)
	if report != nil {
		renderReport(report)
		return fmt.Errorf("%d file(s) failed to parse", len(args))
	}

	fmt.Printf("%d file(s) parsed without errors\n", len(args))
	return nil
}
