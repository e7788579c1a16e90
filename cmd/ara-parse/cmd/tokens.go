package cmd

import (
	"fmt"
	"os"

	"github.com/ara-lang/ara-parser/pkg/lexer"
	"github.com/ara-lang/ara-parser/pkg/token"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a single Ara source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	setLogLevel()
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read source file", "path", path, "err", err)
		return fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Debug("tokenizing", "path", path, "bytes", len(content))

	lx := lexer.New(path, content)
	tokens, fatal := lx.Tokenize()
	if fatal != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", fatal.Code, fatal.Start, fatal.Message)
		return fmt.Errorf("lexing %s failed", path)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "KIND", "VALUE", "SPAN"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i, tok.Kind, tok.Value, tok.Span})
		if tok.Kind == token.Eof {
			break
		}
	}
	t.Render()
	return nil
}
