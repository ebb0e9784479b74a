package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/token"
)

var lexJSON bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream for a Sn source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "print one JSON object per token instead of text")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	a := arena.New()
	lx := lexer.New(string(content), filename, a)

	for {
		tok := lx.NextToken()
		if lexJSON {
			printTokenJSON(tok)
		} else {
			printTokenText(tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func printTokenText(tok token.Token) {
	fmt.Printf("%-12s %-8q line %d\n", tok.Kind, tok.Lexeme, tok.Pos.Line)
}

func printTokenJSON(tok token.Token) {
	fmt.Printf(`{"kind":%q,"lexeme":%q,"line":%d}`+"\n", tok.Kind.String(), tok.Lexeme, tok.Pos.Line)
}
