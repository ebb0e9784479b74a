package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sn-lang/snc/internal/arena"
	"github.com/sn-lang/snc/internal/diag"
	"github.com/sn-lang/snc/internal/lexer"
	"github.com/sn-lang/snc/internal/parser"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the parsed AST for a Sn source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the module as a single JSON object instead of text")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	bag := diag.NewBag(string(content))
	a := arena.New()
	lx := lexer.New(string(content), filename, a)
	p := parser.New(lx, filename, bag, a)
	mod := p.ParseModule()

	if bag.HadError() {
		fmt.Fprint(os.Stderr, bag.String())
		return fmt.Errorf("parsing failed with %d error(s)", len(bag.Diagnostics))
	}

	if parseJSON {
		fmt.Printf(`{"filename":%q,"statementCount":%d}`+"\n", mod.Filename, len(mod.Statements))
		return nil
	}

	for _, stmt := range mod.Statements {
		fmt.Println(stmt.String())
	}
	return nil
}
