package cmd

import (
	"fmt"
	"os"

	arrowerrors "github.com/ahl00/go-arrow/internal/errors"
	"github.com/ahl00/go-arrow/internal/token"
	"github.com/ahl00/go-arrow/pkg/arrow"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an Arrow file or expression",
	Long: `Tokenize an Arrow program and print the resulting token stream, one
token per line.

Examples:
  arrow lex script.ar
  arrow lex -e "let x: i32 = 1;"
  arrow lex --show-pos script.ar`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func lexScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexErr := arrow.New().Lex(source)
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, arrowerrors.Format(lexErr, source, filename, !noColor))
		return fmt.Errorf("tokenizing failed")
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("%-12s", tok.Kind)
	if tok.Kind == token.OPERATOR {
		out += fmt.Sprintf(" %q", tok.Op)
	} else if tok.Literal != "" {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
