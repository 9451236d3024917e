package cmd

import (
	"bufio"
	"fmt"
	"os"

	arrowerrors "github.com/ahl00/go-arrow/internal/errors"
	"github.com/ahl00/go-arrow/pkg/arrow"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Arrow session",
	Long: `Read Arrow fragments line by line from stdin and evaluate each one
against a single persistent environment. A fragment must be a complete
statement (it still needs its trailing ';'); .vars prints the current
bindings and .exit (or EOF) ends the session.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	r := arrow.NewRepl(arrow.WithOutput(os.Stdout))
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintln(os.Stderr, "arrow repl — .vars to inspect bindings, .exit to quit")
	for {
		fmt.Fprint(os.Stderr, "» ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch line {
		case "":
			continue
		case ".exit":
			return nil
		case ".vars":
			for _, b := range r.Variables() {
				kw := "const"
				if b.Mutable {
					kw = "let"
				}
				fmt.Printf("%s %s: %s = %s\n", kw, b.Name, b.DeclaredType, b.Value)
			}
			continue
		}

		if err := r.Eval(line); err != nil {
			fmt.Fprintln(os.Stderr, arrowerrors.Format(err, line, "<repl>", !noColor))
		}
	}

	return scanner.Err()
}
