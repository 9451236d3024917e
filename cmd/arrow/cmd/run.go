package cmd

import (
	"fmt"
	"io"
	"os"

	arrowerrors "github.com/ahl00/go-arrow/internal/errors"
	"github.com/ahl00/go-arrow/pkg/arrow"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Arrow script",
	Long: `Execute an Arrow program from a file, stdin, or an inline expression
and print the final environment snapshot.

Examples:
  arrow run script.ar
  arrow run -e "let x: i32 = 2 + 2; print(x);"
  cat script.ar | arrow run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from file")
}

func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	log.Debug().Str("file", filename).Int("bytes", len(source)).Msg("running")

	snapshot, runErr := arrow.New(arrow.WithOutput(os.Stdout)).DriveOnce(source)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, arrowerrors.Format(runErr, source, filename, !noColor))
		return fmt.Errorf("execution failed")
	}

	for _, b := range snapshot {
		kw := "const"
		if b.Mutable {
			kw = "let"
		}
		fmt.Printf("%s %s: %s = %s\n", kw, b.Name, b.DeclaredType, b.Value)
	}

	return nil
}
