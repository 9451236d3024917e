// Command arrow drives the scanner, parser, and evaluator over a script
// file or interactive session.
package main

import (
	"os"

	"github.com/ahl00/go-arrow/cmd/arrow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
