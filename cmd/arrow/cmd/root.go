package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var (
	verbose bool
	noColor bool
)

var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "arrow",
	Short: "Arrow interpreter",
	Long: `arrow is a scanner, parser, and tree-walking evaluator for the Arrow
scripting language: a small statically-typed imperative language with
let/const declarations, if/while control flow, and a single built-in
print function.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in error output")
}
