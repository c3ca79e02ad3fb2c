package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes. Per-file failures never change the exit code; only a failed
// precondition (missing root) or a failed traversal does.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "sarscrub",
	Short: "Sanitize exported email archives for review",
	Long: "Sarscrub prepares an extracted email export for disclosure review in three\n" +
		"sequential stages: filter (prune attachment noise, convert HTML bodies to\n" +
		"text), redact-headers (blank header fields and email addresses), and\n" +
		"redact-words (blank operator-listed words and phrases).",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(headersCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// runtimeErr reports a stage failure and marks the process exit code
// without triggering cobra's usage output.
func runtimeErr(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitRuntimeError
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sarscrub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "sarscrub version %s\n", version)
	},
}
