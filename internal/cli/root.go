package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "commit-format [selector]",
	Short: "Format git commit messages as Markdown",
	Long: "commit-format reads commit messages from git and prints them as a Markdown document. " +
		"Each subject becomes a level-2 heading and body headings are demoted one level. " +
		"With --paragraph, hard-wrapped prose is joined into one line per paragraph.",
	Example: `  commit-format                  # <init.defaultBranch>..HEAD
  commit-format -n 5 --paragraph # last five commits, reflowed
  commit-format v1.2.0..v1.3.0 --out CHANGELOG.md`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runFormat,
}

// Run executes the root command and returns an exit code.
func Run() int {
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

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print commit-format version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commit-format version %s\n", version)
	},
}

func init() {
	rootCmd.SetVersionTemplate("commit-format version {{.Version}}\n")
	addFormatFlags(rootCmd)
}
