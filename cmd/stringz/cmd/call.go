package cmd

import (
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <method> <receiver> [args...]",
	Short: "Invoke an installed extension method by name",
	Long: `Looks up method in the extension registry and calls it on receiver.
Run "stringz ext" to list the installed methods.

Examples:
  stringz call fixSize testing 10 -
  stringz call replaceAllIgnoreCase Bob b m`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, args[0], args[1], args[2:]...)
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
