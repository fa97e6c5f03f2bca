package cmd

import (
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <template> [args...]",
	Short: "Fill a template with indexed and sequential arguments",
	Long: `Replaces %{N} with the N-th argument and each %{s} with the next
argument in order. Placeholders without an argument become "undefined".

Examples:
  stringz fmt "The %{0} %{1} %{2}" quick brown fox
  stringz fmt "The %{s} %{s} %{s}" quick brown fox
  stringz fmt "%{0} %{s} %{1}" a b`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "fmt", args[0], args[1:]...)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
