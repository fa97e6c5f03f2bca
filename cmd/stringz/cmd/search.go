package cmd

import (
	"github.com/spf13/cobra"
)

var replaceIgnoreCase bool

var replaceCmd = &cobra.Command{
	Use:   "replace <string> <old> <new>",
	Short: "Replace every literal occurrence of old with new",
	Long: `old is matched literally, never as a pattern, and new is inserted
as given.

Examples:
  stringz replace Bobby b d
  stringz replace -i Bobby b d`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := "replaceAll"
		if replaceIgnoreCase {
			method = "replaceAllIgnoreCase"
		}
		return call(cmd, method, args[0], args[1], args[2])
	},
}

var escapeCmd = &cobra.Command{
	Use:   "escape <string>",
	Short: "Escape regular expression metacharacters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "escapeRegEx", args[0])
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <string> <needle>",
	Short: "Report whether needle occurs in the string, ignoring case",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "containsIgnoreCase", args[0], args[1])
	},
}

var startsCmd = &cobra.Command{
	Use:   "starts <string> <prefix>",
	Short: "Report whether the string starts with prefix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "startsWith", args[0], args[1])
	},
}

var endsCmd = &cobra.Command{
	Use:   "ends <string> <suffix>",
	Short: "Report whether the string ends with suffix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "endsWith", args[0], args[1])
	},
}

var combineCmd = &cobra.Command{
	Use:   "combine <a> <b>",
	Short: "Join two strings and collapse whitespace runs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "combineStr", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(startsCmd)
	rootCmd.AddCommand(endsCmd)
	rootCmd.AddCommand(combineCmd)

	replaceCmd.Flags().BoolVarP(&replaceIgnoreCase, "ignore-case", "i", false, "match old without regard to case")
}
