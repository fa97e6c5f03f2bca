package cmd

import (
	"github.com/spf13/cobra"
)

var (
	padCharFlag string
	fixCharFlag string
)

var repeatCmd = &cobra.Command{
	Use:   "repeat <string> <count>",
	Short: "Repeat a string count times",
	Long: `Concatenates the string to itself count times. A count of 0 prints
null; 1 or any negative count prints the string unchanged.

Examples:
  stringz repeat "*" 10
  stringz repeat "ab" 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "times", args[0], args[1])
	},
}

var padCmd = &cobra.Command{
	Use:   "pad <string> <size>",
	Short: "Pad a string on the right (size > 0) or left (size < 0)",
	Long: `Adds abs(size) copies of the pad character. A multi-character pad
is repeated whole.

Examples:
  stringz pad "*" 5 --char -
  stringz pad --char - -- "*" -5

Negative sizes must follow "--" so they are not read as flags.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "pad", args[0], args[1], padChar(padCharFlag))
	},
}

var chopCmd = &cobra.Command{
	Use:   "chop <string> <size>",
	Short: "Remove characters from the end (size > 0) or start (size < 0)",
	Long: `Removes abs(size) characters. Prints null when nothing would remain.

Examples:
  stringz chop testing 3
  stringz chop -- testing -4

Negative sizes must follow "--" so they are not read as flags.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "chop", args[0], args[1])
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix <string> <size>",
	Short: "Chop or pad a string to exactly abs(size) characters",
	Long: `Works on the right end for positive sizes and on the left end for
negative sizes. A size of 0 prints null.

Examples:
  stringz fix testing 10 --char -
  stringz fix -- testing -3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, "fixSize", args[0], args[1], padChar(fixCharFlag))
	},
}

func init() {
	rootCmd.AddCommand(repeatCmd)
	rootCmd.AddCommand(padCmd)
	rootCmd.AddCommand(chopCmd)
	rootCmd.AddCommand(fixCmd)

	padCmd.Flags().StringVarP(&padCharFlag, "char", "c", "", "pad character (default: pad.char from config)")
	fixCmd.Flags().StringVarP(&fixCharFlag, "char", "c", "", "pad character (default: pad.char from config)")
}
