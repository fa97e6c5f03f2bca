package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// methodHelp describes the builtin methods for the listing; unknown names
// are listed without usage
var methodHelp = map[string][2]string{
	"startsWith":           {"<prefix>", "true if the receiver starts with prefix"},
	"endsWith":             {"<suffix>", "true if the receiver ends with suffix"},
	"containsIgnoreCase":   {"<needle>", "true if needle occurs, ignoring case"},
	"replaceAll":           {"<old> <new>", "replace every literal old with new"},
	"replaceAllIgnoreCase": {"<old> <new>", "replaceAll ignoring case"},
	"escapeRegEx":          {"", "escape regex metacharacters"},
	"times":                {"<count>", "repeat count times; 0 is null"},
	"pad":                  {"<size> [char]", "pad right (+) or left (-)"},
	"chop":                 {"<size>", "remove from end (+) or start (-)"},
	"fixSize":              {"<size> [char]", "chop or pad to abs(size)"},
	"fmt":                  {"[args...]", "fill %{N} and %{s} placeholders"},
	"combineStr":           {"<other>", "join and collapse whitespace"},
}

var extCmd = &cobra.Command{
	Use:   "ext",
	Short: "List the installed extension methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := app.registry.Names()

		rows := make([]string, 0, len(names)+1)
		rows = append(rows, HeaderStyle.Render(fmt.Sprintf("Installed extensions (%d)", len(names))))
		for _, name := range names {
			help := methodHelp[name]
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				NameStyle.Render(name),
				UsageStyle.Render(help[0]),
				DescriptionStyle.Render(help[1]),
			))
		}

		fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, rows...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extCmd)
}
