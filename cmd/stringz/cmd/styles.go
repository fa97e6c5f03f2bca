package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the extension listing
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(22)

	UsageStyle = lipgloss.NewStyle().
			Width(26)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)
