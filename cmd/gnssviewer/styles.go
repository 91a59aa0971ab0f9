package main

import "github.com/charmbracelet/lipgloss"

// Palette drawn from the catalog UI colors.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00aaff")).
			Bold(true)

	styleSection = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00cc88")).
			Bold(true).
			MarginTop(1)

	styleKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff9900")).
			Width(18)

	styleValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f8f9fa"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00cc66")).
		Bold(true)
)

// swatch renders a colored block next to its hex code.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}
