package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Cell colors by layer index; cycles when the table is longer.
var layerColors = []lipgloss.Color{
	lipgloss.Color("#DAC68C"), // sand
	lipgloss.Color("#6EAA5A"), // grass
	lipgloss.Color("#828282"), // rock
	lipgloss.Color("#F0F0F5"), // snow
	lipgloss.Color("#A0785A"), // dirt
}

var waterCellColor = lipgloss.Color("#3C6EC8")

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#383838")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B8B8B")).
			Italic(true).
			Padding(0, 1)
)

// cellStyle renders one two-column terrain cell in the given color.
func cellStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(c).SetString("  ")
}
