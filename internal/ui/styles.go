package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - using ANSI 16 colors for broad terminal support
var (
	ColorCyan   = lipgloss.Color("6")
	ColorYellow = lipgloss.Color("3")
	ColorRed    = lipgloss.Color("1")
	ColorGreen  = lipgloss.Color("2")
	ColorGray   = lipgloss.Color("8")
)

// Text styles
var (
	// Status messages ("Generating workload...")
	StatusStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)

	// Error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// Success messages
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// Labels (row names in the results box)
	LabelStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// Highlighted numbers (speedup, hit rate)
	NumberStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
)

// Box styles for sections
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)
)
