package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func prefix(color lipgloss.Color, tag string) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(tag)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", prefix(colorSuccess, "[SUCCESS]"), message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("%s %s\n", prefix(colorError, "[ERROR]"), message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", prefix(colorPrimary, "[INFO]"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", prefix(colorWarning, "[WARNING]"), message)
}

// PrintSubtle prints a muted/subtle message
func PrintSubtle(message string) {
	fmt.Println(lipgloss.NewStyle().Foreground(colorMuted).Render(message))
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(value)
}
