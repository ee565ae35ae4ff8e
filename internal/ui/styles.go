package ui

import "github.com/charmbracelet/lipgloss"

// defaultThemeManager is the global theme manager instance.
// Initialized with the Modern theme and replaced when the application
// loads the user's theme preference or the wizard picks a theme.
var defaultThemeManager *ThemeManager

func init() {
	defaultThemeManager = NewThemeManager(ThemeModern)
	refreshPackageStyles()
}

// SetGlobalTheme updates the global theme manager with a new theme.
// After calling this, all UI components render with the new palette.
func SetGlobalTheme(name string) {
	defaultThemeManager.SetTheme(GetThemeByName(name))
	refreshPackageStyles()
}

// GetGlobalThemeManager returns the global theme manager instance.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Package-level colors and styles used by the form components and CLI
// output. Kept in sync with the global theme by refreshPackageStyles.
var (
	colorPrimary lipgloss.Color
	colorText    lipgloss.Color
	colorMuted   lipgloss.Color

	colorSuccess = lipgloss.Color("#7A9A6E")
	colorWarning = lipgloss.Color("#D4945A")
	colorError   = lipgloss.Color("#C16B6B")

	headerStyle            lipgloss.Style
	metadataStyle          lipgloss.Style
	statusWarningStyle     lipgloss.Style
	formLabelStyle         lipgloss.Style
	formInputStyle         lipgloss.Style
	formInputFocusedStyle  lipgloss.Style
	formHelpStyle          lipgloss.Style
	formButtonStyle        lipgloss.Style
	formButtonInactiveStyle lipgloss.Style
	optionSelectedStyle    lipgloss.Style
	optionNormalStyle      lipgloss.Style
	optionCursorStyle      lipgloss.Style
	footerStyle            lipgloss.Style
)

func refreshPackageStyles() {
	s := defaultThemeManager.GetStyles()

	colorPrimary = s.ColorAccent
	colorText = s.ColorText
	colorMuted = s.ColorMuted

	headerStyle = s.Header
	metadataStyle = s.Metadata
	statusWarningStyle = s.StatusWarning
	formLabelStyle = s.FormLabel
	formInputStyle = s.FormInput
	formInputFocusedStyle = s.FormInputFocused
	formHelpStyle = s.FormHelp
	formButtonStyle = s.FormButton
	formButtonInactiveStyle = s.FormButtonInactive
	optionSelectedStyle = s.OptionSelected
	optionNormalStyle = s.OptionNormal
	optionCursorStyle = s.OptionCursor
	footerStyle = s.Footer
}

func renderSeparator(width int) string {
	return defaultThemeManager.RenderSeparator(width)
}
