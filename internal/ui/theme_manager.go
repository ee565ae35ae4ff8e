package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repopitch/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	// Color values (as lipgloss.Color)
	ColorAccent    lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorText      lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color

	// Header styles
	Header       lipgloss.Style
	SectionTitle lipgloss.Style
	Metadata     lipgloss.Style

	// Option styles
	OptionSelected lipgloss.Style
	OptionNormal   lipgloss.Style
	OptionCursor   lipgloss.Style
	Description    lipgloss.Style

	// Option box styles (theme picker)
	SelectedOptionBox lipgloss.Style
	NormalOptionBox   lipgloss.Style
	OptionLabel       lipgloss.Style
	OptionDesc        lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Status indicator styles
	StatusOk      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	// Form component styles
	FormLabel          lipgloss.Style
	FormInput          lipgloss.Style
	FormInputFocused   lipgloss.Style
	FormHelp           lipgloss.Style
	FormButton         lipgloss.Style
	FormButtonInactive lipgloss.Style

	// Slide rendering styles
	SlideFrame    lipgloss.Style
	SlideTitle    lipgloss.Style
	SlideBody     lipgloss.Style
	SlideBullet   lipgloss.Style
	SlideMedia    lipgloss.Style
	ChartBar      lipgloss.Style
	ChartLabel    lipgloss.Style
	ThumbActive   lipgloss.Style
	ThumbNormal   lipgloss.Style
	WarningBanner lipgloss.Style

	// Loading style
	Loading lipgloss.Style

	// Separator style
	Separator lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

// RenderSeparator renders a horizontal separator at the given width.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors

	colorAccent := lipgloss.Color(c.Accent)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorText := lipgloss.Color(c.Text)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)

	tm.styles.ColorAccent = colorAccent
	tm.styles.ColorSecondary = colorSecondary
	tm.styles.ColorText = colorText
	tm.styles.ColorMuted = colorMuted
	tm.styles.ColorBorder = colorBorder

	tm.styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	tm.styles.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary).
		MarginTop(1)

	tm.styles.Metadata = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	tm.styles.OptionSelected = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.OptionNormal = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.OptionCursor = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.Description = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true).
		PaddingLeft(3)

	tm.styles.SelectedOptionBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1).
		MarginBottom(1)

	tm.styles.NormalOptionBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1).
		MarginBottom(1)

	tm.styles.OptionLabel = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	tm.styles.OptionDesc = lipgloss.NewStyle().
		Foreground(colorMuted).
		PaddingLeft(2)

	tm.styles.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		PaddingTop(1)

	tm.styles.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.StatusOk = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7A9A6E")).
		Bold(true)

	tm.styles.StatusWarning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D4945A")).
		Bold(true)

	tm.styles.StatusError = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C16B6B")).
		Bold(true)

	tm.styles.StatusInfo = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.FormLabel = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		Width(16)

	tm.styles.FormInput = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	tm.styles.FormInputFocused = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)

	tm.styles.FormHelp = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	tm.styles.FormButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.currentTheme.Colors.Background)).
		Background(colorAccent).
		Padding(0, 3).
		Bold(true)

	tm.styles.FormButtonInactive = lipgloss.NewStyle().
		Foreground(colorMuted).
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	tm.styles.SlideFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	tm.styles.SlideTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		MarginBottom(1)

	tm.styles.SlideBody = lipgloss.NewStyle().
		Foreground(colorText)

	tm.styles.SlideBullet = lipgloss.NewStyle().
		Foreground(colorText).
		PaddingLeft(2)

	tm.styles.SlideMedia = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Underline(true)

	tm.styles.ChartBar = lipgloss.NewStyle().
		Foreground(colorAccent)

	tm.styles.ChartLabel = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.ThumbActive = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.ThumbNormal = lipgloss.NewStyle().
		Foreground(colorMuted)

	tm.styles.WarningBanner = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D4945A")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#D4945A")).
		Padding(0, 1)

	tm.styles.Loading = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	tm.styles.Separator = lipgloss.NewStyle().
		Foreground(colorBorder).
		MarginTop(1).
		MarginBottom(1)
}
