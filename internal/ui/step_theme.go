package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repopitch/internal/domain"
)

// ThemeScreen picks the deck theme.
type ThemeScreen struct {
	step       int
	totalSteps int

	themes []domain.Theme
	cursor int

	shouldContinue bool
	shouldGoBack   bool
}

// NewThemeScreen creates a new theme selection screen
func NewThemeScreen(step, totalSteps int, selected string) ThemeScreen {
	themes := AllThemes()
	cursor := 0
	for i, theme := range themes {
		if theme.Name == selected {
			cursor = i
		}
	}

	return ThemeScreen{
		step:       step,
		totalSteps: totalSteps,
		themes:     themes,
		cursor:     cursor,
	}
}

// Init initializes the screen
func (m ThemeScreen) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted theme.
func (m ThemeScreen) Selected() domain.Theme {
	return m.themes[m.cursor]
}

// Update handles messages
func (m ThemeScreen) Update(msg tea.Msg) (ThemeScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.themes)) % len(m.themes)
			return m, nil
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.themes)
			return m, nil
		case "enter":
			m.shouldContinue = true
			return m, nil
		case "left", "esc":
			m.shouldGoBack = true
			return m, nil
		}
	}

	return m, nil
}

// ShouldContinue returns true when a theme was chosen
func (m ThemeScreen) ShouldContinue() bool {
	return m.shouldContinue
}

// ShouldGoBack returns true when the user navigated back
func (m ThemeScreen) ShouldGoBack() bool {
	return m.shouldGoBack
}

// View renders the theme screen
func (m ThemeScreen) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	sections = append(sections, headerStyle.Render("Choose a Theme"))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Step %d of %d", m.step, m.totalSteps)))
	sections = append(sections, "")

	for i, theme := range m.themes {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Colors.Text)).
			Background(lipgloss.Color(theme.Colors.Background)).
			Padding(0, 1).
			Render("Aa") +
			" " +
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Colors.Accent)).
				Render("●●●")

		content := styles.OptionLabel.Render(theme.Label) + "  " + swatch + "\n" +
			styles.OptionDesc.Render(theme.Description)

		if i == m.cursor {
			sections = append(sections, styles.SelectedOptionBox.Render(content))
		} else {
			sections = append(sections, styles.NormalOptionBox.Render(content))
		}
	}

	sections = append(sections, footerStyle.Render(
		styles.ShortcutKey.Render("↑/↓")+styles.ShortcutDesc.Render(" select  ")+
			styles.ShortcutKey.Render("enter")+styles.ShortcutDesc.Render(" continue  ")+
			styles.ShortcutKey.Render("←")+styles.ShortcutDesc.Render(" back")))

	return strings.Join(sections, "\n")
}
