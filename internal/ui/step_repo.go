package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RepoScreen collects the GitHub repository URL.
type RepoScreen struct {
	step       int
	totalSteps int

	urlInput TextInput
	errText  string

	shouldContinue bool
	shouldQuit     bool
}

// NewRepoScreen creates a new repository URL screen
func NewRepoScreen(step, totalSteps int) RepoScreen {
	input := NewTextInput("Repository URL", "https://github.com/owner/repo")
	input.Focused = true
	input.Width = 52

	return RepoScreen{
		step:       step,
		totalSteps: totalSteps,
		urlInput:   input,
	}
}

// Init initializes the screen
func (m RepoScreen) Init() tea.Cmd {
	return nil
}

// URL returns the entered repository URL.
func (m RepoScreen) URL() string {
	return strings.TrimSpace(m.urlInput.Value)
}

// ValidRepoURL reports whether a URL looks like a full GitHub
// repository address.
func ValidRepoURL(url string) bool {
	if !strings.HasPrefix(url, "https://github.com/") {
		return false
	}
	return len(strings.Split(url, "/")) >= 5
}

// Update handles messages
func (m RepoScreen) Update(msg tea.Msg) (RepoScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if !ValidRepoURL(m.URL()) {
				m.errText = "Enter a full GitHub repository URL, e.g. https://github.com/owner/repo"
				return m, nil
			}
			m.errText = ""
			m.shouldContinue = true
			return m, nil
		case "esc":
			m.shouldQuit = true
			return m, nil
		default:
			m.urlInput.Update(msg)
			m.errText = ""
			return m, nil
		}
	}

	return m, nil
}

// ShouldContinue returns true when the screen is done
func (m RepoScreen) ShouldContinue() bool {
	return m.shouldContinue
}

// ShouldQuit returns true when the user asked to leave
func (m RepoScreen) ShouldQuit() bool {
	return m.shouldQuit
}

// View renders the repository screen
func (m RepoScreen) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	logoStyle := lipgloss.NewStyle().
		Foreground(styles.ColorAccent).
		Bold(true)

	logo := logoStyle.Render(`
  ██████╗ ███████╗██████╗  ██████╗     ██████╗ ██╗████████╗ ██████╗██╗  ██╗
  ██╔══██╗██╔════╝██╔══██╗██╔═══██╗    ██╔══██╗██║╚══██╔══╝██╔════╝██║  ██║
  ██████╔╝█████╗  ██████╔╝██║   ██║    ██████╔╝██║   ██║   ██║     ███████║
  ██╔══██╗██╔══╝  ██╔═══╝ ██║   ██║    ██╔═══╝ ██║   ██║   ██║     ██╔══██║
  ██║  ██║███████╗██║     ╚██████╔╝    ██║     ██║   ██║   ╚██████╗██║  ██║
  ╚═╝  ╚═╝╚══════╝╚═╝      ╚═════╝     ╚═╝     ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝`)
	sections = append(sections, logo)

	tagline := styles.Metadata.Render("Turn any GitHub repository into an AI-generated pitch deck")
	sections = append(sections, tagline)
	sections = append(sections, "")

	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Step %d of %d", m.step, m.totalSteps)))
	sections = append(sections, "")
	sections = append(sections, m.urlInput.View())

	if m.errText != "" {
		sections = append(sections, "")
		sections = append(sections, styles.StatusError.Render(m.errText))
	}

	sections = append(sections, "")
	sections = append(sections, footerStyle.Render(
		styles.ShortcutKey.Render("enter")+styles.ShortcutDesc.Render(" continue  ")+
			styles.ShortcutKey.Render("esc")+styles.ShortcutDesc.Render(" quit")))

	return strings.Join(sections, "\n")
}
