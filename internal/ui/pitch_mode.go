package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/repopitch/internal/domain"
)

// PitchModel is the full-screen presentation mode over a finished deck.
type PitchModel struct {
	deck  domain.Deck
	index int

	width  int
	height int

	shouldExit bool
}

// NewPitchModel creates pitch mode starting at the given slide
func NewPitchModel(deck domain.Deck, index int) PitchModel {
	if index < 0 || index >= len(deck) {
		index = 0
	}
	return PitchModel{deck: deck, index: index}
}

// Index returns the current slide index
func (m PitchModel) Index() int {
	return m.index
}

// ShouldExit returns true when the user left pitch mode
func (m PitchModel) ShouldExit() bool {
	return m.shouldExit
}

// Update handles messages
func (m PitchModel) Update(msg tea.Msg) (PitchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", " ", "space", "l":
			if m.index < len(m.deck)-1 {
				m.index++
			}
			return m, nil
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
			return m, nil
		case "home":
			m.index = 0
			return m, nil
		case "end":
			m.index = len(m.deck) - 1
			return m, nil
		case "esc", "q":
			m.shouldExit = true
			return m, nil
		}
	}

	return m, nil
}

// View renders the current slide centered on the terminal
func (m PitchModel) View() string {
	styles := GetGlobalThemeManager().GetStyles()

	counter := metadataStyle.Render(fmt.Sprintf("%d / %d", m.index+1, len(m.deck)))
	slide := RenderSlide(m.deck[m.index])
	help := styles.ShortcutDesc.Render("←/→ navigate · home/end jump · esc exit")

	content := strings.Join([]string{counter, slide, help}, "\n\n")

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
