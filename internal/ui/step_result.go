package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/repopitch/internal/domain"
	"github.com/yourusername/repopitch/internal/export"
	"github.com/yourusername/repopitch/internal/usecase"
)

type exportDoneMsg struct {
	path string
	err  error
}

// ResultScreen shows the finished deck with navigation, pitch mode, and
// export.
type ResultScreen struct {
	step       int
	totalSteps int

	resp  *usecase.GenerateDeckResponse
	theme domain.Theme
	index int

	pitching bool
	pitch    PitchModel

	exporting    bool
	exportStatus string
	exportFailed bool

	width  int
	height int

	shouldRestart bool
	shouldQuit    bool
}

// NewResultScreen creates a new result screen
func NewResultScreen(step, totalSteps int, resp *usecase.GenerateDeckResponse, theme domain.Theme) ResultScreen {
	return ResultScreen{
		step:       step,
		totalSteps: totalSteps,
		resp:       resp,
		theme:      theme,
	}
}

// Init initializes the screen
func (m ResultScreen) Init() tea.Cmd {
	return nil
}

// ShouldRestart returns true when the user asked for a new deck
func (m ResultScreen) ShouldRestart() bool {
	return m.shouldRestart
}

// ShouldQuit returns true when the user asked to leave
func (m ResultScreen) ShouldQuit() bool {
	return m.shouldQuit
}

func (m ResultScreen) deck() domain.Deck {
	return m.resp.Deck
}

// exportDeck writes the deck next to the working directory.
func (m ResultScreen) exportDeck() tea.Cmd {
	deck := m.deck()
	theme := m.theme
	return func() tea.Msg {
		f, err := os.Create("presentation.pptx")
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		if err := export.NewExporter(theme).Write(f, deck); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: f.Name()}
	}
}

// Update handles messages
func (m ResultScreen) Update(msg tea.Msg) (ResultScreen, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	if m.pitching {
		var cmd tea.Cmd
		m.pitch, cmd = m.pitch.Update(msg)
		if m.pitch.ShouldExit() {
			m.pitching = false
			m.index = m.pitch.Index()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.exportFailed = true
			m.exportStatus = "Export failed: " + msg.err.Error()
		} else {
			m.exportFailed = false
			m.exportStatus = "Saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l":
			if m.index < len(m.deck())-1 {
				m.index++
			}
			return m, nil
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
			return m, nil
		case "p":
			m.pitching = true
			pitch := NewPitchModel(m.deck(), m.index)
			pitch.width = m.width
			pitch.height = m.height
			m.pitch = pitch
			return m, nil
		case "e":
			if m.exporting {
				return m, nil
			}
			m.exporting = true
			m.exportStatus = ""
			return m, m.exportDeck()
		case "n":
			m.shouldRestart = true
			return m, nil
		case "q", "esc", "ctrl+c":
			m.shouldQuit = true
			return m, nil
		}
	}

	return m, nil
}

// View renders the result screen
func (m ResultScreen) View() string {
	if m.pitching {
		return m.pitch.View()
	}

	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	title := "Your Pitch Deck: " + m.resp.RepoName
	sections = append(sections, headerStyle.Render(title))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Step %d of %d", m.step, m.totalSteps)))

	if m.resp.Demo {
		sections = append(sections, styles.WarningBanner.Render("Demo Mode · "+m.resp.Warning))
	} else if m.resp.Warning != "" {
		sections = append(sections, styles.WarningBanner.Render(m.resp.Warning))
	}

	sections = append(sections, "")
	sections = append(sections, RenderSlide(m.deck()[m.index]))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Slide %d of %d", m.index+1, len(m.deck()))))
	sections = append(sections, RenderThumbnailStrip(m.deck(), m.index))

	if m.exporting {
		sections = append(sections, styles.Loading.Render("Exporting..."))
	} else if m.exportStatus != "" {
		if m.exportFailed {
			sections = append(sections, styles.StatusError.Render(m.exportStatus))
		} else {
			sections = append(sections, styles.StatusOk.Render(m.exportStatus))
		}
	}

	sections = append(sections, footerStyle.Render(
		styles.ShortcutKey.Render("←/→")+styles.ShortcutDesc.Render(" slides  ")+
			styles.ShortcutKey.Render("p")+styles.ShortcutDesc.Render(" pitch  ")+
			styles.ShortcutKey.Render("e")+styles.ShortcutDesc.Render(" export  ")+
			styles.ShortcutKey.Render("n")+styles.ShortcutDesc.Render(" new deck  ")+
			styles.ShortcutKey.Render("q")+styles.ShortcutDesc.Render(" quit")))

	return strings.Join(sections, "\n")
}
