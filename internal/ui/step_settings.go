package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/repopitch/internal/domain"
)

const (
	exampleChartCSV = "Month,Revenue\nJan,100\nFeb,200\nMar,400"
	exampleVideoURL = "https://youtube.com/watch?v=dQw4w9WgXcQ"
)

// settings form field order
const (
	settingsFieldTone = iota
	settingsFieldCharts
	settingsFieldCSV
	settingsFieldMedia
	settingsFieldGenerate
	settingsFieldCount
)

// SettingsScreen collects the generation settings.
type SettingsScreen struct {
	step       int
	totalSteps int

	focusedField int
	tone         RadioGroup
	charts       Checkbox
	chartCSV     TextArea
	mediaURL     TextInput
	generate     Button

	shouldContinue bool
	shouldGoBack   bool
}

// NewSettingsScreen creates a new settings screen
func NewSettingsScreen(step, totalSteps int, defaults domain.GenerationSettings) SettingsScreen {
	toneIndex := 0
	for i, tone := range domain.AllTones() {
		if tone == defaults.Tone {
			toneIndex = i
		}
	}

	toneLabels := make([]string, 0, len(domain.AllTones()))
	for _, tone := range domain.AllTones() {
		toneLabels = append(toneLabels, string(tone))
	}

	screen := SettingsScreen{
		step:       step,
		totalSteps: totalSteps,
		tone:       NewRadioGroup("Tone", toneLabels, toneIndex),
		charts:     NewCheckbox("Include a custom chart slide", defaults.IncludeCharts),
		chartCSV:   NewTextArea("Chart data", "Month,Revenue\nJan,100\nFeb,200"),
		mediaURL:   NewTextInput("Demo media URL", "https://youtube.com/watch?v=..."),
		generate:   NewButton("Generate Deck"),
	}
	screen.applyFocus()
	return screen
}

// Init initializes the screen
func (m SettingsScreen) Init() tea.Cmd {
	return nil
}

// Settings returns the collected generation settings.
func (m SettingsScreen) Settings() domain.GenerationSettings {
	return domain.GenerationSettings{
		Tone:           domain.ParseTone(m.tone.GetSelected()),
		IncludeCharts:  m.charts.Checked,
		CustomChartCSV: domain.NormalizeChartCSV(m.chartCSV.Value),
		MediaEmbedURL:  strings.TrimSpace(m.mediaURL.Value),
	}
}

func (m *SettingsScreen) applyFocus() {
	m.tone.Focused = m.focusedField == settingsFieldTone
	m.charts.Focused = m.focusedField == settingsFieldCharts
	m.chartCSV.Focused = m.focusedField == settingsFieldCSV
	m.mediaURL.Focused = m.focusedField == settingsFieldMedia
	m.generate.Focused = m.focusedField == settingsFieldGenerate
}

// Update handles messages
func (m SettingsScreen) Update(msg tea.Msg) (SettingsScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.shouldGoBack = true
		return m, nil

	case "ctrl+e":
		m.chartCSV.Value = exampleChartCSV
		m.charts.Checked = true
		return m, nil

	case "ctrl+y":
		m.mediaURL.Value = exampleVideoURL
		return m, nil

	case "tab", "down":
		// The CSV area owns tab and enter while focused; down still
		// moves on so the form cannot trap focus.
		if m.focusedField == settingsFieldCSV && keyMsg.String() == "tab" {
			m.chartCSV.Update(keyMsg)
			return m, nil
		}
		m.focusedField = (m.focusedField + 1) % settingsFieldCount
		m.applyFocus()
		return m, nil

	case "shift+tab", "up":
		m.focusedField = (m.focusedField - 1 + settingsFieldCount) % settingsFieldCount
		m.applyFocus()
		return m, nil

	case "enter":
		switch m.focusedField {
		case settingsFieldCharts:
			m.charts.Toggle()
		case settingsFieldCSV:
			m.chartCSV.Update(keyMsg)
		case settingsFieldGenerate:
			m.shouldContinue = true
		default:
			m.focusedField++
			m.applyFocus()
		}
		return m, nil

	case "left":
		if m.focusedField == settingsFieldTone {
			m.tone.Previous()
			return m, nil
		}

	case "right":
		if m.focusedField == settingsFieldTone {
			m.tone.Next()
			return m, nil
		}

	case " ", "space":
		switch m.focusedField {
		case settingsFieldTone:
			m.tone.Next()
			return m, nil
		case settingsFieldCharts:
			m.charts.Toggle()
			return m, nil
		}
	}

	switch m.focusedField {
	case settingsFieldCSV:
		m.chartCSV.Update(keyMsg)
	case settingsFieldMedia:
		m.mediaURL.Update(keyMsg)
	}
	return m, nil
}

// ShouldContinue returns true when the form was submitted
func (m SettingsScreen) ShouldContinue() bool {
	return m.shouldContinue
}

// ShouldGoBack returns true when the user navigated back
func (m SettingsScreen) ShouldGoBack() bool {
	return m.shouldGoBack
}

// View renders the settings screen
func (m SettingsScreen) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	sections = append(sections, headerStyle.Render("Generation Settings"))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Step %d of %d", m.step, m.totalSteps)))
	sections = append(sections, "")

	sections = append(sections, m.tone.View())
	sections = append(sections, "")
	sections = append(sections, m.charts.View())

	if m.charts.Checked {
		sections = append(sections, "")
		sections = append(sections, m.chartCSV.View())
		sections = append(sections, formHelpStyle.Render("  CSV with a header row; pastes from spreadsheets work too. ctrl+e inserts an example."))
	}

	sections = append(sections, "")
	sections = append(sections, m.mediaURL.View())
	sections = append(sections, formHelpStyle.Render("  Optional YouTube or social post link for a demo slide. ctrl+y inserts an example."))

	sections = append(sections, "")
	sections = append(sections, m.generate.View())

	sections = append(sections, footerStyle.Render(
		styles.ShortcutKey.Render("tab")+styles.ShortcutDesc.Render(" next field  ")+
			styles.ShortcutKey.Render("enter")+styles.ShortcutDesc.Render(" submit  ")+
			styles.ShortcutKey.Render("esc")+styles.ShortcutDesc.Render(" back")))

	return strings.Join(sections, "\n")
}
