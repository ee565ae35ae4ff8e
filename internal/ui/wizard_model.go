package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/repopitch/internal/adapter/config"
	"github.com/yourusername/repopitch/internal/domain"
	"github.com/yourusername/repopitch/internal/usecase"
)

// WizardStep represents the current wizard step
type WizardStep int

const (
	StepRepo WizardStep = iota
	StepTheme
	StepSettings
	StepProcessing
	StepResult
)

const wizardTotalSteps = 5

// WizardModel manages the repo → theme → settings → processing → result
// flow.
type WizardModel struct {
	state WizardStep
	uc    *usecase.GenerateDeckUseCase
	prefs *config.Config

	currentStep int
	totalSteps  int

	// Collected along the way
	repoURL  string
	theme    domain.Theme
	settings domain.GenerationSettings

	// Sub-models for each screen
	repoScreen       *RepoScreen
	themeScreen      *ThemeScreen
	settingsScreen   *SettingsScreen
	processingScreen *ProcessingScreen
	resultScreen     *ResultScreen

	width  int
	height int

	cancelled bool
}

// NewWizardModel creates a new wizard model seeded with the user's
// saved preferences.
func NewWizardModel(uc *usecase.GenerateDeckUseCase, prefs *config.Config) WizardModel {
	if prefs == nil {
		prefs = &config.Config{}
	}

	repoScreen := NewRepoScreen(1, wizardTotalSteps)

	theme := GetThemeByName(prefs.DefaultTheme)
	SetGlobalTheme(theme.Name)

	settings := domain.DefaultSettings()
	settings.Tone = domain.ParseTone(prefs.DefaultTone)

	return WizardModel{
		state:       StepRepo,
		uc:          uc,
		prefs:       prefs,
		currentStep: 1,
		totalSteps:  wizardTotalSteps,
		theme:       theme,
		settings:    settings,
		repoScreen:  &repoScreen,
	}
}

// Init initializes the wizard
func (m WizardModel) Init() tea.Cmd {
	return m.repoScreen.Init()
}

// Cancelled reports whether the user quit before reaching a deck.
func (m WizardModel) Cancelled() bool {
	return m.cancelled
}

// Update handles messages
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StepRepo:
		return m.updateRepoScreen(msg)
	case StepTheme:
		return m.updateThemeScreen(msg)
	case StepSettings:
		return m.updateSettingsScreen(msg)
	case StepProcessing:
		return m.updateProcessingScreen(msg)
	case StepResult:
		return m.updateResultScreen(msg)
	}

	return m, nil
}

func (m WizardModel) updateRepoScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.repoScreen == nil {
		return m, nil
	}

	updated, cmd := m.repoScreen.Update(msg)
	m.repoScreen = &updated

	if m.repoScreen.ShouldQuit() {
		m.cancelled = true
		return m, tea.Quit
	}

	if m.repoScreen.ShouldContinue() {
		m.repoURL = m.repoScreen.URL()
		m.state = StepTheme
		m.currentStep = 2
		screen := NewThemeScreen(m.currentStep, m.totalSteps, m.theme.Name)
		m.themeScreen = &screen
		return m, screen.Init()
	}

	return m, cmd
}

func (m WizardModel) updateThemeScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.themeScreen == nil {
		return m, nil
	}

	updated, cmd := m.themeScreen.Update(msg)
	m.themeScreen = &updated

	if m.themeScreen.ShouldContinue() {
		m.theme = m.themeScreen.Selected()
		SetGlobalTheme(m.theme.Name)
		m.state = StepSettings
		m.currentStep = 3
		screen := NewSettingsScreen(m.currentStep, m.totalSteps, m.settings)
		m.settingsScreen = &screen
		return m, screen.Init()
	}

	if m.themeScreen.ShouldGoBack() {
		m.state = StepRepo
		m.currentStep = 1
		screen := NewRepoScreen(m.currentStep, m.totalSteps)
		screen.urlInput.Value = m.repoURL
		m.repoScreen = &screen
		return m, screen.Init()
	}

	return m, cmd
}

func (m WizardModel) updateSettingsScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.settingsScreen == nil {
		return m, nil
	}

	updated, cmd := m.settingsScreen.Update(msg)
	m.settingsScreen = &updated

	if m.settingsScreen.ShouldContinue() {
		m.settings = m.settingsScreen.Settings()
		m.state = StepProcessing
		m.currentStep = 4
		screen := NewProcessingScreen(m.currentStep, m.totalSteps, m.uc, usecase.GenerateDeckRequest{
			RepoURL:  m.repoURL,
			Settings: m.settings,
			Theme:    m.theme,
		})
		m.processingScreen = &screen
		return m, screen.Init()
	}

	if m.settingsScreen.ShouldGoBack() {
		m.state = StepTheme
		m.currentStep = 2
		screen := NewThemeScreen(m.currentStep, m.totalSteps, m.theme.Name)
		m.themeScreen = &screen
		return m, screen.Init()
	}

	return m, cmd
}

func (m WizardModel) updateProcessingScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.processingScreen == nil {
		return m, nil
	}

	updated, cmd := m.processingScreen.Update(msg)
	m.processingScreen = &updated

	if m.processingScreen.ShouldContinue() {
		resp := m.processingScreen.Response()
		if resp == nil {
			// Only an invalid URL can end the pipeline without a deck,
			// and the repo screen already rejects those. Start over.
			return m.restart()
		}
		m.state = StepResult
		m.currentStep = 5
		screen := NewResultScreen(m.currentStep, m.totalSteps, resp, m.theme)
		screen.width = m.width
		screen.height = m.height
		m.resultScreen = &screen
		return m, screen.Init()
	}

	return m, cmd
}

func (m WizardModel) updateResultScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.resultScreen == nil {
		return m, nil
	}

	updated, cmd := m.resultScreen.Update(msg)
	m.resultScreen = &updated

	if m.resultScreen.ShouldQuit() {
		return m, tea.Quit
	}

	if m.resultScreen.ShouldRestart() {
		return m.restart()
	}

	return m, cmd
}

// restart clears all collected state and returns to the first step.
func (m WizardModel) restart() (tea.Model, tea.Cmd) {
	m.state = StepRepo
	m.currentStep = 1
	m.repoURL = ""
	m.settings = domain.DefaultSettings()
	m.settings.Tone = domain.ParseTone(m.prefs.DefaultTone)
	m.themeScreen = nil
	m.settingsScreen = nil
	m.processingScreen = nil
	m.resultScreen = nil

	screen := NewRepoScreen(m.currentStep, m.totalSteps)
	m.repoScreen = &screen
	return m, screen.Init()
}

// View renders the current screen
func (m WizardModel) View() string {
	switch m.state {
	case StepRepo:
		if m.repoScreen != nil {
			return m.repoScreen.View()
		}
	case StepTheme:
		if m.themeScreen != nil {
			return m.themeScreen.View()
		}
	case StepSettings:
		if m.settingsScreen != nil {
			return m.settingsScreen.View()
		}
	case StepProcessing:
		if m.processingScreen != nil {
			return m.processingScreen.View()
		}
	case StepResult:
		if m.resultScreen != nil {
			return m.resultScreen.View()
		}
	}

	return "Loading..."
}
