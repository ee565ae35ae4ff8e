package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/repopitch/internal/adapter/config"
	"github.com/yourusername/repopitch/internal/usecase"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestWizard() WizardModel {
	return NewWizardModel(nil, &config.Config{DefaultTheme: "modern", DefaultTone: "balanced"})
}

func asWizard(t *testing.T, model tea.Model) WizardModel {
	t.Helper()
	wm, ok := model.(WizardModel)
	if !ok {
		t.Fatalf("expected WizardModel, got %T", model)
	}
	return wm
}

func TestValidRepoURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"full repo URL", "https://github.com/owner/repo", true},
		{"trailing path", "https://github.com/owner/repo/tree/main", true},
		{"owner only", "https://github.com/owner", false},
		{"bare host", "https://github.com/", false},
		{"http scheme", "http://github.com/owner/repo", false},
		{"other host", "https://gitlab.com/owner/repo", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidRepoURL(tt.url); got != tt.want {
				t.Errorf("ValidRepoURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestRepoScreenRejectsInvalidURL(t *testing.T) {
	m := newTestWizard()
	m.repoScreen.urlInput.Value = "not-a-url"

	model, _ := m.Update(key(tea.KeyEnter))
	wm := asWizard(t, model)

	if wm.state != StepRepo {
		t.Errorf("expected wizard to stay on repo step, got state %d", wm.state)
	}
	if wm.repoScreen.errText == "" {
		t.Error("expected a validation message")
	}
}

func TestWizardAdvancesToThemeAndSettings(t *testing.T) {
	m := newTestWizard()
	m.repoScreen.urlInput.Value = "https://github.com/acme/widget"

	model, _ := m.Update(key(tea.KeyEnter))
	wm := asWizard(t, model)
	if wm.state != StepTheme {
		t.Fatalf("expected theme step, got state %d", wm.state)
	}
	if wm.repoURL != "https://github.com/acme/widget" {
		t.Errorf("expected URL to be recorded, got %q", wm.repoURL)
	}

	model, _ = wm.Update(key(tea.KeyEnter))
	wm = asWizard(t, model)
	if wm.state != StepSettings {
		t.Fatalf("expected settings step, got state %d", wm.state)
	}
	if wm.theme.Name != "modern" {
		t.Errorf("expected default theme selection, got %s", wm.theme.Name)
	}
}

func TestWizardBackNavigationKeepsURL(t *testing.T) {
	m := newTestWizard()
	m.repoScreen.urlInput.Value = "https://github.com/acme/widget"

	model, _ := m.Update(key(tea.KeyEnter))
	wm := asWizard(t, model)

	model, _ = wm.Update(key(tea.KeyLeft))
	wm = asWizard(t, model)

	if wm.state != StepRepo {
		t.Fatalf("expected repo step after back, got state %d", wm.state)
	}
	if wm.repoScreen.urlInput.Value != "https://github.com/acme/widget" {
		t.Errorf("expected URL preserved, got %q", wm.repoScreen.urlInput.Value)
	}
}

func TestSettingsSubmissionStartsProcessing(t *testing.T) {
	m := newTestWizard()
	m.repoScreen.urlInput.Value = "https://github.com/acme/widget"

	model, _ := m.Update(key(tea.KeyEnter)) // repo -> theme
	wm := asWizard(t, model)
	model, _ = wm.Update(key(tea.KeyEnter)) // theme -> settings
	wm = asWizard(t, model)

	wm.settingsScreen.focusedField = settingsFieldGenerate
	wm.settingsScreen.applyFocus()
	model, _ = wm.Update(key(tea.KeyEnter))
	wm = asWizard(t, model)

	if wm.state != StepProcessing {
		t.Fatalf("expected processing step, got state %d", wm.state)
	}
	if wm.processingScreen.request.RepoURL != "https://github.com/acme/widget" {
		t.Errorf("expected pipeline request to carry the URL")
	}
}

func TestProcessingCompletionShowsResult(t *testing.T) {
	m := newTestWizard()
	m.state = StepProcessing
	m.currentStep = 4
	screen := NewProcessingScreen(4, wizardTotalSteps, nil, usecase.GenerateDeckRequest{})
	m.processingScreen = &screen

	resp := &usecase.GenerateDeckResponse{
		Deck:     usecase.DemoDeck(),
		RepoName: "Demo Project",
		Demo:     true,
		Fallback: true,
		Warning:  "demo",
	}
	model, _ := m.Update(pipelineDoneMsg{resp: resp})
	wm := asWizard(t, model)
	if wm.processingScreen.percent != 1.0 {
		t.Errorf("expected full progress after settle, got %f", wm.processingScreen.percent)
	}

	model, _ = wm.Update(showResultMsg{})
	wm = asWizard(t, model)
	if wm.state != StepResult {
		t.Fatalf("expected result step, got state %d", wm.state)
	}
	if wm.resultScreen.resp.RepoName != "Demo Project" {
		t.Errorf("unexpected result payload")
	}
}

func TestProcessingProgressStaysUnderCeiling(t *testing.T) {
	screen := NewProcessingScreen(4, wizardTotalSteps, nil, usecase.GenerateDeckRequest{})

	for i := 0; i < 100; i++ {
		screen, _ = screen.Update(progressTickMsg{})
	}

	if screen.percent > 0.9 {
		t.Errorf("progress exceeded ceiling before settle: %f", screen.percent)
	}
	if screen.ShouldContinue() {
		t.Error("screen should not continue before the pipeline settles")
	}
}

func TestResultRestartClearsState(t *testing.T) {
	m := newTestWizard()
	m.state = StepResult
	m.currentStep = 5
	m.repoURL = "https://github.com/acme/widget"
	resp := &usecase.GenerateDeckResponse{Deck: usecase.DemoDeck(), RepoName: "Demo Project"}
	screen := NewResultScreen(5, wizardTotalSteps, resp, ThemeModern)
	m.resultScreen = &screen

	model, _ := m.Update(runeKey("n"))
	wm := asWizard(t, model)

	if wm.state != StepRepo {
		t.Fatalf("expected repo step after restart, got state %d", wm.state)
	}
	if wm.repoURL != "" {
		t.Errorf("expected cleared URL, got %q", wm.repoURL)
	}
	if wm.resultScreen != nil || wm.processingScreen != nil {
		t.Error("expected downstream screens to be cleared")
	}
}

func TestResultSlideNavigationClamps(t *testing.T) {
	resp := &usecase.GenerateDeckResponse{Deck: usecase.DemoDeck(), RepoName: "Demo Project"}
	screen := NewResultScreen(5, wizardTotalSteps, resp, ThemeModern)

	screen, _ = screen.Update(key(tea.KeyLeft))
	if screen.index != 0 {
		t.Errorf("expected index clamped at 0, got %d", screen.index)
	}

	for i := 0; i < 20; i++ {
		screen, _ = screen.Update(key(tea.KeyRight))
	}
	if screen.index != len(resp.Deck)-1 {
		t.Errorf("expected index clamped at last slide, got %d", screen.index)
	}
}

func TestPitchModeNavigation(t *testing.T) {
	deck := usecase.DemoDeck()
	pitch := NewPitchModel(deck, 0)

	pitch, _ = pitch.Update(key(tea.KeyRight))
	if pitch.Index() != 1 {
		t.Errorf("expected index 1 after right, got %d", pitch.Index())
	}

	pitch, _ = pitch.Update(key(tea.KeyEnd))
	if pitch.Index() != len(deck)-1 {
		t.Errorf("expected last slide after end, got %d", pitch.Index())
	}

	pitch, _ = pitch.Update(key(tea.KeyRight))
	if pitch.Index() != len(deck)-1 {
		t.Errorf("expected index clamped at last slide, got %d", pitch.Index())
	}

	pitch, _ = pitch.Update(key(tea.KeyHome))
	if pitch.Index() != 0 {
		t.Errorf("expected first slide after home, got %d", pitch.Index())
	}

	pitch, _ = pitch.Update(key(tea.KeyEsc))
	if !pitch.ShouldExit() {
		t.Error("expected pitch mode to exit on esc")
	}
}

func TestGetThemeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"modern", "modern"},
		{"classic", "classic"},
		{"bold", "bold"},
		{"unknown", "modern"},
		{"", "modern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetThemeByName(tt.name); got.Name != tt.want {
				t.Errorf("GetThemeByName(%q).Name = %s, want %s", tt.name, got.Name, tt.want)
			}
		})
	}
}
