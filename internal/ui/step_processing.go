package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourusername/repopitch/internal/usecase"
)

// Status messages rotated while the pipeline is in flight.
var processingStatuses = []string{
	"Analyzing your GitHub repository...",
	"Extracting project insights...",
	"Generating slides with AI...",
	"Adding finishing touches...",
}

type pipelineDoneMsg struct {
	resp *usecase.GenerateDeckResponse
	err  error
}

type progressTickMsg time.Time

type statusTickMsg time.Time

type showResultMsg struct{}

// ProcessingScreen runs the pipeline and shows cosmetic progress. The
// bar is not a real signal: it climbs randomly to 90% and jumps to 100%
// when the pipeline settles.
type ProcessingScreen struct {
	step       int
	totalSteps int

	uc      *usecase.GenerateDeckUseCase
	request usecase.GenerateDeckRequest

	spinner     spinner.Model
	progressBar progress.Model
	percent     float64
	statusIndex int

	done bool
	resp *usecase.GenerateDeckResponse
	err  error

	shouldContinue bool
}

// NewProcessingScreen creates a new processing screen
func NewProcessingScreen(step, totalSteps int, uc *usecase.GenerateDeckUseCase, request usecase.GenerateDeckRequest) ProcessingScreen {
	styles := GetGlobalThemeManager().GetStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	bar := progress.New(
		progress.WithSolidFill(string(styles.ColorAccent)),
		progress.WithoutPercentage(),
	)
	bar.Width = 50

	return ProcessingScreen{
		step:        step,
		totalSteps:  totalSteps,
		uc:          uc,
		request:     request,
		spinner:     sp,
		progressBar: bar,
	}
}

// Init starts the pipeline and the cosmetic tickers
func (m ProcessingScreen) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runPipeline(),
		progressTick(),
		statusTick(),
	)
}

func (m ProcessingScreen) runPipeline() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.uc.Execute(context.Background(), m.request)
		return pipelineDoneMsg{resp: resp, err: err}
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func statusTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Update handles messages
func (m ProcessingScreen) Update(msg tea.Msg) (ProcessingScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case pipelineDoneMsg:
		m.done = true
		m.resp = msg.resp
		m.err = msg.err
		m.percent = 1.0
		// Hold the full bar briefly before moving on.
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return showResultMsg{}
		})

	case showResultMsg:
		m.shouldContinue = true
		return m, nil

	case progressTickMsg:
		if m.done {
			return m, nil
		}
		m.percent += rand.Float64() * 0.12
		if m.percent > 0.9 {
			m.percent = 0.9
		}
		return m, progressTick()

	case statusTickMsg:
		if m.done {
			return m, nil
		}
		if m.statusIndex < len(processingStatuses)-1 {
			m.statusIndex++
		}
		return m, statusTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// ShouldContinue returns true once the pipeline settled and the hold
// delay elapsed
func (m ProcessingScreen) ShouldContinue() bool {
	return m.shouldContinue
}

// Response returns the pipeline outcome, nil until done
func (m ProcessingScreen) Response() *usecase.GenerateDeckResponse {
	return m.resp
}

// Err returns the fatal pipeline error, if any
func (m ProcessingScreen) Err() error {
	return m.err
}

// View renders the processing screen
func (m ProcessingScreen) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	sections = append(sections, headerStyle.Render("Generating Your Pitch Deck"))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("Step %d of %d", m.step, m.totalSteps)))
	sections = append(sections, "")

	status := processingStatuses[m.statusIndex]
	if m.done {
		status = "Done!"
		sections = append(sections, styles.StatusOk.Render("✓")+" "+styles.Loading.Render(status))
	} else {
		sections = append(sections, m.spinner.View()+" "+styles.Loading.Render(status))
	}

	sections = append(sections, "")
	sections = append(sections, m.progressBar.ViewAs(m.percent))
	sections = append(sections, metadataStyle.Render(fmt.Sprintf("%d%%", int(m.percent*100))))

	return strings.Join(sections, "\n")
}
