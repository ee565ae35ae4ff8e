package ui

import (
	"strings"
	"testing"

	"github.com/yourusername/repopitch/internal/domain"
)

func TestRenderSlideContainsContent(t *testing.T) {
	slide := domain.Slide{
		Title:   "Our Solution",
		Text:    "An AI-powered cursor",
		Bullets: []string{"Fast", "Simple"},
		Media:   &domain.Media{Kind: domain.MediaVideo, URL: "https://youtu.be/xyz"},
	}

	out := RenderSlide(slide)

	for _, want := range []string{"Our Solution", "An AI-powered cursor", "• Fast", "• Simple", "Video", "https://youtu.be/xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered slide missing %q", want)
		}
	}
}

func TestRenderChartBarsScale(t *testing.T) {
	chart := &domain.Chart{
		Type:  "bar",
		Title: "Revenue",
		Data: domain.ChartData{
			Labels: []string{"Jan", "Feb"},
			Datasets: []domain.Dataset{
				{Label: "Revenue", Values: []float64{50, 100}},
			},
		},
	}

	out := renderChart(chart)

	if !strings.Contains(out, "Revenue") {
		t.Error("missing chart title")
	}
	lines := strings.Split(out, "\n")
	var janBars, febBars int
	for _, line := range lines {
		count := strings.Count(line, "█")
		if strings.Contains(line, "Jan") {
			janBars = count
		}
		if strings.Contains(line, "Feb") {
			febBars = count
		}
	}
	if febBars != chartBarWidth {
		t.Errorf("expected max value to fill the bar width, got %d", febBars)
	}
	if janBars != chartBarWidth/2 {
		t.Errorf("expected half-length bar for half the max, got %d", janBars)
	}
}

func TestRenderChartSmallValueStillVisible(t *testing.T) {
	chart := &domain.Chart{
		Type: "bar",
		Data: domain.ChartData{
			Labels: []string{"A", "B"},
			Datasets: []domain.Dataset{
				{Values: []float64{1, 10000}},
			},
		},
	}

	out := renderChart(chart)

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(stripStyles(line)), "A") {
			if !strings.Contains(line, "█") {
				t.Error("expected a nonzero value to render at least one bar cell")
			}
		}
	}
}

// stripStyles is a best-effort ANSI strip for assertions.
func stripStyles(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r == 'm'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRenderThumbnailStripHighlightsActive(t *testing.T) {
	deck := domain.Deck{
		{Title: "Intro"},
		{Title: "Problem"},
		{Title: "Solution"},
	}

	out := RenderThumbnailStrip(deck, 1)

	if !strings.Contains(out, "[2·Problem]") {
		t.Errorf("expected active slide bracketed, got %q", out)
	}
	if strings.Contains(out, "[1·Intro]") {
		t.Error("inactive slide should not be bracketed")
	}
}

func TestRenderThumbnailStripTruncatesLongTitles(t *testing.T) {
	deck := domain.Deck{
		{Title: "A very long slide title that keeps going"},
	}

	out := RenderThumbnailStrip(deck, 0)

	if !strings.Contains(out, "...") {
		t.Errorf("expected truncated title, got %q", out)
	}
}
