package usecase

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/yourusername/repopitch/internal/domain"
)

// Fixed insertion points for user-authored slides, chosen to land after the
// "solution" and "problem" slides of the standard 5-6 slide layout. The
// media slide is spliced first and the chart index is then applied to the
// already-spliced deck, so requesting both shifts the named positions; that
// positional approximation is intentional, kept for compatibility.
const (
	mediaSlideIndex = 4
	chartSlideIndex = 3
)

// AssembleDeck inserts the user's supplementary slides into the generated
// (or fallback) deck. Pure and total: malformed custom content is skipped
// silently and the input deck is never mutated.
func AssembleDeck(deck domain.Deck, settings domain.GenerationSettings, theme domain.Theme) domain.Deck {
	out := deck.Clone()

	if settings.MediaEmbedURL != "" {
		mediaSlide := domain.Slide{
			Title: "Demo in Action",
			Text:  "A look at our project in action.",
			Media: &domain.Media{
				Kind: domain.DetectMediaKind(settings.MediaEmbedURL),
				URL:  settings.MediaEmbedURL,
			},
		}
		out = insertSlide(out, mediaSlideIndex, mediaSlide)
	}

	if settings.IncludeCharts {
		if chart, ok := buildChartFromCSV(settings.CustomChartCSV, theme); ok {
			chartSlide := domain.Slide{
				Title: "Custom Chart",
				Text:  "User-provided data visualization.",
				Chart: chart,
			}
			out = insertSlide(out, chartSlideIndex, chartSlide)
		}
	}

	return out
}

// insertSlide splices a slide in at index, clamping to end-of-deck when the
// deck is shorter than the target position.
func insertSlide(deck domain.Deck, index int, slide domain.Slide) domain.Deck {
	if index > len(deck) {
		index = len(deck)
	}
	out := make(domain.Deck, 0, len(deck)+1)
	out = append(out, deck[:index]...)
	out = append(out, slide)
	out = append(out, deck[index:]...)
	return out
}

// buildChartFromCSV turns user CSV (header row + data rows) into a bar
// chart: column 0 supplies labels, column 1 supplies values (non-numeric
// cells become 0), and the column-1 header labels the dataset. Anything
// with fewer than 2 rows or 2 columns is unusable and reports ok=false.
func buildChartFromCSV(raw string, theme domain.Theme) (*domain.Chart, bool) {
	raw = strings.TrimSpace(domain.NormalizeChartCSV(raw))
	if raw == "" {
		return nil, false
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil || len(rows) < 2 {
		return nil, false
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, false
	}

	var labels []string
	var values []float64
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		labels = append(labels, row[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			v = 0
		}
		values = append(values, v)
	}
	if len(labels) == 0 {
		return nil, false
	}

	borderColor := theme.Colors.Accent
	if borderColor == "" {
		borderColor = "#3b82f6"
	}

	title := header[1]
	if title == "" {
		title = "Custom Data Chart"
	}

	return &domain.Chart{
		Type: "bar",
		Data: domain.ChartData{
			Labels: labels,
			Datasets: []domain.Dataset{
				{
					Label:       header[1],
					Values:      values,
					BorderColor: borderColor,
					Fill:        true,
				},
			},
		},
		Title: title,
	}, true
}
