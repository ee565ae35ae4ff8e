package ui

import (
	"fmt"
	"strings"

	"github.com/yourusername/repopitch/internal/domain"
	"github.com/yourusername/repopitch/internal/ui/components"
)

const (
	slideContentWidth = 64
	chartBarWidth     = 30
)

// RenderSlide renders one slide into a bordered frame.
func RenderSlide(slide domain.Slide) string {
	styles := GetGlobalThemeManager().GetStyles()
	var sections []string

	sections = append(sections, styles.SlideTitle.Render(components.WrapTextManual(slide.Title, slideContentWidth)))

	if slide.Text != "" {
		sections = append(sections, styles.SlideBody.Render(components.WrapTextManual(slide.Text, slideContentWidth)))
	}

	if len(slide.Bullets) > 0 {
		var bullets []string
		for _, bullet := range slide.Bullets {
			wrapped := components.WrapTextManual(bullet, slideContentWidth-4)
			lines := strings.Split(wrapped, "\n")
			bullets = append(bullets, "• "+lines[0])
			for _, cont := range lines[1:] {
				bullets = append(bullets, "  "+cont)
			}
		}
		sections = append(sections, styles.SlideBullet.Render(strings.Join(bullets, "\n")))
	}

	if slide.Chart != nil {
		sections = append(sections, renderChart(slide.Chart))
	}

	if slide.Media != nil {
		label := "Social post"
		if slide.Media.Kind == domain.MediaVideo {
			label = "Video"
		}
		sections = append(sections, styles.ChartLabel.Render(label+": ")+styles.SlideMedia.Render(slide.Media.URL))
	}

	return styles.SlideFrame.Width(slideContentWidth + 4).Render(strings.Join(sections, "\n\n"))
}

// renderChart draws the first dataset as horizontal ASCII bars scaled to
// the largest value.
func renderChart(chart *domain.Chart) string {
	styles := GetGlobalThemeManager().GetStyles()
	var lines []string

	title := chart.Title
	if title == "" {
		title = "Chart"
	}
	lines = append(lines, styles.SectionTitle.Render(title))

	if len(chart.Data.Datasets) == 0 {
		lines = append(lines, styles.ChartLabel.Render("no data"))
		return strings.Join(lines, "\n")
	}

	ds := chart.Data.Datasets[0]
	max := 0.0
	for _, v := range ds.Values {
		if v > max {
			max = v
		}
	}

	labelWidth := 0
	for _, label := range chart.Data.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	for i, label := range chart.Data.Labels {
		if i >= len(ds.Values) {
			break
		}
		v := ds.Values[i]
		barLen := 0
		if max > 0 {
			barLen = int(v / max * chartBarWidth)
		}
		if v > 0 && barLen == 0 {
			barLen = 1
		}
		bar := styles.ChartBar.Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			styles.ChartLabel.Render(components.PadRight(label, labelWidth)),
			bar,
			styles.ChartLabel.Render(formatChartValue(v))))
	}

	if ds.Label != "" {
		lines = append(lines, styles.ChartLabel.Render("series: "+ds.Label))
	}

	return strings.Join(lines, "\n")
}

func formatChartValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// RenderThumbnailStrip renders a one-line deck overview with the active
// slide highlighted.
func RenderThumbnailStrip(deck domain.Deck, active int) string {
	styles := GetGlobalThemeManager().GetStyles()
	var cells []string
	for i, slide := range deck {
		label := fmt.Sprintf("%d·%s", i+1, components.TruncateText(slide.Title, 12))
		if i == active {
			cells = append(cells, styles.ThumbActive.Render("["+label+"]"))
		} else {
			cells = append(cells, styles.ThumbNormal.Render(" "+label+" "))
		}
	}
	return strings.Join(cells, " ")
}
