package domain

import "strings"

// Tone controls the technical/business balance of generated slides.
type Tone string

const (
	ToneBalanced  Tone = "balanced"
	ToneBusiness  Tone = "business"
	ToneTechnical Tone = "technical"
)

// AllTones returns the selectable tones in display order.
func AllTones() []Tone {
	return []Tone{ToneBalanced, ToneBusiness, ToneTechnical}
}

// ParseTone maps a tone name to a Tone, defaulting to balanced.
func ParseTone(s string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case ToneBusiness:
		return ToneBusiness
	case ToneTechnical:
		return ToneTechnical
	default:
		return ToneBalanced
	}
}

// GenerationSettings is the user configuration for a single deck run.
type GenerationSettings struct {
	Tone           Tone   `json:"tone"`
	IncludeCharts  bool   `json:"includeCharts"`
	CustomChartCSV string `json:"customChartData,omitempty"`
	MediaEmbedURL  string `json:"mediaEmbed,omitempty"`
}

// DefaultSettings returns the settings the wizard starts from.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Tone:          ToneBalanced,
		IncludeCharts: true,
	}
}

// NormalizeChartCSV converts tab-separated pastes (Excel, Sheets) to the
// comma-separated form the chart builder expects.
func NormalizeChartCSV(raw string) string {
	return strings.ReplaceAll(raw, "\t", ",")
}
