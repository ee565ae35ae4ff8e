package domain

import "testing"

func TestParseTone(t *testing.T) {
	tests := []struct {
		input string
		want  Tone
	}{
		{"balanced", ToneBalanced},
		{"business", ToneBusiness},
		{"technical", ToneTechnical},
		{"TECHNICAL", ToneTechnical},
		{" business ", ToneBusiness},
		{"", ToneBalanced},
		{"formal", ToneBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTone(tt.input); got != tt.want {
				t.Errorf("ParseTone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeChartCSV(t *testing.T) {
	got := NormalizeChartCSV("Month\tRevenue\nJan\t100")
	want := "Month,Revenue\nJan,100"
	if got != want {
		t.Errorf("NormalizeChartCSV() = %q, want %q", got, want)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Tone != ToneBalanced {
		t.Errorf("default tone = %v, want balanced", s.Tone)
	}
	if !s.IncludeCharts {
		t.Error("default IncludeCharts = false, want true")
	}
	if s.CustomChartCSV != "" || s.MediaEmbedURL != "" {
		t.Error("default settings carry custom content")
	}
}
