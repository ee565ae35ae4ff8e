package domain

import "strings"

// MediaKind classifies an embedded media reference.
type MediaKind string

const (
	MediaVideo      MediaKind = "video"
	MediaSocialPost MediaKind = "social-post"
)

// Media is an external media reference embedded on a slide.
type Media struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
}

// Dataset is one series of a chart.
type Dataset struct {
	Label       string    `json:"label"`
	Values      []float64 `json:"data"`
	BorderColor string    `json:"borderColor,omitempty"`
	Background  string    `json:"backgroundColor,omitempty"`
	Fill        bool      `json:"fill,omitempty"`
}

// ChartData holds the category labels and series of a chart.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Chart is an optional data visualization attached to a slide.
type Chart struct {
	Type        string    `json:"type"` // "bar", "line"
	Data        ChartData `json:"data"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Slide is one deck page. Only the title is required; the remaining
// fields are independently optional and may appear in any combination
// (a slide can carry both bullets and a chart).
type Slide struct {
	Title   string   `json:"title"`
	Text    string   `json:"text,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
	Chart   *Chart   `json:"chart,omitempty"`
	Media   *Media   `json:"media,omitempty"`
}

// HasContent reports whether the slide carries anything beyond its title.
func (s Slide) HasContent() bool {
	return strings.TrimSpace(s.Text) != "" || len(s.Bullets) > 0 || s.Chart != nil || s.Media != nil
}

// Deck is an ordered sequence of slides.
type Deck []Slide

// Clone returns a shallow copy of the deck's slide sequence. Assembly
// works on a clone so the source deck is never mutated.
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Titles returns the slide titles in display order.
func (d Deck) Titles() []string {
	titles := make([]string, len(d))
	for i, s := range d {
		titles[i] = s.Title
	}
	return titles
}

// DetectMediaKind classifies a media URL. Known video hosts map to
// MediaVideo; everything else is treated as a social post.
func DetectMediaKind(url string) MediaKind {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return MediaVideo
	}
	return MediaSocialPost
}
