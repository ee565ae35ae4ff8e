package ui

import "github.com/yourusername/repopitch/internal/domain"

// Available theme presets. The same palette drives the TUI and the
// exported presentation.
var (
	// ThemeModern is the default theme with a blue accent on near-white.
	ThemeModern = domain.Theme{
		Name:        "modern",
		Label:       "Modern",
		Description: "Clean near-white deck with a blue accent (default)",
		Colors: domain.ThemeColors{
			Background: "#FDFDFD",
			Text:       "#1A1A2E",
			Accent:     "#3B82F6",
			Secondary:  "#6366F1",
			Muted:      "#9CA3AF",
			Border:     "#D1D5DB",
		},
	}

	// ThemeClassic is a warm serif-feel theme for traditional decks.
	ThemeClassic = domain.Theme{
		Name:        "classic",
		Label:       "Classic",
		Description: "Warm traditional palette with an amber accent",
		Colors: domain.ThemeColors{
			Background: "#FDF6EC",
			Text:       "#2D2A26",
			Accent:     "#C15F3C",
			Secondary:  "#A14A2F",
			Muted:      "#B1ADA1",
			Border:     "#D6CDBF",
		},
	}

	// ThemeBold is the high-contrast theme: white on black.
	ThemeBold = domain.Theme{
		Name:        "bold",
		Label:       "Bold",
		Description: "High-contrast white-on-black for big rooms",
		Colors: domain.ThemeColors{
			Background: "#000000",
			Text:       "#FFFFFF",
			Accent:     "#F59E0B",
			Secondary:  "#EF4444",
			Muted:      "#9CA3AF",
			Border:     "#374151",
		},
	}
)

// AllThemes returns the selectable themes in display order.
func AllThemes() []domain.Theme {
	return []domain.Theme{ThemeModern, ThemeClassic, ThemeBold}
}

// GetThemeByName returns the theme with the given name, defaulting to
// modern for unknown names.
func GetThemeByName(name string) domain.Theme {
	for _, theme := range AllThemes() {
		if theme.Name == name {
			return theme
		}
	}
	return ThemeModern
}
