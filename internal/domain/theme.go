package domain

import (
	"fmt"
	"regexp"
)

// Theme is a named visual palette applied uniformly across the in-terminal
// renderer and the exported presentation file.
type Theme struct {
	Name        string
	Label       string
	Description string
	Colors      ThemeColors
}

// ThemeColors defines the palette for a deck theme. Hex values carry the
// leading '#'; the export writer strips it for OOXML.
type ThemeColors struct {
	// Slide background and main text, the two-tone palette used by the
	// export writer.
	Background string
	Text       string

	// Accent color for bullets, chart bars and selection highlights.
	Accent string

	// Secondary accent (darker shade of Accent).
	Secondary string

	// Muted text color for captions and helper text.
	Muted string

	// Border color for slide frames and separators.
	Border string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	colors := map[string]string{
		"Background": t.Colors.Background,
		"Text":       t.Colors.Text,
		"Accent":     t.Colors.Accent,
		"Secondary":  t.Colors.Secondary,
		"Muted":      t.Colors.Muted,
		"Border":     t.Colors.Border,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", name, color)
		}
	}

	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	return nil
}

// Bold reports whether this is the high-contrast dark theme, which flips
// the export palette to black background / white text.
func (t Theme) Bold() bool {
	return t.Name == "bold"
}
