package styles

import "github.com/openworkbench/themed/internal/models"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists the available palettes by base variant class.
var Themes = map[string]Theme{
	models.VariantDark:         DarkTheme,
	models.VariantLight:        LightTheme,
	models.VariantHighContrast: HighContrastTheme,
}

// ForVariant returns the palette for a base variant class, defaulting
// to the dark palette.
func ForVariant(variant string) Theme {
	if theme, ok := Themes[variant]; ok {
		return theme
	}
	return DarkTheme
}
