// Package models defines the contribution and document types shared by
// the loader, compilers and registry.
package models

import (
	"encoding/json"
	"strings"
)

// Kind identifies a contribution family.
type Kind string

const (
	// KindColorTheme marks token-color theme contributions.
	KindColorTheme Kind = "color-theme"
	// KindFileIcons marks file-icon set contributions.
	KindFileIcons Kind = "file-icons"
)

// Base variant classes. A color theme id always starts with one of
// these; icon rules use them to qualify light/high-contrast overlays.
const (
	VariantLight        = "theme-light"
	VariantDark         = "theme-dark"
	VariantHighContrast = "theme-hc"
)

// ThemeContribution is one theme or icon set announced by an extension.
type ThemeContribution struct {
	// ID is "<variant> <selector>" for color themes and a bare
	// extension-chosen string for icon sets. Collisions are allowed;
	// lookup takes the first match.
	ID          string
	Label       string
	Description string

	// Path is the absolute location of the theme document.
	Path string

	// ExtensionID identifies the contributing extension.
	ExtensionID string

	// Styles caches the compiled stylesheet. Written once on first
	// successful activation and never invalidated: edits to the source
	// document after that are not observed for the process lifetime.
	Styles []string
}

// IsCompiled reports whether the stylesheet cache is populated.
func (c *ThemeContribution) IsCompiled() bool {
	return len(c.Styles) > 0
}

// ThemeDocument is a parsed color theme description.
type ThemeDocument struct {
	Name     string            `json:"name" plist:"name"`
	Include  string            `json:"include" plist:"include"`
	Settings []ThemeSettingEntry `json:"settings" plist:"settings"`
}

// ThemeSettingEntry is one rule of a theme document. The entry at index
// zero with no scope carries the whole-editor defaults.
type ThemeSettingEntry struct {
	Name     string          `json:"name" plist:"name"`
	Scope    ScopeList       `json:"scope" plist:"scope"`
	Settings StyleAttributes `json:"settings" plist:"settings"`
}

// StyleAttributes are the style values a setting entry may carry. Each
// color field holds a hex string; FontStyle is a space-separated set of
// "italic", "bold" and "underline".
type StyleAttributes struct {
	Background    string `json:"background" plist:"background"`
	Foreground    string `json:"foreground" plist:"foreground"`
	FontStyle     string `json:"fontStyle" plist:"fontStyle"`
	Caret         string `json:"caret" plist:"caret"`
	Invisibles    string `json:"invisibles" plist:"invisibles"`
	LineHighlight string `json:"lineHighlight" plist:"lineHighlight"`
	Selection     string `json:"selection" plist:"selection"`
}

// IsZero reports whether no attribute is set.
func (a StyleAttributes) IsZero() bool {
	return a == StyleAttributes{}
}

// ScopeList holds the scope tokens of a setting entry. The document
// forms differ: a plain string splits on commas, an array contributes
// one token per element with no further splitting.
type ScopeList []string

// UnmarshalJSON accepts either a string or an array of strings.
func (s *ScopeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = splitScopeString(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// UnmarshalPlist accepts the legacy format's string scope.
func (s *ScopeList) UnmarshalPlist(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err != nil {
		return err
	}
	*s = splitScopeString(single)
	return nil
}

func splitScopeString(scope string) []string {
	if scope == "" {
		return nil
	}
	return strings.Split(scope, ",")
}
