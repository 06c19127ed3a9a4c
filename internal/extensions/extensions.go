// Package extensions ingests theme and icon-set contributions declared
// by installed extensions.
package extensions

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/logging"
	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/stylesheet"
)

// ManifestName is the per-extension contribution manifest file.
const ManifestName = "extension.yaml"

// Manifest is the declared contribution surface of one extension.
type Manifest struct {
	Name        string `yaml:"name"`
	Publisher   string `yaml:"publisher"`
	Contributes struct {
		Themes     []ThemeEntry     `yaml:"themes"`
		IconThemes []IconThemeEntry `yaml:"iconThemes"`
	} `yaml:"contributes"`
}

// ThemeEntry declares one color theme.
type ThemeEntry struct {
	Label   string `yaml:"label"`
	UITheme string `yaml:"uiTheme"`
	Path    string `yaml:"path"`
}

// IconThemeEntry declares one file-icon set.
type IconThemeEntry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Extension is a scanned extension folder with a parsed manifest.
type Extension struct {
	// ID is "<publisher>.<name>".
	ID  string
	Dir string

	Manifest Manifest
}

// Collector receives diagnostics for malformed contribution entries.
// Reporting instead of failing lets the remaining entries load.
type Collector interface {
	Error(extensionID, message string)
	Warn(extensionID, message string)
}

// LogCollector routes contribution diagnostics to the process log.
type LogCollector struct {
	logger zerolog.Logger
}

// NewLogCollector creates a log-backed collector.
func NewLogCollector() *LogCollector {
	return &LogCollector{logger: logging.Component("extensions")}
}

// Error logs a contribution error.
func (c *LogCollector) Error(extensionID, message string) {
	c.logger.Error().Str("extension", extensionID).Msg(message)
}

// Warn logs a contribution warning.
func (c *LogCollector) Warn(extensionID, message string) {
	c.logger.Warn().Str("extension", extensionID).Msg(message)
}

// uiThemeVariants maps declared uiTheme values to base variant classes.
var uiThemeVariants = map[string]string{
	"light": models.VariantLight,
	"dark":  models.VariantDark,
	"hc":    models.VariantHighContrast,
}

// ColorThemes validates the extension's theme entries and builds their
// contributions. Malformed entries are reported and skipped.
func (e *Extension) ColorThemes(collector Collector) []*models.ThemeContribution {
	var contribs []*models.ThemeContribution
	for i, entry := range e.Manifest.Contributes.Themes {
		if entry.Path == "" {
			collector.Error(e.ID, fmt.Sprintf("themes[%d]: path is required", i))
			continue
		}
		variant := models.VariantDark
		switch {
		case entry.UITheme == "":
			collector.Warn(e.ID, fmt.Sprintf("themes[%d]: uiTheme missing, assuming dark", i))
		case uiThemeVariants[entry.UITheme] != "":
			variant = uiThemeVariants[entry.UITheme]
		default:
			collector.Error(e.ID, fmt.Sprintf("themes[%d]: uiTheme must be one of light, dark, hc", i))
			continue
		}

		label := entry.Label
		if label == "" {
			base := filepath.Base(entry.Path)
			label = strings.TrimSuffix(base, filepath.Ext(base))
		}

		contribs = append(contribs, &models.ThemeContribution{
			ID:          variant + " " + ThemeSelectorID(e.ID, entry.Path),
			Label:       label,
			Path:        filepath.Join(e.Dir, entry.Path),
			ExtensionID: e.ID,
		})
	}
	return contribs
}

// FileIconSets validates the extension's icon theme entries and builds
// their contributions.
func (e *Extension) FileIconSets(collector Collector) []*models.ThemeContribution {
	var contribs []*models.ThemeContribution
	for i, entry := range e.Manifest.Contributes.IconThemes {
		if entry.ID == "" {
			collector.Error(e.ID, fmt.Sprintf("iconThemes[%d]: id is required", i))
			continue
		}
		if entry.Path == "" {
			collector.Error(e.ID, fmt.Sprintf("iconThemes[%d]: path is required", i))
			continue
		}
		label := entry.Label
		if label == "" {
			label = entry.ID
		}
		contribs = append(contribs, &models.ThemeContribution{
			ID:          entry.ID,
			Label:       label,
			Path:        filepath.Join(e.Dir, entry.Path),
			ExtensionID: e.ID,
		})
	}
	return contribs
}

// ThemeSelectorID derives the sanitized selector half of a color theme
// id from the extension id and the document's declared path.
func ThemeSelectorID(extensionID, docPath string) string {
	normalized := filepath.ToSlash(filepath.Clean(docPath))
	normalized = strings.TrimPrefix(normalized, "./")
	return stylesheet.ToCSSSelector(extensionID + "-" + normalized)
}
