// Package themedoc loads color-theme and file-icon documents from disk.
//
// Color themes come in two serializations: the structured JSON form
// (comments and trailing commas allowed) and the legacy property-list
// form. Icon sets are structured JSON only.
package themedoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"howett.net/plist"

	"github.com/openworkbench/themed/internal/models"
)

// ParseError reports a failed document parse with every diagnostic the
// parser produced.
type ParseError struct {
	Path        string
	Diagnostics []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, strings.Join(e.Diagnostics, "; "))
}

// LoadColorTheme reads and parses the color theme document at path,
// resolving its include chain. Included settings come first so the
// including document's rules win by later application order.
func LoadColorTheme(path string) (*models.ThemeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", path, err)
	}

	var doc models.ThemeDocument
	if isStructured(path) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, &ParseError{Path: path, Diagnostics: []string{err.Error()}}
		}
	} else {
		if _, err := plist.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: path, Diagnostics: []string{err.Error()}}
		}
	}

	if doc.Include != "" {
		included, err := LoadColorTheme(filepath.Join(filepath.Dir(path), doc.Include))
		if err != nil {
			return nil, err
		}
		doc.Settings = append(included.Settings, doc.Settings...)
	}

	return &doc, nil
}

// LoadFileIcons reads and parses the file-icon document at path.
func LoadFileIcons(path string) (*models.FileIconsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", path, err)
	}

	var doc models.FileIconsDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, &ParseError{Path: path, Diagnostics: []string{err.Error()}}
	}
	return &doc, nil
}

func isStructured(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
