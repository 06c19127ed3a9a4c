package themedoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadColorThemeStructured(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dark.json", `{
		// a comment, allowed in the structured form
		"name": "Dark",
		"settings": [
			{ "settings": { "background": "#101010", "foreground": "#E0E0E0" } },
			{ "scope": "comment", "settings": { "foreground": "#608B4E", "fontStyle": "italic" } },
		]
	}`)

	doc, err := LoadColorTheme(path)
	if err != nil {
		t.Fatalf("LoadColorTheme: %v", err)
	}
	if doc.Name != "Dark" {
		t.Fatalf("expected name Dark, got %q", doc.Name)
	}
	if len(doc.Settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(doc.Settings))
	}
	if len(doc.Settings[0].Scope) != 0 {
		t.Fatalf("expected scopeless defaults entry, got %v", doc.Settings[0].Scope)
	}
	if got := doc.Settings[1].Scope; len(got) != 1 || got[0] != "comment" {
		t.Fatalf("unexpected scope: %v", got)
	}
}

func TestLoadColorThemeScopeForms(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scopes.json", `{
		"name": "Scopes",
		"settings": [
			{ "settings": {} },
			{ "scope": "string, string.quoted", "settings": { "foreground": "#111111" } },
			{ "scope": ["string", "string.quoted"], "settings": { "foreground": "#222222" } }
		]
	}`)

	doc, err := LoadColorTheme(path)
	if err != nil {
		t.Fatalf("LoadColorTheme: %v", err)
	}
	if got := doc.Settings[1].Scope; len(got) != 2 || got[0] != "string" || got[1] != " string.quoted" {
		t.Fatalf("comma form not split verbatim: %v", got)
	}
	if got := doc.Settings[2].Scope; len(got) != 2 || got[0] != "string" || got[1] != "string.quoted" {
		t.Fatalf("array form altered: %v", got)
	}
}

func TestLoadColorThemeIncludeChain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{
		"name": "Base",
		"settings": [
			{ "scope": "comment", "settings": { "foreground": "#000001" } }
		]
	}`)
	path := writeFile(t, dir, "derived.json", `{
		"name": "Derived",
		"include": "./base.json",
		"settings": [
			{ "scope": "comment", "settings": { "foreground": "#000002" } }
		]
	}`)

	doc, err := LoadColorTheme(path)
	if err != nil {
		t.Fatalf("LoadColorTheme: %v", err)
	}
	if len(doc.Settings) != 2 {
		t.Fatalf("expected 2 settings after include, got %d", len(doc.Settings))
	}
	if doc.Settings[0].Settings.Foreground != "#000001" {
		t.Fatalf("included settings must come first: %+v", doc.Settings)
	}
	if doc.Settings[1].Settings.Foreground != "#000002" {
		t.Fatalf("own settings must come last: %+v", doc.Settings)
	}
}

func TestLoadColorThemeLegacyFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "legacy.tmTheme", `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>name</key>
	<string>Legacy</string>
	<key>settings</key>
	<array>
		<dict>
			<key>settings</key>
			<dict>
				<key>background</key>
				<string>#FFFFFF</string>
			</dict>
		</dict>
		<dict>
			<key>scope</key>
			<string>comment,string</string>
			<key>settings</key>
			<dict>
				<key>foreground</key>
				<string>#445566</string>
			</dict>
		</dict>
	</array>
</dict>
</plist>`)

	doc, err := LoadColorTheme(path)
	if err != nil {
		t.Fatalf("LoadColorTheme: %v", err)
	}
	if doc.Name != "Legacy" {
		t.Fatalf("expected name Legacy, got %q", doc.Name)
	}
	if got := doc.Settings[1].Scope; len(got) != 2 || got[0] != "comment" || got[1] != "string" {
		t.Fatalf("unexpected legacy scope: %v", got)
	}
}

func TestLoadColorThemeParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", `{ "name": `)

	_, err := LoadColorTheme(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(parseErr.Diagnostics) == 0 {
		t.Fatalf("expected diagnostics, got none")
	}
	if !strings.Contains(parseErr.Error(), path) {
		t.Fatalf("error should name the path: %v", parseErr)
	}
}

func TestLoadColorThemeMissingFile(t *testing.T) {
	_, err := LoadColorTheme(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil || !strings.Contains(err.Error(), "unable to load") {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestLoadFileIcons(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "icons.json", `{
		"iconDefinitions": {
			"_go": { "iconPath": "./images/go.svg" }
		},
		"fileExtensions": { "go": "_go" },
		"light": {
			"fileExtensions": { "go": "_go" }
		}
	}`)

	doc, err := LoadFileIcons(path)
	if err != nil {
		t.Fatalf("LoadFileIcons: %v", err)
	}
	if doc.IconDefinitions["_go"].IconPath != "./images/go.svg" {
		t.Fatalf("unexpected definitions: %+v", doc.IconDefinitions)
	}
	if doc.FileExtensions["go"] != "_go" {
		t.Fatalf("unexpected base associations: %+v", doc.FileIconsAssociation)
	}
	if doc.Light == nil || doc.Light.FileExtensions["go"] != "_go" {
		t.Fatalf("unexpected light associations: %+v", doc.Light)
	}
}
