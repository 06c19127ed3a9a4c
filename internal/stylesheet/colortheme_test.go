package stylesheet

import (
	"reflect"
	"strings"
	"testing"

	"github.com/openworkbench/themed/internal/models"
)

const testThemeID = "theme-dark my-ext-themes-dark-json"

func scoped(scope ...string) models.ScopeList {
	return models.ScopeList(scope)
}

func TestCompileColorThemeScopedRule(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{Background: "#101010"}},
			{Scope: scoped("comment"), Settings: models.StyleAttributes{Foreground: "#608B4E", FontStyle: "italic"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	want := ".code-editor.theme-dark.my-ext-themes-dark-json .token.comment { color: rgba(96, 139, 78, 1); font-style: italic; }"
	if rules[0] != want {
		t.Fatalf("unexpected rule:\n got %q\nwant %q", rules[0], want)
	}
}

func TestCompileColorThemeScopeFormsEquivalent(t *testing.T) {
	asString := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("string", " string.quoted"), Settings: models.StyleAttributes{Foreground: "#CE9178"}},
		},
	}
	asArray := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("string", "string.quoted"), Settings: models.StyleAttributes{Foreground: "#CE9178"}},
		},
	}

	if !reflect.DeepEqual(CompileColorTheme(testThemeID, asString), CompileColorTheme(testThemeID, asArray)) {
		t.Fatalf("comma-split and array scopes should compile identically")
	}
}

func TestCompileColorThemeSpaceSeparatedScopeFlattens(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("string quoted"), Settings: models.StyleAttributes{Foreground: "#CE9178"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	if len(rules) != 1 {
		t.Fatalf("expected a single rule, got %d", len(rules))
	}
	if !strings.Contains(rules[0], ".token.string.quoted ") {
		t.Fatalf("hierarchical scope should flatten to one compound class: %q", rules[0])
	}
}

func TestCompileColorThemeFontStyleOrder(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("keyword"), Settings: models.StyleAttributes{FontStyle: "bold italic"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	want := ".code-editor.theme-dark.my-ext-themes-dark-json .token.keyword { font-weight: bold; font-style: italic; }"
	if rules[0] != want {
		t.Fatalf("unexpected rule:\n got %q\nwant %q", rules[0], want)
	}
}

func TestCompileColorThemeBackgroundNotTranslatedInScopedRules(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("comment"), Settings: models.StyleAttributes{Foreground: "#608B4E", Background: "#FF0000"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	if strings.Contains(rules[0], "background") {
		t.Fatalf("scoped rules must not carry background declarations: %q", rules[0])
	}
}

func TestCompileColorThemeEditorDefaults(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{
				Background:    "#101010",
				Foreground:    "#E0E0E0",
				Selection:     "#336699",
				LineHighlight: "#202020",
				Caret:         "#FFFFFF",
				Invisibles:    "#404040",
			}},
		},
	}

	want := []string{
		".code-editor.theme-dark.my-ext-themes-dark-json .editor-background { background-color: rgba(16, 16, 16, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .glyph-margin { background-color: rgba(16, 16, 16, 1); }",
		".workbench.theme-dark.my-ext-themes-dark-json .editor-background { background-color: rgba(16, 16, 16, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .token { color: rgba(224, 224, 224, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .focused .selected-text { background-color: rgba(51, 102, 153, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .selected-text { background-color: rgba(51, 102, 153, 0.5); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .current-line { background-color: rgba(32, 32, 32, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .cursor { background-color: rgba(255, 255, 255, 1); border-color: rgba(255, 255, 255, 1); color: rgba(0, 0, 0, 1); }",
		".code-editor.theme-dark.my-ext-themes-dark-json .token.whitespace { color: rgba(64, 64, 64, 1) !important; }",
		".code-editor.theme-dark.my-ext-themes-dark-json .indent-guide { background-color: rgba(64, 64, 64, 1); }",
	}

	got := CompileColorTheme(testThemeID, doc)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected default rules:\n got %v\nwant %v", got, want)
	}
}

func TestCompileColorThemeAbsentDefaultsEmitNothing(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{Foreground: "#E0E0E0"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	if len(rules) != 1 {
		t.Fatalf("only the foreground rule should be emitted, got %v", rules)
	}
}

func TestCompileColorThemeIndexZeroWithScopeIsOrdinary(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Scope: scoped("comment"), Settings: models.StyleAttributes{Foreground: "#608B4E"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	if len(rules) != 1 || !strings.Contains(rules[0], ".token.comment ") {
		t.Fatalf("index-0 entry with a scope must compile as a scoped rule: %v", rules)
	}
}

func TestCompileColorThemeMalformedColorDegradesToSentinel(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{}},
			{Scope: scoped("comment"), Settings: models.StyleAttributes{Foreground: "oops"}},
		},
	}

	rules := CompileColorTheme(testThemeID, doc)
	if !strings.Contains(rules[0], "rgba(255, 0, 0, 1)") {
		t.Fatalf("malformed color should render as the sentinel: %q", rules[0])
	}
}

func TestCompileColorThemeIdempotent(t *testing.T) {
	doc := &models.ThemeDocument{
		Settings: []models.ThemeSettingEntry{
			{Settings: models.StyleAttributes{Background: "#101010", Caret: "#AABBCC"}},
			{Scope: scoped("comment", "string"), Settings: models.StyleAttributes{Foreground: "#608B4E"}},
		},
	}

	first := strings.Join(CompileColorTheme(testThemeID, doc), "\n")
	second := strings.Join(CompileColorTheme(testThemeID, doc), "\n")
	if first != second {
		t.Fatalf("compilation is not deterministic:\n%s\n---\n%s", first, second)
	}
}
