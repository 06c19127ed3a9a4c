package stylesheet

import (
	"fmt"
	"strings"

	"github.com/openworkbench/themed/internal/color"
	"github.com/openworkbench/themed/internal/models"
)

// Root classes the generated rules hang off.
const (
	editorRootClass    = "code-editor"
	workbenchRootClass = "workbench"
)

// CompileColorTheme turns a theme document into an ordered rule list.
// The first scopeless entry supplies the whole-editor defaults; every
// other entry with a scope and settings yields one rule per scope
// token.
func CompileColorTheme(themeID string, doc *models.ThemeDocument) []string {
	selector := themeSelector(themeID)

	var defaults models.StyleAttributes
	var rules []string

	for i, entry := range doc.Settings {
		if i == 0 && len(entry.Scope) == 0 {
			defaults = entry.Settings
			continue
		}
		if len(entry.Scope) == 0 || entry.Settings.IsZero() {
			continue
		}
		body := tokenBody(entry.Settings)
		for _, raw := range entry.Scope {
			token := strings.ReplaceAll(strings.TrimSpace(raw), " ", ".")
			rules = append(rules, fmt.Sprintf(".%s.%s .token.%s { %s }", editorRootClass, selector, token, body))
		}
	}

	return append(rules, defaultRules(selector, defaults)...)
}

// tokenBody translates scoped style attributes into declarations.
// Background is deliberately untranslated: token backgrounds paint over
// selection and line highlights.
func tokenBody(attrs models.StyleAttributes) string {
	var decls []string
	if attrs.Foreground != "" {
		decls = append(decls, fmt.Sprintf("color: %s;", color.Parse(attrs.Foreground)))
	}
	for _, style := range strings.Fields(attrs.FontStyle) {
		switch style {
		case "italic":
			decls = append(decls, "font-style: italic;")
		case "bold":
			decls = append(decls, "font-weight: bold;")
		case "underline":
			decls = append(decls, "text-decoration: underline;")
		}
	}
	return strings.Join(decls, " ")
}

// defaultRules emits the whole-editor rules for the defaults record.
// Absent attributes contribute nothing; no defaults are synthesized.
func defaultRules(selector string, defaults models.StyleAttributes) []string {
	var rules []string

	if defaults.Background != "" {
		background := color.Parse(defaults.Background)
		rules = append(rules,
			fmt.Sprintf(".%s.%s .editor-background { background-color: %s; }", editorRootClass, selector, background),
			fmt.Sprintf(".%s.%s .glyph-margin { background-color: %s; }", editorRootClass, selector, background),
			fmt.Sprintf(".%s.%s .editor-background { background-color: %s; }", workbenchRootClass, selector, background),
		)
	}
	if defaults.Foreground != "" {
		rules = append(rules,
			fmt.Sprintf(".%s.%s .token { color: %s; }", editorRootClass, selector, color.Parse(defaults.Foreground)),
		)
	}
	if defaults.Selection != "" {
		selection := color.Parse(defaults.Selection)
		rules = append(rules,
			fmt.Sprintf(".%s.%s .focused .selected-text { background-color: %s; }", editorRootClass, selector, selection),
			fmt.Sprintf(".%s.%s .selected-text { background-color: %s; }", editorRootClass, selector, selection.WithAlpha(0.5)),
		)
	}
	if defaults.LineHighlight != "" {
		rules = append(rules,
			fmt.Sprintf(".%s.%s .current-line { background-color: %s; }", editorRootClass, selector, color.Parse(defaults.LineHighlight)),
		)
	}
	if defaults.Caret != "" {
		caret := color.Parse(defaults.Caret)
		rules = append(rules,
			fmt.Sprintf(".%s.%s .cursor { background-color: %s; border-color: %s; color: %s; }", editorRootClass, selector, caret, caret, caret.Invert()),
		)
	}
	if defaults.Invisibles != "" {
		invisibles := color.Parse(defaults.Invisibles)
		rules = append(rules,
			fmt.Sprintf(".%s.%s .token.whitespace { color: %s !important; }", editorRootClass, selector, invisibles),
			fmt.Sprintf(".%s.%s .indent-guide { background-color: %s; }", editorRootClass, selector, invisibles),
		)
	}

	return rules
}
