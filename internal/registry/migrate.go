package registry

// legacyThemeIDs rewrites historical theme identifiers to their current
// composite form. The table is deliberately closed: ids it does not
// list pass through unchanged.
var legacyThemeIDs = map[string]string{
	"light": "theme-light builtin-themes-light-default-json",
	"dark":  "theme-dark builtin-themes-dark-default-json",
	"hc":    "theme-hc builtin-themes-hc-default-json",
	"theme-light builtin-legacy-themes-light-plus-tmTheme": "theme-light builtin-themes-light-plus-json",
	"theme-dark builtin-legacy-themes-dark-plus-tmTheme":   "theme-dark builtin-themes-dark-plus-json",
}

// MigrateLegacyThemeID maps a historical theme id to its current form.
func MigrateLegacyThemeID(id string) string {
	if current, ok := legacyThemeIDs[id]; ok {
		return current
	}
	return id
}
