// Package stylesheet compiles theme and file-icon documents into flat
// lists of CSS rules.
package stylesheet

import (
	"regexp"
	"strings"
)

var nonSelectorChars = regexp.MustCompile(`[^_A-Za-z0-9-]`)

// ToCSSSelector turns an arbitrary identifier into a safe class name
// fragment. Unsupported characters become hyphens; a leading digit or
// hyphen gets an underscore prefix. The empty string stays empty.
func ToCSSSelector(s string) string {
	s = nonSelectorChars.ReplaceAllString(s, "-")
	if len(s) > 0 && (s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		s = "_" + s
	}
	return s
}

// themeSelector derives the compound theme class from a theme id. The
// id encodes "<baseVariant> <selector>"; both halves become classes.
func themeSelector(themeID string) string {
	base, rest, found := strings.Cut(themeID, " ")
	if !found {
		return base
	}
	return base + "." + rest
}
