package stylesheet

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openworkbench/themed/internal/models"
)

// Icon rule class vocabulary.
const (
	iconsEnabledClass  = ".show-file-icons"
	lightPrefix        = "." + models.VariantLight
	highContrastPrefix = "." + models.VariantHighContrast
)

// CompileFileIcons turns a file-icon document into an ordered rule
// list. Associations are walked in three passes (base, light, high
// contrast); every selector implied by an association accumulates under
// its definition id, and each definition with an icon path emits one
// background-image rule. Definitions with no selectors, or without an
// icon path, are silently skipped.
func CompileFileIcons(iconSetID, docPath string, doc *models.FileIconsDocument) []string {
	_ = iconSetID // reserved; selectors are variant-scoped, not per-set

	if len(doc.IconDefinitions) == 0 {
		return nil
	}

	selectorsByDef := make(map[string][]string)
	var defOrder []string
	add := func(selector, defID string) {
		if defID == "" {
			return
		}
		if _, seen := selectorsByDef[defID]; !seen {
			defOrder = append(defOrder, defID)
		}
		selectorsByDef[defID] = append(selectorsByDef[defID], selector)
	}

	collect := func(assoc *models.FileIconsAssociation, variantPrefix string) {
		if assoc.IsZero() {
			return
		}
		qualifier := iconsEnabledClass
		if variantPrefix != "" {
			qualifier = variantPrefix + " " + qualifier
		}
		if assoc.Folder != "" {
			add(qualifier+" .folder-icon::before", assoc.Folder)
		}
		if assoc.FolderExpanded != "" {
			add(qualifier+" .folder-icon.expanded::before", assoc.FolderExpanded)
		}
		if assoc.File != "" {
			add(qualifier+" .file-icon::before", assoc.File)
		}
		for _, ext := range sortedKeys(assoc.FileExtensions) {
			selector := fmt.Sprintf("%s .%s-ext-file-icon.file-icon::before", qualifier, ToCSSSelector(strings.ToLower(ext)))
			add(selector, assoc.FileExtensions[ext])
		}
		for _, name := range sortedKeys(assoc.FileNames) {
			stem, ext := splitFileName(strings.ToLower(name))
			selector := fmt.Sprintf("%s .%s-name-file-icon.%s-ext-file-icon.file-icon::before", qualifier, ToCSSSelector(stem), ToCSSSelector(ext))
			add(selector, assoc.FileNames[name])
		}
		for _, lang := range sortedKeys(assoc.LanguageIDs) {
			selector := fmt.Sprintf("%s .%s-lang-file-icon.file-icon::before", qualifier, ToCSSSelector(lang))
			add(selector, assoc.LanguageIDs[lang])
		}
	}

	collect(&doc.FileIconsAssociation, "")
	collect(doc.Light, lightPrefix)
	collect(doc.HighContrast, highContrastPrefix)

	docDir := filepath.Dir(docPath)
	var rules []string
	for _, defID := range defOrder {
		def, ok := doc.IconDefinitions[defID]
		if !ok || def.IconPath == "" {
			continue
		}
		iconPath := filepath.Join(docDir, def.IconPath)
		rules = append(rules, fmt.Sprintf("%s { content: ' '; background-image: url(%q); }", strings.Join(selectorsByDef[defID], ", "), iconPath))
	}
	return rules
}

// splitFileName separates a lower-cased file name into stem and
// extension. A name without a dot has the empty extension.
func splitFileName(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
