package models

// FileIconsAssociation maps file shapes to icon definition ids.
type FileIconsAssociation struct {
	Folder         string            `json:"folder"`
	FolderExpanded string            `json:"folderExpanded"`
	File           string            `json:"file"`
	FileExtensions map[string]string `json:"fileExtensions"`
	FileNames      map[string]string `json:"fileNames"`
	LanguageIDs    map[string]string `json:"languageIds"`
}

// IsZero reports whether the association carries no entries.
func (a *FileIconsAssociation) IsZero() bool {
	return a == nil ||
		(a.Folder == "" && a.FolderExpanded == "" && a.File == "" &&
			len(a.FileExtensions) == 0 && len(a.FileNames) == 0 && len(a.LanguageIDs) == 0)
}

// IconDefinition names one icon image resource.
type IconDefinition struct {
	IconPath string `json:"iconPath"`
}

// FileIconsDocument is a parsed file-icon set description. The embedded
// association is the base set; Light and HighContrast overlay it for
// those variants.
type FileIconsDocument struct {
	FileIconsAssociation

	IconDefinitions map[string]IconDefinition `json:"iconDefinitions"`
	Light           *FileIconsAssociation     `json:"light"`
	HighContrast    *FileIconsAssociation     `json:"highContrast"`
}
