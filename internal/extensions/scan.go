package extensions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScanDir reads every extension folder under dir. A folder without a
// manifest is ignored; a folder with a malformed manifest is reported
// to the collector and skipped so the remaining extensions still load.
func ScanDir(dir string, collector Collector) ([]*Extension, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Extension{}, nil
		}
		return nil, fmt.Errorf("read extensions dir %s: %w", dir, err)
	}

	exts := make([]*Extension, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		extDir := filepath.Join(dir, entry.Name())
		ext, err := LoadExtension(extDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			collector.Error(entry.Name(), err.Error())
			continue
		}
		exts = append(exts, ext)
	}

	sort.Slice(exts, func(i, j int) bool {
		return exts[i].ID < exts[j].ID
	})
	return exts, nil
}

// LoadExtension reads one extension folder's manifest.
func LoadExtension(dir string) (*Extension, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}

	manifest.Name = strings.TrimSpace(manifest.Name)
	manifest.Publisher = strings.TrimSpace(manifest.Publisher)
	if manifest.Name == "" {
		return nil, fmt.Errorf("%s: name is required", ManifestName)
	}
	if manifest.Publisher == "" {
		return nil, fmt.Errorf("%s: publisher is required", ManifestName)
	}

	return &Extension{
		ID:       manifest.Publisher + "." + manifest.Name,
		Dir:      dir,
		Manifest: manifest,
	}, nil
}
