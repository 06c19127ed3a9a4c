package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultThemeID(t *testing.T) {
	if got := defaultThemeID("/themes/My Dark.json", false); got != "theme-dark My-Dark" {
		t.Fatalf("theme id = %q, want %q", got, "theme-dark My-Dark")
	}
	if got := defaultThemeID("/icons/material.json", true); got != "material" {
		t.Fatalf("icon id = %q, want %q", got, "material")
	}
}

func TestCompileDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark.json")
	doc := `{
		"name": "Dark",
		"settings": [
			{"settings": {"foreground": "#D4D4D4"}},
			{"scope": "comment", "settings": {"foreground": "#608B4E"}}
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	rules, err := compileDocument(path, "theme-dark dark", false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(rules) == 0 {
		t.Fatal("expected rules")
	}
	joined := strings.Join(rules, "\n")
	if !strings.Contains(joined, ".token.comment") {
		t.Fatalf("missing comment rule in:\n%s", joined)
	}
}

func TestCompileDocumentMissingFile(t *testing.T) {
	if _, err := compileDocument(filepath.Join(t.TempDir(), "absent.json"), "id", false); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"ID", "ACTIVE"}, [][]string{
		{"theme-dark a", formatYesNo(true)},
		{"theme-light b", formatYesNo(false)},
	})
	if err != nil {
		t.Fatalf("write table: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ID", "theme-dark a", "yes", "no"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
