package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/registry"
)

type memSettings map[string]string

func (m memSettings) Get(_ context.Context, key, def string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m memSettings) Put(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func newTestServer(t *testing.T) (*Server, *registry.Service, *registry.MemorySink) {
	t.Helper()
	sink := registry.NewMemorySink()
	reg, err := registry.New(memSettings{}, sink)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}

	themePath := filepath.Join(t.TempDir(), "theme.json")
	content := `{"name":"T","settings":[{"settings":{"background":"#101010"}},{"scope":"comment","settings":{"foreground":"#608B4E"}}]}`
	if err := os.WriteFile(themePath, []byte(content), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	reg.RegisterColorTheme(&models.ThemeContribution{
		ID: "theme-dark t", Label: "T", Path: themePath, ExtensionID: "pub.t",
	})

	return New(reg, sink, nil), reg, sink
}

func TestHandleActivateAndStylesheet(t *testing.T) {
	srv, reg, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme?id=theme-dark+t", "", nil)
	if err != nil {
		t.Fatalf("POST /theme: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if reg.ActiveColorTheme() != "theme-dark t" {
		t.Fatalf("theme not activated: %q", reg.ActiveColorTheme())
	}

	css, err := http.Get(ts.URL + "/theme.css")
	if err != nil {
		t.Fatalf("GET /theme.css: %v", err)
	}
	defer css.Body.Close()
	if got := css.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("unexpected content type: %q", got)
	}
	body, err := io.ReadAll(css.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), ".token.comment") {
		t.Fatalf("stylesheet not served: %q", body)
	}
}

func TestHandleActivateUnknownTheme(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme?id=theme-dark+missing", "", nil)
	if err != nil {
		t.Fatalf("POST /theme: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandleActivateMissingID(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme", "", nil)
	if err != nil {
		t.Fatalf("POST /theme: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleList(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/themes")
	if err != nil {
		t.Fatalf("GET /themes: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		ColorThemes []struct {
			ID     string `json:"id"`
			Label  string `json:"label"`
			Active bool   `json:"active"`
		} `json:"colorThemes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.ColorThemes) != 1 || payload.ColorThemes[0].ID != "theme-dark t" {
		t.Fatalf("unexpected list: %+v", payload.ColorThemes)
	}
	if payload.ColorThemes[0].Active {
		t.Fatalf("theme should not be active before activation")
	}
}
