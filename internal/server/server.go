// Package server exposes the active stylesheets and activation over
// HTTP, plus the broadcast websocket endpoint.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/broadcast"
	"github.com/openworkbench/themed/internal/logging"
	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/registry"
)

// StyleSource reads the currently installed stylesheet per kind. The
// registry's sinks satisfy it.
type StyleSource interface {
	Content(kind models.Kind) string
}

// Server is the themed HTTP surface.
type Server struct {
	logger   zerolog.Logger
	registry *registry.Service
	source   StyleSource
	hub      *broadcast.Hub
}

// New creates a server around the registry. hub may be nil to disable
// the websocket endpoint.
func New(reg *registry.Service, source StyleSource, hub *broadcast.Hub) *Server {
	return &Server{
		logger:   logging.Component("server"),
		registry: reg,
		source:   source,
		hub:      hub,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /theme.css", s.handleStylesheet(models.KindColorTheme))
	mux.HandleFunc("GET /icons.css", s.handleStylesheet(models.KindFileIcons))
	mux.HandleFunc("GET /themes", s.handleList)
	mux.HandleFunc("POST /theme", s.handleActivate)
	if s.hub != nil {
		mux.Handle("GET /ws", s.hub)
	}
	return mux
}

func (s *Server) handleStylesheet(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write([]byte(s.source.Content(kind)))
	}
}

type contributionResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	ExtensionID string `json:"extensionId"`
	Active      bool   `json:"active"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	activeTheme := s.registry.ActiveColorTheme()
	activeIcons := s.registry.ActiveFileIconSet()

	response := struct {
		ColorThemes []contributionResponse `json:"colorThemes"`
		IconSets    []contributionResponse `json:"iconSets"`
	}{
		ColorThemes: toResponse(s.registry.ColorThemes(), activeTheme),
		IconSets:    toResponse(s.registry.FileIconSets(), activeIcons),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Warn().Err(err).Msg("encode theme list")
	}
}

func toResponse(contribs []models.ThemeContribution, activeID string) []contributionResponse {
	out := make([]contributionResponse, 0, len(contribs))
	for _, c := range contribs {
		out = append(out, contributionResponse{
			ID:          c.ID,
			Label:       c.Label,
			ExtensionID: c.ExtensionID,
			Active:      c.ID == activeID,
		})
	}
	return out
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id parameter required", http.StatusBadRequest)
		return
	}

	applied, err := s.registry.SetColorTheme(r.Context(), id, true)
	if err != nil {
		s.logger.Error().Err(err).Str("theme", id).Msg("activation failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if !applied {
		http.Error(w, "theme not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"applied":true}`))
}
