// Package registry tracks known theme and icon-set contributions and
// drives activation of the current selection.
package registry

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/logging"
	"github.com/openworkbench/themed/internal/models"
)

// Settings keys for the persisted selection.
const (
	SettingColorTheme = "ui.colorTheme"
	SettingIconSet    = "ui.iconTheme"
)

// ChannelThemeChanged is the broadcast channel for activation fan-out.
const ChannelThemeChanged = "theme.changed"

// ErrSettingsRequired is returned when no settings store is supplied.
var ErrSettingsRequired = errors.New("settings store is required")

// Settings is the persistent key-value store the registry writes the
// active selection to.
type Settings interface {
	Get(ctx context.Context, key, def string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Broadcaster fans an activation out to other windows.
type Broadcaster interface {
	Broadcast(channel string, payload interface{})
}

// UsageReporter records that a contributing extension's theme was
// activated. The registry guarantees at most one call per extension id
// per process.
type UsageReporter interface {
	Report(extensionID string)
}

// StyleSink is the named output slot for compiled stylesheets, one per
// contribution kind. Install replaces the slot's whole content.
type StyleSink interface {
	Install(kind models.Kind, rules []string) error
}

// UIRoot is the optional live UI root whose variant class follows the
// active color theme.
type UIRoot interface {
	SwapClass(oldClass, newClass string)
}

// Service is the theme registry.
type Service struct {
	logger   zerolog.Logger
	settings Settings
	sink     StyleSink

	broadcaster Broadcaster
	reporter    UsageReporter

	defaultColorTheme string
	defaultIconSet    string

	mu          sync.Mutex
	colorThemes []*models.ThemeContribution
	iconSets    []*models.ThemeContribution
	activeTheme string
	activeIcons string
	uiRoot      UIRoot
	reported    map[string]bool

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(themeID string)
}

// Option configures the Service.
type Option func(*Service)

// WithBroadcaster wires the cross-window broadcast channel.
func WithBroadcaster(b Broadcaster) Option {
	return func(s *Service) { s.broadcaster = b }
}

// WithUsageReporter wires first-activation usage reporting.
func WithUsageReporter(r UsageReporter) Option {
	return func(s *Service) { s.reporter = r }
}

// WithDefaultColorTheme sets the fallback id used when a requested
// color theme is unknown.
func WithDefaultColorTheme(id string) Option {
	return func(s *Service) { s.defaultColorTheme = id }
}

// WithDefaultIconSet sets the fallback id for unknown icon sets.
func WithDefaultIconSet(id string) Option {
	return func(s *Service) { s.defaultIconSet = id }
}

// New creates a registry service.
func New(settings Settings, sink StyleSink, opts ...Option) (*Service, error) {
	if settings == nil {
		return nil, ErrSettingsRequired
	}
	if sink == nil {
		sink = NewMemorySink()
	}
	s := &Service{
		logger:   logging.Component("registry"),
		settings: settings,
		sink:     sink,
		reported: make(map[string]bool),
		subs:     make(map[int]func(string)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterColorTheme appends a color theme contribution. Contributions
// are never removed; colliding ids coexist and lookup takes the first
// match.
func (s *Service) RegisterColorTheme(c *models.ThemeContribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorThemes = append(s.colorThemes, c)
}

// RegisterFileIconSet appends a file-icon set contribution.
func (s *Service) RegisterFileIconSet(c *models.ThemeContribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iconSets = append(s.iconSets, c)
}

// RegisterUIRoot attaches the live UI root. Passing nil detaches it.
func (s *Service) RegisterUIRoot(root UIRoot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uiRoot = root
}

// ColorThemes lists the known color theme contributions.
func (s *Service) ColorThemes() []models.ThemeContribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.colorThemes)
}

// FileIconSets lists the known file-icon set contributions.
func (s *Service) FileIconSets() []models.ThemeContribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.iconSets)
}

// ActiveColorTheme returns the id of the active color theme.
func (s *Service) ActiveColorTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTheme
}

// ActiveFileIconSet returns the id of the active icon set.
func (s *Service) ActiveFileIconSet() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeIcons
}

// OnColorThemeChange registers a subscriber for color theme switches
// and returns its unsubscribe function.
func (s *Service) OnColorThemeChange(fn func(themeID string)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) notify(themeID string) {
	s.subMu.Lock()
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(themeID)
	}
}

func (s *Service) reportOnce(extensionID string) {
	if s.reporter == nil || extensionID == "" {
		return
	}
	if s.reported[extensionID] {
		return
	}
	s.reported[extensionID] = true
	s.reporter.Report(extensionID)
}

func snapshot(list []*models.ThemeContribution) []models.ThemeContribution {
	out := make([]models.ThemeContribution, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	return out
}

func findByID(list []*models.ThemeContribution, id string) *models.ThemeContribution {
	if id == "" {
		return nil
	}
	for _, c := range list {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// baseVariant extracts the base variant class from a color theme id.
func baseVariant(themeID string) string {
	variant, _, _ := strings.Cut(themeID, " ")
	return variant
}
