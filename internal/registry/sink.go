package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/openworkbench/themed/internal/models"
)

// MemorySink keeps the installed stylesheets in memory, one slot per
// kind. It backs tests and the TUI.
type MemorySink struct {
	mu    sync.RWMutex
	slots map[models.Kind]string
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{slots: make(map[models.Kind]string)}
}

// Install replaces the slot content for the kind.
func (s *MemorySink) Install(kind models.Kind, rules []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[kind] = strings.Join(rules, "\n")
	return nil
}

// Content returns the current slot content for the kind.
func (s *MemorySink) Content(kind models.Kind) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[kind]
}

// FileSink writes each slot to <dir>/<kind>.css, overwriting the
// previous content.
type FileSink struct {
	dir string
	mem MemorySink
}

// NewFileSink creates a sink writing into dir, creating it if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create stylesheet dir %s: %w", dir, err)
	}
	return &FileSink{dir: dir, mem: *NewMemorySink()}, nil
}

// Install writes the slot file for the kind.
func (s *FileSink) Install(kind models.Kind, rules []string) error {
	content := strings.Join(rules, "\n")
	path := s.Path(kind)
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return s.mem.Install(kind, rules)
}

// Content returns the last installed content for the kind.
func (s *FileSink) Content(kind models.Kind) string {
	return s.mem.Content(kind)
}

// Path returns the slot file location for the kind.
func (s *FileSink) Path(kind models.Kind) string {
	return filepath.Join(s.dir, string(kind)+".css")
}
