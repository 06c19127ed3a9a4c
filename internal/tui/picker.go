// Package tui implements the interactive theme picker.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/registry"
	"github.com/openworkbench/themed/internal/tui/styles"
)

// Run launches the theme picker program.
func Run(reg *registry.Service) error {
	program := tea.NewProgram(initialModel(reg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// variantTracker records the base variant class applied to the UI root
// so the picker can restyle itself after an activation.
type variantTracker struct {
	mu      sync.Mutex
	variant string
}

func (t *variantTracker) SwapClass(oldClass, newClass string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.variant = newClass
}

func (t *variantTracker) Variant() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.variant
}

type model struct {
	registry *registry.Service
	root     *variantTracker
	themes   []models.ThemeContribution
	cursor   int
	width    int
	height   int
	styles   styles.Styles
	status   string
	err      error
}

func initialModel(reg *registry.Service) model {
	root := &variantTracker{variant: models.VariantDark}
	reg.RegisterUIRoot(root)

	themes := reg.ColorThemes()
	cursor := 0
	for i, theme := range themes {
		if theme.ID == reg.ActiveColorTheme() {
			cursor = i
			break
		}
	}

	return model{
		registry: reg,
		root:     root,
		themes:   themes,
		cursor:   cursor,
		styles:   styles.DefaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
		case "enter":
			m = m.activate()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) activate() model {
	if m.cursor < 0 || m.cursor >= len(m.themes) {
		return m
	}
	theme := m.themes[m.cursor]

	applied, err := m.registry.SetColorTheme(context.Background(), theme.ID, false)
	if err != nil {
		m.err = err
		m.status = ""
		return m
	}
	m.err = nil
	if !applied {
		m.status = fmt.Sprintf("%s is not registered", theme.ID)
		return m
	}

	m.status = fmt.Sprintf("applied %s", theme.Label)
	m.styles = styles.BuildStyles(styles.ForVariant(m.root.Variant()))
	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Color Themes"))
	b.WriteString("\n\n")

	if len(m.themes) == 0 {
		b.WriteString(m.styles.Muted.Render("no color themes registered"))
		b.WriteString("\n")
	}

	active := m.registry.ActiveColorTheme()
	for i, theme := range m.themes {
		line := theme.Label
		if theme.Description != "" {
			line += " (" + theme.Description + ")"
		}
		marker := "  "
		if theme.ID == active {
			marker = m.styles.Success.Render("* ")
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(marker + m.styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Accent.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("up/down move  enter apply  q quit"))
	b.WriteString("\n")

	return b.String()
}
