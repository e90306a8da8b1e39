// Package picker is an interactive terminal launcher surface: it queries the
// plugin on every keystroke and hands the chosen match back to it.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starford/coderecents/internal/plugin"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model implements tea.Model for the picker.
type Model struct {
	plugin  plugin.Plugin
	input   textinput.Model
	matches []plugin.Match
	cursor  int

	// Set once the user picked a match or cancelled.
	done     bool
	selected *plugin.Match
}

// NewModel constructs a picker over p with an empty, focused query line.
func NewModel(p plugin.Plugin) Model {
	ti := textinput.New()
	ti.Placeholder = "search recent workspaces"
	ti.Prompt = "> "
	ti.Focus()
	return Model{plugin: p, input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			if len(m.matches) == 0 {
				return m, nil
			}
			chosen := m.matches[m.cursor]
			m.selected = &chosen
			m.done = true
			if m.plugin.HandleSelection(chosen) == plugin.Close {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.matches = m.plugin.GetMatches(after)
		m.cursor = 0
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.plugin.Info().Name))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	for i, match := range m.matches {
		marker, title := "  ", match.Title
		if i == m.cursor {
			marker, title = selectedStyle.Render("▸ "), selectedStyle.Render(match.Title)
		}
		b.WriteString(marker + title)
		if match.Description != "" {
			b.WriteString("  " + dimStyle.Render(match.Description))
		}
		b.WriteString("\n")
	}
	if len(m.matches) == 0 && m.input.Value() != "" {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter open • ↑/↓ move • esc close"))
	return b.String()
}

// Selected returns the match the user opened, if any.
func (m Model) Selected() (plugin.Match, bool) {
	if m.selected == nil {
		return plugin.Match{}, false
	}
	return *m.selected, true
}

// Run shows the picker on the terminal until the user opens a match or closes it.
func Run(p plugin.Plugin, opts ...tea.ProgramOption) (plugin.Match, bool, error) {
	final, err := tea.NewProgram(NewModel(p), opts...).Run()
	if err != nil {
		return plugin.Match{}, false, fmt.Errorf("picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return plugin.Match{}, false, nil
	}
	sel, picked := m.Selected()
	return sel, picked, nil
}
