package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// personListModel is the bubbletea model for interactive speaker selection.
type personListModel struct {
	people   []string
	counts   map[string]int
	cursor   int
	selected string
}

func newPersonListModel(people []string, counts map[string]int) personListModel {
	return personListModel{people: people, counts: counts}
}

func (m personListModel) Init() tea.Cmd {
	return nil
}

func (m personListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.people)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.people[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m personListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Speaker"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, p := range m.people {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s  %s", cursor, p,
			listDimStyle.Render(fmt.Sprintf("%d messages", m.counts[p])))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.people))))
	return b.String()
}

// pickPerson runs the interactive speaker picker and returns the chosen
// person, or "" when the user quit without selecting.
func pickPerson(people []string, counts map[string]int) (string, error) {
	final, err := tea.NewProgram(newPersonListModel(people, counts)).Run()
	if err != nil {
		return "", fmt.Errorf("speaker picker: %w", err)
	}
	m, ok := final.(personListModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}
