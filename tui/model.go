// Package tui shows the fretboard in a terminal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/diagram"
	"github.com/rossnomann/fretboard/internal/logging"
	"github.com/rossnomann/fretboard/theme"
)

type Model struct {
	Tunings  *fretboard.TuningCollection
	Theme    *theme.Theme
	Flat     bool // spell the pitches of the header with flats
	Warning  string
	width    int
	height   int
	quitting bool
}

// chrome is the number of rows taken by the header and the help line.
const chrome = 3

func NewModel(tunings *fretboard.TuningCollection, th *theme.Theme) Model {
	return Model{Tunings: tunings, Theme: th}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "right", "l", "n":
			m.Tunings.SelectNext()
			m.Warning = ""

		case "left", "h", "p":
			m.Tunings.SelectPrev()
			m.Warning = ""

		case "t":
			next, err := theme.Load(theme.Next(m.Theme.Name))
			if err != nil {
				logging.Logger().Warn("cannot switch theme", "err", err)
				m.Warning = err.Error()
				break
			}
			m.Theme = next

		case "f":
			m.Flat = !m.Flat
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	tuning, err := m.Tunings.Selected()
	if err != nil {
		return err.Error()
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.Theme.Hex(diagram.Text))).
		Background(lipgloss.Color(m.Theme.Hex(diagram.Mantle))).
		Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Theme.Hex(diagram.Overlay0)))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Theme.Hex(diagram.Yellow)))

	header := headerStyle.Render(fmt.Sprintf(" %s  %d/%d  %s  %s ",
		tuning.Name(), m.Tunings.Index()+1, m.Tunings.Len(), tuning.Format(m.Flat), m.Theme.DisplayName()))

	grid := NewGrid(m.width, m.height-chrome)
	diagram.Render(grid, m.Theme, tuning, grid.Bounds())

	help := dimStyle.Render("←/→:tuning  t:theme  f:flats  q:quit")
	if m.Warning != "" {
		help = warnStyle.Render(m.Warning)
	}

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(grid.View())
	out.WriteString("\n")
	out.WriteString(help)
	return out.String()
}
