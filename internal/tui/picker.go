// Package tui holds the interactive screens: menus, the job form, the
// generation spinner and the roadmap viewer.
package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

const (
	noChoice   = -1
	quitChoice = -2
)

type pickerModel struct {
	title  string
	items  []string
	cursor int
	chosen int // noChoice until enter, quitChoice on q/esc
}

func newPicker(title string, items []string) pickerModel {
	return pickerModel{title: title, items: items, chosen: noChoice}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.chosen = quitChoice
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		default:
			// digits jump straight to an item
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if i := int(s[0] - '1'); i < len(m.items) {
					m.cursor = i
					m.chosen = i
					return m, tea.Quit
				}
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(m.title))
	b.WriteString("\n")

	for i, item := range m.items {
		label := strconv.Itoa(i+1) + ". " + item
		if i == m.cursor {
			b.WriteString(pickerSelectedStyle.Render("> " + label))
		} else {
			b.WriteString(pickerItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString(pickerHintStyle.Render("↑/↓/j/k navigate  enter or 1-9 select  q quit"))
	return b.String()
}

// RunPicker shows a menu and returns the index of the chosen item, or -1 if
// the user quit.
func RunPicker(title string, items []string) (int, error) {
	p := tea.NewProgram(newPicker(title, items))
	result, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := result.(pickerModel)
	if final.chosen < 0 {
		return -1, nil
	}
	return final.chosen, nil
}

// Confirm asks a yes/no question.
func Confirm(question string) (bool, error) {
	i, err := RunPicker(question, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return i == 0, nil
}
