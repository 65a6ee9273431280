package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/report"
	"github.com/amishk599/prepmap/internal/roadmap"
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)

type viewerModel struct {
	roadmap  model.Roadmap
	path     string
	showJSON bool
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func newViewer(rm model.Roadmap, path string) viewerModel {
	return viewerModel{roadmap: rm, path: path}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(max(m.width-4, 10), max(m.height-4, 3))
		m.viewport.SetContent(m.content())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.showJSON = !m.showJSON
			m.viewport.SetContent(m.content())
			m.viewport.SetYOffset(0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) content() string {
	if m.showJSON {
		data, err := roadmap.Marshal(m.roadmap)
		if err != nil {
			return "failed to encode roadmap: " + err.Error()
		}
		return string(data)
	}
	return report.Summary(m.roadmap)
}

func (m viewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	mode := "summary"
	if m.showJSON {
		mode = "json"
	}
	status := statusBarStyle.Render(m.path + "  [" + mode + "]  tab toggle json  ↑/↓ scroll  q close")
	return activeBorderStyle.Render(m.viewport.View()) + "\n" + status
}

// RunViewer shows the roadmap full-screen until the user closes it.
func RunViewer(rm model.Roadmap, path string) error {
	p := tea.NewProgram(newViewer(rm, path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
