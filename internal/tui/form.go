package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepmap/internal/model"
)

var (
	formLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 0, 2)

	formFocusedLabelStyle = formLabelStyle.
				Foreground(lipgloss.Color("39"))

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 0, 0, 2)
)

const (
	fieldCompany = iota
	fieldRole
	fieldDescription
	fieldCount
)

type formModel struct {
	company     textinput.Model
	role        textinput.Model
	description textarea.Model
	focus       int
	err         string
	submitted   bool
	cancelled   bool
}

func newForm(initial model.JobInput) formModel {
	company := textinput.New()
	company.Placeholder = "e.g. Google"
	company.CharLimit = 120
	company.SetValue(initial.Company)

	role := textinput.New()
	role.Placeholder = "e.g. Software Engineer"
	role.CharLimit = 120
	role.SetValue(initial.Role)

	desc := textarea.New()
	desc.Placeholder = "Paste the job description (optional)"
	desc.ShowLineNumbers = false
	desc.CharLimit = 0
	desc.SetWidth(80)
	desc.SetHeight(12)
	desc.SetValue(initial.JobDescription)

	m := formModel{company: company, role: role, description: desc}
	m.company.Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "tab", "down":
			if m.focus != fieldDescription || key.String() == "tab" {
				return m.setFocus((m.focus + 1) % fieldCount), nil
			}
		case "shift+tab", "up":
			if m.focus != fieldDescription || key.String() == "shift+tab" {
				return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
			}
		case "enter":
			if m.focus != fieldDescription {
				return m.setFocus(m.focus + 1), nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldCompany:
		m.company, cmd = m.company.Update(msg)
	case fieldRole:
		m.role, cmd = m.role.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m formModel) submit() (tea.Model, tea.Cmd) {
	if err := m.input().Validate(); err != nil {
		m.err = "Company and role are required."
		if strings.TrimSpace(m.company.Value()) != "" {
			return m.setFocus(fieldRole), nil
		}
		return m.setFocus(fieldCompany), nil
	}
	m.err = ""
	m.submitted = true
	return m, tea.Quit
}

func (m formModel) setFocus(field int) formModel {
	m.focus = field
	m.company.Blur()
	m.role.Blur()
	m.description.Blur()
	switch field {
	case fieldCompany:
		m.company.Focus()
	case fieldRole:
		m.role.Focus()
	case fieldDescription:
		m.description.Focus()
	}
	return m
}

func (m formModel) input() model.JobInput {
	return model.JobInput{
		Company:        strings.TrimSpace(m.company.Value()),
		Role:           strings.TrimSpace(m.role.Value()),
		JobDescription: m.description.Value(),
	}
}

func (m formModel) label(field int, text string) string {
	if m.focus == field {
		return formFocusedLabelStyle.Render(text)
	}
	return formLabelStyle.Render(text)
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("New roadmap"))
	b.WriteString("\n")
	b.WriteString(m.label(fieldCompany, "Company") + "\n  " + m.company.View() + "\n\n")
	b.WriteString(m.label(fieldRole, "Role") + "\n  " + m.role.View() + "\n\n")
	b.WriteString(m.label(fieldDescription, "Job description") + "\n" + m.description.View() + "\n")
	if m.err != "" {
		b.WriteString(formErrorStyle.Render(m.err) + "\n")
	}
	b.WriteString(pickerHintStyle.Render("tab next field  ctrl+s generate  esc cancel"))
	return b.String()
}

// RunJobForm asks for company, role and description. ok is false when the
// user cancelled.
func RunJobForm(initial model.JobInput) (input model.JobInput, ok bool, err error) {
	p := tea.NewProgram(newForm(initial))
	result, err := p.Run()
	if err != nil {
		return model.JobInput{}, false, err
	}

	final := result.(formModel)
	if !final.submitted {
		return model.JobInput{}, false, nil
	}
	return final.input(), true, nil
}
