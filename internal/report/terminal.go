package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/prepmap/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	hardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	easyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	roundStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 2)

	topicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 0, 0, 5)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Ensure TerminalReporter implements model.Reporter.
var _ model.Reporter = (*TerminalReporter)(nil)

// TerminalReporter prints a human-readable summary of the roadmap.
type TerminalReporter struct {
	out io.Writer
}

// NewTerminalReporter returns a reporter writing to out.
func NewTerminalReporter(out io.Writer) *TerminalReporter {
	return &TerminalReporter{out: out}
}

// Report writes the summary followed by the saved path.
func (r *TerminalReporter) Report(rm model.Roadmap, path string) error {
	text := Summary(rm)
	if path != "" {
		text += "\n" + pathStyle.Render("Saved to "+path) + "\n"
	}
	_, err := io.WriteString(r.out, text)
	return err
}

// Summary renders company, role, difficulty, timeline, numbered rounds with
// topics and duration, key skills and the study order.
func Summary(rm model.Roadmap) string {
	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Interview Roadmap: %s / %s", rm.Company, rm.Role))
	fmt.Fprintf(&b, "%s\n", header)
	if rm.CompanyType != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Company type:"), rm.CompanyType)
	}
	if rm.ExperienceLevel != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Experience:"), rm.ExperienceLevel)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Difficulty:"), difficultyStyle(rm.Difficulty).Render(rm.Difficulty))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Timeline:"), rm.PreparationTimeline)

	fmt.Fprintf(&b, "\n%s\n", labelStyle.Render("Interview rounds"))
	for i, round := range rm.Rounds {
		line := fmt.Sprintf("%d. %s", i+1, round.Type)
		if round.Duration != "" {
			line += fmt.Sprintf(" (%s)", round.Duration)
		}
		fmt.Fprintf(&b, "%s\n", roundStyle.Render(line))
		if len(round.Topics) > 0 {
			fmt.Fprintf(&b, "%s\n", topicStyle.Render(strings.Join(round.Topics, ", ")))
		}
	}

	if len(rm.KeySkills) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render("Key skills:"), strings.Join(rm.KeySkills, ", "))
	}
	if len(rm.RecommendedOrder) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Study order:"), strings.Join(rm.RecommendedOrder, " → "))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func difficultyStyle(d string) lipgloss.Style {
	switch d {
	case string(model.DifficultyHard):
		return hardStyle
	case string(model.DifficultyEasy):
		return easyStyle
	default:
		return mediumStyle
	}
}
