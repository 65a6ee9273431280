// Package report presents finished roadmaps: as structured log lines or as
// a styled terminal summary.
package report

import (
	"log/slog"

	"github.com/amishk599/prepmap/internal/model"
)

// Ensure LogReporter implements model.Reporter.
var _ model.Reporter = (*LogReporter)(nil)

// LogReporter writes the roadmap to the given logger as one structured message.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs company, role, difficulty, timeline, round count and path.
// Returns nil (logging does not fail).
func (r *LogReporter) Report(rm model.Roadmap, path string) error {
	r.logger.Info("roadmap ready",
		"company", rm.Company,
		"role", rm.Role,
		"difficulty", rm.Difficulty,
		"timeline", rm.PreparationTimeline,
		"rounds", len(rm.Rounds),
		"path", path,
	)
	return nil
}

// Multi fans a roadmap out to several reporters. Every reporter runs; the
// first error is returned.
type Multi []model.Reporter

func (m Multi) Report(rm model.Roadmap, path string) error {
	var first error
	for _, r := range m {
		if err := r.Report(rm, path); err != nil && first == nil {
			first = err
		}
	}
	return first
}
