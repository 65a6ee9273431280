package report

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/amishk599/prepmap/internal/model"
)

func sampleRoadmap() model.Roadmap {
	return model.Roadmap{
		Company:         "Google",
		Role:            "Software Engineer",
		CompanyType:     "FAANG",
		ExperienceLevel: "Entry",
		Difficulty:      "Hard",
		Rounds: []model.RoadmapRound{
			{Type: "Phone Screening", Topics: []string{"Resume", "Basic Technical"}, Duration: "30 min"},
			{Type: "System Design", Topics: []string{"Scalability"}, Duration: "60 min"},
		},
		RecommendedOrder:    []string{"DSA Fundamentals", "System Design"},
		PreparationTimeline: "18 weeks",
		KeySkills:           []string{"Data Structures", "System Design"},
	}
}

func TestLogReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := r.Report(sampleRoadmap(), "out/roadmap.json"); err != nil {
		t.Fatalf("Report = %v, want nil", err)
	}
	got := buf.String()
	for _, want := range []string{"company=Google", "difficulty=Hard", "rounds=2", "path=out/roadmap.json"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q: %s", want, got)
		}
	}
}

func TestTerminalReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf)

	if err := r.Report(sampleRoadmap(), "roadmap_Google.json"); err != nil {
		t.Fatalf("Report: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"Google / Software Engineer",
		"Hard",
		"18 weeks",
		"1. Phone Screening (30 min)",
		"2. System Design (60 min)",
		"Resume, Basic Technical",
		"Data Structures, System Design",
		"DSA Fundamentals → System Design",
		"Saved to roadmap_Google.json",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummary_EmptyOptionalFields(t *testing.T) {
	got := Summary(model.Roadmap{Company: "X", Role: "Y", Difficulty: "Medium", PreparationTimeline: "8 weeks"})
	if strings.Contains(got, "Company type:") || strings.Contains(got, "Key skills:") {
		t.Errorf("empty fields should be omitted:\n%s", got)
	}
}

type failingReporter struct{ calls int }

func (f *failingReporter) Report(model.Roadmap, string) error {
	f.calls++
	return errors.New("boom")
}

func TestMulti_RunsAllAndReturnsFirstError(t *testing.T) {
	first, second := &failingReporter{}, &failingReporter{}
	var buf bytes.Buffer

	err := Multi{first, NewTerminalReporter(&buf), second}.Report(sampleRoadmap(), "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
	if buf.Len() == 0 {
		t.Error("terminal reporter should still run")
	}
}
