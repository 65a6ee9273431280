package model

import (
	"context"
	"time"
)

// CompanyClassifier asks an external source for the profile of a company the
// catalog does not know.
type CompanyClassifier interface {
	Classify(ctx context.Context, company, role string) (CompanyProfile, error)
}

// SkillRefiner asks an external source to improve a keyword-based skill profile.
type SkillRefiner interface {
	Refine(ctx context.Context, input JobInput, base SkillProfile) (SkillProfile, error)
}

// HistoryEntry is one generated roadmap as recorded in the history index.
type HistoryEntry struct {
	ID         string
	Company    string
	Role       string
	Difficulty string
	Path       string
	CreatedAt  time.Time
}

// RoadmapStore records generated roadmaps so they can be listed and re-opened.
type RoadmapStore interface {
	Record(entry HistoryEntry) error
	Latest() (HistoryEntry, bool, error)
	List(limit int) ([]HistoryEntry, error)
}

// Reporter presents a finished roadmap to the user.
type Reporter interface {
	Report(roadmap Roadmap, path string) error
}
