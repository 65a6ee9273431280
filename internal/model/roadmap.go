package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobInput is what the user hands us: who is hiring, for what, and the posting text.
type JobInput struct {
	Company        string `json:"company" validate:"required"`
	Role           string `json:"role" validate:"required"`
	JobDescription string `json:"job_description"`
}

var validate = validator.New()

// Validate checks the required fields. An empty job description is allowed;
// extraction recovers from it with a role-based default.
func (in JobInput) Validate() error {
	trimmed := JobInput{
		Company:        strings.TrimSpace(in.Company),
		Role:           strings.TrimSpace(in.Role),
		JobDescription: in.JobDescription,
	}
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Experience is the seniority inferred from the role and description.
type Experience string

const (
	ExperienceEntry  Experience = "Entry"
	ExperienceMid    Experience = "Mid"
	ExperienceSenior Experience = "Senior"
)

// ParseExperience maps a case-insensitive level name to an Experience.
func ParseExperience(s string) (Experience, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry", "junior":
		return ExperienceEntry, nil
	case "mid", "intermediate":
		return ExperienceMid, nil
	case "senior", "principal", "staff", "lead":
		return ExperienceSenior, nil
	}
	return "", fmt.Errorf("%w: experience level %q", ErrInvalidInput, s)
}

// Archetype is the coarse company category driving difficulty and round structure.
type Archetype string

const (
	ArchetypeFAANG      Archetype = "FAANG"
	ArchetypeBigTech    Archetype = "Big Tech"
	ArchetypeStartup    Archetype = "Startup"
	ArchetypeEnterprise Archetype = "Enterprise"
	ArchetypeUnknown    Archetype = "Unknown"
)

// ParseArchetype accepts "FAANG", "Big Tech", "bigtech", "startup" and so on.
func ParseArchetype(s string) (Archetype, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	key = strings.ReplaceAll(key, "-", "")
	switch key {
	case "faang", "maang":
		return ArchetypeFAANG, nil
	case "bigtech":
		return ArchetypeBigTech, nil
	case "startup":
		return ArchetypeStartup, nil
	case "enterprise":
		return ArchetypeEnterprise, nil
	case "unknown":
		return ArchetypeUnknown, nil
	}
	return "", fmt.Errorf("%w: company type %q", ErrInvalidInput, s)
}

// IsBigTech reports whether the archetype gets the long interview loop.
func (a Archetype) IsBigTech() bool {
	return a == ArchetypeFAANG || a == ArchetypeBigTech
}

// Difficulty is the overall interview difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "moderate":
		return DifficultyMedium, nil
	case "hard", "difficult":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: difficulty %q", ErrInvalidInput, s)
}

// SkillProfile is the output of the extraction stage.
type SkillProfile struct {
	TechnicalSkills  []string
	SoftSkills       []string
	Tools            []string
	Responsibilities []string
	Experience       Experience
	Topics           []string // categories from the skill mapping, first-seen order
}

// HasSkill reports whether name is among the technical skills (case-insensitive).
func (p SkillProfile) HasSkill(name string) bool {
	for _, s := range p.TechnicalSkills {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// Where a CompanyProfile came from.
const (
	SourceCatalog = "catalog"
	SourceModel   = "model"
	SourceDefault = "default"
)

// CompanyProfile is the output of the company-profile stage.
type CompanyProfile struct {
	Name       string
	Archetype  Archetype
	Difficulty Difficulty
	RoundCount int
	Focus      []string
	Source     string
}

// RoadmapRound is one interview round in the plan.
type RoadmapRound struct {
	Type     string   `json:"type"`
	Topics   []string `json:"topics"`
	Duration string   `json:"duration,omitempty"`
	Weight   string   `json:"weight,omitempty"`
}

// Roadmap is the document written to disk.
type Roadmap struct {
	Company             string              `json:"company"`
	Role                string              `json:"role"`
	CompanyType         string              `json:"company_type,omitempty"`
	ExperienceLevel     string              `json:"experience_level,omitempty"`
	Difficulty          string              `json:"difficulty"`
	Rounds              []RoadmapRound      `json:"rounds"`
	RecommendedOrder    []string            `json:"recommended_order"`
	PreparationTimeline string              `json:"preparation_timeline"`
	KeySkills           []string            `json:"key_skills"`
	Resources           map[string][]string `json:"resources,omitempty"`
}
