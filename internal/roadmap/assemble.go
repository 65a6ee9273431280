// Package roadmap combines a skill profile and a company profile into the
// final Roadmap and reads/writes it as JSON.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/amishk599/prepmap/internal/catalog"
	"github.com/amishk599/prepmap/internal/model"
)

const (
	maxPrepOrder     = 6
	keyTechnical     = 3
	keyFocus         = 2
	longLoopMinimum  = 5
	systemDesignType = "System Design"
)

// baseResourceCategories are always part of the resource list.
var baseResourceCategories = []string{"DSA", "System Design", "Behavioral"}

// Assembler builds roadmaps from the two stage outputs.
type Assembler struct {
	cat *catalog.Catalog
}

// NewAssembler returns an Assembler reading resources from cat.
func NewAssembler(cat *catalog.Catalog) *Assembler {
	return &Assembler{cat: cat}
}

// Assemble builds the roadmap. It only fails when the profiles carry enum
// values the timeline estimator does not know.
func (a *Assembler) Assemble(input model.JobInput, skills model.SkillProfile, company model.CompanyProfile) (model.Roadmap, error) {
	weeks, err := EstimateWeeks(company.Difficulty, skills.Experience)
	if err != nil {
		return model.Roadmap{}, fmt.Errorf("estimate timeline: %w", err)
	}

	return model.Roadmap{
		Company:             strings.TrimSpace(input.Company),
		Role:                strings.TrimSpace(input.Role),
		CompanyType:         string(company.Archetype),
		ExperienceLevel:     string(skills.Experience),
		Difficulty:          string(company.Difficulty),
		Rounds:              Rounds(skills, company),
		RecommendedOrder:    PrepOrder(input.Role, company),
		PreparationTimeline: FormatWeeks(weeks),
		KeySkills:           KeySkills(skills, company),
		Resources:           a.resources(skills),
	}, nil
}

// Rounds picks the interview loop for the company. Big-tech archetypes (or
// any profile expecting five or more rounds) get the long loop. A System
// Design round is added before the final round when the posting asks for
// system design and the loop has none.
func Rounds(skills model.SkillProfile, company model.CompanyProfile) []model.RoadmapRound {
	var rounds []model.RoadmapRound
	if company.Archetype.IsBigTech() || company.RoundCount >= longLoopMinimum {
		rounds = []model.RoadmapRound{
			{Type: "Phone Screening", Topics: []string{"Resume", "Basic Technical"}, Duration: "30 min", Weight: "Low"},
			{Type: "Coding Round 1", Topics: []string{"Arrays", "Strings", "Hash Maps"}, Duration: "45 min", Weight: "High"},
			{Type: "Coding Round 2", Topics: []string{"Dynamic Programming", "Graphs"}, Duration: "45 min", Weight: "High"},
			{Type: systemDesignType, Topics: []string{"Scalability", "Database Design"}, Duration: "60 min", Weight: "High"},
			{Type: "Behavioral", Topics: []string{"Leadership", "Teamwork"}, Duration: "30 min", Weight: "Medium"},
		}
	} else {
		technical := []string{"Problem Solving", "Code Review"}
		for i, t := range skills.Topics {
			if i == 2 {
				break
			}
			technical = append(technical, t)
		}
		rounds = []model.RoadmapRound{
			{Type: "Initial Screening", Topics: []string{"Background", "Interest"}, Duration: "30 min", Weight: "Low"},
			{Type: "Technical Interview", Topics: technical, Duration: "60 min", Weight: "High"},
			{Type: "Manager Round", Topics: []string{"Experience", "Culture Fit"}, Duration: "45 min", Weight: "Medium"},
		}
	}

	if skills.HasSkill(systemDesignType) && !hasRound(rounds, systemDesignType) {
		sd := model.RoadmapRound{Type: systemDesignType, Topics: []string{"Scalability", "API Design"}, Duration: "60 min", Weight: "High"}
		last := len(rounds) - 1
		rounds = append(rounds[:last], sd, rounds[last])
	}
	return rounds
}

func hasRound(rounds []model.RoadmapRound, kind string) bool {
	for _, r := range rounds {
		if strings.Contains(strings.ToLower(r.Type), strings.ToLower(kind)) {
			return true
		}
	}
	return false
}

// PrepOrder is the recommended study order, at most six entries.
func PrepOrder(role string, company model.CompanyProfile) []string {
	order := []string{"DSA Fundamentals"}

	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "data"):
		order = append(order, "Statistics", "SQL", "Machine Learning")
	case strings.Contains(lower, "frontend"), strings.Contains(lower, "front-end"):
		order = append(order, "JavaScript", "React", "CSS")
	default:
		order = append(order, "System Design", "Backend Development")
	}

	if company.Archetype.IsBigTech() {
		order = append(order, "Advanced Algorithms", "System Design")
	}
	order = append(order, "Behavioral Preparation", "Mock Interviews")

	order = dedupe(order)
	if len(order) > maxPrepOrder {
		order = order[:maxPrepOrder]
	}
	return order
}

// KeySkills is the first three technical skills followed by the first two
// company focus areas, without duplicates.
func KeySkills(skills model.SkillProfile, company model.CompanyProfile) []string {
	var out []string
	out = append(out, head(skills.TechnicalSkills, keyTechnical)...)
	out = append(out, head(company.Focus, keyFocus)...)
	return dedupe(out)
}

func (a *Assembler) resources(skills model.SkillProfile) map[string][]string {
	out := make(map[string][]string)
	for _, c := range baseResourceCategories {
		if res := a.cat.Resources(c); len(res) > 0 {
			out[c] = res
		}
	}
	for _, topic := range skills.Topics {
		if _, done := out[topic]; done {
			continue
		}
		if res := a.cat.Resources(topic); len(res) > 0 {
			out[topic] = res
		}
	}
	return out
}

func head(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		k := strings.ToLower(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
