package ai

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/amishk599/prepmap/internal/model"
)

const maxRawInError = 500

var errNoJSONObject = errors.New("no JSON object in response")

// extractJSON pulls the JSON object out of a model reply. Models sometimes
// wrap the object in a ```json fence or add a sentence around it.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", &model.ParseError{Raw: truncate(raw), Err: errNoJSONObject}
	}
	return s[start : end+1], nil
}

// decodeJSON extracts and unmarshals the object in raw into v.
func decodeJSON(raw string, v any) error {
	obj, err := extractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return &model.ParseError{Raw: truncate(raw), Err: err}
	}
	return nil
}

// rawClassification uses pointers so absent fields can be told apart from
// zero values.
type rawClassification struct {
	CompanyType     *string  `json:"company_type"`
	DifficultyLevel *string  `json:"difficulty_level"`
	InterviewFocus  []string `json:"interview_focus"`
	TypicalRounds   []string `json:"typical_rounds"`
}

// parseClassification turns the classifier reply into a CompanyProfile.
// company_type, difficulty_level and interview_focus are required; unknown
// enum values fail with model.ErrInvalidInput. The round count is the number
// of typical_rounds, left at zero when the list is absent.
func parseClassification(raw string) (model.CompanyProfile, error) {
	var rc rawClassification
	if err := decodeJSON(raw, &rc); err != nil {
		return model.CompanyProfile{}, err
	}

	var missing []string
	if rc.CompanyType == nil || strings.TrimSpace(*rc.CompanyType) == "" {
		missing = append(missing, "company_type")
	}
	if rc.DifficultyLevel == nil || strings.TrimSpace(*rc.DifficultyLevel) == "" {
		missing = append(missing, "difficulty_level")
	}
	focus := cleanList(rc.InterviewFocus, 4)
	if len(focus) == 0 {
		missing = append(missing, "interview_focus")
	}
	if len(missing) > 0 {
		return model.CompanyProfile{}, &model.ParseError{Raw: truncate(raw), Missing: missing}
	}

	archetype, err := model.ParseArchetype(*rc.CompanyType)
	if err != nil {
		return model.CompanyProfile{}, err
	}
	difficulty, err := model.ParseDifficulty(*rc.DifficultyLevel)
	if err != nil {
		return model.CompanyProfile{}, err
	}

	p := model.CompanyProfile{
		Archetype:  archetype,
		Difficulty: difficulty,
		Focus:      focus,
		RoundCount: len(cleanList(rc.TypicalRounds, 0)),
	}
	return p, nil
}

type rawSkills struct {
	TechnicalSkills  []string `json:"technical_skills"`
	SoftSkills       []string `json:"soft_skills"`
	Tools            []string `json:"tools_technologies"`
	Responsibilities []string `json:"responsibilities"`
	ExperienceLevel  *string  `json:"experience_level"`
}

// parseSkills turns the refiner reply into a partial SkillProfile.
// technical_skills is required. An unrecognized experience level is dropped
// rather than failing the whole reply.
func parseSkills(raw string) (model.SkillProfile, error) {
	var rs rawSkills
	if err := decodeJSON(raw, &rs); err != nil {
		return model.SkillProfile{}, err
	}

	technical := cleanList(rs.TechnicalSkills, 10)
	if len(technical) == 0 {
		return model.SkillProfile{}, &model.ParseError{Raw: truncate(raw), Missing: []string{"technical_skills"}}
	}

	p := model.SkillProfile{
		TechnicalSkills:  technical,
		SoftSkills:       cleanList(rs.SoftSkills, 5),
		Tools:            cleanList(rs.Tools, 8),
		Responsibilities: cleanList(rs.Responsibilities, 5),
	}
	if rs.ExperienceLevel != nil {
		if e, err := model.ParseExperience(*rs.ExperienceLevel); err == nil {
			p.Experience = e
		}
	}
	return p, nil
}

// cleanList trims entries, drops blanks and caps the length. A limit of zero
// means no cap.
func cleanList(in []string, limit int) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func truncate(s string) string {
	if len(s) <= maxRawInError {
		return s
	}
	return cutUTF8(s, maxRawInError) + "..."
}

// cutUTF8 returns at most n bytes of s without splitting a rune.
func cutUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
