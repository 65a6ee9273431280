// Package catalog holds the static lookup tables (known companies, skill
// keywords, study resources). A Catalog is parsed once at startup and passed
// explicitly to the stages that need it; nothing in it is mutated afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/prepmap/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Company is one known company or archetype word.
type Company struct {
	Key        string
	Archetype  model.Archetype
	Difficulty model.Difficulty
	Focus      []string
}

// Skill maps free-text keywords to a skill name and topic category.
// ExactKeywords match only with the given casing, for names that are also
// common words ("Go").
type Skill struct {
	Name          string
	Category      string
	Keywords      []string
	ExactKeywords []string
}

// SoftSkill maps free-text keywords to a soft skill.
type SoftSkill struct {
	Name     string
	Keywords []string
}

// Catalog is the immutable set of tables.
type Catalog struct {
	companies         []Company
	byKey             map[string]int
	matchOrder        []int // indexes into companies, longest key first
	skills            []Skill
	softSkills        []SoftSkill
	defaultSoftSkills []string
	resources         map[string][]string
}

type rawCatalog struct {
	Companies []struct {
		Key        string   `yaml:"key"`
		Archetype  string   `yaml:"archetype"`
		Difficulty string   `yaml:"difficulty"`
		Focus      []string `yaml:"focus"`
	} `yaml:"companies"`
	Skills []struct {
		Name          string   `yaml:"name"`
		Category      string   `yaml:"category"`
		Keywords      []string `yaml:"keywords"`
		ExactKeywords []string `yaml:"exact_keywords"`
	} `yaml:"skills"`
	SoftSkills []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"soft_skills"`
	DefaultSoftSkills []string            `yaml:"default_soft_skills"`
	Resources         map[string][]string `yaml:"resources"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		byKey:             make(map[string]int, len(raw.Companies)),
		defaultSoftSkills: raw.DefaultSoftSkills,
		resources:         raw.Resources,
	}

	for i, rc := range raw.Companies {
		key := NormalizeName(rc.Key)
		if key == "" {
			return nil, fmt.Errorf("catalog companies[%d]: empty key", i)
		}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("catalog companies[%d]: duplicate key %q", i, key)
		}
		arch, err := model.ParseArchetype(rc.Archetype)
		if err != nil {
			return nil, fmt.Errorf("catalog company %q: %w", rc.Key, err)
		}
		diff, err := model.ParseDifficulty(rc.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("catalog company %q: %w", rc.Key, err)
		}
		c.byKey[key] = len(c.companies)
		c.companies = append(c.companies, Company{
			Key:        key,
			Archetype:  arch,
			Difficulty: diff,
			Focus:      rc.Focus,
		})
	}

	c.matchOrder = make([]int, len(c.companies))
	for i := range c.matchOrder {
		c.matchOrder[i] = i
	}
	sort.SliceStable(c.matchOrder, func(a, b int) bool {
		return len(c.companies[c.matchOrder[a]].Key) > len(c.companies[c.matchOrder[b]].Key)
	})

	for i, rs := range raw.Skills {
		if rs.Name == "" || rs.Category == "" {
			return nil, fmt.Errorf("catalog skills[%d]: name and category are required", i)
		}
		if len(rs.Keywords) == 0 && len(rs.ExactKeywords) == 0 {
			return nil, fmt.Errorf("catalog skill %q: at least one keyword is required", rs.Name)
		}
		c.skills = append(c.skills, Skill{
			Name:          rs.Name,
			Category:      rs.Category,
			Keywords:      rs.Keywords,
			ExactKeywords: rs.ExactKeywords,
		})
	}

	for i, rs := range raw.SoftSkills {
		if rs.Name == "" || len(rs.Keywords) == 0 {
			return nil, fmt.Errorf("catalog soft_skills[%d]: name and keywords are required", i)
		}
		c.softSkills = append(c.softSkills, SoftSkill{Name: rs.Name, Keywords: rs.Keywords})
	}

	return c, nil
}

// Companies returns the company table in file order.
func (c *Catalog) Companies() []Company {
	return append([]Company(nil), c.companies...)
}

// LookupExact returns the company whose key equals the normalized name.
func (c *Catalog) LookupExact(normalized string) (Company, bool) {
	i, ok := c.byKey[normalized]
	if !ok {
		return Company{}, false
	}
	return c.companies[i], true
}

// LookupSubstring returns the first company whose key is spelled by a run of
// whole words in name ("Amazon Web Services", "Face Book Inc"). Longer keys
// are tried first so that "facebook" wins over any shorter key it happens to
// contain.
func (c *Catalog) LookupSubstring(name string) (Company, bool) {
	words := nameWords(name)
	if len(words) == 0 {
		return Company{}, false
	}
	for _, i := range c.matchOrder {
		if containsWordRun(words, c.companies[i].Key) {
			return c.companies[i], true
		}
	}
	return Company{}, false
}

// Skills returns the skill table in priority order.
func (c *Catalog) Skills() []Skill {
	return c.skills
}

// SoftSkills returns the soft skill table.
func (c *Catalog) SoftSkills() []SoftSkill {
	return c.softSkills
}

// DefaultSoftSkills is used when no soft skill keyword matches.
func (c *Catalog) DefaultSoftSkills() []string {
	return append([]string(nil), c.defaultSoftSkills...)
}

// CategoryOf returns the topic category for a skill name, if known.
func (c *Catalog) CategoryOf(skill string) (string, bool) {
	for _, s := range c.skills {
		if equalFold(s.Name, skill) {
			return s.Category, true
		}
	}
	return "", false
}

// Resources returns the study resources for a category.
func (c *Catalog) Resources(category string) []string {
	return append([]string(nil), c.resources[category]...)
}
