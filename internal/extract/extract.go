// Package extract derives a SkillProfile from a job posting using the
// catalog's keyword tables.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/amishk599/prepmap/internal/catalog"
	"github.com/amishk599/prepmap/internal/model"
)

var (
	seniorRoleRe = regexp.MustCompile(`(?i)\b(senior|sr|lead|staff|principal)\b`)

	// yearsRe matches "3+ years", "2-4 years", "5 to 7 years"; group 1 is the lower bound.
	yearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:\+|(?:-|–|to)\s*\d{1,2})?\s*\+?\s*(?:years?|yrs?)\b`)

	bulletRe         = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.+)$`)
	sectionHeadingRe = regexp.MustCompile(`^\s*[A-Za-z][A-Za-z /&'-]{1,40}:\s*$`)
)

const (
	seniorYears = 8
	midYears    = 3

	maxResponsibilities = 5
)

var defaultTechnical = []string{"Programming", "Problem Solving", "Software Development"}

// Extractor matches catalog keywords against job postings.
type Extractor struct {
	cat   *catalog.Catalog
	skill []keywordMatcher
	soft  []keywordMatcher
	title cases.Caser
}

type keywordMatcher struct {
	name     string
	category string
	re       *regexp.Regexp
}

// New compiles the catalog keyword tables into matchers.
func New(cat *catalog.Catalog) *Extractor {
	e := &Extractor{cat: cat, title: cases.Title(language.English)}
	for _, s := range cat.Skills() {
		e.skill = append(e.skill, keywordMatcher{name: s.Name, category: s.Category, re: keywordRegexp(s.Keywords, s.ExactKeywords)})
	}
	for _, s := range cat.SoftSkills() {
		e.soft = append(e.soft, keywordMatcher{name: s.Name, re: keywordRegexp(s.Keywords, nil)})
	}
	return e
}

// keywordRegexp matches any keyword as a whole token, case-insensitively,
// and any exact keyword with its casing intact. Token boundaries treat + and
// # as word characters so "c" never matches "c++".
func keywordRegexp(keywords, exact []string) *regexp.Regexp {
	var alts []string
	if len(keywords) > 0 {
		alts = append(alts, `(?i:`+quoteAll(keywords)+`)`)
	}
	if len(exact) > 0 {
		alts = append(alts, quoteAll(exact))
	}
	return regexp.MustCompile(`(?:^|[^A-Za-z0-9+#])(?:` + strings.Join(alts, "|") + `)(?:$|[^A-Za-z0-9+#])`)
}

func quoteAll(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimSpace(w)))
	}
	return strings.Join(quoted, "|")
}

// Extract builds the skill profile for input. An empty job description yields
// the role-based default profile together with an error wrapping
// model.ErrInvalidInput; the profile is usable either way.
func (e *Extractor) Extract(input model.JobInput) (model.SkillProfile, error) {
	jd := strings.TrimSpace(input.JobDescription)
	if jd == "" {
		return e.Default(input.Role), fmt.Errorf("%w: empty job description", model.ErrInvalidInput)
	}

	var technical, tools []string
	for _, m := range e.skill {
		if m.re.MatchString(jd) {
			technical = append(technical, m.name)
			if m.category != "DSA" && m.category != "System Design" {
				tools = append(tools, m.name)
			}
		}
	}
	if len(technical) == 0 {
		technical = append([]string(nil), defaultTechnical...)
	}
	if len(tools) == 0 {
		tools = []string{"Development Tools"}
	}

	var soft []string
	for _, m := range e.soft {
		if m.re.MatchString(jd) {
			soft = append(soft, m.name)
		}
	}
	if len(soft) == 0 {
		soft = e.cat.DefaultSoftSkills()
	}

	return model.SkillProfile{
		TechnicalSkills:  technical,
		SoftSkills:       soft,
		Tools:            tools,
		Responsibilities: responsibilities(jd),
		Experience:       InferExperience(input.Role, jd),
		Topics:           e.Topics(technical),
	}, nil
}

// Default is the minimal profile used when there is no description to read.
func (e *Extractor) Default(role string) model.SkillProfile {
	exp := model.ExperienceMid
	if seniorRoleRe.MatchString(role) {
		exp = model.ExperienceSenior
	}
	return model.SkillProfile{
		TechnicalSkills:  []string{"Programming", "Problem Solving"},
		SoftSkills:       []string{"Communication", "Teamwork"},
		Tools:            []string{"Development Tools"},
		Responsibilities: []string{"Software Development"},
		Experience:       exp,
	}
}

// Topics maps skills to their catalog categories, first-seen order, no duplicates.
func (e *Extractor) Topics(skills []string) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, s := range skills {
		cat, ok := e.cat.CategoryOf(s)
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		topics = append(topics, cat)
	}
	return topics
}

// Merge folds a model-refined profile into the keyword profile. Keyword hits
// stay first; refined skills are canonicalized against the catalog and
// appended. The refined experience level wins when it is valid.
func (e *Extractor) Merge(base, refined model.SkillProfile) model.SkillProfile {
	out := base
	out.TechnicalSkills = mergeUnique(base.TechnicalSkills, e.canonical(refined.TechnicalSkills))
	out.SoftSkills = mergeUnique(base.SoftSkills, e.canonical(refined.SoftSkills))
	out.Tools = mergeUnique(base.Tools, e.canonical(refined.Tools))
	if len(refined.Responsibilities) > 0 {
		out.Responsibilities = refined.Responsibilities
	}
	if refined.Experience != "" {
		out.Experience = refined.Experience
	}
	out.TechnicalSkills = dropDefaults(out.TechnicalSkills)
	out.Topics = e.Topics(out.TechnicalSkills)
	return out
}

// canonical maps names to catalog spelling where the catalog knows the skill
// (by name or keyword) and title-cases all-lowercase leftovers.
func (e *Extractor) canonical(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if known, ok := e.lookup(n); ok {
			out = append(out, known)
			continue
		}
		if n == strings.ToLower(n) {
			n = e.title.String(n)
		}
		out = append(out, n)
	}
	return out
}

func (e *Extractor) lookup(name string) (string, bool) {
	for _, m := range e.skill {
		if strings.EqualFold(m.name, name) {
			return m.name, true
		}
	}
	for _, m := range e.skill {
		if loc := m.re.FindStringIndex(name); loc != nil && loc[1]-loc[0] >= len(name)-2 {
			return m.name, true
		}
	}
	return "", false
}

// InferExperience applies the seniority rules: a senior-sounding role wins,
// otherwise the largest years-of-experience lower bound in the description.
func InferExperience(role, jd string) model.Experience {
	if seniorRoleRe.MatchString(role) {
		return model.ExperienceSenior
	}
	years := 0
	for _, m := range yearsRe.FindAllStringSubmatch(jd, -1) {
		var n int
		if _, err := fmt.Sscanf(m[1], "%d", &n); err == nil && n > years {
			years = n
		}
	}
	switch {
	case years >= seniorYears:
		return model.ExperienceSenior
	case years >= midYears:
		return model.ExperienceMid
	default:
		return model.ExperienceEntry
	}
}

// responsibilities returns the bullet lines under a "Responsibilities" heading.
func responsibilities(jd string) []string {
	var out []string
	inSection := false
	for _, line := range strings.Split(jd, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if sectionHeadingRe.MatchString(trimmed) {
			inSection = strings.Contains(strings.ToLower(trimmed), "responsibilit")
			continue
		}
		if !inSection {
			continue
		}
		m := bulletRe.FindStringSubmatch(trimmed)
		if m == nil {
			inSection = false
			continue
		}
		out = append(out, strings.TrimSpace(m[1]))
		if len(out) == maxResponsibilities {
			break
		}
	}
	if len(out) == 0 {
		return []string{"Software Development"}
	}
	return out
}

func mergeUnique(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			k := strings.ToLower(s)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, s)
		}
	}
	return out
}

// dropDefaults removes the placeholder skills once real ones are present.
func dropDefaults(skills []string) []string {
	placeholder := make(map[string]bool, len(defaultTechnical))
	for _, d := range defaultTechnical {
		placeholder[d] = true
	}
	var real []string
	for _, s := range skills {
		if !placeholder[s] {
			real = append(real, s)
		}
	}
	if len(real) == 0 {
		return skills
	}
	return real
}
