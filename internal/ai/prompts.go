package ai

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prompts/classify_company.md
var classifyCompanyPromptRaw string

//go:embed prompts/refine_skills.md
var refineSkillsPromptRaw string

// ClassifyCompanyTemplate is the prompt for company classification.
var ClassifyCompanyTemplate = template.Must(template.New("classify_company").Parse(classifyCompanyPromptRaw))

// RefineSkillsTemplate is the prompt for skill refinement.
var RefineSkillsTemplate = template.Must(template.New("refine_skills").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(refineSkillsPromptRaw))
