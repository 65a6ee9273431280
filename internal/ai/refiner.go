package ai

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/amishk599/prepmap/internal/model"
)

// maxDescriptionChars keeps long postings inside a reasonable prompt size.
const maxDescriptionChars = 8000

// LLMSkillRefiner implements model.SkillRefiner using an LLM.
type LLMSkillRefiner struct {
	provider LLMProvider
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewLLMSkillRefiner creates a refiner that asks the model for skills the
// keyword pass missed.
func NewLLMSkillRefiner(provider LLMProvider, tmpl *template.Template, logger *slog.Logger) *LLMSkillRefiner {
	return &LLMSkillRefiner{
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// Refine returns the model's view of the posting. The result is partial and
// meant to be merged into base, not used on its own.
func (r *LLMSkillRefiner) Refine(ctx context.Context, input model.JobInput, base model.SkillProfile) (model.SkillProfile, error) {
	desc := cutUTF8(input.JobDescription, maxDescriptionChars)

	var promptBuf bytes.Buffer
	if err := r.tmpl.Execute(&promptBuf, struct {
		Company, Role, Description string
		Known                      []string
	}{
		Company:     input.Company,
		Role:        input.Role,
		Description: desc,
		Known:       base.TechnicalSkills,
	}); err != nil {
		return model.SkillProfile{}, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := r.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return model.SkillProfile{}, err
	}

	p, err := parseSkills(raw)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("unparseable skill refinement", "role", input.Role, "raw", truncate(raw))
		}
		return model.SkillProfile{}, err
	}
	return p, nil
}
