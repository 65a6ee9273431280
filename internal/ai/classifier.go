package ai

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/amishk599/prepmap/internal/model"
)

// LLMCompanyClassifier implements model.CompanyClassifier using an LLM.
type LLMCompanyClassifier struct {
	provider LLMProvider
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewLLMCompanyClassifier creates a classifier for companies the catalog
// does not know.
func NewLLMCompanyClassifier(provider LLMProvider, tmpl *template.Template, logger *slog.Logger) *LLMCompanyClassifier {
	return &LLMCompanyClassifier{
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// Classify makes one model call. Name and Source are left for the caller.
func (c *LLMCompanyClassifier) Classify(ctx context.Context, company, role string) (model.CompanyProfile, error) {
	var promptBuf bytes.Buffer
	if err := c.tmpl.Execute(&promptBuf, struct{ Company, Role string }{
		Company: company,
		Role:    role,
	}); err != nil {
		return model.CompanyProfile{}, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := c.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return model.CompanyProfile{}, err
	}

	p, err := parseClassification(raw)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("unparseable classification", "company", company, "raw", truncate(raw))
		}
		return model.CompanyProfile{}, err
	}
	return p, nil
}
