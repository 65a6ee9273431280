// Package profile resolves a company name to a CompanyProfile: catalog first,
// then a single classifier call, then a fixed default.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amishk599/prepmap/internal/catalog"
	"github.com/amishk599/prepmap/internal/model"
)

const (
	bigTechRounds  = 5
	standardRounds = 3
	minRounds      = 2
	maxRounds      = 8
)

var defaultFocus = []string{"Technical Skills", "Problem Solving"}

// Resolver turns company names into profiles. Resolve never fails.
type Resolver struct {
	cat        *catalog.Catalog
	classifier model.CompanyClassifier // nil disables the external call
	timeout    time.Duration
	logger     *slog.Logger
}

// NewResolver wires a resolver. classifier may be nil.
func NewResolver(cat *catalog.Catalog, classifier model.CompanyClassifier, timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		cat:        cat,
		classifier: classifier,
		timeout:    timeout,
		logger:     logger,
	}
}

// Resolve returns the profile for company. Lookup order: exact normalized
// match, substring match, one classifier call, default profile.
func (r *Resolver) Resolve(ctx context.Context, company, role string) model.CompanyProfile {
	normalized := catalog.NormalizeName(company)

	if c, ok := r.cat.LookupExact(normalized); ok {
		r.logger.Debug("company resolved from catalog", "company", company, "key", c.Key, "match", "exact")
		return fromCatalog(company, c)
	}
	if c, ok := r.cat.LookupSubstring(company); ok {
		r.logger.Debug("company resolved from catalog", "company", company, "key", c.Key, "match", "substring")
		return fromCatalog(company, c)
	}

	if r.classifier == nil {
		r.logger.Debug("company not in catalog and classifier disabled, using default", "company", company)
		return DefaultProfile(company)
	}

	p, err := r.classify(ctx, company, role)
	if err != nil {
		r.logger.Warn("company classification failed, using default profile",
			"company", company,
			"kind", FailureKind(err),
			"error", err,
		)
		return DefaultProfile(company)
	}

	r.logger.Info("company classified by model",
		"company", company,
		"type", p.Archetype,
		"difficulty", p.Difficulty,
	)
	return p
}

// classify makes the single bounded classifier call and sanitizes its answer.
func (r *Resolver) classify(ctx context.Context, company, role string) (p model.CompanyProfile, err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = &model.ExternalCallError{Op: "classify company", Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	p, err = r.classifier.Classify(ctx, company, role)
	if err != nil {
		return model.CompanyProfile{}, err
	}
	if ctx.Err() != nil {
		return model.CompanyProfile{}, &model.ExternalCallError{Op: "classify company", Err: ctx.Err()}
	}

	if _, err := model.ParseArchetype(string(p.Archetype)); err != nil {
		return model.CompanyProfile{}, err
	}
	if _, err := model.ParseDifficulty(string(p.Difficulty)); err != nil {
		return model.CompanyProfile{}, err
	}

	p.Name = company
	p.Source = model.SourceModel
	if len(p.Focus) == 0 {
		p.Focus = append([]string(nil), defaultFocus...)
	}
	switch {
	case p.RoundCount == 0:
		p.RoundCount = RoundsFor(p.Archetype)
	case p.RoundCount < minRounds:
		p.RoundCount = minRounds
	case p.RoundCount > maxRounds:
		p.RoundCount = maxRounds
	}
	return p, nil
}

// DefaultProfile is the fallback when a company is unknown and the
// classifier is unavailable or failed.
func DefaultProfile(company string) model.CompanyProfile {
	return model.CompanyProfile{
		Name:       company,
		Archetype:  model.ArchetypeEnterprise,
		Difficulty: model.DifficultyMedium,
		RoundCount: standardRounds,
		Focus:      append([]string(nil), defaultFocus...),
		Source:     model.SourceDefault,
	}
}

// RoundsFor returns the typical loop length for an archetype.
func RoundsFor(a model.Archetype) int {
	if a.IsBigTech() {
		return bigTechRounds
	}
	return standardRounds
}

func fromCatalog(company string, c catalog.Company) model.CompanyProfile {
	return model.CompanyProfile{
		Name:       strings.TrimSpace(company),
		Archetype:  c.Archetype,
		Difficulty: c.Difficulty,
		RoundCount: RoundsFor(c.Archetype),
		Focus:      append([]string(nil), c.Focus...),
		Source:     model.SourceCatalog,
	}
}

// FailureKind names the error kind for logs: timeout, external_call, parse,
// invalid_input or unknown.
func FailureKind(err error) string {
	var extErr *model.ExternalCallError
	var parseErr *model.ParseError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &extErr):
		return "external_call"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid_input"
	default:
		return "unknown"
	}
}
