// Package planner owns the roadmap pipeline for one job posting:
// extract → refine → resolve → assemble → save → record → report.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/prepmap/internal/extract"
	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/profile"
	"github.com/amishk599/prepmap/internal/roadmap"
)

// CompanyResolver maps a company name to its profile. It never fails.
type CompanyResolver interface {
	Resolve(ctx context.Context, company, role string) model.CompanyProfile
}

// Result is what one Plan call produced.
type Result struct {
	ID      string
	Roadmap model.Roadmap
	Path    string
	Skills  model.SkillProfile
	Company model.CompanyProfile
}

// Planner runs the pipeline. refiner may be nil.
type Planner struct {
	extractor     *extract.Extractor
	refiner       model.SkillRefiner
	refineTimeout time.Duration
	resolver      CompanyResolver
	assembler     *roadmap.Assembler
	store         model.RoadmapStore
	reporter      model.Reporter
	outputDir     string
	now           func() time.Time
	logger        *slog.Logger
}

// Options carries the optional collaborators and settings.
type Options struct {
	Refiner       model.SkillRefiner
	RefineTimeout time.Duration
	Store         model.RoadmapStore
	Reporter      model.Reporter
	OutputDir     string
	Now           func() time.Time
}

// New creates a planner wired with all its dependencies.
func New(
	extractor *extract.Extractor,
	resolver CompanyResolver,
	assembler *roadmap.Assembler,
	opts Options,
	logger *slog.Logger,
) *Planner {
	p := &Planner{
		extractor:     extractor,
		refiner:       opts.Refiner,
		refineTimeout: opts.RefineTimeout,
		resolver:      resolver,
		assembler:     assembler,
		store:         opts.Store,
		reporter:      opts.Reporter,
		outputDir:     opts.OutputDir,
		now:           opts.Now,
		logger:        logger,
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// Plan builds a roadmap and writes it under the output directory with the
// default file name.
func (p *Planner) Plan(ctx context.Context, input model.JobInput) (Result, error) {
	return p.PlanTo(ctx, input, "")
}

// PlanTo is Plan with an explicit output path. An empty path means the
// default file name.
func (p *Planner) PlanTo(ctx context.Context, input model.JobInput, path string) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}
	input.Company = strings.TrimSpace(input.Company)
	input.Role = strings.TrimSpace(input.Role)

	skills, err := p.extractor.Extract(input)
	if err != nil {
		p.logger.Warn("job description empty, using role defaults", "role", input.Role, "error", err)
	} else {
		skills = p.refine(ctx, input, skills)
	}

	company := p.resolver.Resolve(ctx, input.Company, input.Role)

	rm, err := p.assembler.Assemble(input, skills, company)
	if err != nil {
		return Result{}, fmt.Errorf("assembling roadmap for %s: %w", input.Company, err)
	}

	now := p.now()
	if path == "" {
		path = filepath.Join(p.outputDir, roadmap.DefaultFilename(rm, now))
	}
	if err := roadmap.Save(rm, path); err != nil {
		return Result{}, fmt.Errorf("saving roadmap for %s: %w", input.Company, err)
	}

	res := Result{
		ID:      uuid.NewString(),
		Roadmap: rm,
		Path:    path,
		Skills:  skills,
		Company: company,
	}

	if p.store != nil {
		if err := p.store.Record(model.HistoryEntry{
			ID:         res.ID,
			Company:    rm.Company,
			Role:       rm.Role,
			Difficulty: rm.Difficulty,
			Path:       path,
			CreatedAt:  now,
		}); err != nil {
			p.logger.Warn("failed to record roadmap history", "path", path, "error", err)
		}
	}

	if p.reporter != nil {
		if err := p.reporter.Report(rm, path); err != nil {
			p.logger.Warn("failed to report roadmap", "path", path, "error", err)
		}
	}

	p.logger.Info("roadmap generated",
		"company", rm.Company,
		"role", rm.Role,
		"difficulty", rm.Difficulty,
		"company_source", company.Source,
		"rounds", len(rm.Rounds),
		"path", path,
	)
	return res, nil
}

// refine asks the refiner for skills the keyword pass missed and merges
// them in. Any failure keeps the keyword profile.
func (p *Planner) refine(ctx context.Context, input model.JobInput, base model.SkillProfile) model.SkillProfile {
	if p.refiner == nil {
		return base
	}
	if p.refineTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.refineTimeout)
		defer cancel()
	}

	refined, err := p.refiner.Refine(ctx, input, base)
	if err == nil && ctx.Err() != nil {
		err = &model.ExternalCallError{Op: "refine skills", Err: ctx.Err()}
	}
	if err != nil {
		p.logger.Warn("skill refinement failed, keeping keyword skills",
			"role", input.Role,
			"kind", profile.FailureKind(err),
			"error", err,
		)
		return base
	}

	merged := p.extractor.Merge(base, refined)
	p.logger.Debug("skills refined", "before", len(base.TechnicalSkills), "after", len(merged.TechnicalSkills))
	return merged
}
