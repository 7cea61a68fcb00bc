package project

import (
	"context"
	"fmt"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/futig/design-wizard/internal/preview"
	"github.com/futig/design-wizard/internal/prompt"
	"github.com/futig/design-wizard/internal/repository"
	"github.com/futig/design-wizard/internal/suggestion"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// ProjectUsecase implements project business logic. Every edit loads the
// stored schema, derives a new value and writes it back whole.
type ProjectUsecase struct {
	projectRepo repository.ProjectRepository
	validator   *validator.Validator
	formatters  FormatterFactory
	exports     *lru.Cache[string, *entity.ExportResult]
}

// NewUsecase creates a new project use case
func NewUsecase(
	projectRepo repository.ProjectRepository,
	validator *validator.Validator,
	formatters FormatterFactory,
	exportCacheSize int,
) (*ProjectUsecase, error) {
	exports, err := lru.New[string, *entity.ExportResult](exportCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create export cache: %w", err)
	}

	return &ProjectUsecase{
		projectRepo: projectRepo,
		validator:   validator,
		formatters:  formatters,
		exports:     exports,
	}, nil
}

// CreateProject stores a new project built from the default schema or from
// a named preset. A non-empty name overrides the schema name.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.Project, error) {
	if err := uc.validator.ValidateCreateProject(req); err != nil {
		return nil, err
	}

	schema := preset.Default()
	if req.Preset != "" {
		applied, err := preset.Apply(req.Preset)
		if err != nil {
			return nil, err
		}
		schema = applied
	}
	if req.Name != "" {
		schema.Name = req.Name
	}

	project, err := uc.projectRepo.Create(ctx, entity.Project{
		ID:     uuid.New().String(),
		Name:   schema.Name,
		Schema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	ctxzap.Info(ctx, "project created",
		zap.String("project_id", project.ID),
		zap.String("preset", req.Preset),
	)

	return project, nil
}

// ListProjects retrieves projects with pagination
func (uc *ProjectUsecase) ListProjects(ctx context.Context, req *entity.ListProjectsRequest) ([]*entity.Project, error) {
	projects, err := uc.projectRepo.List(ctx, req.Skip, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetProject retrieves a project by ID
func (uc *ProjectUsecase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	project, err := uc.projectRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

func (uc *ProjectUsecase) DeleteProject(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	ctxzap.Info(ctx, "project deleted")
	return nil
}

// UpdateSchema replaces the top-level fields carried by the patch. Derived
// fields are left as they are until the next generation.
func (uc *ProjectUsecase) UpdateSchema(ctx context.Context, id string, patch entity.SchemaPatch) (*entity.Project, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: patch changes nothing", entity.ErrMissingField)
	}

	return uc.modify(ctx, id, func(s entity.SiteSchema) (entity.SiteSchema, error) {
		return patch.ApplyTo(s), nil
	})
}

// ApplyPreset replaces the schema with the default overlaid by the named
// preset. The project name is kept.
func (uc *ProjectUsecase) ApplyPreset(ctx context.Context, id, name string) (*entity.Project, error) {
	return uc.modify(ctx, id, func(s entity.SiteSchema) (entity.SiteSchema, error) {
		next, err := preset.Apply(name)
		if err != nil {
			return entity.SiteSchema{}, err
		}
		next.Name = s.Name
		ctxzap.Info(ctx, "applying preset", zap.String("preset", name))
		return next, nil
	})
}

// ResetProject replaces the schema with a fresh default.
func (uc *ProjectUsecase) ResetProject(ctx context.Context, id string) (*entity.Project, error) {
	return uc.modify(ctx, id, func(entity.SiteSchema) (entity.SiteSchema, error) {
		return preset.Default(), nil
	})
}

// SetCornerRadius sets all four radii to r.
func (uc *ProjectUsecase) SetCornerRadius(ctx context.Context, id string, r float64) (*entity.Project, error) {
	if err := validator.ValidateRadius(r); err != nil {
		return nil, err
	}

	return uc.modify(ctx, id, func(s entity.SiteSchema) (entity.SiteSchema, error) {
		s.Tokens = s.Tokens.WithUniformRadius(r)
		return s, nil
	})
}

// Generate assembles the prompt and evaluates suggestions, storing both on
// the project.
func (uc *ProjectUsecase) Generate(ctx context.Context, id string) (*entity.GenerateResponse, error) {
	project, err := uc.modify(ctx, id, func(s entity.SiteSchema) (entity.SiteSchema, error) {
		return derive(s), nil
	})
	if err != nil {
		return nil, err
	}

	s := project.Schema
	ctxzap.Info(ctx, "prompt generated",
		zap.Int("prompt_bytes", len(s.GeneratedPrompt)),
		zap.Int("suggestions", len(s.Suggestions)),
	)

	return &entity.GenerateResponse{
		Prompt:      s.GeneratedPrompt,
		Suggestions: s.Suggestions,
		Severities:  suggestion.Count(s.Suggestions),
	}, nil
}

// Prompt returns the stored prompt, generating and storing it first when
// the project has none.
func (uc *ProjectUsecase) Prompt(ctx context.Context, id string) (*entity.PromptResponse, error) {
	project, err := uc.ensureDerived(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.PromptResponse{Prompt: project.Schema.GeneratedPrompt}, nil
}

// Suggestions evaluates the current schema without storing the result.
func (uc *ProjectUsecase) Suggestions(ctx context.Context, id string) (*entity.SuggestionsResponse, error) {
	project, err := uc.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	findings := suggestion.Evaluate(project.Schema)
	return &entity.SuggestionsResponse{
		Suggestions: findings,
		Severities:  suggestion.Count(findings),
	}, nil
}

// Preview renders the project. Like Prompt, it fills in missing derived
// fields first.
func (uc *ProjectUsecase) Preview(ctx context.Context, id string) (*preview.Page, error) {
	project, err := uc.ensureDerived(ctx, id)
	if err != nil {
		return nil, err
	}

	page := preview.Render(project.Schema)
	return &page, nil
}

func (uc *ProjectUsecase) Tokens(ctx context.Context, id string) (*entity.TokenSet, error) {
	project, err := uc.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return &project.Schema.Tokens, nil
}

// Import replaces the schema with a document. A document that cannot be
// read or repaired leaves the project untouched.
func (uc *ProjectUsecase) Import(ctx context.Context, id string, raw []byte) (*entity.ImportResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateImport(raw); err != nil {
		return nil, err
	}

	schema, repaired, err := interchange.Repair(raw)
	if err != nil {
		ctxzap.Warn(ctx, "import rejected, schema unchanged", zap.Error(err))
		return nil, err
	}

	if _, err := uc.projectRepo.UpdateSchema(ctx, id, schema); err != nil {
		return nil, fmt.Errorf("import schema: %w", err)
	}

	ctxzap.Info(ctx, "schema imported", zap.Bool("repaired", repaired))
	return &entity.ImportResponse{Status: "imported", Repaired: repaired}, nil
}

// modify runs one load-change-validate-store cycle.
func (uc *ProjectUsecase) modify(
	ctx context.Context,
	id string,
	change func(entity.SiteSchema) (entity.SiteSchema, error),
) (*entity.Project, error) {
	project, err := uc.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := change(project.Schema)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateSchema(next); err != nil {
		return nil, err
	}

	updated, err := uc.projectRepo.UpdateSchema(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return updated, nil
}

func (uc *ProjectUsecase) ensureDerived(ctx context.Context, id string) (*entity.Project, error) {
	project, err := uc.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.Schema.GeneratedPrompt != "" {
		return project, nil
	}

	ctxzap.Debug(ctx, "no stored prompt, generating")
	return uc.modify(ctx, id, func(s entity.SiteSchema) (entity.SiteSchema, error) {
		return derive(s), nil
	})
}

func derive(s entity.SiteSchema) entity.SiteSchema {
	return s.WithDerived(prompt.Assemble(s), suggestion.Evaluate(s))
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid project ID format", entity.ErrInvalidParameter)
	}
	return nil
}
