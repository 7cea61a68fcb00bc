package project

import (
	"context"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/preview"
)

type ProjectUsecase interface {
	CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.Project, error)
	ListProjects(ctx context.Context, req *entity.ListProjectsRequest) ([]*entity.Project, error)
	GetProject(ctx context.Context, id string) (*entity.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UpdateSchema(ctx context.Context, id string, patch entity.SchemaPatch) (*entity.Project, error)
	ApplyPreset(ctx context.Context, id, name string) (*entity.Project, error)
	ResetProject(ctx context.Context, id string) (*entity.Project, error)
	SetCornerRadius(ctx context.Context, id string, r float64) (*entity.Project, error)
	Generate(ctx context.Context, id string) (*entity.GenerateResponse, error)
	Prompt(ctx context.Context, id string) (*entity.PromptResponse, error)
	Suggestions(ctx context.Context, id string) (*entity.SuggestionsResponse, error)
	Preview(ctx context.Context, id string) (*preview.Page, error)
	Tokens(ctx context.Context, id string) (*entity.TokenSet, error)
	Import(ctx context.Context, id string, raw []byte) (*entity.ImportResponse, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportResult, error)
}
