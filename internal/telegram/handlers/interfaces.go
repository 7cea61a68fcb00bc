package handlers

import (
	"context"

	"github.com/futig/design-wizard/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ProjectUsecase is the subset of project operations the chat flow needs
type ProjectUsecase interface {
	CreateProject(ctx context.Context, req *entity.CreateProjectRequest) (*entity.Project, error)
	GetProject(ctx context.Context, id string) (*entity.Project, error)
	UpdateSchema(ctx context.Context, id string, patch entity.SchemaPatch) (*entity.Project, error)
	ApplyPreset(ctx context.Context, id, name string) (*entity.Project, error)
	ResetProject(ctx context.Context, id string) (*entity.Project, error)
	SetCornerRadius(ctx context.Context, id string, r float64) (*entity.Project, error)
	Generate(ctx context.Context, id string) (*entity.GenerateResponse, error)
	Suggestions(ctx context.Context, id string) (*entity.SuggestionsResponse, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportResult, error)
	Import(ctx context.Context, id string, raw []byte) (*entity.ImportResponse, error)
}

// Sender is the part of the bot API handlers reply through
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// FileFetcher downloads an uploaded file, refusing files above maxSize bytes.
type FileFetcher func(ctx context.Context, fileID string, maxSize int64) ([]byte, error)
