package repository

import (
	"context"
	"fmt"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/repository/sqlc"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// toEntityProject decodes the stored document. A row whose schema no longer
// decodes is served with a default schema rather than failing the read.
func toEntityProject(ctx context.Context, dbProject *sqlc.Project) *entity.Project {
	projectUUID := uuid.UUID(dbProject.ID.Bytes)
	log := ctxzap.Extract(ctx).With(zap.String("project_id", projectUUID.String()))

	return &entity.Project{
		ID:        projectUUID.String(),
		Name:      dbProject.Name,
		Schema:    interchange.LoadOrDefault(dbProject.Schema, log),
		CreatedAt: dbProject.CreatedAt.Time,
		UpdatedAt: dbProject.UpdatedAt.Time,
	}
}

func encodeSchema(s entity.SiteSchema) ([]byte, error) {
	data, err := interchange.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return data, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: project id %q", entity.ErrInvalidParameter, id)
	}
	return parsed, nil
}
