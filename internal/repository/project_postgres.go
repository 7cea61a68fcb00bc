package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/repository/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	Create(ctx context.Context, project entity.Project) (*entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Project, error)
	UpdateSchema(ctx context.Context, id string, schema entity.SiteSchema) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

var _ ProjectRepository = &ProjectPostgres{}

// ProjectPostgres implements ProjectRepository using PostgreSQL with sqlc.
// The schema is stored verbatim as a JSONB document.
type ProjectPostgres struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewProjectPostgres(db *pgxpool.Pool) *ProjectPostgres {
	return &ProjectPostgres{
		db:      db,
		queries: sqlc.New(db),
	}
}

func (r *ProjectPostgres) Create(ctx context.Context, project entity.Project) (*entity.Project, error) {
	projectID, err := parseID(project.ID)
	if err != nil {
		return nil, err
	}

	schema, err := encodeSchema(project.Schema)
	if err != nil {
		return nil, err
	}

	result, err := r.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:     pgtype.UUID{Bytes: projectID, Valid: true},
		Name:   project.Name,
		Schema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return toEntityProject(ctx, &result), nil
}

func (r *ProjectPostgres) Get(ctx context.Context, id string) (*entity.Project, error) {
	projectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.queries.GetProject(ctx, pgtype.UUID{Bytes: projectID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return toEntityProject(ctx, &result), nil
}

func (r *ProjectPostgres) List(ctx context.Context, skip, limit int) ([]*entity.Project, error) {
	results, err := r.queries.ListProjects(ctx, sqlc.ListProjectsParams{
		Limit:  int32(limit),
		Offset: int32(skip),
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]*entity.Project, 0, len(results))
	for _, result := range results {
		projects = append(projects, toEntityProject(ctx, &result))
	}

	return projects, nil
}

func (r *ProjectPostgres) UpdateSchema(ctx context.Context, id string, schema entity.SiteSchema) (*entity.Project, error) {
	projectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	data, err := encodeSchema(schema)
	if err != nil {
		return nil, err
	}

	result, err := r.queries.UpdateProjectSchema(ctx, sqlc.UpdateProjectSchemaParams{
		ID:     pgtype.UUID{Bytes: projectID, Valid: true},
		Name:   schema.Name,
		Schema: data,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project schema: %w", err)
	}

	return toEntityProject(ctx, &result), nil
}

func (r *ProjectPostgres) Delete(ctx context.Context, id string) error {
	projectID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := r.queries.DeleteProject(ctx, pgtype.UUID{Bytes: projectID, Valid: true})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return entity.ErrProjectNotFound
	}

	return nil
}
