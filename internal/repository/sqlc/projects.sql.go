package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createProject = `-- name: CreateProject :one
INSERT INTO projects (id, name, schema)
VALUES ($1, $2, $3)
RETURNING id, name, schema, created_at, updated_at
`

type CreateProjectParams struct {
	ID     pgtype.UUID `json:"id"`
	Name   string      `json:"name"`
	Schema []byte      `json:"schema"`
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	row := q.db.QueryRow(ctx, createProject, arg.ID, arg.Name, arg.Schema)
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Schema,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteProject = `-- name: DeleteProject :execrows
DELETE FROM projects
WHERE id = $1
`

func (q *Queries) DeleteProject(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProject, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getProject = `-- name: GetProject :one
SELECT id, name, schema, created_at, updated_at FROM projects
WHERE id = $1
`

func (q *Queries) GetProject(ctx context.Context, id pgtype.UUID) (Project, error) {
	row := q.db.QueryRow(ctx, getProject, id)
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Schema,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listProjects = `-- name: ListProjects :many
SELECT id, name, schema, created_at, updated_at FROM projects
ORDER BY updated_at DESC, id
LIMIT $1 OFFSET $2
`

type ListProjectsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListProjects(ctx context.Context, arg ListProjectsParams) ([]Project, error) {
	rows, err := q.db.Query(ctx, listProjects, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		var i Project
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Schema,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateProjectSchema = `-- name: UpdateProjectSchema :one
UPDATE projects
SET name = $2, schema = $3, updated_at = NOW()
WHERE id = $1
RETURNING id, name, schema, created_at, updated_at
`

type UpdateProjectSchemaParams struct {
	ID     pgtype.UUID `json:"id"`
	Name   string      `json:"name"`
	Schema []byte      `json:"schema"`
}

func (q *Queries) UpdateProjectSchema(ctx context.Context, arg UpdateProjectSchemaParams) (Project, error) {
	row := q.db.QueryRow(ctx, updateProjectSchema, arg.ID, arg.Name, arg.Schema)
	var i Project
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Schema,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
