package project

import (
	"time"

	"github.com/futig/design-wizard/internal/entity"
)

// toProjectSummary converts Project entity to ProjectSummary DTO
func toProjectSummary(p *entity.Project) *entity.ProjectSummary {
	return &entity.ProjectSummary{
		ID:            p.ID,
		Name:          p.Name,
		PageArchetype: p.Schema.PageArchetype,
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

// toProjectDetail converts Project entity to ProjectDetailResponse DTO
func toProjectDetail(p *entity.Project) *entity.ProjectDetailResponse {
	return &entity.ProjectDetailResponse{
		ID:        p.ID,
		Name:      p.Name,
		Schema:    p.Schema,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
