package entity

import "math"

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type CreateProjectRequest struct {
	Name   string `json:"name"`
	Preset string `json:"preset,omitempty"`
}

type ListProjectsRequest struct {
	Skip  int
	Limit int
}

func (lp *ListProjectsRequest) Normalize() {
	if lp.Skip < 0 {
		lp.Skip = 0
	}
	if lp.Limit <= 0 {
		lp.Limit = 10
	}

	// OFFSET is an int4 parameter
	lp.Skip = min(lp.Skip, math.MaxInt32)
	lp.Limit = min(lp.Limit, 100)
}

type ListProjectsResponse struct {
	Projects []*ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PageArchetype PageArchetype `json:"page_archetype"`
	UpdatedAt     string        `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Schema    SiteSchema `json:"schema"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

type DeleteProjectResponse struct {
	Status string `json:"status"`
}

type SetRadiusRequest struct {
	Radius float64 `json:"radius"`
}

// GenerateResponse carries both text artifacts of one generation pass.
type GenerateResponse struct {
	Prompt      string           `json:"generatedPrompt"`
	Suggestions []Suggestion     `json:"suggestions"`
	Severities  map[Severity]int `json:"severities"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion     `json:"suggestions"`
	Severities  map[Severity]int `json:"severities"`
}

type PromptResponse struct {
	Prompt string `json:"generatedPrompt"`
}

type ImportResponse struct {
	Status   string `json:"status"`
	Repaired bool   `json:"repaired"`
}

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}
