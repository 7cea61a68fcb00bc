package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/logger"
	"github.com/futig/design-wizard/internal/pkg/response"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// maxJSONBody bounds every JSON request body except imports.
const maxJSONBody = 1 << 20

type Handler struct {
	usecase ProjectUsecase
	cfg     config.ExportConfig
}

func NewHandler(usecase ProjectUsecase, cfg config.ExportConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// GetOptions handles GET /options
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, preset.AllOptions())
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateProject")

	var req entity.CreateProjectRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "creating project",
		zap.String("name", req.Name),
		zap.String("preset", req.Preset),
	)

	proj, err := h.usecase.CreateProject(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toProjectDetail(proj))
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListProjects")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	req := entity.ListProjectsRequest{
		Skip:  skip,
		Limit: limit,
	}

	req.Normalize()

	ctxzap.Debug(ctx, "listing projects",
		zap.Int("skip", req.Skip),
		zap.Int("limit", req.Limit),
	)

	projects, err := h.usecase.ListProjects(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	summaries := make([]*entity.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, toProjectSummary(p))
	}

	ctxzap.Info(ctx, "projects listed successfully", zap.Int("count", len(summaries)))

	response.Success(w, &entity.ListProjectsResponse{
		Projects: summaries,
	})
}

// GetProject handles GET /projects/{project_id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "GetProject")

	proj, err := h.usecase.GetProject(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toProjectDetail(proj))
}

// DeleteProject handles DELETE /projects/{project_id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "DeleteProject")

	ctxzap.Info(ctx, "deleting project")

	if err := h.usecase.DeleteProject(ctx, projectID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.DeleteProjectResponse{
		Status: "deleted",
	})
}

// UpdateSchema handles PATCH /projects/{project_id}/schema
func (h *Handler) UpdateSchema(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "UpdateSchema")

	var patch entity.SchemaPatch
	if err := decodeBody(r, &patch); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid schema patch", err)
		return
	}

	proj, err := h.usecase.UpdateSchema(ctx, projectID, patch)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "schema updated")
	response.Success(w, toProjectDetail(proj))
}

// ApplyPreset handles POST /projects/{project_id}/preset/{name}
func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "ApplyPreset")
	name := chi.URLParam(r, "name")

	proj, err := h.usecase.ApplyPreset(ctx, projectID, name)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toProjectDetail(proj))
}

// ResetProject handles POST /projects/{project_id}/reset
func (h *Handler) ResetProject(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "ResetProject")

	proj, err := h.usecase.ResetProject(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "project reset to defaults")
	response.Success(w, toProjectDetail(proj))
}

// SetCornerRadius handles POST /projects/{project_id}/radius
func (h *Handler) SetCornerRadius(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "SetCornerRadius")

	var req entity.SetRadiusRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid radius request", err)
		return
	}

	proj, err := h.usecase.SetCornerRadius(ctx, projectID, req.Radius)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toProjectDetail(proj))
}

// Generate handles POST /projects/{project_id}/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "Generate")

	res, err := h.usecase.Generate(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, res)
}

// GetPrompt handles GET /projects/{project_id}/prompt
func (h *Handler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "GetPrompt")

	res, err := h.usecase.Prompt(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, res)
}

// GetSuggestions handles GET /projects/{project_id}/suggestions
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "GetSuggestions")

	res, err := h.usecase.Suggestions(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, res)
}

// GetPreview handles GET /projects/{project_id}/preview
func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "GetPreview")

	page, err := h.usecase.Preview(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, page)
}

// GetTokens handles GET /projects/{project_id}/tokens
func (h *Handler) GetTokens(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "GetTokens")

	tokens, err := h.usecase.Tokens(ctx, projectID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.IndentedJSON(w, http.StatusOK, tokens)
}

// Import handles POST /projects/{project_id}/import
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "Import")

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxImportSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(ctx, w, http.StatusRequestEntityTooLarge, "import document too large", err)
			return
		}
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	ctxzap.Info(ctx, "importing schema", zap.Int("bytes", len(raw)))

	res, err := h.usecase.Import(ctx, projectID, raw)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, res)
}

// Export handles GET /projects/{project_id}/export?format=
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, projectID := h.projectContext(r, "Export")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatJSON)
	}

	format := entity.ExportFormat(formatParam)
	if !format.IsValid() {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid format parameter",
			fmt.Errorf("format must be one of: json, markdown, docx, pdf"))
		return
	}

	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	res, err := h.usecase.Export(ctx, projectID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "project exported", zap.String("filename", res.Filename))
	response.Attachment(w, res.Filename, res.ContentType, res.Data)
}

// Helper methods
func (h *Handler) projectContext(r *http.Request, action string) (context.Context, string) {
	projectID := chi.URLParam(r, "project_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("project_id", projectID),
		zap.String("action", action),
	)
	return ctx, projectID
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrProjectNotFound), errors.Is(err, entity.ErrPresetNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrInvalidSchema):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid schema", err)
	case errors.Is(err, entity.ErrUnsupportedFormat), errors.Is(err, entity.ErrInvalidFormat):
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported format", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
