package project

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const defaultExportBase = "project"

// Export renders the project as a downloadable artifact. json is the
// interchange document; every other format carries the prompt.
// Results are cached by content hash, so an edit never serves a stale file.
func (uc *ProjectUsecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportResult, error) {
	if err := uc.validator.ValidateExportFormat(format); err != nil {
		return nil, err
	}

	project, err := uc.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	s := project.Schema

	document, err := interchange.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	key := cacheKey(project.ID, format, document)
	if cached, ok := uc.exports.Get(key); ok {
		ctxzap.Debug(ctx, "export served from cache", zap.String("format", string(format)))
		return cached, nil
	}

	result, err := RenderArtifact(s, format, uc.formatters)
	if err != nil {
		return nil, err
	}
	uc.exports.Add(key, result)

	ctxzap.Info(ctx, "project exported",
		zap.String("format", string(format)),
		zap.Int("bytes", len(result.Data)),
	)
	return result, nil
}

// RenderArtifact builds the download for s without touching storage.
func RenderArtifact(s entity.SiteSchema, format entity.ExportFormat, formatters FormatterFactory) (*entity.ExportResult, error) {
	fmtr, err := formatters.Create(format)
	if err != nil {
		return nil, err
	}

	filename := interchange.ExportFilename(s)
	var text string
	if format == entity.FormatJSON {
		document, err := interchange.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("encode schema: %w", err)
		}
		text = string(document)
	} else {
		text = s.GeneratedPrompt
		if text == "" {
			text = prompt.Assemble(s)
		}
		filename = exportBase(s.Name) + fmtr.FileExtension()
	}

	data, err := fmtr.Format(s.Name, text)
	if err != nil {
		return nil, fmt.Errorf("format %s export: %w", format, err)
	}

	return &entity.ExportResult{
		Filename:    filename,
		ContentType: fmtr.ContentType(),
		Data:        data,
	}, nil
}

func cacheKey(id string, format entity.ExportFormat, document []byte) string {
	sum := sha256.Sum256(document)
	return strings.Join([]string{id, string(format), hex.EncodeToString(sum[:])}, ":")
}

func exportBase(name string) string {
	if name == "" {
		return defaultExportBase
	}
	return name
}
