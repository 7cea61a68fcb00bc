package project

import (
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/formatter"
)

type FormatterFactory interface {
	Create(format entity.ExportFormat) (formatter.Formatter, error)
}
