package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/futig/design-wizard/internal/entity"
)

const (
	jsonContentType   = "application/json"
	jsonFileExtension = ".json"
)

// JSONFormatter passes an already encoded schema document through. The
// title is not part of the interchange format and is ignored.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (jf *JSONFormatter) Format(_, text string) ([]byte, error) {
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: json export expects an encoded document", entity.ErrInvalidFormat)
	}
	return []byte(text), nil
}

func (jf *JSONFormatter) ContentType() string {
	return jsonContentType
}

func (jf *JSONFormatter) FileExtension() string {
	return jsonFileExtension
}
