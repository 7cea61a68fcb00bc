// Package interchange reads and writes the JSON document form of a site
// schema. The same document is used for persisted state and for
// import/export files.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

const defaultExportName = "project"

// Encode renders s as a two-space indented document. Nil lists are written
// as empty arrays so the document always carries every key.
func Encode(s entity.SiteSchema) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(s)); err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a document strictly and checks the schema invariants.
// Unknown keys are rejected.
func Decode(data []byte) (entity.SiteSchema, error) {
	s, err := unmarshal(data)
	if err != nil {
		return entity.SiteSchema{}, err
	}
	if err := validator.ValidateSchema(s); err != nil {
		return entity.SiteSchema{}, err
	}
	return s, nil
}

// Repair decodes data, falling back to a syntactic repair when the document
// is not well-formed JSON. The repaired document must still pass the same
// checks as Decode. The bool reports whether the repair was needed.
func Repair(data []byte) (entity.SiteSchema, bool, error) {
	s, err := Decode(data)
	if err == nil {
		return s, false, nil
	}
	if !isSyntaxError(err) {
		return entity.SiteSchema{}, false, err
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return entity.SiteSchema{}, false, fmt.Errorf("%w: repair failed: %v", entity.ErrInvalidSchema, repairErr)
	}

	s, err = Decode([]byte(repaired))
	if err != nil {
		return entity.SiteSchema{}, false, fmt.Errorf("repaired document rejected: %w", err)
	}
	return s, true, nil
}

// LoadOrDefault reads persisted state. Any failure is logged and replaced by
// a fresh default schema.
func LoadOrDefault(data []byte, log *zap.Logger) entity.SiteSchema {
	s, err := Decode(data)
	if err != nil {
		log.Warn("persisted schema unreadable, using default", zap.Error(err))
		return preset.Default()
	}
	return s
}

// ExportFilename is the download name for s.
func ExportFilename(s entity.SiteSchema) string {
	name := s.Name
	if name == "" {
		name = defaultExportName
	}
	return name + ".json"
}

func unmarshal(data []byte) (entity.SiteSchema, error) {
	var s entity.SiteSchema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return entity.SiteSchema{}, fmt.Errorf("%w: %w", entity.ErrInvalidSchema, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return entity.SiteSchema{}, fmt.Errorf("%w: trailing data after document", entity.ErrInvalidSchema)
	}

	if s.Suggestions == nil {
		s.Suggestions = []entity.Suggestion{}
	}
	return s, nil
}

func isSyntaxError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

func normalize(s entity.SiteSchema) entity.SiteSchema {
	out := s.Clone()
	if out.Suggestions == nil {
		out.Suggestions = []entity.Suggestion{}
	}
	if out.Tokens.Spacing == nil {
		out.Tokens.Spacing = []float64{}
	}
	c := &out.Content
	if c.Features == nil {
		c.Features = []entity.Feature{}
	}
	if c.Logos == nil {
		c.Logos = []string{}
	}
	if c.Testimonials == nil {
		c.Testimonials = []entity.Testimonial{}
	}
	if c.Pricing == nil {
		c.Pricing = []entity.PricingTier{}
	}
	for i := range c.Pricing {
		if c.Pricing[i].Features == nil {
			c.Pricing[i].Features = []string{}
		}
	}
	if c.FAQs == nil {
		c.FAQs = []entity.FAQItem{}
	}
	return out
}
