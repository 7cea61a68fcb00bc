package validator

import (
	"fmt"
	"math"

	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/preset"
)

const (
	MinVibe = 0
	MaxVibe = 100
)

// Validator checks requests entering the system
type Validator struct {
	cfg config.ExportConfig
}

func NewValidator(cfg config.ExportConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateCreateProject(req *entity.CreateProjectRequest) error {
	if req.Preset == "" {
		return nil
	}
	if _, ok := preset.Lookup(req.Preset); !ok {
		return fmt.Errorf("%w: %q", entity.ErrPresetNotFound, req.Preset)
	}
	return nil
}

// ValidateImport checks the raw size of an import document.
func (v *Validator) ValidateImport(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: body", entity.ErrMissingField)
	}
	if int64(len(data)) > v.cfg.MaxImportSize {
		return fmt.Errorf("%w: document is %d bytes (max %d)", entity.ErrInvalidParameter, len(data), v.cfg.MaxImportSize)
	}
	return nil
}

func (v *Validator) ValidateExportFormat(format entity.ExportFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, format)
	}
	return nil
}

func ValidateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("%w: radius must be a non-negative number", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateSchema checks the structural invariants a schema must hold before
// it is stored. Free-text fields are not inspected.
func ValidateSchema(s entity.SiteSchema) error {
	if s.Vibe < MinVibe || s.Vibe > MaxVibe {
		return invalid("vibe", fmt.Sprintf("must be between %d and %d, got %d", MinVibe, MaxVibe, s.Vibe))
	}

	enums := []struct {
		field string
		value string
		ok    bool
	}{
		{"goal", string(s.Goal), s.Goal.IsValid()},
		{"tone", string(s.Tone), s.Tone.IsValid()},
		{"pageArchetype", string(s.PageArchetype), s.PageArchetype.IsValid()},
		{"navStyle", string(s.NavStyle), s.NavStyle.IsValid()},
		{"tokens.typography.font", string(s.Tokens.Typography.Font), s.Tokens.Typography.Font.IsValid()},
		{"tokens.typography.headingStyle", string(s.Tokens.Typography.HeadingStyle), s.Tokens.Typography.HeadingStyle.IsValid()},
		{"tokens.density", string(s.Tokens.Density), s.Tokens.Density.IsValid()},
		{"tokens.colorMode", string(s.Tokens.ColorMode), s.Tokens.ColorMode.IsValid()},
		{"tokens.backgroundStyle", string(s.Tokens.BackgroundStyle), s.Tokens.BackgroundStyle.IsValid()},
	}
	for _, e := range enums {
		if !e.ok {
			return invalid(e.field, fmt.Sprintf("unknown value %q", e.value))
		}
	}

	if err := validateTokens(s.Tokens); err != nil {
		return err
	}

	for i := range s.Suggestions {
		if err := s.Suggestions[i].Severity.Validate(); err != nil {
			return invalid(fmt.Sprintf("suggestions[%d].severity", i), err.Error())
		}
	}

	return nil
}

func validateTokens(t entity.TokenSet) error {
	for i, r := range t.Radii {
		if err := ValidateRadius(r); err != nil {
			return invalid(fmt.Sprintf("tokens.radii[%d]", i), "must be a non-negative number")
		}
	}

	// muted and border are optional accents
	colors := []struct{ name, value string }{
		{"primary", t.Colors.Primary},
		{"accent", t.Colors.Accent},
		{"background", t.Colors.Background},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
	}
	for _, c := range colors {
		if c.value == "" {
			return invalid("tokens.colors."+c.name, "must not be empty")
		}
	}
	return nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", entity.ErrInvalidSchema, field, reason)
}
