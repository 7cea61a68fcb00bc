package entity

import (
	"encoding/json"
	"fmt"
)

// Colors is the seven-slot palette. Field order is the serialization order.
type Colors struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Border     string `json:"border"`
}

// TypeScale maps the seven named sizes to pixels.
type TypeScale struct {
	XS   float64 `json:"xs"`
	SM   float64 `json:"sm"`
	Base float64 `json:"base"`
	MD   float64 `json:"md"`
	LG   float64 `json:"lg"`
	XL   float64 `json:"xl"`
	XXL  float64 `json:"2xl"`
}

type Typography struct {
	Scale        TypeScale    `json:"scale"`
	Font         Font         `json:"font"`
	HeadingStyle HeadingStyle `json:"headingStyle"`
}

// Shadows holds the three elevation levels.
type Shadows struct {
	Subtle string `json:"subtle"`
	Medium string `json:"medium"`
	Strong string `json:"strong"`
}

// ShadowKeys returns the elevation names in declaration order.
func ShadowKeys() []string {
	return []string{"subtle", "medium", "strong"}
}

// Radii holds the four corner radii. A document must list exactly four.
type Radii [4]float64

func (r *Radii) UnmarshalJSON(data []byte) error {
	var list []float64
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: tokens.radii: %w", ErrInvalidSchema, err)
	}
	if len(list) != len(r) {
		return fmt.Errorf("%w: tokens.radii must have exactly %d entries, got %d", ErrInvalidSchema, len(r), len(list))
	}
	copy(r[:], list)
	return nil
}

type TokenSet struct {
	Colors          Colors          `json:"colors"`
	Typography      Typography      `json:"typography"`
	Spacing         []float64       `json:"spacing"`
	Radii           Radii           `json:"radii"`
	Shadows         Shadows         `json:"shadows"`
	Density         Density         `json:"density"`
	ColorMode       ColorMode       `json:"colorMode"`
	BackgroundStyle BackgroundStyle `json:"backgroundStyle"`
}

// CornerRadius is the radius used by derived UI. Only radii[1] is consulted.
func (t TokenSet) CornerRadius() float64 {
	return t.Radii[1]
}

// WithUniformRadius returns a copy with every corner set to r.
func (t TokenSet) WithUniformRadius(r float64) TokenSet {
	out := t.Clone()
	out.Radii = Radii{r, r, r, r}
	return out
}

func (t TokenSet) Clone() TokenSet {
	out := t
	if t.Spacing != nil {
		out.Spacing = append([]float64(nil), t.Spacing...)
	}
	return out
}
