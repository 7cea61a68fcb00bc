package entity

// SchemaPatch is a partial schema. Every non-nil field replaces the whole
// corresponding top-level field of the target; nothing is merged deeper.
// Presets are expressed as patches too.
type SchemaPatch struct {
	Name          *string          `json:"name,omitempty"`
	Brief         *string          `json:"brief,omitempty"`
	Goal          *Goal            `json:"goal,omitempty"`
	Audience      *string          `json:"audience,omitempty"`
	Vibe          *int             `json:"vibe,omitempty"`
	Tone          *Tone            `json:"tone,omitempty"`
	PageArchetype *PageArchetype   `json:"pageArchetype,omitempty"`
	NavStyle      *NavStyle        `json:"navStyle,omitempty"`
	Sections      *LayoutSections  `json:"sections,omitempty"`
	Tokens        *TokenSet        `json:"tokens,omitempty"`
	Constraints   *ConstraintFlags `json:"constraints,omitempty"`
	Content       *Content         `json:"content,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SchemaPatch) IsEmpty() bool {
	return p.Name == nil && p.Brief == nil && p.Goal == nil && p.Audience == nil &&
		p.Vibe == nil && p.Tone == nil && p.PageArchetype == nil && p.NavStyle == nil &&
		p.Sections == nil && p.Tokens == nil && p.Constraints == nil && p.Content == nil
}

// ApplyTo returns a new schema with the patch laid over s. s is not modified.
func (p SchemaPatch) ApplyTo(s SiteSchema) SiteSchema {
	out := s.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Brief != nil {
		out.Brief = *p.Brief
	}
	if p.Goal != nil {
		out.Goal = *p.Goal
	}
	if p.Audience != nil {
		out.Audience = *p.Audience
	}
	if p.Vibe != nil {
		out.Vibe = *p.Vibe
	}
	if p.Tone != nil {
		out.Tone = *p.Tone
	}
	if p.PageArchetype != nil {
		out.PageArchetype = *p.PageArchetype
	}
	if p.NavStyle != nil {
		out.NavStyle = *p.NavStyle
	}
	if p.Sections != nil {
		out.Sections = *p.Sections
	}
	if p.Tokens != nil {
		out.Tokens = p.Tokens.Clone()
	}
	if p.Constraints != nil {
		out.Constraints = *p.Constraints
	}
	if p.Content != nil {
		out.Content = p.Content.Clone()
	}
	return out
}
