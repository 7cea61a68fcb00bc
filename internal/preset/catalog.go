package preset

import (
	"fmt"

	"github.com/futig/design-wizard/internal/entity"
)

const (
	SaaS      = "SaaS"
	Portfolio = "Portfolio"
	Dashboard = "Dashboard"
	Landing   = "Landing"
)

// Names returns the preset names in catalog order.
func Names() []string {
	return []string{SaaS, Portfolio, Dashboard, Landing}
}

func ptr[T any](v T) *T {
	return &v
}

// Lookup returns the overlay registered under name. Each call builds a new
// patch so callers may keep it.
func Lookup(name string) (entity.SchemaPatch, bool) {
	switch name {
	case SaaS:
		sections := DefaultSections()
		sections.Pricing = true
		tokens := BaseTokens()
		tokens.Colors.Primary = "#6366f1"
		tokens.Colors.Accent = "#22c55e"
		return entity.SchemaPatch{
			Goal:          ptr(entity.GoalGetSignups),
			Tone:          ptr(entity.ToneProfessional),
			Sections:      &sections,
			PageArchetype: ptr(entity.ArchetypeLanding),
			Tokens:        &tokens,
		}, true

	case Portfolio:
		sections := DefaultSections()
		sections.Logos = false
		sections.Pricing = false
		sections.Testimonials = true
		tokens := BaseTokens()
		tokens.Colors.Primary = "#f97316"
		tokens.Colors.Accent = "#22d3ee"
		return entity.SchemaPatch{
			Goal:          ptr(entity.GoalShowWork),
			Tone:          ptr(entity.ToneFriendly),
			Sections:      &sections,
			PageArchetype: ptr(entity.ArchetypePortfolio),
			Tokens:        &tokens,
		}, true

	case Dashboard:
		sections := DefaultSections()
		sections.Logos = false
		sections.Testimonials = false
		sections.Pricing = false
		sections.FAQ = false
		tokens := BaseTokens()
		tokens.Density = entity.DensityCompact
		tokens.BackgroundStyle = entity.BackgroundGlass
		return entity.SchemaPatch{
			Goal:          ptr(entity.GoalInform),
			Tone:          ptr(entity.ToneMinimal),
			Sections:      &sections,
			PageArchetype: ptr(entity.ArchetypeDashboard),
			NavStyle:      ptr(entity.NavSidebar),
			Tokens:        &tokens,
		}, true

	case Landing:
		sections := DefaultSections()
		sections.Pricing = true
		return entity.SchemaPatch{
			Goal:          ptr(entity.GoalGetSignups),
			Sections:      &sections,
			PageArchetype: ptr(entity.ArchetypeLanding),
		}, true

	default:
		return entity.SchemaPatch{}, false
	}
}

// Apply starts from Default, lays the named preset over it and clears the
// derived fields.
func Apply(name string) (entity.SiteSchema, error) {
	patch, ok := Lookup(name)
	if !ok {
		return entity.SiteSchema{}, fmt.Errorf("%w: %q", entity.ErrPresetNotFound, name)
	}
	return patch.ApplyTo(Default()).WithoutDerived(), nil
}
