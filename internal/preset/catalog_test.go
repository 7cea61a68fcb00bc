package preset_test

import (
	"testing"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_EveryPresetIsValid(t *testing.T) {
	for _, name := range preset.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := preset.Apply(name)
			require.NoError(t, err)

			assert.NoError(t, validator.ValidateSchema(s))
			assert.Empty(t, s.GeneratedPrompt)
			assert.NotNil(t, s.Suggestions)
			assert.Empty(t, s.Suggestions)

			// Content is never part of an overlay.
			assert.Equal(t, preset.Default().Content, s.Content)
		})
	}
}

func TestApply_Overlays(t *testing.T) {
	dash, err := preset.Apply(preset.Dashboard)
	require.NoError(t, err)
	assert.Equal(t, entity.NavSidebar, dash.NavStyle)
	assert.Equal(t, entity.DensityCompact, dash.Tokens.Density)
	assert.Equal(t, entity.BackgroundGlass, dash.Tokens.BackgroundStyle)
	assert.False(t, dash.Sections.Pricing)
	assert.False(t, dash.Sections.Logos)

	landing, err := preset.Apply(preset.Landing)
	require.NoError(t, err)
	assert.True(t, landing.Sections.Pricing)
	assert.Equal(t, preset.Default().Tokens, landing.Tokens)

	saas, err := preset.Apply(preset.SaaS)
	require.NoError(t, err)
	assert.Equal(t, "#6366f1", saas.Tokens.Colors.Primary)
}

func TestApply_Unknown(t *testing.T) {
	_, err := preset.Apply("Blog")
	assert.ErrorIs(t, err, entity.ErrPresetNotFound)

	_, ok := preset.Lookup("saas")
	assert.False(t, ok, "names are case sensitive")
}

func TestDefault_Independent(t *testing.T) {
	a := preset.Default()
	a.Tokens.Spacing[0] = 99
	a.Content.FAQs[0].Question = "changed"

	b := preset.Default()
	assert.Equal(t, float64(4), b.Tokens.Spacing[0])
	assert.NotEqual(t, "changed", b.Content.FAQs[0].Question)
}

func TestAllOptions(t *testing.T) {
	opts := preset.AllOptions()

	assert.Equal(t, preset.Names(), opts.Presets)
	for _, g := range opts.Goals {
		assert.True(t, g.IsValid(), g)
	}
	for _, a := range opts.Archetypes {
		assert.True(t, a.IsValid(), a)
	}
	for _, n := range opts.NavStyles {
		assert.True(t, n.Value.IsValid(), n.Value)
	}
	assert.Len(t, opts.Steps, 6)
}
