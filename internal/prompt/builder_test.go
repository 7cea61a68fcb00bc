package prompt

import (
	"os"
	"strings"
	"testing"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_DefaultSchemaMatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/default_prompt.golden")
	require.NoError(t, err)

	got := Assemble(preset.Default())
	assert.Equal(t, string(want), got)
}

func TestAssemble_Deterministic(t *testing.T) {
	s := preset.Default()
	s.Tokens.Colors.Primary = "<&>"
	s.Content.SecondaryCTA = ""

	first := Assemble(s)
	second := Assemble(s)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `"primary":"<&>"`)
}

func TestAssemble_SectionHeadingsInOrder(t *testing.T) {
	doc := Assemble(preset.Default())

	headings := []string{
		HeadingBrief, HeadingConstraints, HeadingDesignSystem, HeadingLayout, HeadingCopy,
		HeadingPagePlan, HeadingImplementation, HeadingQA, HeadingDeliverable,
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(doc, "\n\n"+h+"\n")
		require.NotEqual(t, -1, idx, "missing heading %q", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
	assert.True(t, strings.HasPrefix(doc, RoleLine+"\n\n"))
	assert.False(t, strings.HasSuffix(doc, "\n"))
}

func TestMustNot(t *testing.T) {
	tests := []struct {
		name        string
		constraints entity.ConstraintFlags
		want        string
	}{
		{
			name:        "two flags in declaration order",
			constraints: entity.ConstraintFlags{NoHeavyAnimations: true, NoStockPhotos: true},
			want:        "no heavy animations, no stock photos",
		},
		{
			name:        "none enabled",
			constraints: entity.ConstraintFlags{},
			want:        MustNotFallback,
		},
		{
			name: "all enabled",
			constraints: entity.ConstraintFlags{
				NoHeavyAnimations: true, NoNeon: true, NoDarkMode: true, NoGradients: true, NoStockPhotos: true,
			},
			want: "no heavy animations, no neon, no dark mode, no gradients, no stock photos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustNot(tt.constraints))
		})
	}
}

func TestAssemble_MustNotLine(t *testing.T) {
	s := preset.Default()
	s.Constraints = entity.ConstraintFlags{NoHeavyAnimations: true, NoStockPhotos: true}
	assert.Contains(t, Assemble(s), "\n- Must not: no heavy animations, no stock photos.\n")

	s.Constraints = entity.ConstraintFlags{}
	assert.Contains(t, Assemble(s), "\n- Must not: respect default guardrails.\n")
}

func TestSplitCamel(t *testing.T) {
	assert.Equal(t, "no dark mode", SplitCamel("noDarkMode"))
	assert.Equal(t, "plain", SplitCamel("plain"))
}

func TestSectionPlan_ConsistentBetweenLayoutAndPagePlan(t *testing.T) {
	// Walk every combination of the seven flags.
	for mask := 0; mask < 1<<7; mask++ {
		sections := entity.LayoutSections{
			Hero:         mask&1 != 0,
			Logos:        mask&2 != 0,
			Features:     mask&4 != 0,
			Testimonials: mask&8 != 0,
			Pricing:      mask&16 != 0,
			FAQ:          mask&32 != 0,
			CTA:          mask&64 != 0,
		}
		s := preset.Default()
		s.Sections = sections

		doc := Assemble(s)
		layout := lineValue(t, doc, "- Sections: ")
		order := lineValue(t, doc, "- Order: ")
		require.Equal(t, layout, order, "mask %07b", mask)

		var want []string
		for _, key := range entity.SectionKeys() {
			if sections.Enabled(key) {
				want = append(want, sectionDescriptors[key])
			}
		}
		require.Equal(t, strings.Join(want, SectionPlanSeparator), layout, "mask %07b", mask)
	}
}

func TestAssemble_PageCount(t *testing.T) {
	s := preset.Default()
	s.PageArchetype = entity.ArchetypeMultiPageMarketing
	assert.Contains(t, Assemble(s), pagePlanMultiPage)
	assert.NotContains(t, Assemble(s), pagePlanSinglePage)

	s.PageArchetype = entity.ArchetypeDocs
	assert.Contains(t, Assemble(s), pagePlanSinglePage)
}

func TestAssemble_SecondaryCTAPlaceholder(t *testing.T) {
	s := preset.Default()
	s.Content.SecondaryCTA = ""
	assert.Contains(t, Assemble(s), "secondary “Optional”.")
}

func TestAssemble_FractionalTokens(t *testing.T) {
	s := preset.Default()
	s.Tokens.Spacing = []float64{4, 8.5}
	s.Tokens.Radii = entity.Radii{2, 4.25, 6, 8}

	doc := Assemble(s)
	assert.Contains(t, doc, "- Spacing scale: 4, 8.5\n")
	assert.Contains(t, doc, "- Radius set: 2, 4.25, 6, 8\n")
}

func lineValue(t *testing.T, doc, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	t.Fatalf("no line with prefix %q", prefix)
	return ""
}
