package suggestion

import (
	"strings"
	"testing"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanSchema trips no rule.
func cleanSchema() entity.SiteSchema {
	return preset.Default()
}

func reasons(findings []entity.Suggestion) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Reason)
	}
	return out
}

func TestEvaluate_CleanSchema(t *testing.T) {
	findings := Evaluate(cleanSchema())
	require.NotNil(t, findings)
	assert.Empty(t, findings)
}

func TestMissingTrust(t *testing.T) {
	s := cleanSchema()
	_, ok := MissingTrust(s)
	assert.False(t, ok)

	disabled := cleanSchema()
	disabled.Sections.Testimonials = false
	findings := Evaluate(disabled)
	require.Len(t, findings, 1)
	assert.Equal(t, entity.SeverityHigh, findings[0].Severity)
	assert.Equal(t, "Missing trust elements", findings[0].Reason)

	empty := cleanSchema()
	empty.Content.Testimonials = nil
	findings = Evaluate(empty)
	require.Len(t, findings, 1)
	assert.Equal(t, entity.SeverityHigh, findings[0].Severity)
	assert.Equal(t, "Missing trust elements", findings[0].Reason)
}

func TestShortCTA(t *testing.T) {
	s := cleanSchema()
	s.Content.PrimaryCTA = "Start"
	f, ok := ShortCTA(s)
	require.True(t, ok)
	assert.Equal(t, entity.SeverityMedium, f.Severity)

	s.Content.PrimaryCTA = "Start!"
	_, ok = ShortCTA(s)
	assert.False(t, ok)

	s.Content.PrimaryCTA = ""
	_, ok = ShortCTA(s)
	assert.True(t, ok)

	// each emoji is two UTF-16 code units
	s.Content.PrimaryCTA = "🚀🚀🚀"
	_, ok = ShortCTA(s)
	assert.False(t, ok)

	s.Content.PrimaryCTA = "café!"
	_, ok = ShortCTA(s)
	assert.True(t, ok)
}

func TestPricingWithoutComparison(t *testing.T) {
	s := cleanSchema()
	s.Sections.Pricing = true
	s.Content.Pricing = s.Content.Pricing[:1]
	f, ok := PricingWithoutComparison(s)
	require.True(t, ok)
	assert.Equal(t, "Pricing enabled but lacks comparison", f.Reason)

	s.Sections.Pricing = false
	_, ok = PricingWithoutComparison(s)
	assert.False(t, ok)

	s = cleanSchema()
	s.Sections.Pricing = true
	_, ok = PricingWithoutComparison(s)
	assert.False(t, ok)
}

func TestLowContrast(t *testing.T) {
	s := cleanSchema()
	s.Tokens.Colors.Primary = "#0B1220"
	s.Tokens.Colors.Background = "#0b1220"
	f, ok := LowContrast(s)
	require.True(t, ok)
	assert.Equal(t, entity.SeverityHigh, f.Severity)
	assert.Equal(t, "Primary color too close to background", f.Reason)

	s.Tokens.Colors.Primary = "#0b1221"
	_, ok = LowContrast(s)
	assert.False(t, ok)
}

func TestSignupWithoutCTA(t *testing.T) {
	s := cleanSchema()
	s.Sections.CTA = false
	f, ok := SignupWithoutCTA(s)
	require.True(t, ok)
	assert.Equal(t, entity.SeverityHigh, f.Severity)

	s.Goal = entity.GoalInform
	_, ok = SignupWithoutCTA(s)
	assert.False(t, ok)
}

func TestLongHeadline(t *testing.T) {
	s := cleanSchema()
	s.Content.HeroHeadline = strings.Repeat("a", 90)
	_, ok := LongHeadline(s)
	assert.False(t, ok)

	s.Content.HeroHeadline = strings.Repeat("a", 91)
	f, ok := LongHeadline(s)
	require.True(t, ok)
	assert.Equal(t, entity.SeverityLow, f.Severity)

	s.Content.HeroHeadline = strings.Repeat("😀", 46)
	_, ok = LongHeadline(s)
	assert.True(t, ok)
}

func TestEvaluate_OrderMirrorsRules(t *testing.T) {
	s := cleanSchema()
	s.Sections.Testimonials = false
	s.Content.PrimaryCTA = "Go"
	s.Sections.Pricing = true
	s.Content.Pricing = nil
	s.Tokens.Colors.Primary = strings.ToUpper(s.Tokens.Colors.Background)
	s.Sections.CTA = false
	s.Content.HeroHeadline = strings.Repeat("long ", 20)

	findings := Evaluate(s)
	assert.Equal(t, []string{
		"Missing trust elements",
		"CTA is too short",
		"Pricing enabled but lacks comparison",
		"Primary color too close to background",
		"Signup goal without final CTA",
		"Headline is long",
	}, reasons(findings))

	assert.Equal(t, findings, Evaluate(s))
	assert.Equal(t, map[entity.Severity]int{
		entity.SeverityLow:    1,
		entity.SeverityMedium: 2,
		entity.SeverityHigh:   3,
	}, Count(findings))
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	s := cleanSchema()
	s.Sections.CTA = false
	before := s.Clone()

	_ = Evaluate(s)
	assert.Equal(t, before, s)
}
