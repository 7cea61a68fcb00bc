// Package suggestion lints a site schema with a fixed set of design
// heuristics.
package suggestion

import (
	"strings"
	"unicode/utf16"

	"github.com/futig/design-wizard/internal/entity"
)

const (
	minPrimaryCTALength = 6
	minPricingTiers     = 2
	maxHeadlineLength   = 90
)

// Rule inspects a schema and reports at most one finding.
type Rule func(s entity.SiteSchema) (entity.Suggestion, bool)

// Rules is the evaluation order. Output order mirrors it.
var Rules = []Rule{
	MissingTrust,
	ShortCTA,
	PricingWithoutComparison,
	LowContrast,
	SignupWithoutCTA,
	LongHeadline,
}

// Evaluate runs every rule against s. The result is never nil.
func Evaluate(s entity.SiteSchema) []entity.Suggestion {
	findings := make([]entity.Suggestion, 0, len(Rules))
	for _, rule := range Rules {
		if finding, ok := rule(s); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}

// Count tallies findings by severity.
func Count(findings []entity.Suggestion) map[entity.Severity]int {
	counts := map[entity.Severity]int{
		entity.SeverityLow:    0,
		entity.SeverityMedium: 0,
		entity.SeverityHigh:   0,
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

func MissingTrust(s entity.SiteSchema) (entity.Suggestion, bool) {
	if s.Sections.Testimonials && len(s.Content.Testimonials) > 0 {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityHigh,
		Reason:   "Missing trust elements",
		Fix:      "Add at least one testimonial or a client logo strip to support credibility.",
	}, true
}

func ShortCTA(s entity.SiteSchema) (entity.Suggestion, bool) {
	if textLength(s.Content.PrimaryCTA) >= minPrimaryCTALength {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityMedium,
		Reason:   "CTA is too short",
		Fix:      "Use a clearer CTA such as “Start free trial” or “Book a demo”.",
	}, true
}

func PricingWithoutComparison(s entity.SiteSchema) (entity.Suggestion, bool) {
	if !s.Sections.Pricing || len(s.Content.Pricing) >= minPricingTiers {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityMedium,
		Reason:   "Pricing enabled but lacks comparison",
		Fix:      "Add at least two tiers to show differentiation.",
	}, true
}

// LowContrast only catches identical colours; it does not compute a ratio.
func LowContrast(s entity.SiteSchema) (entity.Suggestion, bool) {
	colors := s.Tokens.Colors
	if strings.ToLower(colors.Primary) != strings.ToLower(colors.Background) {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityHigh,
		Reason:   "Primary color too close to background",
		Fix:      "Pick a primary color with stronger contrast than the background to retain hierarchy.",
	}, true
}

func SignupWithoutCTA(s entity.SiteSchema) (entity.Suggestion, bool) {
	if s.Goal != entity.GoalGetSignups || s.Sections.CTA {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityHigh,
		Reason:   "Signup goal without final CTA",
		Fix:      "Enable the closing CTA section to keep conversion focus.",
	}, true
}

func LongHeadline(s entity.SiteSchema) (entity.Suggestion, bool) {
	if textLength(s.Content.HeroHeadline) <= maxHeadlineLength {
		return entity.Suggestion{}, false
	}
	return entity.Suggestion{
		Severity: entity.SeverityLow,
		Reason:   "Headline is long",
		Fix:      "Shorten the hero headline to under 12 words for faster scanning.",
	}, true
}

// textLength counts UTF-16 code units, so a character outside the BMP
// counts as two.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
