// Package prompt turns a site schema into the long-form brief handed to a
// generative site builder. Output is a pure function of the schema.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/futig/design-wizard/internal/entity"
)

// Assemble renders the nine-section document for s. Identical schemas always
// produce byte-identical output.
func Assemble(s entity.SiteSchema) string {
	plan := strings.Join(SectionPlan(s.Sections), SectionPlanSeparator)
	t := s.Tokens

	lines := []string{
		RoleLine,
		"",
		HeadingBrief,
		"- Concept: " + s.Brief,
		"- Goal: " + string(s.Goal),
		"- Audience: " + s.Audience,
		"- Vibe scale (0 calm → 100 bold): " + strconv.Itoa(s.Vibe),
		"- Tone: " + string(s.Tone),
		"",
		HeadingConstraints,
		constraintAccessibility,
		constraintResponsive,
		constraintPerformance,
		"- Must not: " + MustNot(s.Constraints) + ".",
		"",
		HeadingDesignSystem,
		"- Colors: " + compactJSON(t.Colors),
		fmt.Sprintf("- Typography: font %s; heading style %s; scale %s",
			t.Typography.Font, t.Typography.HeadingStyle, compactJSON(t.Typography.Scale)),
		"- Spacing scale: " + joinNumbers(t.Spacing),
		"- Radius set: " + joinNumbers(t.Radii[:]),
		"- Shadows: " + compactJSON(t.Shadows),
		designSystemExamples,
		"",
		HeadingLayout,
		"- Archetype: " + string(s.PageArchetype),
		"- Navigation: " + string(s.NavStyle),
		"- Sections: " + plan,
		layoutGrid,
		layoutBreakpoints,
		layoutComponents,
		"",
		HeadingCopy,
		fmt.Sprintf("- Tone: %s; sentences concise; avoid fluff; emphasize %s.", s.Tone, s.Goal),
		fmt.Sprintf("- CTA: primary uses “%s”; secondary “%s”.", s.Content.PrimaryCTA, secondaryCTA(s.Content)),
		copyLengths,
		"",
		HeadingPagePlan,
		"- Order: " + plan,
		pageCountLine(s.PageArchetype),
		"",
		HeadingImplementation,
	}
	lines = append(lines, implementationLines...)
	lines = append(lines, "", HeadingQA)
	lines = append(lines, qaLines...)
	lines = append(lines, "", HeadingDeliverable)
	lines = append(lines, deliverableLines...)

	return strings.Join(lines, "\n")
}

// SectionPlan returns the descriptors of the enabled sections in page order.
func SectionPlan(sections entity.LayoutSections) []string {
	plan := make([]string, 0, len(sectionDescriptors))
	for _, key := range entity.SectionKeys() {
		if sections.Enabled(key) {
			plan = append(plan, sectionDescriptors[key])
		}
	}
	return plan
}

// MustNot lists the enabled guardrails as lowercase phrases joined by ", ",
// or MustNotFallback when none is enabled.
func MustNot(c entity.ConstraintFlags) string {
	var phrases []string
	for _, flag := range c.Flags() {
		if flag.Enabled {
			phrases = append(phrases, SplitCamel(flag.Name))
		}
	}
	if len(phrases) == 0 {
		return MustNotFallback
	}
	return strings.Join(phrases, ", ")
}

// SplitCamel inserts a space before every upper-case letter and lowercases
// the result: "noHeavyAnimations" becomes "no heavy animations".
func SplitCamel(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func secondaryCTA(c entity.Content) string {
	if c.SecondaryCTA == "" {
		return SecondaryCTAPlaceholder
	}
	return c.SecondaryCTA
}

func pageCountLine(a entity.PageArchetype) string {
	if a == entity.ArchetypeMultiPageMarketing {
		return pagePlanMultiPage
	}
	return pagePlanSinglePage
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}

// FormatNumber prints v in its shortest form: 12, not 12.0.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// compactJSON encodes v on one line in field declaration order without
// HTML escaping.
func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
