package prompt

import "github.com/futig/design-wizard/internal/entity"

// Role line opening every document.
const RoleLine = "You are an expert product designer and frontend engineer."

// Section headings, in document order.
const (
	HeadingBrief          = "A) Project Brief"
	HeadingConstraints    = "B) Non-negotiable constraints"
	HeadingDesignSystem   = "C) Design System"
	HeadingLayout         = "D) Layout & Component Spec"
	HeadingCopy           = "E) Copy & Content Rules"
	HeadingPagePlan       = "F) Page Plan"
	HeadingImplementation = "G) Implementation Requirements"
	HeadingQA             = "H) QA Checklist"
	HeadingDeliverable    = "I) Deliverable Instructions"
)

// SectionPlanSeparator joins the section plan in D and F.
const SectionPlanSeparator = " → "

// MustNotFallback is used when no guardrail is enabled.
const MustNotFallback = "respect default guardrails"

// SecondaryCTAPlaceholder stands in for an absent secondary CTA.
const SecondaryCTAPlaceholder = "Optional"

const (
	constraintAccessibility = "- Accessibility: WCAG AA contrast, keyboard focus, skip links."
	constraintResponsive    = "- Responsiveness: mobile-first with fluid spacing."
	constraintPerformance   = "- Performance: target 90+ Lighthouse; avoid heavy assets."
)

const designSystemExamples = "- Examples: Button uses primary bg, text on surface, radius[1], shadow subtle; " +
	"Card uses surface bg, border, radius[2], shadow medium; Input uses surface bg, border, focus ring accent."

const (
	layoutGrid        = "- Grid: max width 1200px, 12-column with 24px gutters; stack to single column on mobile."
	layoutBreakpoints = "- Breakpoints: sm 640, md 768, lg 1024, xl 1280."
	layoutComponents  = "- Components: CTA buttons, cards, testimonial tile, pricing tiers with bullets, accordion FAQ."
)

const copyLengths = "- Keep headlines under 12 words; body under 26 words."

const (
	pagePlanMultiPage  = "- Add About, Pricing, and Contact pages that reuse the design system."
	pagePlanSinglePage = "- Single page with optional modal for contact."
)

var implementationLines = []string{
	"- Stack: Next.js App Router + TypeScript + TailwindCSS.",
	"- Components: Button, Card, Input, Badge, Tabs, Accordion; all reuse tokens.",
	"- File structure: app/(routes), components/ui for primitives, lib for generators.",
	"- No paid APIs; provide deterministic data placeholders.",
}

var qaLines = []string{
	"- Test responsive breakpoints, keyboard focus, skip-to-content link.",
	"- Verify contrast meets AA with provided palette.",
	"- Ensure empty states and loading states exist for data-driven blocks.",
}

var deliverableLines = []string{
	"- Output full HTML/CSS/TSX code; no pseudo-code.",
	"- Include component tokens in a design-tokens file; no external UI kits.",
}

// sectionDescriptors maps each section flag to its plan entry.
var sectionDescriptors = map[entity.SectionKey]string{
	entity.SectionHero:         "Hero with CTA and social proof",
	entity.SectionLogos:        "Logo strip for trust",
	entity.SectionFeatures:     "Feature grid (3-6 cards)",
	entity.SectionTestimonials: "Testimonial row",
	entity.SectionPricing:      "Pricing table (3 tiers)",
	entity.SectionFAQ:          "FAQ accordion",
	entity.SectionCTA:          "Final CTA banner",
}
