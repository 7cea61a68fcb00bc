// Package preset owns the default schema and the named quick-start overlays.
package preset

import "github.com/futig/design-wizard/internal/entity"

// DefaultSections is the section layout of a fresh project.
func DefaultSections() entity.LayoutSections {
	return entity.LayoutSections{
		Hero:         true,
		Logos:        true,
		Features:     true,
		Testimonials: true,
		Pricing:      false,
		FAQ:          true,
		CTA:          true,
	}
}

// BaseTokens is the default design system.
func BaseTokens() entity.TokenSet {
	return entity.TokenSet{
		Colors: entity.Colors{
			Primary:    "#7c3aed",
			Accent:     "#22d3ee",
			Background: "#0b1220",
			Surface:    "#0f172a",
			Text:       "#e2e8f0",
			Muted:      "#94a3b8",
			Border:     "#1f2937",
		},
		Typography: entity.Typography{
			Scale:        entity.TypeScale{XS: 12, SM: 14, Base: 16, MD: 18, LG: 22, XL: 28, XXL: 34},
			Font:         entity.FontInter,
			HeadingStyle: entity.HeadingRounded,
		},
		Spacing: []float64{4, 8, 12, 16, 24, 32},
		Radii:   entity.Radii{8, 12, 16, 24},
		Shadows: entity.Shadows{
			Subtle: "0 10px 30px rgba(0,0,0,0.18)",
			Medium: "0 20px 55px rgba(0,0,0,0.28)",
			Strong: "0 28px 70px rgba(0,0,0,0.38)",
		},
		Density:         entity.DensityNormal,
		ColorMode:       entity.ColorModeDark,
		BackgroundStyle: entity.BackgroundGradient,
	}
}

// Default builds a fresh schema with full default content. Every call
// returns an independent value.
func Default() entity.SiteSchema {
	return entity.SiteSchema{
		Name:          "Design Constraint Wizard",
		Brief:         "A focused site that showcases the product and drives signups.",
		Goal:          entity.GoalGetSignups,
		Audience:      "Product teams evaluating AI site generators",
		Vibe:          60,
		Tone:          entity.ToneProfessional,
		PageArchetype: entity.ArchetypeLanding,
		NavStyle:      entity.NavTop,
		Sections:      DefaultSections(),
		Tokens:        BaseTokens(),
		Constraints: entity.ConstraintFlags{
			NoHeavyAnimations: true,
			NoNeon:            false,
			NoDarkMode:        false,
			NoGradients:       false,
			NoStockPhotos:     true,
		},
		Content: entity.Content{
			HeroHeadline:    "Design systems that make AI build better websites.",
			HeroSubheadline: "Answer a handful of intent questions to lock a reusable design system, prompt, and preview.",
			PrimaryCTA:      "Generate system",
			SecondaryCTA:    "Preview site",
			Features: []entity.Feature{
				{Title: "Constraint-first", Description: "Numeric tokens for type, spacing, contrast, layout, and motion."},
				{Title: "Reusable prompt", Description: "One authoritative prompt you can paste into any AI website builder."},
				{Title: "Deterministic preview", Description: "See the site generated locally before calling any model."},
			},
			Logos: []string{"Base44", "PromptForge", "Sierra", "Northwind", "Orbit"},
			Testimonials: []entity.Testimonial{
				{Quote: "We stopped fighting inconsistent AI layouts.", Name: "Avery Liu", Role: "Head of Product"},
			},
			Pricing: []entity.PricingTier{
				{Name: "Starter", Price: "$19", Features: []string{"Single project", "Prompt export", "Local preview"}, CTA: "Start"},
				{Name: "Pro", Price: "$39", Features: []string{"Unlimited projects", "Saved presets", "Team handoff"}, CTA: "Upgrade"},
			},
			FAQs: []entity.FAQItem{
				{Question: "Can I export the prompt?", Answer: "Yes, copy it or download the JSON project at any time."},
				{Question: "Does this call an AI?", Answer: "No. It is deterministic and works offline."},
			},
		},
		Suggestions:     []entity.Suggestion{},
		GeneratedPrompt: "",
	}
}
