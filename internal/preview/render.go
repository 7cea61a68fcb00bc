// Package preview maps a site schema onto a render tree. It decides what is
// shown and with which token values; drawing is left to the presentation
// layer.
package preview

import (
	"fmt"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/prompt"
)

// MaxFeatureCards caps the feature grid.
const MaxFeatureCards = 4

const (
	defaultSectionGap = 16
	glassPanel        = "rgba(255,255,255,0.04)"
)

var fontStacks = map[entity.Font]string{
	entity.FontInter:           "'Inter', system-ui, sans-serif",
	entity.FontDMSans:          "'DM Sans', 'Inter', system-ui, sans-serif",
	entity.FontPlusJakartaSans: "'Plus Jakarta Sans', 'Inter', system-ui, sans-serif",
	entity.FontSystem:          "system-ui, -apple-system, 'Segoe UI', sans-serif",
}

var navLinks = []string{"Features", "Pricing", "FAQ"}

// FontStack returns the CSS fallback chain for f.
func FontStack(f entity.Font) string {
	if stack, ok := fontStacks[f]; ok {
		return stack
	}
	return fontStacks[entity.FontSystem]
}

// ResolveBackground picks the page background for the token set.
func ResolveBackground(t entity.TokenSet) Background {
	switch t.BackgroundStyle {
	case entity.BackgroundGradient:
		return Background{
			Kind:  BackgroundGradient,
			Value: fmt.Sprintf("linear-gradient(145deg, %s, %s)", t.Colors.Background, t.Colors.Surface),
		}
	case entity.BackgroundGlass:
		return Background{Kind: BackgroundSolid, Value: t.Colors.Background, Translucent: true}
	default:
		return Background{Kind: BackgroundSolid, Value: t.Colors.Background}
	}
}

// Render builds the page description for s. It never modifies s.
func Render(s entity.SiteSchema) Page {
	t := s.Tokens
	page := Page{
		Background:   ResolveBackground(t),
		TextColor:    t.Colors.Text,
		BoxShadow:    t.Shadows.Medium,
		FontFamily:   FontStack(t.Typography.Font),
		CornerRadius: t.CornerRadius(),
		SectionGap:   sectionGap(t),
		Sections:     []Node{},
		Footer:       footer(),
	}

	if s.NavStyle != entity.NavNone {
		nav := navigation(s)
		page.Nav = &nav
	}

	c := s.Content
	if s.Sections.Hero {
		page.Sections = append(page.Sections, hero(s))
	}
	if s.Sections.Logos && len(c.Logos) > 0 {
		page.Sections = append(page.Sections, logos(c.Logos))
	}
	if s.Sections.Features {
		page.Sections = append(page.Sections, features(t, c.Features))
	}
	if s.Sections.Testimonials && len(c.Testimonials) > 0 {
		page.Sections = append(page.Sections, testimonials(c.Testimonials))
	}
	if s.Sections.Pricing && len(c.Pricing) > 0 {
		page.Sections = append(page.Sections, pricing(t, c.Pricing))
	}
	if s.Sections.FAQ && len(c.FAQs) > 0 {
		page.Sections = append(page.Sections, faq(c.FAQs))
	}
	if s.Sections.CTA {
		page.Sections = append(page.Sections, cta(s))
	}

	return page
}

func sectionGap(t entity.TokenSet) float64 {
	if len(t.Spacing) > 4 {
		return t.Spacing[4]
	}
	return defaultSectionGap
}

func primaryButton(t entity.TokenSet, label, shadow string) Node {
	return Node{
		Kind: KindButton,
		Text: label,
		Style: Style{
			Background: t.Colors.Primary,
			Color:      t.Colors.Background,
			BoxShadow:  shadow,
			Radius:     t.CornerRadius(),
		},
		Attrs: map[string]string{"variant": "primary"},
	}
}

func header(title, subtitle string) []Node {
	return []Node{
		{Kind: KindHeading, Text: title},
		{Kind: KindText, Text: subtitle, Attrs: map[string]string{"tone": "muted"}},
	}
}

func navigation(s entity.SiteSchema) Node {
	t := s.Tokens
	nav := Node{
		Kind:  KindNav,
		Attrs: map[string]string{"style": string(s.NavStyle)},
		Children: []Node{{
			Kind:  KindBrand,
			Text:  s.Name,
			Style: Style{Background: t.Colors.Accent, Color: t.Colors.Background},
			Attrs: map[string]string{"initial": initial(s.Name)},
		}},
	}
	if s.NavStyle == entity.NavTop {
		for _, link := range navLinks {
			nav.Children = append(nav.Children, Node{Kind: KindLink, Text: link})
		}
	}
	nav.Children = append(nav.Children, primaryButton(t, s.Content.PrimaryCTA, t.Shadows.Subtle))
	return nav
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

func hero(s entity.SiteSchema) Node {
	t := s.Tokens
	c := s.Content
	node := Node{
		Kind: KindHero,
		Children: []Node{
			{Kind: KindText, Text: "Project brief", Attrs: map[string]string{"tone": "eyebrow"}},
			{Kind: KindHeading, Text: c.HeroHeadline, Style: Style{Color: t.Colors.Text}},
			{Kind: KindText, Text: c.HeroSubheadline, Attrs: map[string]string{"tone": "muted"}},
			primaryButton(t, c.PrimaryCTA, t.Shadows.Medium),
		},
	}
	if c.SecondaryCTA != "" {
		node.Children = append(node.Children, Node{
			Kind:  KindButton,
			Text:  c.SecondaryCTA,
			Style: Style{BorderColor: t.Colors.Border, Color: t.Colors.Text, Radius: t.CornerRadius()},
			Attrs: map[string]string{"variant": "secondary"},
		})
	}
	node.Children = append(node.Children, tokenPanel(t))
	return node
}

// TokenDiagnostics is the verbatim token summary shown beside the hero.
func TokenDiagnostics(t entity.TokenSet) string {
	radii := make([]string, len(t.Radii))
	for i, r := range t.Radii {
		radii[i] = prompt.FormatNumber(r)
	}
	return fmt.Sprintf("Radius: %s • Shadows: %s • Density: %s",
		strings.Join(radii, ", "), strings.Join(entity.ShadowKeys(), ", "), t.Density)
}

func tokenPanel(t entity.TokenSet) Node {
	background := t.Colors.Surface
	if t.BackgroundStyle == entity.BackgroundGlass {
		background = glassPanel
	}
	swatch := func(label, color string) Node {
		return Node{Kind: KindSwatch, Text: label, Style: Style{Background: color}}
	}
	return Node{
		Kind:  KindTokenPanel,
		Style: Style{Background: background},
		Children: []Node{
			{Kind: KindHeading, Text: "Design system tokens"},
			swatch("Primary", t.Colors.Primary),
			swatch("Accent", t.Colors.Accent),
			swatch("Surface", t.Colors.Surface),
			swatch("Text", t.Colors.Text),
			{Kind: KindText, Text: TokenDiagnostics(t), Attrs: map[string]string{"tone": "diagnostic"}},
		},
	}
}

func logos(names []string) Node {
	node := Node{Kind: KindLogos, Children: []Node{{Kind: KindHeading, Text: "Trusted by teams"}}}
	for _, name := range names {
		node.Children = append(node.Children, Node{Kind: KindLogo, Text: name})
	}
	return node
}

func features(t entity.TokenSet, list []entity.Feature) Node {
	node := Node{Kind: KindFeatures, Children: header("Features", "Constraints translated into usable UI patterns.")}
	if len(list) > MaxFeatureCards {
		list = list[:MaxFeatureCards]
	}
	for i, f := range list {
		node.Children = append(node.Children, Node{
			Kind:  KindFeatureCard,
			Style: Style{Background: t.Colors.Surface, BoxShadow: t.Shadows.Subtle},
			Attrs: map[string]string{"index": fmt.Sprint(i + 1)},
			Children: []Node{
				{Kind: KindHeading, Text: f.Title, Style: Style{Color: t.Colors.Text}},
				{Kind: KindText, Text: f.Description, Attrs: map[string]string{"tone": "muted"}},
			},
		})
	}
	return node
}

func testimonials(list []entity.Testimonial) Node {
	node := Node{Kind: KindTestimonials, Children: header("Testimonials", "Proof that constraints improve results.")}
	for _, tst := range list {
		node.Children = append(node.Children, Node{
			Kind: KindTestimonial,
			Children: []Node{
				{Kind: KindText, Text: "“" + tst.Quote + "”"},
				{Kind: KindText, Text: tst.Name + " — " + tst.Role, Attrs: map[string]string{"tone": "muted"}},
			},
		})
	}
	return node
}

func pricing(t entity.TokenSet, tiers []entity.PricingTier) Node {
	node := Node{Kind: KindPricing, Children: header("Pricing", "Pick a plan and keep constraints reusable.")}
	for _, tier := range tiers {
		card := Node{
			Kind:  KindPricingTier,
			Style: Style{Background: t.Colors.Surface},
			Children: []Node{
				{Kind: KindHeading, Text: tier.Name},
				{Kind: KindText, Text: tier.Price, Style: Style{Color: t.Colors.Primary}, Attrs: map[string]string{"tone": "price"}},
			},
		}
		for _, f := range tier.Features {
			card.Children = append(card.Children, Node{Kind: KindText, Text: "• " + f, Attrs: map[string]string{"tone": "muted"}})
		}
		card.Children = append(card.Children, primaryButton(t, tier.CTA, ""))
		node.Children = append(node.Children, card)
	}
	return node
}

func faq(items []entity.FAQItem) Node {
	node := Node{Kind: KindFAQ, Children: header("FAQ", "Guardrails and delivery expectations.")}
	for _, item := range items {
		node.Children = append(node.Children, Node{
			Kind: KindFAQItem,
			Text: item.Question,
			Children: []Node{
				{Kind: KindText, Text: item.Answer, Attrs: map[string]string{"tone": "muted"}},
			},
		})
	}
	return node
}

func cta(s entity.SiteSchema) Node {
	t := s.Tokens
	return Node{
		Kind:  KindCTA,
		Style: Style{Background: t.Colors.Primary, Color: t.Colors.Background, BoxShadow: t.Shadows.Medium},
		Children: []Node{
			{Kind: KindHeading, Text: "Ready to lock your design system?"},
			{Kind: KindText, Text: "Generate the prompt and reuse it across AI website builders."},
			{
				Kind:  KindButton,
				Text:  s.Content.PrimaryCTA,
				Style: Style{Background: "#ffffff", Color: "#000000", Radius: t.CornerRadius()},
				Attrs: map[string]string{"variant": "inverse"},
			},
		},
	}
}

func footer() Node {
	return Node{
		Kind: KindFooter,
		Children: []Node{
			{Kind: KindText, Text: "Design Constraint Wizard • deterministic preview"},
			{Kind: KindText, Text: "Accessibility: AA"},
			{Kind: KindText, Text: "Performance: 90+ target"},
		},
	}
}
