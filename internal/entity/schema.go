package entity

// LayoutSections toggles the content blocks. The key set is closed and the
// field order is the page order.
type LayoutSections struct {
	Hero         bool `json:"hero"`
	Logos        bool `json:"logos"`
	Features     bool `json:"features"`
	Testimonials bool `json:"testimonials"`
	Pricing      bool `json:"pricing"`
	FAQ          bool `json:"faq"`
	CTA          bool `json:"cta"`
}

type SectionKey string

const (
	SectionHero         SectionKey = "hero"
	SectionLogos        SectionKey = "logos"
	SectionFeatures     SectionKey = "features"
	SectionTestimonials SectionKey = "testimonials"
	SectionPricing      SectionKey = "pricing"
	SectionFAQ          SectionKey = "faq"
	SectionCTA          SectionKey = "cta"
)

// SectionKeys returns the section keys in declaration order.
func SectionKeys() []SectionKey {
	return []SectionKey{
		SectionHero,
		SectionLogos,
		SectionFeatures,
		SectionTestimonials,
		SectionPricing,
		SectionFAQ,
		SectionCTA,
	}
}

// Enabled reports the flag for key.
func (s LayoutSections) Enabled(key SectionKey) bool {
	switch key {
	case SectionHero:
		return s.Hero
	case SectionLogos:
		return s.Logos
	case SectionFeatures:
		return s.Features
	case SectionTestimonials:
		return s.Testimonials
	case SectionPricing:
		return s.Pricing
	case SectionFAQ:
		return s.FAQ
	case SectionCTA:
		return s.CTA
	default:
		return false
	}
}

// ConstraintFlags are the named guardrails. Field order is significant for
// the prompt's "must not" line.
type ConstraintFlags struct {
	NoHeavyAnimations bool `json:"noHeavyAnimations"`
	NoNeon            bool `json:"noNeon"`
	NoDarkMode        bool `json:"noDarkMode"`
	NoGradients       bool `json:"noGradients"`
	NoStockPhotos     bool `json:"noStockPhotos"`
}

// ConstraintFlag pairs a guardrail's wire name with its state.
type ConstraintFlag struct {
	Name    string
	Enabled bool
}

// Flags lists the guardrails in declaration order.
func (c ConstraintFlags) Flags() []ConstraintFlag {
	return []ConstraintFlag{
		{Name: "noHeavyAnimations", Enabled: c.NoHeavyAnimations},
		{Name: "noNeon", Enabled: c.NoNeon},
		{Name: "noDarkMode", Enabled: c.NoDarkMode},
		{Name: "noGradients", Enabled: c.NoGradients},
		{Name: "noStockPhotos", Enabled: c.NoStockPhotos},
	}
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	CTA      string   `json:"cta"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Content struct {
	HeroHeadline    string        `json:"heroHeadline"`
	HeroSubheadline string        `json:"heroSubheadline"`
	PrimaryCTA      string        `json:"primaryCta"`
	SecondaryCTA    string        `json:"secondaryCta,omitempty"`
	Features        []Feature     `json:"features"`
	Logos           []string      `json:"logos"`
	Testimonials    []Testimonial `json:"testimonials"`
	Pricing         []PricingTier `json:"pricing"`
	FAQs            []FAQItem     `json:"faqs"`
}

func (c Content) Clone() Content {
	out := c
	if c.Features != nil {
		out.Features = append(make([]Feature, 0, len(c.Features)), c.Features...)
	}
	if c.Logos != nil {
		out.Logos = append(make([]string, 0, len(c.Logos)), c.Logos...)
	}
	if c.Testimonials != nil {
		out.Testimonials = append(make([]Testimonial, 0, len(c.Testimonials)), c.Testimonials...)
	}
	if c.Pricing != nil {
		out.Pricing = make([]PricingTier, len(c.Pricing))
		for i, tier := range c.Pricing {
			out.Pricing[i] = tier
			if tier.Features != nil {
				out.Pricing[i].Features = append(make([]string, 0, len(tier.Features)), tier.Features...)
			}
		}
	}
	if c.FAQs != nil {
		out.FAQs = append(make([]FAQItem, 0, len(c.FAQs)), c.FAQs...)
	}
	return out
}

// Suggestion is a single heuristic finding.
type Suggestion struct {
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason"`
	Fix      string   `json:"fix"`
}

// SiteSchema is the whole description of one project in progress.
// Suggestions and GeneratedPrompt are derived caches, always recomputable
// from the remaining fields.
type SiteSchema struct {
	Name          string          `json:"name"`
	Brief         string          `json:"brief"`
	Goal          Goal            `json:"goal"`
	Audience      string          `json:"audience"`
	Vibe          int             `json:"vibe"`
	Tone          Tone            `json:"tone"`
	PageArchetype PageArchetype   `json:"pageArchetype"`
	NavStyle      NavStyle        `json:"navStyle"`
	Sections      LayoutSections  `json:"sections"`
	Tokens        TokenSet        `json:"tokens"`
	Constraints   ConstraintFlags `json:"constraints"`
	Content       Content         `json:"content"`

	Suggestions     []Suggestion `json:"suggestions"`
	GeneratedPrompt string       `json:"generatedPrompt"`
}

// Clone returns a deep copy that shares no slices with s.
func (s SiteSchema) Clone() SiteSchema {
	out := s
	out.Tokens = s.Tokens.Clone()
	out.Content = s.Content.Clone()
	if s.Suggestions != nil {
		out.Suggestions = append(make([]Suggestion, 0, len(s.Suggestions)), s.Suggestions...)
	}
	return out
}

// WithoutDerived returns a copy with the cached prompt and suggestions cleared.
func (s SiteSchema) WithoutDerived() SiteSchema {
	out := s.Clone()
	out.Suggestions = []Suggestion{}
	out.GeneratedPrompt = ""
	return out
}

// WithDerived returns a copy carrying freshly computed derived fields.
func (s SiteSchema) WithDerived(prompt string, suggestions []Suggestion) SiteSchema {
	out := s.Clone()
	out.GeneratedPrompt = prompt
	out.Suggestions = append([]Suggestion{}, suggestions...)
	return out
}
