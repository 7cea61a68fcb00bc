package preview

type NodeKind string

const (
	KindNav          NodeKind = "nav"
	KindBrand        NodeKind = "brand"
	KindLink         NodeKind = "link"
	KindButton       NodeKind = "button"
	KindHero         NodeKind = "hero"
	KindHeading      NodeKind = "heading"
	KindText         NodeKind = "text"
	KindTokenPanel   NodeKind = "token-panel"
	KindSwatch       NodeKind = "swatch"
	KindLogos        NodeKind = "logos"
	KindLogo         NodeKind = "logo"
	KindFeatures     NodeKind = "features"
	KindFeatureCard  NodeKind = "feature-card"
	KindTestimonials NodeKind = "testimonials"
	KindTestimonial  NodeKind = "testimonial"
	KindPricing      NodeKind = "pricing"
	KindPricingTier  NodeKind = "pricing-tier"
	KindFAQ          NodeKind = "faq"
	KindFAQItem      NodeKind = "faq-item"
	KindCTA          NodeKind = "cta"
	KindFooter       NodeKind = "footer"
)

// Style holds the resolved visual decisions for one node. Empty fields
// inherit from the parent.
type Style struct {
	Background  string  `json:"background,omitempty" yaml:"background,omitempty"`
	Color       string  `json:"color,omitempty" yaml:"color,omitempty"`
	BorderColor string  `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BoxShadow   string  `json:"boxShadow,omitempty" yaml:"boxShadow,omitempty"`
	Radius      float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// Node is one element of the render tree.
type Node struct {
	Kind     NodeKind          `json:"kind" yaml:"kind"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Style    Style             `json:"style,omitempty" yaml:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty" yaml:"children,omitempty"`
}

type BackgroundKind string

const (
	BackgroundSolid    BackgroundKind = "solid"
	BackgroundGradient BackgroundKind = "gradient"
)

type Background struct {
	Kind  BackgroundKind `json:"kind" yaml:"kind"`
	Value string         `json:"value" yaml:"value"`
	// Translucent marks the glass treatment; the presentation layer decides
	// how to draw it.
	Translucent bool `json:"translucent,omitempty" yaml:"translucent,omitempty"`
}

// Page is the full render description of one schema.
type Page struct {
	Background   Background `json:"background" yaml:"background"`
	TextColor    string     `json:"textColor" yaml:"textColor"`
	BoxShadow    string     `json:"boxShadow" yaml:"boxShadow"`
	FontFamily   string     `json:"fontFamily" yaml:"fontFamily"`
	CornerRadius float64    `json:"cornerRadius" yaml:"cornerRadius"`
	SectionGap   float64    `json:"sectionGap" yaml:"sectionGap"`
	Nav          *Node      `json:"nav,omitempty" yaml:"nav,omitempty"`
	Sections     []Node     `json:"sections" yaml:"sections"`
	Footer       Node       `json:"footer" yaml:"footer"`
}

// Kinds lists the top-level blocks from top to bottom, nav included.
func (p Page) Kinds() []NodeKind {
	kinds := make([]NodeKind, 0, len(p.Sections)+2)
	if p.Nav != nil {
		kinds = append(kinds, p.Nav.Kind)
	}
	for _, s := range p.Sections {
		kinds = append(kinds, s.Kind)
	}
	return append(kinds, p.Footer.Kind)
}

// Find returns the first top-level section of kind k.
func (p Page) Find(k NodeKind) (Node, bool) {
	for _, s := range p.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Node{}, false
}

// ChildrenOf returns the direct children of n with kind k.
func ChildrenOf(n Node, k NodeKind) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}
