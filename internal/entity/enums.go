package entity

import "fmt"

type Goal string

const (
	GoalGetSignups  Goal = "get signups"
	GoalSellProduct Goal = "sell product"
	GoalBookCalls   Goal = "book calls"
	GoalInform      Goal = "inform"
	GoalShowWork    Goal = "show work"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalGetSignups, GoalSellProduct, GoalBookCalls, GoalInform, GoalShowWork:
		return true
	default:
		return false
	}
}

type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	TonePlayful      Tone = "Playful"
	ToneLuxury       Tone = "Luxury"
	ToneMinimal      Tone = "Minimal"
)

func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, TonePlayful, ToneLuxury, ToneMinimal:
		return true
	default:
		return false
	}
}

type PageArchetype string

const (
	ArchetypeLanding            PageArchetype = "Landing"
	ArchetypeMultiPageMarketing PageArchetype = "Multi-page marketing"
	ArchetypePortfolio          PageArchetype = "Portfolio"
	ArchetypeDashboard          PageArchetype = "Dashboard"
	ArchetypeDocs               PageArchetype = "Docs"
)

func (a PageArchetype) IsValid() bool {
	switch a {
	case ArchetypeLanding, ArchetypeMultiPageMarketing, ArchetypePortfolio, ArchetypeDashboard, ArchetypeDocs:
		return true
	default:
		return false
	}
}

type NavStyle string

const (
	NavTop     NavStyle = "top"
	NavSidebar NavStyle = "sidebar"
	NavNone    NavStyle = "none"
)

func (n NavStyle) IsValid() bool {
	switch n {
	case NavTop, NavSidebar, NavNone:
		return true
	default:
		return false
	}
}

type Font string

const (
	FontInter           Font = "Inter"
	FontDMSans          Font = "DM Sans"
	FontPlusJakartaSans Font = "Plus Jakarta Sans"
	FontSystem          Font = "System"
)

func (f Font) IsValid() bool {
	switch f {
	case FontInter, FontDMSans, FontPlusJakartaSans, FontSystem:
		return true
	default:
		return false
	}
}

type HeadingStyle string

const (
	HeadingRounded HeadingStyle = "Rounded"
	HeadingSharp   HeadingStyle = "Sharp"
	HeadingElegant HeadingStyle = "Elegant"
)

func (h HeadingStyle) IsValid() bool {
	switch h {
	case HeadingRounded, HeadingSharp, HeadingElegant:
		return true
	default:
		return false
	}
}

type Density string

const (
	DensitySpacious Density = "spacious"
	DensityNormal   Density = "normal"
	DensityCompact  Density = "compact"
)

func (d Density) IsValid() bool {
	switch d {
	case DensitySpacious, DensityNormal, DensityCompact:
		return true
	default:
		return false
	}
}

type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
	ColorModeAuto  ColorMode = "auto"
)

func (c ColorMode) IsValid() bool {
	switch c {
	case ColorModeLight, ColorModeDark, ColorModeAuto:
		return true
	default:
		return false
	}
}

type BackgroundStyle string

const (
	BackgroundFlat     BackgroundStyle = "flat"
	BackgroundGradient BackgroundStyle = "gradient"
	BackgroundGlass    BackgroundStyle = "glass"
)

func (b BackgroundStyle) IsValid() bool {
	switch b {
	case BackgroundFlat, BackgroundGradient, BackgroundGlass:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

func (s *Severity) Validate() error {
	switch *s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("unknown severity: %s", *s)
	}
}
