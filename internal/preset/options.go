package preset

import "github.com/futig/design-wizard/internal/entity"

type NavOption struct {
	Label string          `json:"label" yaml:"label"`
	Value entity.NavStyle `json:"value" yaml:"value"`
}

type Step struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Options lists every choice a client may offer for the closed enums.
type Options struct {
	Goals            []entity.Goal            `json:"goals" yaml:"goals"`
	Tones            []entity.Tone            `json:"tones" yaml:"tones"`
	Archetypes       []entity.PageArchetype   `json:"archetypes" yaml:"archetypes"`
	NavStyles        []NavOption              `json:"navStyles" yaml:"navStyles"`
	Fonts            []entity.Font            `json:"fonts" yaml:"fonts"`
	HeadingStyles    []entity.HeadingStyle    `json:"headingStyles" yaml:"headingStyles"`
	Densities        []entity.Density         `json:"densities" yaml:"densities"`
	ColorModes       []entity.ColorMode       `json:"colorModes" yaml:"colorModes"`
	BackgroundStyles []entity.BackgroundStyle `json:"backgroundStyles" yaml:"backgroundStyles"`
	Sections         []entity.SectionKey      `json:"sections" yaml:"sections"`
	Presets          []string                 `json:"presets" yaml:"presets"`
	Steps            []Step                   `json:"steps" yaml:"steps"`
}

func AllOptions() Options {
	return Options{
		Goals: []entity.Goal{
			entity.GoalGetSignups, entity.GoalSellProduct, entity.GoalBookCalls, entity.GoalInform, entity.GoalShowWork,
		},
		Tones: []entity.Tone{
			entity.ToneProfessional, entity.ToneFriendly, entity.TonePlayful, entity.ToneLuxury, entity.ToneMinimal,
		},
		Archetypes: []entity.PageArchetype{
			entity.ArchetypeLanding, entity.ArchetypeMultiPageMarketing, entity.ArchetypePortfolio,
			entity.ArchetypeDashboard, entity.ArchetypeDocs,
		},
		NavStyles: []NavOption{
			{Label: "Top nav", Value: entity.NavTop},
			{Label: "Sidebar", Value: entity.NavSidebar},
			{Label: "None", Value: entity.NavNone},
		},
		Fonts: []entity.Font{
			entity.FontInter, entity.FontDMSans, entity.FontPlusJakartaSans, entity.FontSystem,
		},
		HeadingStyles: []entity.HeadingStyle{
			entity.HeadingRounded, entity.HeadingSharp, entity.HeadingElegant,
		},
		Densities:        []entity.Density{entity.DensitySpacious, entity.DensityNormal, entity.DensityCompact},
		ColorModes:       []entity.ColorMode{entity.ColorModeLight, entity.ColorModeDark, entity.ColorModeAuto},
		BackgroundStyles: []entity.BackgroundStyle{entity.BackgroundFlat, entity.BackgroundGradient, entity.BackgroundGlass},
		Sections:         entity.SectionKeys(),
		Presets:          Names(),
		Steps: []Step{
			{ID: "basics", Label: "Basics"},
			{ID: "layout", Label: "Layout pattern"},
			{ID: "tokens", Label: "Visual system"},
			{ID: "content", Label: "Content inputs"},
			{ID: "constraints", Label: "Constraints"},
			{ID: "brief", Label: "Final brief"},
		},
	}
}
