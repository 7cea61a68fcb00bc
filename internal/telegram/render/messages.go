package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
)

const (
	MsgWelcome = `👋 Hi! I turn a few design decisions into a ready-to-paste prompt for an AI site builder.

Your new project "%s" is ready. Pick a starting preset below or keep the defaults.

Send any text to use it as the project brief, or send a .json schema document to load it.`

	MsgHelp = `Commands:
/start [name] – start a new project
/preset [name] – apply a preset (shows buttons without a name)
/radius <px> – set every corner radius
/generate – build the prompt and review suggestions
/suggest – review suggestions only
/export [json|markdown|pdf|docx] – download the project
/reset – restore the default schema
/project – show the active project

Any other text becomes the project brief. A .json file replaces the whole schema.`

	MsgChoosePreset  = "🎨 Choose a preset. Content stays as it is."
	MsgChooseFormat  = "📥 Choose an export format."
	MsgPresetApplied = "✅ Preset %s applied. Send /generate when you are ready."
	MsgRadiusSet     = "✅ Every corner radius is now %g px."
	MsgBriefSet      = "✅ Brief saved."
	MsgReset         = "♻️ The schema is back to the defaults."
	MsgImported      = "✅ Schema document loaded."
	MsgImportedFixed = "✅ Schema document loaded. It had syntax errors that were repaired, please double-check it."
	MsgNoSuggestions = "👍 No suggestions, the design looks consistent."
	MsgProject       = "📁 %s\nID: %s\nArchetype: %s\nUpdated: %s"
	MsgPromptCaption = "📝 Prompt for %s"

	ErrNoProject       = "ℹ️ There is no active project. Send /start to create one."
	ErrGeneric         = "❌ Something went wrong. Try again or send /start."
	ErrUsageRadius     = "Usage: /radius <px>, for example /radius 12"
	ErrUnknownPreset   = "❌ Unknown preset. Send /preset to pick one from the list."
	ErrUnknownFormat   = "❌ Unknown format. Use json, markdown, pdf or docx."
	ErrInvalidDocument = "❌ The document is not a valid site schema and could not be repaired. The project was not changed."
	ErrInvalidInput    = "❌ That value is not allowed."
	ErrDocumentTooBig  = "❌ The document is too large."
	ErrNotJSON         = "❌ Send the schema as a .json document."
	ErrTimeout         = "⏱ The request took too long. Try again."
	ErrRateLimited     = "⚠️ Too many requests. Please wait a little."
	ErrRateLimitedMore = "🛑 You are sending requests too often. Please wait a minute."
)

// RenderSuggestions lists findings with their fixes in rule order.
func RenderSuggestions(findings []entity.Suggestion, counts map[entity.Severity]int) string {
	if len(findings) == 0 {
		return MsgNoSuggestions
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "💡 %d suggestion(s): %d high, %d medium, %d low\n",
		len(findings),
		counts[entity.SeverityHigh],
		counts[entity.SeverityMedium],
		counts[entity.SeverityLow],
	)
	for _, f := range findings {
		fmt.Fprintf(&sb, "\n%s %s\n   Fix: %s\n", severityEmoji(f.Severity), f.Reason, f.Fix)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func severityEmoji(s entity.Severity) string {
	switch s {
	case entity.SeverityHigh:
		return "🔴"
	case entity.SeverityMedium:
		return "🟠"
	default:
		return "🟡"
	}
}

// RenderProject describes a project in one short message.
func RenderProject(p *entity.Project) string {
	return fmt.Sprintf(MsgProject, p.Name, p.ID, p.Schema.PageArchetype, p.UpdatedAt.Format("2006-01-02 15:04"))
}

// ClassifyError maps a usecase error to a user-facing message
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ErrGeneric
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTimeout
	case errors.Is(err, entity.ErrProjectNotFound):
		return ErrNoProject
	case errors.Is(err, entity.ErrPresetNotFound):
		return ErrUnknownPreset
	case errors.Is(err, entity.ErrUnsupportedFormat):
		return ErrUnknownFormat
	case errors.Is(err, entity.ErrInvalidSchema):
		return ErrInvalidDocument
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		return ErrInvalidInput
	default:
		return ErrGeneric
	}
}
