package keyboard

import (
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/preset"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const presetsPerRow = 2

// Builder creates inline keyboards
type Builder struct{}

// NewBuilder creates a keyboard builder
func NewBuilder() *Builder {
	return &Builder{}
}

// PresetKeyboard offers every catalog preset, two per row.
func (b *Builder) PresetKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, name := range preset.Names() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(name, EncodeCallback(ActionPreset, name)))
		if len(row) == presetsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ExportKeyboard offers every export format.
func (b *Builder) ExportKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("JSON", EncodeCallback(ActionExport, string(entity.FormatJSON))),
			tgbotapi.NewInlineKeyboardButtonData("Markdown", EncodeCallback(ActionExport, string(entity.FormatMarkdown))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("PDF", EncodeCallback(ActionExport, string(entity.FormatPDF))),
			tgbotapi.NewInlineKeyboardButtonData("DOCX", EncodeCallback(ActionExport, string(entity.FormatDOCX))),
		),
	)
}

// ResultKeyboard follows a generated prompt.
func (b *Builder) ResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📥 Export", EncodeCallback(ActionAction, "export")),
			tgbotapi.NewInlineKeyboardButtonData("🎨 Preset", EncodeCallback(ActionAction, "preset")),
		),
	)
}
