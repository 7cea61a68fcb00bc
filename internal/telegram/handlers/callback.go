package handlers

import (
	"context"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/logger"
	"github.com/futig/design-wizard/internal/telegram/keyboard"
	"github.com/futig/design-wizard/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	ctx = logger.WithAction(ctx, "Callback")
	chatID := cq.Message.Chat.ID

	// Stop the client spinner whatever happens next.
	if _, err := h.sender.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		ctxzap.Warn(ctx, "failed to answer callback", zap.Error(err), zap.String("callback_id", cq.ID))
	}

	data, err := keyboard.ParseCallback(cq.Data)
	if err != nil {
		ctxzap.Warn(ctx, "malformed callback", zap.Error(err))
		h.reply(ctx, chatID, render.ErrGeneric)
		return
	}

	projectID, ok := h.activeProject(ctx, chatID)
	if !ok {
		return
	}

	switch data.Action {
	case keyboard.ActionPreset:
		h.applyPreset(ctx, chatID, projectID, data.Value)
	case keyboard.ActionExport:
		h.sendExport(ctx, chatID, projectID, entity.ExportFormat(data.Value))
	case keyboard.ActionAction:
		switch data.Value {
		case "export":
			h.replyWithKeyboard(ctx, chatID, render.MsgChooseFormat, h.keyboard.ExportKeyboard())
		case "preset":
			h.replyWithKeyboard(ctx, chatID, render.MsgChoosePreset, h.keyboard.PresetKeyboard())
		default:
			ctxzap.Warn(ctx, "unknown callback action", zap.String("value", data.Value))
		}
	default:
		ctxzap.Warn(ctx, "unknown callback", zap.String("action", data.Action))
	}
}
