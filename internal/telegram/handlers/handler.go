package handlers

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/logger"
	"github.com/futig/design-wizard/internal/telegram/keyboard"
	"github.com/futig/design-wizard/internal/telegram/render"
	"github.com/futig/design-wizard/internal/telegram/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

var errFileTooLarge = errors.New("file too large")

// Handler turns chat updates into project operations. Each chat edits one
// project at a time.
type Handler struct {
	projects      ProjectUsecase
	chats         *state.Store
	sender        Sender
	fetch         FileFetcher
	keyboard      *keyboard.Builder
	maxImportSize int64
}

func NewHandler(
	projects ProjectUsecase,
	chats *state.Store,
	sender Sender,
	fetch FileFetcher,
	maxImportSize int64,
) *Handler {
	return &Handler{
		projects:      projects,
		chats:         chats,
		sender:        sender,
		fetch:         fetch,
		keyboard:      keyboard.NewBuilder(),
		maxImportSize: maxImportSize,
	}
}

// HandleUpdate routes update to the command, document, text or callback flow.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cq := update.CallbackQuery
		ctx = logger.AddFields(ctx, zap.Int64("chat_id", cq.Message.Chat.ID))
		h.handleCallback(ctx, cq)
	case update.Message != nil:
		msg := update.Message
		ctx = logger.AddFields(ctx, zap.Int64("chat_id", msg.Chat.ID))
		switch {
		case msg.IsCommand():
			h.handleCommand(ctx, msg)
		case msg.Document != nil:
			h.handleDocument(ctx, msg)
		case strings.TrimSpace(msg.Text) != "":
			h.handleBrief(ctx, msg)
		}
	}
}

// handleDocument replaces the schema with an uploaded JSON document.
func (h *Handler) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	ctx = logger.WithAction(ctx, "ImportDocument")
	chatID := msg.Chat.ID

	projectID, ok := h.activeProject(ctx, chatID)
	if !ok {
		return
	}

	doc := msg.Document
	if !isJSONDocument(doc) {
		h.reply(ctx, chatID, render.ErrNotJSON)
		return
	}
	if int64(doc.FileSize) > h.maxImportSize {
		h.reply(ctx, chatID, render.ErrDocumentTooBig)
		return
	}

	data, err := h.fetch(ctx, doc.FileID, h.maxImportSize)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			h.reply(ctx, chatID, render.ErrDocumentTooBig)
			return
		}
		h.fail(ctx, chatID, "failed to download document", err)
		return
	}

	res, err := h.projects.Import(ctx, projectID, data)
	if err != nil {
		h.fail(ctx, chatID, "failed to import document", err)
		return
	}

	if res.Repaired {
		h.reply(ctx, chatID, render.MsgImportedFixed)
		return
	}
	h.reply(ctx, chatID, render.MsgImported)
}

// handleBrief stores free text as the project brief.
func (h *Handler) handleBrief(ctx context.Context, msg *tgbotapi.Message) {
	ctx = logger.WithAction(ctx, "SetBrief")
	chatID := msg.Chat.ID

	projectID, ok := h.activeProject(ctx, chatID)
	if !ok {
		return
	}

	brief := strings.TrimSpace(msg.Text)
	if _, err := h.projects.UpdateSchema(ctx, projectID, entity.SchemaPatch{Brief: &brief}); err != nil {
		h.fail(ctx, chatID, "failed to set brief", err)
		return
	}

	h.reply(ctx, chatID, render.MsgBriefSet)
}

// activeProject returns the chat's project, telling the user to /start when
// there is none or it no longer exists.
func (h *Handler) activeProject(ctx context.Context, chatID int64) (string, bool) {
	projectID, ok := h.chats.Project(chatID)
	if !ok {
		h.reply(ctx, chatID, render.ErrNoProject)
		return "", false
	}

	if _, err := h.projects.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, entity.ErrProjectNotFound) {
			h.chats.Unbind(chatID)
		}
		h.fail(ctx, chatID, "failed to load active project", err)
		return "", false
	}

	return projectID, true
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	h.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) replyWithKeyboard(ctx context.Context, chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	h.send(ctx, msg)
}

func (h *Handler) sendDocument(ctx context.Context, chatID int64, res *entity.ExportResult, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  res.Filename,
		Bytes: res.Data,
	})
	doc.Caption = caption
	h.send(ctx, doc)
}

func (h *Handler) send(ctx context.Context, c tgbotapi.Chattable) {
	if _, err := h.sender.Send(c); err != nil {
		ctxzap.Error(ctx, "failed to send message", zap.Error(err))
	}
}

// fail logs err and answers with the matching user-facing message. Client
// mistakes are logged at warn level.
func (h *Handler) fail(ctx context.Context, chatID int64, msg string, err error) {
	text := render.ClassifyError(err)
	if text == render.ErrGeneric || text == render.ErrTimeout {
		ctxzap.Error(ctx, msg, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, msg, zap.Error(err))
	}
	h.reply(ctx, chatID, text)
}

func isJSONDocument(doc *tgbotapi.Document) bool {
	return doc.MimeType == "application/json" || strings.EqualFold(path.Ext(doc.FileName), ".json")
}
