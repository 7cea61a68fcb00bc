package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/pkg/logger"
	"github.com/futig/design-wizard/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Bot commands
const (
	CommandStart    = "start"
	CommandHelp     = "help"
	CommandPreset   = "preset"
	CommandRadius   = "radius"
	CommandGenerate = "generate"
	CommandSuggest  = "suggest"
	CommandExport   = "export"
	CommandReset    = "reset"
	CommandProject  = "project"
)

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())
	ctx = logger.WithAction(ctx, "Command_"+msg.Command())

	if msg.Command() == CommandStart {
		h.start(ctx, chatID, args)
		return
	}
	if msg.Command() == CommandHelp {
		h.reply(ctx, chatID, render.MsgHelp)
		return
	}

	handlers := map[string]func(ctx context.Context, chatID int64, projectID, args string){
		CommandPreset:   h.preset,
		CommandRadius:   h.radius,
		CommandGenerate: h.generate,
		CommandSuggest:  h.suggest,
		CommandExport:   h.export,
		CommandReset:    h.reset,
		CommandProject:  h.project,
	}
	handle, ok := handlers[msg.Command()]
	if !ok {
		h.reply(ctx, chatID, render.MsgHelp)
		return
	}

	projectID, ok := h.activeProject(ctx, chatID)
	if !ok {
		return
	}
	handle(ctx, chatID, projectID, args)
}

// start creates a fresh project and makes it the chat's active one.
func (h *Handler) start(ctx context.Context, chatID int64, name string) {
	project, err := h.projects.CreateProject(ctx, &entity.CreateProjectRequest{Name: name})
	if err != nil {
		h.fail(ctx, chatID, "failed to create project", err)
		return
	}

	h.chats.Bind(chatID, project.ID)
	ctxzap.Info(ctx, "chat bound to new project", zap.String("project_id", project.ID))

	h.replyWithKeyboard(ctx, chatID, fmt.Sprintf(render.MsgWelcome, project.Name), h.keyboard.PresetKeyboard())
}

func (h *Handler) preset(ctx context.Context, chatID int64, projectID, name string) {
	if name == "" {
		h.replyWithKeyboard(ctx, chatID, render.MsgChoosePreset, h.keyboard.PresetKeyboard())
		return
	}
	h.applyPreset(ctx, chatID, projectID, name)
}

func (h *Handler) applyPreset(ctx context.Context, chatID int64, projectID, name string) {
	if _, err := h.projects.ApplyPreset(ctx, projectID, name); err != nil {
		h.fail(ctx, chatID, "failed to apply preset", err)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(render.MsgPresetApplied, name))
}

func (h *Handler) radius(ctx context.Context, chatID int64, projectID, args string) {
	r, err := strconv.ParseFloat(args, 64)
	if err != nil {
		h.reply(ctx, chatID, render.ErrUsageRadius)
		return
	}

	if _, err := h.projects.SetCornerRadius(ctx, projectID, r); err != nil {
		h.fail(ctx, chatID, "failed to set radius", err)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf(render.MsgRadiusSet, r))
}

// generate stores a fresh prompt, sends it as a Markdown file and follows
// up with the suggestions.
func (h *Handler) generate(ctx context.Context, chatID int64, projectID, _ string) {
	res, err := h.projects.Generate(ctx, projectID)
	if err != nil {
		h.fail(ctx, chatID, "failed to generate prompt", err)
		return
	}

	artifact, err := h.projects.Export(ctx, projectID, entity.FormatMarkdown)
	if err != nil {
		h.fail(ctx, chatID, "failed to render prompt", err)
		return
	}

	h.sendDocument(ctx, chatID, artifact, fmt.Sprintf(render.MsgPromptCaption, artifact.Filename))
	h.replyWithKeyboard(ctx, chatID, render.RenderSuggestions(res.Suggestions, res.Severities), h.keyboard.ResultKeyboard())
}

func (h *Handler) suggest(ctx context.Context, chatID int64, projectID, _ string) {
	res, err := h.projects.Suggestions(ctx, projectID)
	if err != nil {
		h.fail(ctx, chatID, "failed to evaluate suggestions", err)
		return
	}
	h.reply(ctx, chatID, render.RenderSuggestions(res.Suggestions, res.Severities))
}

func (h *Handler) export(ctx context.Context, chatID int64, projectID, format string) {
	if format == "" {
		h.replyWithKeyboard(ctx, chatID, render.MsgChooseFormat, h.keyboard.ExportKeyboard())
		return
	}
	h.sendExport(ctx, chatID, projectID, entity.ExportFormat(strings.ToLower(format)))
}

func (h *Handler) sendExport(ctx context.Context, chatID int64, projectID string, format entity.ExportFormat) {
	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	res, err := h.projects.Export(ctx, projectID, format)
	if err != nil {
		h.fail(ctx, chatID, "failed to export project", err)
		return
	}
	h.sendDocument(ctx, chatID, res, "")
}

func (h *Handler) reset(ctx context.Context, chatID int64, projectID, _ string) {
	if _, err := h.projects.ResetProject(ctx, projectID); err != nil {
		h.fail(ctx, chatID, "failed to reset project", err)
		return
	}
	h.reply(ctx, chatID, render.MsgReset)
}

func (h *Handler) project(ctx context.Context, chatID int64, projectID, _ string) {
	project, err := h.projects.GetProject(ctx, projectID)
	if err != nil {
		h.fail(ctx, chatID, "failed to load project", err)
		return
	}
	h.reply(ctx, chatID, render.RenderProject(project))
}
