// Package telegram is a chat front end for the wizard: a chat creates a
// project, picks presets, uploads schema documents and receives prompts
// and exports as files.
package telegram

import (
	"context"
	"fmt"

	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/telegram/bot"
	"github.com/futig/design-wizard/internal/telegram/handlers"
	"github.com/futig/design-wizard/internal/telegram/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot authorizes against the Bot API and wires the handlers.
func NewBot(
	cfg *config.TelegramConfig,
	projects handlers.ProjectUsecase,
	maxImportSize int64,
	logger *zap.Logger,
) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	api.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	handler := handlers.NewHandler(
		projects,
		state.NewStore(cfg.ChatTTL),
		api,
		handlers.NewFileDownloader(api),
		maxImportSize,
	)

	return bot.New(cfg, api, api, handler, logger), nil
}
