package bot

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/telegram/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// UpdateHandler processes one update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// UpdateSource delivers updates until told to stop.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot represents the Telegram bot
type Bot struct {
	source      UpdateSource
	cfg         *config.TelegramConfig
	handler     UpdateHandler
	rateLimitMW *middleware.RateLimiterMiddleware
	chain       func(tgbotapi.Update)
	logger      *zap.Logger
	baseCtx     context.Context
	stopChan    chan struct{}
	stopOnce    sync.Once
	loopDone    chan struct{}
	started     atomic.Bool
	wg          sync.WaitGroup
}

// New wires the middleware chain around handler. Replies from middleware go
// through sender.
func New(
	cfg *config.TelegramConfig,
	source UpdateSource,
	sender middleware.Sender,
	handler UpdateHandler,
	logger *zap.Logger,
) *Bot {
	b := &Bot{
		source:   source,
		cfg:      cfg,
		handler:  handler,
		logger:   logger,
		baseCtx:  context.Background(),
		stopChan: make(chan struct{}),
		loopDone: make(chan struct{}),
	}

	b.rateLimitMW = middleware.NewRateLimiterMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger, sender)
	b.chain = middleware.Chain(b.handleUpdate,
		b.rateLimitMW,
		middleware.NewLoggingMiddleware(logger),
		middleware.NewRecoveryMiddleware(logger, sender),
	)

	return b
}

// Start begins long polling. It returns immediately; updates are handled
// in their own goroutines until Stop or ctx cancellation.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	updates := b.source.GetUpdatesChan(u)

	b.baseCtx = ctxzap.ToContext(context.WithoutCancel(ctx), b.logger)
	go b.rateLimitMW.Cleanup(ctx)
	b.started.Store(true)
	go b.processUpdates(ctx, updates)

	b.logger.Info("telegram bot started successfully")
	return nil
}

// Stop stops the bot gracefully with timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	b.stopOnce.Do(func() {
		close(b.stopChan)
		b.source.StopReceivingUpdates()
	})

	// No handler is dispatched once the loop has exited.
	done := make(chan struct{})
	go func() {
		if b.started.Load() {
			<-b.loopDone
		}
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

func (b *Bot) processUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer close(b.loopDone)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			b.logger.Info("stop signal received, stopping update processing")
			return
		case update, ok := <-updates:
			if !ok {
				b.logger.Info("updates channel closed")
				return
			}
			// select picks randomly among ready cases
			select {
			case <-b.stopChan:
				b.logger.Info("stop signal received, dropping pending update",
					zap.Int("update_id", update.UpdateID))
				return
			default:
			}
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.chain(u)
			}(update)
		}
	}
}

// handleUpdate runs after the middleware. In-flight handlers keep their
// context when shutdown cancels the polling one.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(b.baseCtx, time.Duration(b.cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	b.handler.HandleUpdate(ctx, update)
}
