package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/futig/design-wizard/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	ch      chan tgbotapi.Update
	stopped bool
	timeout int
}

func (f *fakeSource) GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	f.timeout = cfg.Timeout
	return f.ch
}

func (f *fakeSource) StopReceivingUpdates() { f.stopped = true }

type nopSender struct{}

func (nopSender) Send(tgbotapi.Chattable) (tgbotapi.Message, error) { return tgbotapi.Message{}, nil }

type recordingHandler struct {
	mu          sync.Mutex
	updates     []int
	hasDeadline bool
	panicOn     int
}

func (h *recordingHandler) HandleUpdate(ctx context.Context, u tgbotapi.Update) {
	if u.UpdateID == h.panicOn {
		panic("handler failure")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.updates = append(h.updates, u.UpdateID)
	_, h.hasDeadline = ctx.Deadline()
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.updates)
}

func update(id int, userID int64) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: "hi",
		},
	}
}

func TestBot_ProcessesUntilStopped(t *testing.T) {
	cfg := &config.TelegramConfig{UpdateTimeout: 45, RateLimitPerMinute: 60, RateLimitBurst: 10, ShutdownTimeout: 2}
	source := &fakeSource{ch: make(chan tgbotapi.Update)}
	handler := &recordingHandler{panicOn: 2}

	b := New(cfg, source, nopSender{}, handler, zap.NewNop())
	require.NoError(t, b.Start(context.Background()))
	assert.Equal(t, 45, source.timeout)

	for i := 1; i <= 4; i++ {
		source.ch <- update(i, int64(i))
	}

	require.Eventually(t, func() bool { return handler.count() == 3 }, time.Second, 5*time.Millisecond,
		"a panicking update does not stop the others")

	require.NoError(t, b.Stop())
	assert.True(t, source.stopped)
	assert.True(t, handler.hasDeadline, "handlers run with a deadline")

	// Stop is idempotent.
	assert.NoError(t, b.Stop())
}

func TestBot_StopWithQueuedUpdates(t *testing.T) {
	cfg := &config.TelegramConfig{UpdateTimeout: 30, RateLimitPerMinute: 60, RateLimitBurst: 10, ShutdownTimeout: 2}
	source := &fakeSource{ch: make(chan tgbotapi.Update, 200)}
	for i := 1; i <= 200; i++ {
		source.ch <- update(i, int64(i))
	}
	handler := &recordingHandler{panicOn: -1}

	b := New(cfg, source, nopSender{}, handler, zap.NewNop())
	require.NoError(t, b.Start(context.Background()))
	require.NoError(t, b.Stop())

	handled := handler.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, handled, handler.count(), "no update is dispatched after Stop returns")
}

func TestBot_StopBeforeStart(t *testing.T) {
	cfg := &config.TelegramConfig{RateLimitPerMinute: 20, RateLimitBurst: 5, ShutdownTimeout: 1}
	b := New(cfg, &fakeSource{}, nopSender{}, &recordingHandler{}, zap.NewNop())

	assert.NoError(t, b.Stop())
}
