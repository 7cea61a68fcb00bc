package middleware

import (
	"sync"
	"testing"
	"time"

	"github.com/futig/design-wizard/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func textUpdate(userID, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return handlerFunc(func(u tgbotapi.Update, next func(tgbotapi.Update)) {
			order = append(order, name)
			next(u)
		})
	}

	h := Chain(func(tgbotapi.Update) { order = append(order, "final") }, mw("a"), mw("b"))
	h(textUpdate(1, 1, "hi"))

	assert.Equal(t, []string{"a", "b", "final"}, order)
}

type handlerFunc func(tgbotapi.Update, func(tgbotapi.Update))

func (f handlerFunc) Handle(u tgbotapi.Update, next func(tgbotapi.Update)) { f(u, next) }

func TestRateLimiter(t *testing.T) {
	sender := &fakeSender{}
	rl := NewRateLimiterMiddleware(60, 2, zap.NewNop(), sender)
	now := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return now }

	calls := 0
	next := func(tgbotapi.Update) { calls++ }

	for range 4 {
		rl.Handle(textUpdate(7, 70, "x"), next)
	}
	assert.Equal(t, 2, calls, "burst allows two requests")
	require.Len(t, sender.sent, 1, "one warning per interval")
	assert.Equal(t, render.ErrRateLimited, sender.sent[0].Text)
	assert.Equal(t, int64(70), sender.sent[0].ChatID)

	// Another user has a separate bucket.
	rl.Handle(textUpdate(8, 80, "x"), next)
	assert.Equal(t, 3, calls)

	// One request per second refills.
	now = now.Add(time.Second)
	rl.Handle(textUpdate(7, 70, "x"), next)
	assert.Equal(t, 4, calls)

	now = now.Add(2 * time.Hour)
	rl.removeInactive()
	assert.Empty(t, rl.limits)
}

func TestRateLimiter_UnknownOriginPasses(t *testing.T) {
	rl := NewRateLimiterMiddleware(1, 1, zap.NewNop(), &fakeSender{})
	calls := 0
	for range 3 {
		rl.Handle(tgbotapi.Update{}, func(tgbotapi.Update) { calls++ })
	}
	assert.Equal(t, 3, calls)
}

func TestRecovery(t *testing.T) {
	sender := &fakeSender{}
	core, logs := observer.New(zap.ErrorLevel)
	m := NewRecoveryMiddleware(zap.New(core), sender)

	assert.NotPanics(t, func() {
		m.Handle(textUpdate(1, 10, "boom"), func(tgbotapi.Update) { panic("boom") })
	})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, render.ErrGeneric, sender.sent[0].Text)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered in telegram handler").Len())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLoggingMiddleware(zap.New(core))

	called := false
	m.Handle(textUpdate(3, 30, "hello"), func(tgbotapi.Update) { called = true })

	assert.True(t, called)
	received := logs.FilterMessage("telegram update received").All()
	require.Len(t, received, 1)
	assert.Equal(t, "text", received[0].ContextMap()["type"])
	assert.Equal(t, 1, logs.FilterMessage("telegram update processed").Len())
}
