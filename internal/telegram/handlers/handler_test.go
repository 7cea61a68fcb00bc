package handlers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/pkg/formatter"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/futig/design-wizard/internal/repository"
	"github.com/futig/design-wizard/internal/suggestion"
	"github.com/futig/design-wizard/internal/telegram/keyboard"
	"github.com/futig/design-wizard/internal/telegram/render"
	"github.com/futig/design-wizard/internal/telegram/state"
	projectuc "github.com/futig/design-wizard/internal/usecase/project"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatID int64 = 100

type fakeSender struct {
	mu       sync.Mutex
	messages []tgbotapi.MessageConfig
	docs     []tgbotapi.DocumentConfig
	answered []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := c.(type) {
	case tgbotapi.MessageConfig:
		f.messages = append(f.messages, v)
	case tgbotapi.DocumentConfig:
		f.docs = append(f.docs, v)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		f.answered = append(f.answered, cb.CallbackQueryID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.messages)
	return f.messages[len(f.messages)-1].Text
}

func (f *fakeSender) lastDocument(t *testing.T) tgbotapi.FileBytes {
	t.Helper()
	require.NotEmpty(t, f.docs)
	file, ok := f.docs[len(f.docs)-1].File.(tgbotapi.FileBytes)
	require.True(t, ok)
	return file
}

type fixture struct {
	handler *Handler
	sender  *fakeSender
	chats   *state.Store
	uc      *projectuc.ProjectUsecase
	files   map[string][]byte
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.ExportConfig{CacheSize: 8, MaxImportSize: 64 << 10}
	uc, err := projectuc.NewUsecase(
		repository.NewProjectMemory(),
		validator.NewValidator(cfg),
		formatter.NewFactory(),
		cfg.CacheSize,
	)
	require.NoError(t, err)

	f := &fixture{
		sender: &fakeSender{},
		chats:  state.NewStore(time.Hour),
		uc:     uc,
		files:  map[string][]byte{},
	}
	fetch := func(_ context.Context, fileID string, maxSize int64) ([]byte, error) {
		data, ok := f.files[fileID]
		if !ok {
			return nil, errors.New("no such file")
		}
		if int64(len(data)) > maxSize {
			return nil, errFileTooLarge
		}
		return data, nil
	}
	f.handler = NewHandler(uc, f.chats, f.sender, fetch, cfg.MaxImportSize)
	return f
}

func command(text string) tgbotapi.Update {
	name := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From:     &tgbotapi.User{ID: 1},
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}}
}

func text(s string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: 1},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: s,
	}}
}

func document(fileID, name string, size int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From:     &tgbotapi.User{ID: 1},
		Chat:     &tgbotapi.Chat{ID: chatID},
		Document: &tgbotapi.Document{FileID: fileID, FileName: name, FileSize: size},
	}}
}

func callback(data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: 1},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		Data:    data,
	}}
}

func (f *fixture) handle(u tgbotapi.Update) {
	f.handler.HandleUpdate(context.Background(), u)
}

func (f *fixture) project(t *testing.T) *entity.Project {
	t.Helper()
	id, ok := f.chats.Project(chatID)
	require.True(t, ok)
	p, err := f.uc.GetProject(context.Background(), id)
	require.NoError(t, err)
	return p
}

func TestStart(t *testing.T) {
	f := newFixture(t)

	f.handle(command("/start Acme"))

	p := f.project(t)
	assert.Equal(t, "Acme", p.Name)
	assert.Equal(t, "Acme", p.Schema.Name)

	last := f.sender.messages[len(f.sender.messages)-1]
	assert.Contains(t, last.Text, `"Acme"`)
	assert.IsType(t, tgbotapi.InlineKeyboardMarkup{}, last.ReplyMarkup)

	f.handle(command("/start"))
	assert.NotEqual(t, p.ID, f.project(t).ID, "start always opens a new project")
}

func TestCommandsWithoutProject(t *testing.T) {
	f := newFixture(t)

	for _, u := range []tgbotapi.Update{command("/generate"), text("a brief"), callback("preset:SaaS")} {
		f.handle(u)
		assert.Equal(t, render.ErrNoProject, f.sender.lastText(t))
	}

	f.handle(command("/help"))
	assert.Equal(t, render.MsgHelp, f.sender.lastText(t))

	f.handle(command("/unknown"))
	assert.Equal(t, render.MsgHelp, f.sender.lastText(t))
}

func TestDeletedProjectUnbindsChat(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))
	require.NoError(t, f.uc.DeleteProject(context.Background(), f.project(t).ID))

	f.handle(command("/suggest"))
	assert.Equal(t, render.ErrNoProject, f.sender.lastText(t))

	_, ok := f.chats.Project(chatID)
	assert.False(t, ok)
}

func TestPreset(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))

	f.handle(command("/preset"))
	assert.Equal(t, render.MsgChoosePreset, f.sender.lastText(t))

	f.handle(command("/preset Dashboard"))
	assert.Equal(t, entity.ArchetypeDashboard, f.project(t).Schema.PageArchetype)

	f.handle(callback(keyboard.EncodeCallback(keyboard.ActionPreset, preset.SaaS)))
	assert.Equal(t, []string{"cb-1"}, f.sender.answered)
	assert.True(t, f.project(t).Schema.Sections.Pricing)

	f.handle(command("/preset Blog"))
	assert.Equal(t, render.ErrUnknownPreset, f.sender.lastText(t))
}

func TestBriefAndRadius(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))

	f.handle(text("  Landing page for a bakery  "))
	assert.Equal(t, render.MsgBriefSet, f.sender.lastText(t))
	assert.Equal(t, "Landing page for a bakery", f.project(t).Schema.Brief)

	f.handle(command("/radius 14"))
	assert.Equal(t, entity.Radii{14, 14, 14, 14}, f.project(t).Schema.Tokens.Radii)

	f.handle(command("/radius big"))
	assert.Equal(t, render.ErrUsageRadius, f.sender.lastText(t))

	f.handle(command("/radius -3"))
	assert.Equal(t, render.ErrInvalidInput, f.sender.lastText(t))
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start Acme"))

	f.handle(command("/generate"))

	p := f.project(t)
	require.NotEmpty(t, p.Schema.GeneratedPrompt)

	doc := f.sender.lastDocument(t)
	assert.Equal(t, "Acme.md", doc.Name)
	assert.True(t, strings.HasPrefix(string(doc.Bytes), "# Acme\n\n"))
	assert.Contains(t, string(doc.Bytes), p.Schema.GeneratedPrompt)

	last := f.sender.messages[len(f.sender.messages)-1]
	assert.Equal(t, render.RenderSuggestions(p.Schema.Suggestions, suggestion.Count(p.Schema.Suggestions)), last.Text)
	assert.IsType(t, tgbotapi.InlineKeyboardMarkup{}, last.ReplyMarkup)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start Acme"))

	f.handle(command("/export"))
	assert.Equal(t, render.MsgChooseFormat, f.sender.lastText(t))

	f.handle(command("/export JSON"))
	doc := f.sender.lastDocument(t)
	assert.Equal(t, "Acme.json", doc.Name)
	decoded, err := interchange.Decode(doc.Bytes)
	require.NoError(t, err)
	assert.Equal(t, "Acme", decoded.Name)

	f.handle(callback(keyboard.EncodeCallback(keyboard.ActionExport, string(entity.FormatPDF))))
	assert.Equal(t, "Acme.pdf", f.sender.lastDocument(t).Name)

	f.handle(command("/export html"))
	assert.Equal(t, render.ErrUnknownFormat, f.sender.lastText(t))
}

func TestImportDocument(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))

	s, err := preset.Apply(preset.Landing)
	require.NoError(t, err)
	s.Name = "Imported"
	data, err := interchange.Encode(s)
	require.NoError(t, err)

	f.files["ok"] = data
	f.handle(document("ok", "site.json", len(data)))
	assert.Equal(t, render.MsgImported, f.sender.lastText(t))
	assert.Equal(t, "Imported", f.project(t).Schema.Name)

	// Trailing comma before the closing brace.
	idx := bytes.LastIndexByte(data, '}')
	f.files["broken"] = append(append(data[:idx:idx], ','), data[idx:]...)
	f.handle(document("broken", "site.json", len(data)+1))
	assert.Equal(t, render.MsgImportedFixed, f.sender.lastText(t))
	assert.Equal(t, "Imported", f.project(t).Schema.Name)

	f.files["bad"] = []byte(`{"vibe": "loud"}`)
	f.handle(document("bad", "site.json", 16))
	assert.Equal(t, render.ErrInvalidDocument, f.sender.lastText(t))
	assert.Equal(t, "Imported", f.project(t).Schema.Name, "failed import keeps the schema")

	f.handle(document("ok", "site.png", len(data)))
	assert.Equal(t, render.ErrNotJSON, f.sender.lastText(t))

	f.handle(document("ok", "site.json", 65<<10))
	assert.Equal(t, render.ErrDocumentTooBig, f.sender.lastText(t))
}

func TestResetAndProject(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))
	f.handle(command("/preset Dashboard"))

	f.handle(command("/reset"))
	assert.Equal(t, render.MsgReset, f.sender.lastText(t))
	assert.Equal(t, preset.Default().PageArchetype, f.project(t).Schema.PageArchetype)

	f.handle(command("/project"))
	assert.Contains(t, f.sender.lastText(t), f.project(t).ID)
}

func TestMalformedCallback(t *testing.T) {
	f := newFixture(t)
	f.handle(command("/start"))

	f.handle(callback("garbage"))
	assert.Equal(t, render.ErrGeneric, f.sender.lastText(t))
	assert.Equal(t, []string{"cb-1"}, f.sender.answered)
}
