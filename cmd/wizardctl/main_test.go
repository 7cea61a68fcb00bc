package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/futig/design-wizard/internal/api"
	projectapi "github.com/futig/design-wizard/internal/api/project"
	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/interchange"
	"github.com/futig/design-wizard/internal/pkg/formatter"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/preset"
	"github.com/futig/design-wizard/internal/preview"
	"github.com/futig/design-wizard/internal/prompt"
	"github.com/futig/design-wizard/internal/repository"
	projectuc "github.com/futig/design-wizard/internal/usecase/project"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func defaultDocument(t *testing.T) []byte {
	t.Helper()
	data, err := interchange.Encode(preset.Default())
	require.NoError(t, err)
	return data
}

func TestDefaultAndPreset(t *testing.T) {
	out, _, err := run(t, nil, "default")
	require.NoError(t, err)
	got, err := interchange.Decode([]byte(out))
	require.NoError(t, err)
	if diff := cmp.Diff(preset.Default(), got); diff != "" {
		t.Errorf("default document mismatch (-want +got):\n%s", diff)
	}

	out, _, err = run(t, nil, "preset", "Dashboard")
	require.NoError(t, err)
	got, err = interchange.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, entity.ArchetypeDashboard, got.PageArchetype)

	_, _, err = run(t, nil, "preset", "Blog")
	assert.ErrorIs(t, err, entity.ErrPresetNotFound)
}

func TestPrompt(t *testing.T) {
	out, _, err := run(t, defaultDocument(t), "prompt")
	require.NoError(t, err)
	assert.Equal(t, prompt.Assemble(preset.Default()), out)
}

func TestPrompt_FromFile(t *testing.T) {
	s, err := preset.Apply(preset.SaaS)
	require.NoError(t, err)
	data, err := interchange.Encode(s)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saas.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, _, err := run(t, nil, "prompt", "--schema", path)
	require.NoError(t, err)
	assert.Equal(t, prompt.Assemble(s), out)
}

func TestPrompt_BadDocument(t *testing.T) {
	_, _, err := run(t, []byte(`{"vibe": "loud"}`), "prompt")
	require.Error(t, err)

	out, stderr, err := run(t, []byte(`{"vibe": "loud"}`), "prompt", "--fallback")
	require.NoError(t, err)
	assert.Equal(t, prompt.Assemble(preset.Default()), out)
	assert.Contains(t, stderr, "WARN")
}

func TestSuggest(t *testing.T) {
	out, _, err := run(t, defaultDocument(t), "suggest", "--output", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["), out)

	out, _, err = run(t, defaultDocument(t), "suggest")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPreview_YAML(t *testing.T) {
	out, _, err := run(t, defaultDocument(t), "preview", "--output", "yaml")
	require.NoError(t, err)

	var page preview.Page
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Equal(t, preview.Render(preset.Default()).Kinds(), page.Kinds())

	_, _, err = run(t, defaultDocument(t), "preview", "--output", "toml")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	out, _, err := run(t, defaultDocument(t), "export", "--format", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# "+preset.Default().Name+"\n\n"), out)

	_, _, err = run(t, defaultDocument(t), "export", "--format", "pdf")
	assert.Error(t, err)

	_, _, err = run(t, defaultDocument(t), "export", "--format", "html")
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)

	path := filepath.Join(t.TempDir(), "site.json")
	_, _, err = run(t, defaultDocument(t), "export", "--out", path)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultDocument(t), written)
}

func TestOptions(t *testing.T) {
	out, _, err := run(t, nil, "options")
	require.NoError(t, err)

	var opts preset.Options
	require.NoError(t, yaml.Unmarshal([]byte(out), &opts))
	assert.Equal(t, preset.Names(), opts.Presets)
}

func TestRemote(t *testing.T) {
	cfg := config.ExportConfig{CacheSize: 8, MaxImportSize: 1 << 20}
	uc, err := projectuc.NewUsecase(
		repository.NewProjectMemory(),
		validator.NewValidator(cfg),
		formatter.NewFactory(),
		cfg.CacheSize,
	)
	require.NoError(t, err)
	srv := httptest.NewServer(api.SetupRouter(projectapi.NewHandler(uc, cfg), 5*time.Second, zap.NewNop()))
	defer srv.Close()

	s, err := preset.Apply(preset.Landing)
	require.NoError(t, err)
	s.Name = "Launch"
	doc, err := interchange.Encode(s)
	require.NoError(t, err)

	out, _, err := run(t, doc, "remote", "create", "--server", srv.URL)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, _, err = run(t, nil, "remote", "pull", id, "--server", srv.URL)
	require.NoError(t, err)
	pulled, err := interchange.Decode([]byte(strings.TrimSuffix(out, "\n")))
	require.NoError(t, err)
	assert.Equal(t, "Launch", pulled.Name)

	out, _, err = run(t, nil, "remote", "generate", id, "--server", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, prompt.Assemble(s), out)

	_, _, err = run(t, nil, "remote", "pull", "00000000-0000-0000-0000-000000000000", "--server", srv.URL)
	assert.Error(t, err)
}
