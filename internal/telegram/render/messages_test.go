package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/futig/design-wizard/internal/entity"
	"github.com/futig/design-wizard/internal/suggestion"
	"github.com/stretchr/testify/assert"
)

func TestRenderSuggestions(t *testing.T) {
	assert.Equal(t, MsgNoSuggestions, RenderSuggestions(nil, nil))

	findings := []entity.Suggestion{
		{Severity: entity.SeverityHigh, Reason: "Low contrast", Fix: "Darken the text"},
		{Severity: entity.SeverityLow, Reason: "Short CTA", Fix: "Be specific"},
	}
	got := RenderSuggestions(findings, suggestion.Count(findings))

	assert.True(t, strings.HasPrefix(got, "💡 2 suggestion(s): 1 high, 0 medium, 1 low\n"), got)
	assert.Contains(t, got, "🔴 Low contrast\n   Fix: Darken the text")
	assert.True(t, strings.HasSuffix(got, "🟡 Short CTA\n   Fix: Be specific"), got)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ErrGeneric},
		{fmt.Errorf("get: %w", entity.ErrProjectNotFound), ErrNoProject},
		{entity.ErrPresetNotFound, ErrUnknownPreset},
		{entity.ErrUnsupportedFormat, ErrUnknownFormat},
		{fmt.Errorf("%w: trailing data", entity.ErrInvalidSchema), ErrInvalidDocument},
		{entity.ErrInvalidParameter, ErrInvalidInput},
		{context.DeadlineExceeded, ErrTimeout},
		{errors.New("boom"), ErrGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyError(tt.err), "%v", tt.err)
	}
}
