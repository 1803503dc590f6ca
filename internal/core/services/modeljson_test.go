package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// TestStripCodeFence tests fence removal variants
func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fence",
			in:   "```\n[1,2]\n```",
			want: "[1,2]",
		},
		{
			name: "no fence passes through",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "prose before fence",
			in:   "Here you go:\n```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "whitespace padding",
			in:   "  ```json\n{ }\n```  ",
			want: "{ }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

// TestCompleteJSON_FencedRoadmap tests the documented scenario: a
// fenced JSON array yields one roadmap path named "X"
func TestCompleteJSON_FencedRoadmap(t *testing.T) {
	llm := &mockCompletionService{
		response: "```json\n[{\"routeName\":\"X\",\"steps\":[]}]\n```",
	}

	var paths []domain.RoadmapPath
	err := completeJSON(context.Background(), llm, "sys", "user", &paths)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "X", paths[0].RouteName)
	assert.Empty(t, paths[0].Steps)
}

// TestCompleteJSON_NilService tests the unavailable-collaborator path
func TestCompleteJSON_NilService(t *testing.T) {
	var v map[string]any
	err := completeJSON(context.Background(), nil, "sys", "user", &v)
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
}

// TestCompleteJSON_CompletionError tests a throwing collaborator
func TestCompleteJSON_CompletionError(t *testing.T) {
	llm := &mockCompletionService{err: errors.New("model not downloaded")}

	var v map[string]any
	err := completeJSON(context.Background(), llm, "sys", "user", &v)
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
}

// TestCompleteJSON_MalformedOutput tests the parse-failure path
func TestCompleteJSON_MalformedOutput(t *testing.T) {
	llm := &mockCompletionService{response: "I think you should apply for a work visa."}

	var v map[string]any
	err := completeJSON(context.Background(), llm, "sys", "user", &v)
	assert.ErrorIs(t, err, domain.ErrMalformedModelOutput)
}

// TestCompleteJSON_BareJSON tests unfenced output parses directly
func TestCompleteJSON_BareJSON(t *testing.T) {
	llm := &mockCompletionService{response: `{"verdict":"likely eligible"}`}

	var v map[string]any
	err := completeJSON(context.Background(), llm, "sys", "user", &v)
	require.NoError(t, err)
	assert.Equal(t, "likely eligible", v["verdict"])
}
