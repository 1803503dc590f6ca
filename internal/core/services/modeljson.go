package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// completeJSON asks the completion service for JSON matching v's
// schema. The raw output is parsed as-is first, then once more after
// stripping a markdown code fence. Any remaining failure returns
// domain.ErrMalformedModelOutput so the caller can fall back to its
// heuristic generator.
func completeJSON(ctx context.Context, llm driven.CompletionService, systemPrompt, userPrompt string, v any) error {
	if llm == nil {
		return domain.ErrCompletionUnavailable
	}

	raw, err := llm.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Warn("Completion failed: %v", err)
		return domain.ErrCompletionUnavailable
	}

	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	stripped := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(stripped), v); err != nil {
		logger.Warn("Model output is not valid JSON after fence strip")
		return domain.ErrMalformedModelOutput
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code fence, tolerating
// a language tag (```json) and surrounding prose before the fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	s = s[start+3:]

	// Drop the language tag on the fence line, if any.
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(s[:nl])
		if firstLine == "" || isFenceTag(firstLine) {
			s = s[nl+1:]
		}
	}

	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// isFenceTag reports whether the line is a bare fence language tag.
func isFenceTag(line string) bool {
	switch strings.ToLower(line) {
	case "json", "javascript", "txt", "text":
		return true
	default:
		return false
	}
}
