package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Message  string `json:"message" jsonschema:"the visa or immigration question to ask"`
	ThreadID string `json:"thread_id,omitempty" jsonschema:"conversation thread identifier (default mcp)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Reply     string   `json:"reply"`
	Prompt    string   `json:"prompt,omitempty"`
	ToolUsed  string   `json:"tool_used,omitempty"`
	Citations []string `json:"citations,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// FactsInput is the input schema for the facts tool.
type FactsInput struct {
	Query string `json:"query" jsonschema:"free-text query over the visa fact base"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of facts to return (default 5)"`
}

// FactsOutput is the output schema for the facts tool.
type FactsOutput struct {
	Facts []FactOutput `json:"facts"`
	Count int          `json:"count"`
}

// FactOutput represents a single retrieved fact.
type FactOutput struct {
	Statement   string  `json:"statement"`
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	SourceURL   string  `json:"source_url"`
	Score       float64 `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask the visa assistant a question and get a grounded reply",
	}, s.handleAsk)

	if s.ports.Retrieval != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "facts",
			Description: "Retrieve visa facts matching a free-text query",
		}, s.handleFacts)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	threadID := input.ThreadID
	if threadID == "" {
		threadID = "mcp"
	}

	reply, err := s.ports.Assistant.Converse(ctx, threadID, input.Message)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Reply:     reply.ReplyText,
		Prompt:    reply.Prompt,
		ToolUsed:  reply.ToolUsed,
		Citations: reply.Citations,
		Warnings:  reply.Warnings,
	}

	return nil, output, nil
}

// handleFacts handles the facts tool invocation.
func (s *Server) handleFacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FactsInput,
) (*mcp.CallToolResult, FactsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}

	facts, err := s.ports.Retrieval.Retrieve(ctx, input.Query, limit)
	if err != nil {
		return nil, FactsOutput{}, err
	}

	output := FactsOutput{
		Facts: make([]FactOutput, len(facts)),
		Count: len(facts),
	}

	for i := range facts {
		output.Facts[i] = factOutput(facts[i])
	}

	return nil, output, nil
}

func factOutput(f domain.RetrievedFact) FactOutput {
	return FactOutput{
		Statement:   f.Statement,
		CountryCode: f.CountryCode,
		CountryName: f.CountryName,
		SourceURL:   f.SourceURL,
		Score:       f.Score,
	}
}
