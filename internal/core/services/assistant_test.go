package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// testAssistant bundles an assistant with the collaborators the tests
// inspect afterwards.
type testAssistant struct {
	assistant *Assistant
	chat      *memory.ChatStore
	profiles  *memory.ProfileStore
	artifacts *memory.ArtifactStore
	llm       *mockCompletionService
}

func newTestAssistant(llm *mockCompletionService) *testAssistant {
	catalogue := newMockCatalogue()
	chat := memory.NewChatStore()
	profiles := memory.NewProfileStore()
	artifacts := memory.NewArtifactStore()

	profileSvc := NewProfileService(profiles, catalogue)
	retriever := NewRetriever(memory.NewVectorStore(100), nil, catalogue, 100)

	cfg := AssistantConfig{
		Chat:      chat,
		Artifacts: artifacts,
		Profiles:  profileSvc,
		Router:    NewIntentRouter(),
		Retriever: retriever,
		Catalogue: catalogue,
	}
	// A typed nil in the interface field would defeat the nil checks,
	// so only assign when a mock is actually supplied.
	if llm != nil {
		cfg.Completion = llm
		cfg.Dispatch = NewDispatch(catalogue, retriever, llm, nil)
	} else {
		cfg.Dispatch = NewDispatch(catalogue, retriever, nil, nil)
	}

	a := NewAssistant(cfg)
	a.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }

	seq := 0
	a.newID = func() string {
		seq++
		return string(rune('a' + seq))
	}

	return &testAssistant{assistant: a, chat: chat, profiles: profiles, artifacts: artifacts, llm: llm}
}

// TestConverse_EmptyInput tests blank input is rejected
func TestConverse_EmptyInput(t *testing.T) {
	ta := newTestAssistant(nil)

	_, err := ta.assistant.Converse(context.Background(), "t1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestConverse_GreetingFastPath tests "hi" takes the canned path and
// both turns are persisted
func TestConverse_GreetingFastPath(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "chat", reply.ToolUsed)
	assert.Equal(t, greetingReply, reply.ReplyText)
	assert.False(t, reply.Gated())

	history, err := ta.chat.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
}

// TestConverse_GreetingVariants tests punctuation and casing
func TestConverse_GreetingVariants(t *testing.T) {
	for _, text := range []string{"Hi!", "HELLO", "hey,", "Good morning"} {
		ta := newTestAssistant(nil)
		reply, err := ta.assistant.Converse(context.Background(), "t1", text)
		require.NoError(t, err)
		assert.Equal(t, greetingReply, reply.ReplyText, "input: %s", text)
	}
}

// TestConverse_GatesRoadmapOnMissingInfo tests the documented gating
// scenario: asking for a roadmap with an empty profile yields one
// question, not a roadmap
func TestConverse_GatesRoadmapOnMissingInfo(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "give me a roadmap")
	require.NoError(t, err)
	assert.True(t, reply.Gated())
	assert.Equal(t, "roadmap", reply.ToolUsed)
	assert.Contains(t, reply.Prompt, "destination country")
	assert.Contains(t, reply.Prompt, "nationality")
	assert.Nil(t, reply.StructuredPayload)

	// The question itself lands in history as the assistant's turn.
	history, err := ta.chat.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, reply.Prompt, history[1].Content)
}

// TestConverse_GatingResolvesAcrossTurns tests that answering the
// question unlocks the tool on the next turn
func TestConverse_GatingResolvesAcrossTurns(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.True(t, reply.Gated())
	assert.Contains(t, reply.Prompt, "nationality")
	assert.NotContains(t, reply.Prompt, "destination")

	reply, err = ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	assert.False(t, reply.Gated())
	assert.Equal(t, "roadmap", reply.ToolUsed)
	assert.NotNil(t, reply.StructuredPayload)
}

// TestConverse_NoDisclaimerOnGatedReply tests the disclaimer only
// attaches to substantive replies
func TestConverse_NoDisclaimerOnGatedReply(t *testing.T) {
	ctx := context.Background()
	catalogue := newMockCatalogue()
	chat := memory.NewChatStore()
	retriever := NewRetriever(memory.NewVectorStore(100), nil, catalogue, 100)
	profileSvc := NewProfileService(memory.NewProfileStore(), catalogue)

	a := NewAssistant(AssistantConfig{
		Chat:       chat,
		Profiles:   profileSvc,
		Router:     NewIntentRouter(),
		Dispatch:   NewDispatch(catalogue, retriever, nil, nil),
		Retriever:  retriever,
		Catalogue:  catalogue,
		Disclaimer: true,
	})

	reply, err := a.Converse(ctx, "t1", "give me a roadmap")
	require.NoError(t, err)
	require.True(t, reply.Gated())
	assert.NotContains(t, reply.Prompt, disclaimer)

	reply, err = a.Converse(ctx, "t1", "I am from India, I want a roadmap for working in Germany")
	require.NoError(t, err)
	require.False(t, reply.Gated())
	assert.Contains(t, reply.ReplyText, disclaimer)
}

// TestConverse_HeuristicRoadmapWithoutModel tests the deterministic
// path carries the degradation warning
func TestConverse_HeuristicRoadmapWithoutModel(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.False(t, reply.Gated())
	assert.Contains(t, reply.Warnings, heuristicWarning)

	plan, ok := reply.StructuredPayload.(domain.RoadmapPlan)
	require.True(t, ok)
	require.NotEmpty(t, plan.Paths)
	for _, p := range plan.Paths {
		assert.GreaterOrEqual(t, p.Confidence, domain.MinConfidence)
		assert.LessOrEqual(t, p.Confidence, domain.MaxConfidence)
	}
}

// TestConverse_ModelRoadmap tests a well-formed model response is used
// without the degradation warning
func TestConverse_ModelRoadmap(t *testing.T) {
	ctx := context.Background()
	llm := &mockCompletionService{
		response: `[{"routeName":"EU Blue Card","steps":[{"title":"Get a job offer","detail":"Secure a contract above the salary threshold.","months":3}],"totalMonths":6,"confidence":80}]`,
	}
	ta := newTestAssistant(llm)

	reply, err := ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.False(t, reply.Gated())
	assert.NotContains(t, reply.Warnings, heuristicWarning)

	plan, ok := reply.StructuredPayload.(domain.RoadmapPlan)
	require.True(t, ok)
	require.Len(t, plan.Paths, 1)
	assert.Equal(t, "EU Blue Card", plan.Paths[0].RouteName)
	assert.Equal(t, 80, plan.Paths[0].Confidence)
	assert.Contains(t, reply.ReplyText, "EU Blue Card")
}

// TestConverse_MalformedModelFallsBack tests prose from the model
// degrades to the heuristic generator instead of failing
func TestConverse_MalformedModelFallsBack(t *testing.T) {
	ctx := context.Background()
	llm := &mockCompletionService{response: "You should probably apply for a Blue Card."}
	ta := newTestAssistant(llm)

	reply, err := ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.False(t, reply.Gated())
	assert.Contains(t, reply.Warnings, heuristicWarning)
	assert.NotNil(t, reply.StructuredPayload)
}

// TestConverse_GenericFallbackTemplate tests unclassified input with
// no model and no retrieval gets the honest fallback
func TestConverse_GenericFallbackTemplate(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "tell me something interesting")
	require.NoError(t, err)
	assert.Equal(t, "chat", reply.ToolUsed)
	assert.Contains(t, reply.ReplyText, "I couldn't retrieve enough information")
}

// TestConverse_GenericModelAnswer tests the grounded synthesis path
func TestConverse_GenericModelAnswer(t *testing.T) {
	ctx := context.Background()
	llm := &mockCompletionService{response: "Moving abroad usually starts with choosing a visa category."}
	ta := newTestAssistant(llm)

	reply, err := ta.assistant.Converse(ctx, "t1", "tell me something interesting")
	require.NoError(t, err)
	assert.Equal(t, "chat", reply.ToolUsed)
	assert.Equal(t, "Moving abroad usually starts with choosing a visa category.", reply.ReplyText)
	assert.Equal(t, 1, llm.calls)
}

// TestConverse_SwallowsPersistenceFailure tests a failing chat store
// never blocks the reply
func TestConverse_SwallowsPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	catalogue := newMockCatalogue()
	retriever := NewRetriever(memory.NewVectorStore(100), nil, catalogue, 100)

	a := NewAssistant(AssistantConfig{
		Chat:      &failingChatStore{err: errors.New("disk full")},
		Profiles:  NewProfileService(memory.NewProfileStore(), catalogue),
		Router:    NewIntentRouter(),
		Dispatch:  NewDispatch(catalogue, retriever, nil, nil),
		Retriever: retriever,
		Catalogue: catalogue,
	})

	reply, err := a.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	assert.False(t, reply.Gated())
	assert.NotEmpty(t, reply.ReplyText)
}

// TestSaveReply tests artifact persistence and the profile link
func TestSaveReply(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	reply, err := ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.NotNil(t, reply.StructuredPayload)

	id, err := ta.assistant.SaveReply(ctx, reply)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	saved, err := ta.artifacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, id, saved[0].ID)
	assert.Equal(t, "roadmap", saved[0].Kind)
	assert.NotEmpty(t, saved[0].Payload)

	profile, err := ta.profiles.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, profile.SavedDocumentIDs, id)
}

// TestSaveReply_NoArtifactStore tests the optional-store contract
func TestSaveReply_NoArtifactStore(t *testing.T) {
	catalogue := newMockCatalogue()
	retriever := NewRetriever(memory.NewVectorStore(100), nil, catalogue, 100)
	a := NewAssistant(AssistantConfig{
		Chat:      memory.NewChatStore(),
		Profiles:  NewProfileService(memory.NewProfileStore(), catalogue),
		Router:    NewIntentRouter(),
		Dispatch:  NewDispatch(catalogue, retriever, nil, nil),
		Retriever: retriever,
		Catalogue: catalogue,
	})

	_, err := a.SaveReply(context.Background(), &domain.AgentReply{StructuredPayload: domain.Checklist{}})
	assert.ErrorIs(t, err, domain.ErrFeatureUnavailable)
}

// TestSaveReply_NoPayload tests replies without a payload are rejected
func TestSaveReply_NoPayload(t *testing.T) {
	ta := newTestAssistant(nil)

	_, err := ta.assistant.SaveReply(context.Background(), &domain.AgentReply{ReplyText: "plain text"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestExportReply tests the payload reaches the exporter under a
// kind-and-timestamp file name
func TestExportReply(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)
	exporter := &mockExporter{}
	ta.assistant.exporter = exporter

	reply, err := ta.assistant.Converse(ctx, "t1", "I am from India, give me a roadmap for working in Germany")
	require.NoError(t, err)
	require.NotNil(t, reply.StructuredPayload)

	name, err := ta.assistant.ExportReply(ctx, reply)
	require.NoError(t, err)
	assert.Equal(t, "wayfarer-roadmap-20260601-120000.json", name)
	require.Len(t, exporter.names, 1)
	assert.Equal(t, name, exporter.names[0])
	assert.NotEmpty(t, exporter.content[0])
}

// TestExportReply_NoExporter tests the optional-collaborator contract
func TestExportReply_NoExporter(t *testing.T) {
	ta := newTestAssistant(nil)

	_, err := ta.assistant.ExportReply(context.Background(), &domain.AgentReply{StructuredPayload: domain.Checklist{}})
	assert.ErrorIs(t, err, domain.ErrFeatureUnavailable)
}

// TestExportReply_NoPayload tests replies without a payload are rejected
func TestExportReply_NoPayload(t *testing.T) {
	ta := newTestAssistant(nil)
	ta.assistant.exporter = &mockExporter{}

	_, err := ta.assistant.ExportReply(context.Background(), &domain.AgentReply{ReplyText: "plain text"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestHistory tests turn ordering across a conversation
func TestHistory(t *testing.T) {
	ctx := context.Background()
	ta := newTestAssistant(nil)

	_, err := ta.assistant.Converse(ctx, "t1", "hi")
	require.NoError(t, err)
	_, err = ta.assistant.Converse(ctx, "t1", "hello")
	require.NoError(t, err)

	history, err := ta.assistant.History(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, "hello", history[2].Content)
}

// TestIsGreeting tests the normalisation edge cases
func TestIsGreeting(t *testing.T) {
	assert.True(t, isGreeting("hi"))
	assert.True(t, isGreeting("  Hello! "))
	assert.True(t, isGreeting("good evening."))
	assert.False(t, isGreeting("hi, I need a visa for Germany"))
	assert.False(t, isGreeting("help"))
}
