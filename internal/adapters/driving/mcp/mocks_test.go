package mcp

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	reply      *domain.AgentReply
	turns      []domain.ChatTurn
	artifactID string
	err        error

	lastThreadID string
	lastText     string
}

func (m *mockAssistantService) Converse(_ context.Context, threadID, text string) (*domain.AgentReply, error) {
	m.lastThreadID = threadID
	m.lastText = text
	return m.reply, m.err
}

func (m *mockAssistantService) History(_ context.Context, _ string) ([]domain.ChatTurn, error) {
	return m.turns, m.err
}

func (m *mockAssistantService) SaveReply(_ context.Context, _ *domain.AgentReply) (string, error) {
	return m.artifactID, m.err
}

func (m *mockAssistantService) ExportReply(_ context.Context, _ *domain.AgentReply) (string, error) {
	return "", domain.ErrFeatureUnavailable
}

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	facts []domain.RetrievedFact
	count int
	cap   int
	err   error

	lastQuery string
	lastK     int
}

func (m *mockRetrievalService) Retrieve(_ context.Context, query string, k int) ([]domain.RetrievedFact, error) {
	m.lastQuery = query
	m.lastK = k
	return m.facts, m.err
}

func (m *mockRetrievalService) EnsurePersisted(_ context.Context) error {
	return m.err
}

func (m *mockRetrievalService) Stats(_ context.Context) (int, int, error) {
	return m.count, m.cap, m.err
}

func (m *mockRetrievalService) Rebuild(_ context.Context) error {
	return m.err
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profile *domain.UserProfile
	err     error
}

func (m *mockProfileService) GetOrCreate(_ context.Context) (*domain.UserProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) Apply(_ context.Context, _ domain.ProfileUpdate) (*domain.UserProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) AutoFillFromChat(_ context.Context, _ []domain.ChatTurn, _, _ string) (*domain.UserProfile, string, error) {
	return m.profile, "", m.err
}

func (m *mockProfileService) ImportDocument(_ context.Context, _ []byte, _ string) (*domain.UserProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) Reset(_ context.Context) error {
	return m.err
}

// mockCatalogue is a mock implementation of driven.FactCatalogue with a
// fixed two-country entry set.
type mockCatalogue struct {
	entries []domain.FactEntry
}

func newMockCatalogue() *mockCatalogue {
	return &mockCatalogue{
		entries: []domain.FactEntry{
			{
				Code:            "DE",
				CountryName:     "Germany",
				OfficialSiteURL: "https://www.make-it-in-germany.com",
				Statements:      []string{"Germany offers the EU Blue Card for skilled workers."},
			},
			{
				Code:            "CA",
				CountryName:     "Canada",
				OfficialSiteURL: "https://www.canada.ca/en/immigration-refugees-citizenship.html",
				Statements:      []string{"Canada runs the Express Entry system for skilled immigration."},
			},
		},
	}
}

func (m *mockCatalogue) All() []domain.FactEntry {
	return m.entries
}

func (m *mockCatalogue) Get(code string) (*domain.FactEntry, error) {
	for i := range m.entries {
		if m.entries[i].Code == code {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogue) FindByName(name string) (*domain.FactEntry, error) {
	for i := range m.entries {
		if m.entries[i].CountryName == name {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogue) Countries() []string {
	names := make([]string, len(m.entries))
	for i := range m.entries {
		names[i] = m.entries[i].CountryName
	}
	return names
}
