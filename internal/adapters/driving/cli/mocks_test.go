package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	reply      *domain.AgentReply
	turns      []domain.ChatTurn
	artifactID string
	exportName string
	err        error
	saveErr    error
	exportErr  error

	lastThreadID string
	lastText     string
	saveCalls    int
	exportCalls  int
}

func (m *mockAssistantService) Converse(_ context.Context, threadID, text string) (*domain.AgentReply, error) {
	m.lastThreadID = threadID
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	if m.reply == nil {
		return &domain.AgentReply{ReplyText: "Here is what I found."}, nil
	}
	return m.reply, nil
}

func (m *mockAssistantService) History(_ context.Context, _ string) ([]domain.ChatTurn, error) {
	return m.turns, m.err
}

func (m *mockAssistantService) SaveReply(_ context.Context, _ *domain.AgentReply) (string, error) {
	m.saveCalls++
	if m.saveErr != nil {
		return "", m.saveErr
	}
	return m.artifactID, nil
}

func (m *mockAssistantService) ExportReply(_ context.Context, _ *domain.AgentReply) (string, error) {
	m.exportCalls++
	if m.exportErr != nil {
		return "", m.exportErr
	}
	return m.exportName, nil
}

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	facts []domain.RetrievedFact
	count int
	cap   int
	err   error

	rebuildCalls int
}

func (m *mockRetrievalService) Retrieve(_ context.Context, _ string, _ int) ([]domain.RetrievedFact, error) {
	return m.facts, m.err
}

func (m *mockRetrievalService) EnsurePersisted(_ context.Context) error {
	return m.err
}

func (m *mockRetrievalService) Stats(_ context.Context) (int, int, error) {
	return m.count, m.cap, m.err
}

func (m *mockRetrievalService) Rebuild(_ context.Context) error {
	m.rebuildCalls++
	return m.err
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profile   *domain.UserProfile
	err       error
	importErr error

	resetCalls   int
	lastMIMEType string
}

func (m *mockProfileService) GetOrCreate(_ context.Context) (*domain.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil {
		return &domain.UserProfile{}, nil
	}
	return m.profile, nil
}

func (m *mockProfileService) Apply(_ context.Context, _ domain.ProfileUpdate) (*domain.UserProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) AutoFillFromChat(_ context.Context, _ []domain.ChatTurn, _, _ string) (*domain.UserProfile, string, error) {
	return m.profile, "", m.err
}

func (m *mockProfileService) ImportDocument(_ context.Context, _ []byte, mimeType string) (*domain.UserProfile, error) {
	m.lastMIMEType = mimeType
	if m.importErr != nil {
		return nil, m.importErr
	}
	return m.GetOrCreate(context.Background())
}

func (m *mockProfileService) Reset(_ context.Context) error {
	m.resetCalls++
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error

	updated *domain.AppSettings
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		s := domain.DefaultAppSettings()
		return &s, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Update(settings *domain.AppSettings) error {
	m.updated = settings
	return m.err
}

// mockCatalogue is a mock implementation of driven.FactCatalogue.
type mockCatalogue struct {
	entries []domain.FactEntry
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

// errRetrievalService always fails.
type errRetrievalService struct{ mockRetrievalService }

func (e *errRetrievalService) Retrieve(_ context.Context, _ string, _ int) ([]domain.RetrievedFact, error) {
	return nil, errors.New("index unavailable")
}

// setupTestServices wires mock services into the package-level vars and
// returns a cleanup that restores the previous ones.
func setupTestServices() func() {
	oldAssistant := assistantService
	oldRetrieval := retrievalService
	oldProfile := profileService
	oldSettings := settingsService
	oldCatalogue := factCatalogue

	assistantService = &mockAssistantService{artifactID: "art-1"}
	retrievalService = &mockRetrievalService{
		facts: []domain.RetrievedFact{
			{
				Statement:   "Germany offers the EU Blue Card for skilled workers.",
				CountryCode: "DE",
				CountryName: "Germany",
				SourceURL:   "https://www.make-it-in-germany.com",
				Score:       0.91,
			},
		},
		count: 40,
		cap:   2000,
	}
	profileService = &mockProfileService{
		profile: &domain.UserProfile{
			Nationality:   "India",
			Residence:     "Portugal",
			WorkYears:     7,
			Languages:     []string{"English"},
			SelectedGoals: []string{"work"},
		},
	}
	settingsService = &mockSettingsService{}
	factCatalogue = &mockCatalogue{
		entries: []domain.FactEntry{
			{Code: "CA", CountryName: "Canada", OfficialSiteURL: "https://www.canada.ca"},
			{Code: "DE", CountryName: "Germany", OfficialSiteURL: "https://www.make-it-in-germany.com"},
		},
	}

	return func() {
		assistantService = oldAssistant
		retrievalService = oldRetrieval
		profileService = oldProfile
		settingsService = oldSettings
		factCatalogue = oldCatalogue
	}
}
