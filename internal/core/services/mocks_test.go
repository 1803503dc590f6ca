package services

import (
	"context"
	"sort"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// Hand-written mocks shared by the service tests.

// mockCompletionService returns a canned response or error and records
// the prompts it was called with.
type mockCompletionService struct {
	response string
	err      error

	calls      int
	lastSystem string
	lastUser   string
	responses  []string // when set, served in order, then response
}

func (m *mockCompletionService) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) > 0 {
		r := m.responses[0]
		m.responses = m.responses[1:]
		return r, nil
	}
	return m.response, nil
}

func (m *mockCompletionService) ModelName() string            { return "mock-llm" }
func (m *mockCompletionService) Ping(_ context.Context) error { return m.err }
func (m *mockCompletionService) Close() error                 { return nil }

// mockEmbeddingService returns fixed-size vectors looked up by text,
// falling back to a default vector for unknown inputs.
type mockEmbeddingService struct {
	vectors  map[string][]float32
	fallback []float32
	err      error
}

func newMockEmbedder() *mockEmbeddingService {
	return &mockEmbeddingService{
		vectors:  make(map[string][]float32),
		fallback: []float32{1, 0, 0},
	}
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return m.fallback, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *mockEmbeddingService) Dimensions() int              { return len(m.fallback) }
func (m *mockEmbeddingService) ModelName() string            { return "mock-embed" }
func (m *mockEmbeddingService) Ping(_ context.Context) error { return m.err }
func (m *mockEmbeddingService) Close() error                 { return nil }

// mockCatalogue is a static in-memory fact base.
type mockCatalogue struct {
	entries []domain.FactEntry
}

func newMockCatalogue() *mockCatalogue {
	return &mockCatalogue{entries: []domain.FactEntry{
		{
			Code:            "DE",
			CountryName:     "Germany",
			OfficialSiteURL: "https://www.make-it-in-germany.com",
			Statements: []string{
				"Germany offers the EU Blue Card for qualified professionals with a job offer.",
				"The Germany Job Seeker visa allows six months in the country to look for work.",
			},
			VisaTypes: []domain.VisaType{
				{Name: "EU Blue Card", Purpose: "work", Duration: "4 years", Notes: "Requires a degree and a salary threshold."},
				{Name: "Student Visa", Purpose: "study", Duration: "duration of studies"},
			},
			Checklist:      []string{"University degree certificate", "Job offer or contract"},
			Fees:           map[string]string{"work": "EUR 75", "default": "EUR 75"},
			ProcessingTime: "4-12 weeks",
		},
		{
			Code:            "CA",
			CountryName:     "Canada",
			OfficialSiteURL: "https://www.canada.ca/immigration",
			Statements: []string{
				"Canada's Express Entry manages applications for skilled worker immigration.",
			},
			VisaTypes: []domain.VisaType{
				{Name: "Express Entry", Purpose: "work", Duration: "permanent"},
			},
			Checklist: []string{"Language test results", "Educational credential assessment"},
			Fees:      map[string]string{"default": "CAD 1365"},
		},
		{
			Code:            "JP",
			CountryName:     "Japan",
			OfficialSiteURL: "https://www.mofa.go.jp/j_info/visit/visa",
			Statements: []string{
				"Japan requires a Certificate of Eligibility before most long-term visa applications.",
			},
		},
	}}
}

func (m *mockCatalogue) All() []domain.FactEntry { return m.entries }

func (m *mockCatalogue) Get(code string) (*domain.FactEntry, error) {
	for i := range m.entries {
		if m.entries[i].Code == code {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogue) FindByName(name string) (*domain.FactEntry, error) {
	for i := range m.entries {
		if strings.EqualFold(m.entries[i].CountryName, name) {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogue) Countries() []string {
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.CountryName)
	}
	sort.Strings(names)
	return names
}

// mockExporter records exported artifacts.
type mockExporter struct {
	names   []string
	content [][]byte
	err     error
}

func (m *mockExporter) Export(_ context.Context, name string, content []byte) error {
	if m.err != nil {
		return m.err
	}
	m.names = append(m.names, name)
	m.content = append(m.content, content)
	return nil
}

// mockFieldExtractor returns fixed extracted fields.
type mockFieldExtractor struct {
	fields map[string]string
	err    error

	lastMIMEType string
}

func (m *mockFieldExtractor) ExtractFields(_ context.Context, _ []byte, mimeType string) (map[string]string, error) {
	m.lastMIMEType = mimeType
	return m.fields, m.err
}

// mockLocator returns a fixed country.
type mockLocator struct {
	country string
	err     error
}

func (m *mockLocator) CurrentCountry(_ context.Context) (string, error) {
	return m.country, m.err
}

// failingChatStore rejects every operation, for persistence-failure
// swallowing tests.
type failingChatStore struct {
	err error
}

func (f *failingChatStore) Append(_ context.Context, _ domain.ChatTurn) error { return f.err }
func (f *failingChatStore) List(_ context.Context, _ string) ([]domain.ChatTurn, error) {
	return nil, f.err
}
func (f *failingChatStore) Clear(_ context.Context, _ string) error { return f.err }
