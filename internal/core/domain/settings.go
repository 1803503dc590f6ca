package domain

// Default settings values.
const (
	// DefaultIndexCap bounds the embedding index record count.
	DefaultIndexCap = 2000

	// DefaultRetrieveK is the default top-K for retrieval.
	DefaultRetrieveK = 6
)

// EmbeddingSettings configures the optional embedding provider.
type EmbeddingSettings struct {
	// Enabled turns semantic retrieval on.
	Enabled bool

	// Model is the embedding model name.
	Model string

	// BaseURL is the provider endpoint.
	BaseURL string
}

// CompletionSettings configures the optional completion provider.
type CompletionSettings struct {
	// Enabled turns model-assisted generation on.
	Enabled bool

	// Model is the completion model name.
	Model string

	// BaseURL is the provider endpoint.
	BaseURL string
}

// IndexSettings configures the embedding index.
type IndexSettings struct {
	// Cap is the maximum record count before eviction.
	Cap int
}

// AppSettings is the typed view over the configuration store.
type AppSettings struct {
	Embedding  EmbeddingSettings
	Completion CompletionSettings
	Index      IndexSettings

	// DataDir is where the JSON store documents live.
	DataDir string

	// Disclaimer controls whether replies end with the legal note.
	Disclaimer bool
}

// DefaultAppSettings returns the settings used when nothing is
// configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{
			Enabled: true,
			Model:   "nomic-embed-text",
			BaseURL: "http://localhost:11434",
		},
		Completion: CompletionSettings{
			Enabled: true,
			Model:   "llama3.2",
			BaseURL: "http://localhost:11434",
		},
		Index:      IndexSettings{Cap: DefaultIndexCap},
		Disclaimer: true,
	}
}
