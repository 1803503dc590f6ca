// Wayfarer is an offline-first visa and immigration assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	configfile "github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/docscan"
	embeddingollama "github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/embedding/ollama"
	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/export"
	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/facts"
	llmollama "github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/locale"
	storagefile "github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/services"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// pingTimeout bounds the startup reachability check for the optional
// Ollama providers.
const pingTimeout = 3 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wayfarer", "data")
	}

	catalogue, err := openCatalogue()
	if err != nil {
		return fmt.Errorf("loading fact catalogue: %w", err)
	}
	defer catalogue.Close() //nolint:errcheck

	vectors := storagefile.NewVectorStore(dataDir, settings.Index.Cap)
	defer vectors.Close() //nolint:errcheck
	profiles := storagefile.NewProfileStore(dataDir)
	chat := storagefile.NewChatStore(dataDir)
	artifacts := storagefile.NewArtifactStore(dataDir)

	embedder := openEmbedder(settings.Embedding.Enabled, settings.Embedding.BaseURL, settings.Embedding.Model)
	completion := openCompletion(settings.Completion.Enabled, settings.Completion.BaseURL, settings.Completion.Model)

	profileService := services.NewProfileService(profiles, catalogue).
		WithFieldExtractor(docscan.NewTextExtractor())
	retriever := services.NewRetriever(vectors, embedder, catalogue, settings.Index.Cap)
	if embedder != nil {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := retriever.EnsurePersisted(seedCtx); err != nil {
			logger.Warn("Fact indexing failed, retrieval may be empty: %v", err)
		}
		cancel()
	}

	router := services.NewIntentRouter()
	dispatch := services.NewDispatch(catalogue, retriever, completion, locale.NewLocator())

	assistant := services.NewAssistant(services.AssistantConfig{
		Chat:       chat,
		Artifacts:  artifacts,
		Exporter:   export.NewFileExporter(""),
		Profiles:   profileService,
		Router:     router,
		Dispatch:   dispatch,
		Retriever:  retriever,
		Completion: completion,
		Catalogue:  catalogue,
		Disclaimer: settings.Disclaimer,
	})

	cli.SetServices(cli.Services{
		Assistant: assistant,
		Retrieval: retriever,
		Profile:   profileService,
		Settings:  settingsService,
		Catalogue: catalogue,
	})

	return cli.Execute()
}

// openCatalogue loads the bundled catalogue, or the override document
// named by WAYFARER_FACTS with hot reload.
func openCatalogue() (*facts.Catalogue, error) {
	if path := os.Getenv("WAYFARER_FACTS"); path != "" {
		return facts.NewCatalogueWithOverride(path)
	}
	return facts.NewCatalogue()
}

// openEmbedder connects to the embedding provider when enabled and
// reachable. Returns nil otherwise; retrieval degrades to empty
// results.
func openEmbedder(enabled bool, baseURL, model string) driven.EmbeddingService {
	if !enabled {
		return nil
	}

	svc := embeddingollama.NewEmbeddingService(embeddingollama.Config{
		BaseURL: baseURL,
		Model:   model,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		logger.Warn("Embedding provider unreachable, semantic retrieval disabled: %v", err)
		return nil
	}

	logger.Debug("Embedding provider ready (%s)", model)
	return svc
}

// openCompletion connects to the completion provider when enabled and
// reachable. Returns nil otherwise; tools fall back to heuristics.
func openCompletion(enabled bool, baseURL, model string) driven.CompletionService {
	if !enabled {
		return nil
	}

	svc := llmollama.NewCompletionService(llmollama.Config{
		BaseURL: baseURL,
		Model:   model,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		logger.Warn("Completion provider unreachable, using heuristic answers: %v", err)
		return nil
	}

	logger.Debug("Completion provider ready (%s)", model)
	return svc
}
