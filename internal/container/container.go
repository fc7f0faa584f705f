package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nilayfuladi/plant-identifier/internal/config"
	"github.com/nilayfuladi/plant-identifier/internal/inference"
	"github.com/nilayfuladi/plant-identifier/internal/messages"
	"github.com/nilayfuladi/plant-identifier/internal/service"
	"github.com/nilayfuladi/plant-identifier/internal/storage"
	"github.com/nilayfuladi/plant-identifier/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config     *config.Config
	describer  inference.PlantDescriber
	fetcher    storage.ImageFetcher
	blobStore  storage.BlobStorage
	identifier service.IdentificationService
	loading    *messages.LoadingMessages
	handler    http.Handler
}

// NewContainer builds the dependency graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	describer, err := inference.NewGeminiDescriber(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize inference client: %w", err)
	}

	fetcher := storage.NewHTTPImageFetcher(cfg.FetchTimeout)

	var blobStore storage.BlobStorage
	if cfg.BlobSourceEnabled() {
		blobStore, err = storage.NewAzureStorage(cfg.AzureStorageAccount, cfg.AzureStorageKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
		}
	}

	loading := messages.NewLoadingMessages()
	identifier := service.NewIdentificationService(describer, fetcher, blobStore, cfg.InferenceTimeout)
	handler := transport.NewHandler(identifier, loading, cfg)

	return &Container{
		config:     cfg,
		describer:  describer,
		fetcher:    fetcher,
		blobStore:  blobStore,
		identifier: identifier,
		loading:    loading,
		handler:    handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
