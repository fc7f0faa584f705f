package service

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	apperrors "github.com/nilayfuladi/plant-identifier/internal/errors"
	"github.com/nilayfuladi/plant-identifier/internal/identify"
	"github.com/nilayfuladi/plant-identifier/internal/imageprep"
	"github.com/nilayfuladi/plant-identifier/internal/inference"
	"github.com/nilayfuladi/plant-identifier/internal/storage"
	"github.com/nilayfuladi/plant-identifier/pkg/models"
)

// IdentificationService runs one self-contained identification attempt:
// decode, advise on quality, normalize, call the inference service, parse.
// Nothing is shared between attempts and nothing is persisted.
type IdentificationService interface {
	IdentifyUpload(ctx context.Context, upload io.Reader) (*models.IdentificationResponse, error)
	IdentifyURL(ctx context.Context, imageURL string) (*models.IdentificationResponse, error)
	IdentifyBlob(ctx context.Context, blobURL string) (*models.IdentificationResponse, error)
}

type identificationService struct {
	describer        inference.PlantDescriber
	fetcher          storage.ImageFetcher
	blobStore        storage.BlobStorage // nil when the Azure source is not configured
	advisor          *imageprep.QualityAdvisor
	inferenceTimeout time.Duration
}

// NewIdentificationService wires an identification service. blobStore may
// be nil; IdentifyBlob then rejects requests.
func NewIdentificationService(
	describer inference.PlantDescriber,
	fetcher storage.ImageFetcher,
	blobStore storage.BlobStorage,
	inferenceTimeout time.Duration,
) IdentificationService {
	return &identificationService{
		describer:        describer,
		fetcher:          fetcher,
		blobStore:        blobStore,
		advisor:          imageprep.NewQualityAdvisor(),
		inferenceTimeout: inferenceTimeout,
	}
}

func (s *identificationService) IdentifyUpload(ctx context.Context, upload io.Reader) (*models.IdentificationResponse, error) {
	img, _, err := image.Decode(upload)
	if err != nil {
		return nil, apperrors.NewImagePreparationError("could not decode uploaded image", err)
	}
	return s.identify(ctx, img)
}

func (s *identificationService) IdentifyURL(ctx context.Context, imageURL string) (*models.IdentificationResponse, error) {
	if imageURL == "" {
		return nil, apperrors.NewValidationError("image URL is required", nil)
	}
	img, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}
	return s.identify(ctx, img)
}

func (s *identificationService) IdentifyBlob(ctx context.Context, blobURL string) (*models.IdentificationResponse, error) {
	if s.blobStore == nil {
		return nil, apperrors.NewValidationError("blob image source is not configured", nil)
	}
	img, err := s.blobStore.GetImage(ctx, blobURL)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to fetch blob image", err)
	}
	return s.identify(ctx, img)
}

// identify is the shared tail of every variant. The inference call gets
// its own deadline; everything before it is local work.
func (s *identificationService) identify(ctx context.Context, img image.Image) (*models.IdentificationResponse, error) {
	start := time.Now()

	warnings := s.advisor.Advise(img)

	normalized, err := imageprep.Normalize(img)
	if err != nil {
		return nil, err
	}

	inferCtx, cancel := context.WithTimeout(ctx, s.inferenceTimeout)
	defer cancel()

	text, err := s.describer.DescribePlant(inferCtx, normalized, identify.IdentificationPrompt)
	if err != nil {
		return nil, err
	}

	info := identify.Parse(text)

	return &models.IdentificationResponse{
		Plant:             info,
		ImageWarnings:     warnings,
		Timestamp:         start.UTC().Format(time.RFC3339),
		ProcessingTimeSec: time.Since(start).Seconds(),
	}, nil
}
