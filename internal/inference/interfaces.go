package inference

import (
	"context"

	"github.com/nilayfuladi/plant-identifier/internal/imageprep"
)

// PlantDescriber produces a free-form text description of a plant image.
// Implementations make exactly one attempt per call; retry policy, if any,
// belongs to the caller.
type PlantDescriber interface {
	DescribePlant(ctx context.Context, img *imageprep.NormalizedImage, prompt string) (string, error)
}
