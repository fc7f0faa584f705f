package imageprep

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	apperrors "github.com/nilayfuladi/plant-identifier/internal/errors"
)

const (
	// maxDimension bounds the longer side of the transmitted image. The
	// downstream consumer is a classifier, not a human viewer, so small is fine.
	maxDimension = 300

	// jpegQuality trades visual fidelity for payload size.
	jpegQuality = 50
)

// NormalizedImage is a compact, transmissible rendition of an upload:
// three-channel JPEG bytes plus the MIME type tag the inference service
// expects. Created once per identification attempt and discarded after
// the call.
type NormalizedImage struct {
	Data     []byte
	MIMEType string
}

// Base64 returns the payload encoded for embedding in a text envelope.
func (n *NormalizedImage) Base64() string {
	return base64.StdEncoding.EncodeToString(n.Data)
}

// Normalize downsamples and re-encodes a decoded image for low-bandwidth
// transmission. Images whose longer dimension exceeds maxDimension are
// scaled down preserving aspect ratio; smaller images keep their original
// resolution (never upscaled). Any color mode is flattened to three-channel
// color, and the result is encoded as an aggressively compressed JPEG.
func Normalize(img image.Image) (*NormalizedImage, error) {
	if img == nil {
		return nil, apperrors.NewImagePreparationError("no image to normalize", nil)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewImagePreparationError("image has no pixels", nil)
	}

	targetW, targetH := width, height
	if longer := max(width, height); longer > maxDimension {
		ratio := float64(maxDimension) / float64(longer)
		targetW = int(float64(width) * ratio)
		targetH = int(float64(height) * ratio)
		if targetW < 1 {
			targetW = 1
		}
		if targetH < 1 {
			targetH = 1
		}
	}

	// Drawing into RGBA flattens alpha, grayscale and palette inputs;
	// Catmull-Rom resampling avoids aliasing on the downscale.
	rgba := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	if targetW == width && targetH == height {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, apperrors.NewImagePreparationError("failed to encode image", err)
	}

	return &NormalizedImage{
		Data:     buf.Bytes(),
		MIMEType: "image/jpeg",
	}, nil
}
