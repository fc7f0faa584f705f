package imageprep

import (
	"image"
	"image/draw"

	"gonum.org/v1/gonum/stat"
)

// Advisory thresholds. Matched against averages over the decoded upload;
// crossing one produces a warning, never a rejection.
const (
	darkLuminance   = 0.15
	brightLuminance = 0.95
	blurVariance    = 100.0
)

// QualityAdvisor flags uploads that are likely to confuse the classifier:
// too dark, overexposed, or blurry. Results are advisory strings attached
// to the identification response.
type QualityAdvisor struct{}

func NewQualityAdvisor() *QualityAdvisor {
	return &QualityAdvisor{}
}

// Advise returns human-readable warnings for the given image, or an empty
// slice when nothing looks off.
func (q *QualityAdvisor) Advise(img image.Image) []string {
	warnings := []string{}
	if img == nil {
		return warnings
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return warnings
	}

	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	luminance := averageLuminance(gray)
	switch {
	case luminance < darkLuminance:
		warnings = append(warnings, "image looks very dark; identification may be unreliable")
	case luminance > brightLuminance:
		warnings = append(warnings, "image looks overexposed; identification may be unreliable")
	}

	if laplacianVariance(gray) <= blurVariance {
		warnings = append(warnings, "image looks blurry; identification may be unreliable")
	}

	return warnings
}

// averageLuminance returns the mean gray value normalized to [0, 1].
func averageLuminance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	values := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			values = append(values, float64(gray.GrayAt(x, y).Y)/255.0)
		}
	}
	return stat.Mean(values, nil)
}

// laplacianVariance measures sharpness: the variance of a 4-neighbor
// Laplacian over the grayscale image. Low variance means few edges,
// which for a photograph means blur.
func laplacianVariance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return 0
	}

	responses := make([]float64, 0, (width-2)*(height-2))
	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			lap := float64(gray.GrayAt(x-1, y).Y) +
				float64(gray.GrayAt(x+1, y).Y) +
				float64(gray.GrayAt(x, y-1).Y) +
				float64(gray.GrayAt(x, y+1).Y) -
				4*center
			responses = append(responses, lap)
		}
	}
	return stat.Variance(responses, nil)
}
