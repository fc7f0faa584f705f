package imageprep

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

// gradientImage builds an NRGBA test image with enough structure that
// resampling and re-encoding have something to chew on.
func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) % 256),
				A: uint8(128 + (x % 128)), // partial alpha, must be flattened
			})
		}
	}
	return img
}

func TestNormalize_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		wantW  int
		wantH  int
	}{
		{
			name:  "Wide image scaled to threshold",
			width: 600, height: 400,
			wantW: 300, wantH: 200,
		},
		{
			name:  "Tall image scaled to threshold",
			width: 150, height: 900,
			wantW: 50, wantH: 300,
		},
		{
			name:  "Small image never upscaled",
			width: 100, height: 50,
			wantW: 100, wantH: 50,
		},
		{
			name:  "Exactly at threshold left alone",
			width: 300, height: 300,
			wantW: 300, wantH: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(gradientImage(tt.width, tt.height))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}

			decoded, err := jpeg.Decode(bytes.NewReader(result.Data))
			if err != nil {
				t.Fatalf("output is not a valid JPEG: %v", err)
			}

			bounds := decoded.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("output dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
			if bounds.Dx() > 300 || bounds.Dy() > 300 {
				t.Errorf("longer dimension exceeds threshold: %dx%d", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestNormalize_FlattensColorModes(t *testing.T) {
	// Grayscale and paletted inputs must still come out as decodable JPEG.
	gray := image.NewGray(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			gray.SetGray(x, y, color.Gray{Y: uint8((x * y) % 256)})
		}
	}
	paletted := image.NewPaletted(image.Rect(0, 0, 64, 64), color.Palette{
		color.RGBA{0, 128, 0, 255},
		color.RGBA{200, 200, 200, 255},
	})

	for name, img := range map[string]image.Image{"gray": gray, "paletted": paletted} {
		result, err := Normalize(img)
		if err != nil {
			t.Fatalf("Normalize(%s): %v", name, err)
		}
		if result.MIMEType != "image/jpeg" {
			t.Errorf("MIMEType = %q, want image/jpeg", result.MIMEType)
		}
		if _, err := jpeg.Decode(bytes.NewReader(result.Data)); err != nil {
			t.Errorf("output for %s is not a valid JPEG: %v", name, err)
		}
	}
}

func TestNormalize_Base64RoundTrip(t *testing.T) {
	result, err := Normalize(gradientImage(50, 50))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	encoded := result.Base64()
	if encoded == "" {
		t.Fatal("Base64() returned empty string")
	}
	if len(result.Data) == 0 {
		t.Fatal("Data is empty")
	}
}

func TestNormalize_NilImage(t *testing.T) {
	if _, err := Normalize(nil); err == nil {
		t.Fatal("expected error for nil image")
	}
}

func TestQualityAdvisor(t *testing.T) {
	advisor := NewQualityAdvisor()

	// A flat dark image: dark and blurry warnings expected.
	dark := image.NewGray(image.Rect(0, 0, 100, 100))
	warnings := advisor.Advise(dark)
	if len(warnings) != 2 {
		t.Errorf("dark flat image warnings = %v, want dark + blurry", warnings)
	}

	// A high-contrast checkerboard: sharp and mid-luminance, no warnings.
	board := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if (x+y)%2 == 0 {
				board.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	if warnings := advisor.Advise(board); len(warnings) != 0 {
		t.Errorf("checkerboard warnings = %v, want none", warnings)
	}

	if warnings := advisor.Advise(nil); len(warnings) != 0 {
		t.Errorf("nil image warnings = %v, want none", warnings)
	}
}
