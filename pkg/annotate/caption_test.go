package annotate

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func filledImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCaption_DrawsBannerAndText(t *testing.T) {
	sky := color.RGBA{R: 128, G: 128, B: 255, A: 255}
	img := filledImage(200, 60, sky)

	Caption(img, "default 200x60")

	// Top of the image is untouched
	for x := 0; x < 200; x++ {
		if got := img.RGBAAt(x, 0); got != sky {
			t.Fatalf("Pixel (%d,0) = %v, want unchanged", x, got)
		}
	}

	// Bottom edge is darkened by the banner
	if got := img.RGBAAt(199, 59); got.B >= sky.B {
		t.Errorf("Expected banner to darken the bottom edge, got %v", got)
	}

	textPixels := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) == colorText {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Error("Expected caption text to be drawn")
	}
}

func TestCaption_NoOp(t *testing.T) {
	sky := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	tests := []struct {
		name string
		img  *image.RGBA
		text string
	}{
		{"empty text", filledImage(100, 40, sky), ""},
		{"image too short", filledImage(100, 4, sky), "hello"},
		{"image too narrow", filledImage(4, 40, sky), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Caption(tt.img, tt.text)
			b := tt.img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if got := tt.img.RGBAAt(x, y); got != sky {
						t.Fatalf("Pixel (%d,%d) = %v, want unchanged", x, y, got)
					}
				}
			}
		})
	}

	Caption(nil, "nothing to draw on")
}

func TestTruncateToWidth(t *testing.T) {
	long := strings.Repeat("wide caption ", 20)
	maxW := 80

	got := truncateToWidth(defaultFont, long, maxW)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected truncated text to end with an ellipsis, got %q", got)
	}
	if w := TextWidth(got); w > maxW {
		t.Errorf("Truncated text is %dpx wide, want <= %d", w, maxW)
	}

	if got := truncateToWidth(defaultFont, "ok", maxW); got != "ok" {
		t.Errorf("Short text should be unchanged, got %q", got)
	}
	if got := truncateToWidth(defaultFont, "ok", 0); got != "" {
		t.Errorf("Expected empty result for zero width, got %q", got)
	}
}

func TestImageDisplay_ClipsOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	d := &imageDisplay{img: img}

	w, h := d.Size()
	if w != 4 || h != 4 {
		t.Errorf("Size() = %d,%d, want 4,4", w, h)
	}

	d.SetPixel(-1, 0, colorText)
	d.SetPixel(4, 4, colorText)
	d.SetPixel(2, 3, colorText)
	if img.RGBAAt(2, 3) != colorText {
		t.Error("Expected in-bounds pixel to be set")
	}
	if err := d.Display(); err != nil {
		t.Errorf("Display() error: %v", err)
	}
}
