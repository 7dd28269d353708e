// Package annotate draws text overlays onto rendered images.
package annotate

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const padding = 3

var (
	colorText   = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorBanner = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// bannerOpacity is the banner's weight when blended over the image, out of 255
const bannerOpacity = 180

var defaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// imageDisplay adapts an *image.RGBA to the drivers.Displayer interface tinyfont draws on
type imageDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*imageDisplay)(nil)

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	b := d.img.Bounds()
	px, py := b.Min.X+int(x), b.Min.Y+int(y)
	if !(image.Point{X: px, Y: py}.In(b)) {
		return
	}
	d.img.SetRGBA(px, py, c)
}

func (d *imageDisplay) Display() error {
	return nil
}

// Caption draws text on a translucent banner along the bottom edge of img.
// Text wider than the image is truncated. Images too small to hold a line are left untouched.
func Caption(img *image.RGBA, text string) {
	if img == nil || text == "" {
		return
	}

	font := defaultFont
	lineHeight := int(font.GetYAdvance())
	bannerHeight := lineHeight + 2*padding

	b := img.Bounds()
	if b.Dy() < bannerHeight || b.Dx() <= 2*padding || b.Dx() > 1<<15-1 || b.Dy() > 1<<15-1 {
		return
	}

	text = truncateToWidth(font, text, b.Dx()-2*padding)
	if text == "" {
		return
	}

	top := b.Max.Y - bannerHeight
	for y := top; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, blend(img.RGBAAt(x, y), colorBanner, bannerOpacity))
		}
	}

	// WriteLine positions text by its baseline
	d := &imageDisplay{img: img}
	baseline := int16(b.Dy() - padding - lineHeight/4)
	tinyfont.WriteLine(d, font, padding, baseline, text, colorText)
}

// TextWidth returns the rendered width of text in pixels
func TextWidth(text string) int {
	w, _ := tinyfont.LineWidth(defaultFont, text)
	return int(w)
}

func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	w, _ := tinyfont.LineWidth(f, s)
	if int(w) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		w, _ = tinyfont.LineWidth(f, string(r)+"...")
		if int(w) <= maxW {
			return string(r) + "..."
		}
	}
	return ""
}

func blend(base, over color.RGBA, alpha uint32) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8((uint32(a)*(255-alpha) + uint32(b)*alpha) / 255)
	}
	return color.RGBA{R: mix(base.R, over.R), G: mix(base.G, over.G), B: mix(base.B, over.B), A: 0xff}
}
