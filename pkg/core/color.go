package core

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB color
type Color struct {
	R, G, B uint8
}

var (
	// Background is the color of rays that escape the scene
	Background = Color{R: 128, G: 128, B: 255}
	// CheckerDark is the fixed dark cell color of checkered textures
	CheckerDark = Color{R: 20, G: 20, B: 20}

	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromFloats clamps each channel to [0, 255] and rounds to the nearest integer
func ColorFromFloats(r, g, b float64) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(v float64) uint8 {
	// NaN fails both comparisons, so check it first
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Multiply returns the channel-wise product of two colors, normalized back to [0, 255]
func (c Color) Multiply(other Color) Color {
	return ColorFromFloats(
		float64(c.R)*float64(other.R)/255,
		float64(c.G)*float64(other.G)/255,
		float64(c.B)*float64(other.B)/255,
	)
}

// Scale returns the color with every channel multiplied by factor
func (c Color) Scale(factor float64) Color {
	return ColorFromFloats(float64(c.R)*factor, float64(c.G)*factor, float64(c.B)*factor)
}

// Add returns the saturating channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return ColorFromFloats(
		float64(c.R)+float64(other.R),
		float64(c.G)+float64(other.G),
		float64(c.B)+float64(other.B),
	)
}

// Floats returns the channels as float64 values in [0, 255]
func (c Color) Floats() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// ToRGBA converts to an opaque image color
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
