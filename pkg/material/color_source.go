package material

import (
	"github.com/df07/go-simple-raytracer/pkg/core"
)

// SolidColor is a texture with one color everywhere
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color regardless of UV
func (s *SolidColor) ColorAt(uv core.Vec2) core.Color {
	return s.Color
}
