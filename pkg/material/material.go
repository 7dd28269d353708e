package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Material describes how a primitive's surface is shaded.
//
// Albedo scales the light a surface reflects. At 1 the diffuse term is the plain
// cos^glossiness · intensity · color product; other values darken or brighten it
// beyond that formula. Built-in scenes and scene files default to 1.
type Material struct {
	Texture    Texture
	Albedo     float64 // Reflected-light factor, 1 leaves the shading unscaled
	Glossiness float64 // Phong exponent, 1 is pure Lambertian
	Surface    Surface
}

// New creates a material from a texture
func New(texture Texture, surface Surface, albedo, glossiness float64) *Material {
	return &Material{
		Texture:    texture,
		Albedo:     albedo,
		Glossiness: glossiness,
		Surface:    surface,
	}
}

// NewSolid creates a material with a constant color texture
func NewSolid(color core.Color, surface Surface, albedo, glossiness float64) *Material {
	return New(NewSolidColor(color), surface, albedo, glossiness)
}

// ColorAt samples the material's texture
func (m *Material) ColorAt(uv core.Vec2) core.Color {
	return m.Texture.ColorAt(uv)
}

// Validate checks the material's attributes are within range
func (m *Material) Validate() error {
	if m == nil {
		return errors.New("material is nil")
	}
	if m.Texture == nil {
		return errors.New("material has no texture")
	}
	if m.Albedo < 0 {
		return fmt.Errorf("albedo must be non-negative, got %v", m.Albedo)
	}
	if m.Glossiness <= 0 {
		return fmt.Errorf("glossiness must be positive, got %v", m.Glossiness)
	}
	if m.Surface.Kind == SurfaceReflective && (m.Surface.Reflectivity < 0 || m.Surface.Reflectivity > 1) {
		return fmt.Errorf("reflectivity must be in [0, 1], got %v", m.Surface.Reflectivity)
	}
	switch tex := m.Texture.(type) {
	case *Checkerboard:
		if tex.CellWidth <= 0 || tex.CellHeight <= 0 {
			return fmt.Errorf("checkerboard cells must be positive, got %vx%v", tex.CellWidth, tex.CellHeight)
		}
	case *ImageTexture:
		if tex.Width <= 0 || tex.Height <= 0 || len(tex.Pixels) != tex.Width*tex.Height {
			return fmt.Errorf("image texture has %d pixels for a %dx%d image", len(tex.Pixels), tex.Width, tex.Height)
		}
	}
	return nil
}
