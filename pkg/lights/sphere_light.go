package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// SphericalLight is a point light radiating equally in all directions
type SphericalLight struct {
	Position core.Vec3
	Col      core.Color
	Power    float64
}

// NewSphericalLight creates a new point light
func NewSphericalLight(position core.Vec3, color core.Color, intensity float64) *SphericalLight {
	return &SphericalLight{
		Position: position,
		Col:      color,
		Power:    intensity,
	}
}

func (sl *SphericalLight) Type() LightType {
	return LightTypeSpherical
}

func (sl *SphericalLight) Color() core.Color {
	return sl.Col
}

// Intensity falls off with the inverse square of the distance to point
func (sl *SphericalLight) Intensity(point core.Vec3) float64 {
	r2 := sl.Position.Subtract(point).LengthSquared()
	if r2 == 0 {
		return 0
	}
	return sl.Power / (4 * math.Pi * r2)
}

func (sl *SphericalLight) DirectionToLight(point core.Vec3) core.Vec3 {
	return sl.Position.Subtract(point).Normalize()
}

func (sl *SphericalLight) DistanceToLight(point core.Vec3) float64 {
	return sl.Position.Subtract(point).Length()
}

func (sl *SphericalLight) Validate() error {
	if sl.Power < 0 {
		return fmt.Errorf("light intensity must be non-negative, got %v", sl.Power)
	}
	return nil
}
