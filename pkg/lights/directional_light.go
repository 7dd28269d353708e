package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along Direction, like the sun
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels
	Col       core.Color
	Power     float64
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Col:       color,
		Power:     intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

func (dl *DirectionalLight) Color() core.Color {
	return dl.Col
}

// Intensity is constant for directional lights
func (dl *DirectionalLight) Intensity(_ core.Vec3) float64 {
	return dl.Power
}

// DirectionToLight is the reverse of the light's direction, independent of point
func (dl *DirectionalLight) DirectionToLight(_ core.Vec3) core.Vec3 {
	return dl.Direction.Negate().Normalize()
}

func (dl *DirectionalLight) DistanceToLight(_ core.Vec3) float64 {
	return math.Inf(1)
}

func (dl *DirectionalLight) Validate() error {
	if dl.Direction.IsZero() {
		return errors.New("directional light direction must be non-zero")
	}
	if dl.Power < 0 {
		return fmt.Errorf("light intensity must be non-negative, got %v", dl.Power)
	}
	return nil
}
