package lights

import "github.com/df07/go-simple-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light interface for sources that illuminate surfaces directly
type Light interface {
	Type() LightType

	Color() core.Color

	// Intensity returns the light's strength arriving at point
	Intensity(point core.Vec3) float64

	// DirectionToLight returns the unit direction FROM point TO the light
	DirectionToLight(point core.Vec3) core.Vec3

	// DistanceToLight returns how far the light is from point, +Inf for lights at infinity.
	// Occluders further away than this do not shadow point.
	DistanceToLight(point core.Vec3) float64

	Validate() error
}
