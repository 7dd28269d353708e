package geometry

import (
	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

// Primitive is a renderable object in the scene
type Primitive interface {
	// Intersect returns the distance along ray to the nearest surface hit.
	// The ray direction must be unit length.
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the unit normal at a point on the surface
	SurfaceNormal(hitPoint core.Vec3) core.Vec3

	// TextureCoords maps a point on the surface to texture space
	TextureCoords(hitPoint core.Vec3) core.Vec2

	// TextureColor samples the material's texture at a point on the surface
	TextureColor(hitPoint core.Vec3) core.Color

	Material() *material.Material

	// Validate reports invalid geometry or material attributes
	Validate() error
}
