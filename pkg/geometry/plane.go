package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

// parallelThreshold rejects rays that are nearly parallel to the plane or
// that approach it from behind
const parallelThreshold = 1e-4

// Plane represents an infinite one-sided plane defined by a point and normal.
// Only rays travelling against the normal hit it.
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, the visible side faces this way
	Mat    *material.Material

	xAxis, yAxis core.Vec3 // Texture basis
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	n := normal.Normalize()
	xAxis, yAxis := planeBasis(n)
	return &Plane{
		Point:  point,
		Normal: n,
		Mat:    mat,
		xAxis:  xAxis,
		yAxis:  yAxis,
	}
}

// planeBasis derives two in-plane axes from the normal, falling back to the
// Y reference axis when the normal is parallel to Z
func planeBasis(normal core.Vec3) (core.Vec3, core.Vec3) {
	xAxis := normal.Cross(core.NewVec3(0, 0, 1))
	if xAxis.LengthSquared() < 1e-12 {
		xAxis = normal.Cross(core.NewVec3(0, 1, 0))
	}
	xAxis = xAxis.Normalize()
	return xAxis, normal.Cross(xAxis)
}

// Intersect tests if a ray intersects with the front of the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if denominator > -parallelThreshold {
		return 0, false
	}

	distance := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if distance < 0 {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal returns the plane normal, which is the same everywhere
func (p *Plane) SurfaceNormal(_ core.Vec3) core.Vec3 {
	return p.Normal
}

// TextureCoords projects hitPoint onto the plane's local axes
func (p *Plane) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	xAxis, yAxis := p.xAxis, p.yAxis
	if xAxis.IsZero() {
		// Plane was built without NewPlane
		xAxis, yAxis = planeBasis(p.Normal.Normalize())
	}
	hitVec := hitPoint.Subtract(p.Point)
	return core.Vec2{
		X: hitVec.Dot(xAxis),
		Y: hitVec.Dot(yAxis),
	}
}

// TextureColor samples the plane's material at hitPoint
func (p *Plane) TextureColor(hitPoint core.Vec3) core.Color {
	return p.Mat.ColorAt(p.TextureCoords(hitPoint))
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.Mat
}

// Validate checks the normal and material
func (p *Plane) Validate() error {
	if p.Normal.IsZero() {
		return errors.New("plane normal must be non-zero")
	}
	if err := p.Mat.Validate(); err != nil {
		return fmt.Errorf("plane material: %w", err)
	}
	return nil
}
