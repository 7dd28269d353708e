package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects with the sphere.
// The reported distance is the nearer root, which is negative when the ray
// starts inside the sphere; callers discard negative distances.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)

	// Projection of l onto the ray
	adj := l.Dot(ray.Direction)

	// Squared distance from the center to the ray line
	d2 := l.Dot(l) - adj*adj
	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return 0, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := adj - thc
	t1 := adj + thc

	// Sphere is entirely behind the ray origin
	if t0 < 0 && t1 < 0 {
		return 0, false
	}

	return math.Min(t0, t1), true
}

// SurfaceNormal returns the outward normal at hitPoint
func (s *Sphere) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return hitPoint.Subtract(s.Center).Normalize()
}

// TextureCoords maps hitPoint to longitude/latitude, both in [0, 1]
func (s *Sphere) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	hitVec := hitPoint.Subtract(s.Center)
	// Clamp guards acos against rounding just outside [-1, 1]
	cosLat := math.Max(-1, math.Min(1, hitVec.Y/s.Radius))
	return core.Vec2{
		X: (1 + math.Atan2(hitVec.Z, hitVec.X)/math.Pi) * 0.5,
		Y: math.Acos(cosLat) / math.Pi,
	}
}

// TextureColor samples the sphere's material at hitPoint
func (s *Sphere) TextureColor(hitPoint core.Vec3) core.Color {
	return s.Mat.ColorAt(s.TextureCoords(hitPoint))
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.Mat
}

// Validate checks the radius and material
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere radius must be positive, got %v", s.Radius)
	}
	if err := s.Mat.Validate(); err != nil {
		return fmt.Errorf("sphere material: %w", err)
	}
	return nil
}
