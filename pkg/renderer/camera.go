package renderer

import (
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Camera is a pinhole camera at the world origin looking down -Z.
// FieldOfView is the horizontal-plane field of view in degrees.
type Camera struct {
	Width       int
	Height      int
	FieldOfView float64

	fovAdjustment float64
	aspectRatio   float64
}

// NewCamera creates a camera for an image of width x height pixels
func NewCamera(width, height int, fieldOfView float64) *Camera {
	return &Camera{
		Width:         width,
		Height:        height,
		FieldOfView:   fieldOfView,
		fovAdjustment: math.Tan(fieldOfView * math.Pi / 180 / 2),
		aspectRatio:   float64(width) / float64(height),
	}
}

// GetRay generates the primary ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(x, y int) core.Ray {
	sensorX := (((float64(x)+0.5)/float64(c.Width))*2 - 1) * c.aspectRatio * c.fovAdjustment
	sensorY := (1 - ((float64(y)+0.5)/float64(c.Height))*2) * c.fovAdjustment

	return core.NewRay(
		core.NewVec3(0, 0, 0),
		core.NewVec3(sensorX, sensorY, -1).Normalize(),
	)
}
