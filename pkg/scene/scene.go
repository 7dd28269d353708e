package scene

import (
	"fmt"
	"image"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FieldOfView float64 // Horizontal field of view in degrees
	Objects     []geometry.Primitive
	Lights      []lights.Light
}

// New creates an empty scene
func New(width, height int, fov float64) *Scene {
	return &Scene{
		Width:       width,
		Height:      height,
		FieldOfView: fov,
		Objects:     make([]geometry.Primitive, 0),
		Lights:      make([]lights.Light, 0),
	}
}

// AddObject appends a primitive to the scene
func (s *Scene) AddObject(object geometry.Primitive) {
	s.Objects = append(s.Objects, object)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// GetWidth returns the image width
func (s *Scene) GetWidth() int { return s.Width }

// GetHeight returns the image height
func (s *Scene) GetHeight() int { return s.Height }

// GetFieldOfView returns the horizontal field of view in degrees
func (s *Scene) GetFieldOfView() float64 { return s.FieldOfView }

// GetObjects returns the primitives in insertion order
func (s *Scene) GetObjects() []geometry.Primitive { return s.Objects }

// GetLights returns the lights in insertion order
func (s *Scene) GetLights() []lights.Light { return s.Lights }

// Validate checks the image dimensions, field of view and every object and light
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if !(s.FieldOfView > 0 && s.FieldOfView < 180) {
		return fmt.Errorf("field of view must be in (0, 180) degrees, got %v", s.FieldOfView)
	}

	for i, object := range s.Objects {
		if object == nil {
			return fmt.Errorf("object %d is nil", i)
		}
		if err := object.Validate(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	for i, light := range s.Lights {
		if light == nil {
			return fmt.Errorf("light %d is nil", i)
		}
		if err := light.Validate(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}

// Render validates the scene and renders it into a Width x Height RGBA image
func (s *Scene) Render(logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	if err := s.Validate(); err != nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	raytracer := renderer.NewRaytracer(s, logger)
	img, stats := raytracer.Render()
	return img, stats, nil
}
