package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	PixelsHit      int           // Pixels whose primary ray hit an object
	PrimaryRays    int           // Rays cast from the camera
	ShadowRays     int           // Occlusion probes toward lights
	ReflectionRays int           // Secondary rays cast off reflective surfaces
	DepthLimitHits int           // Reflections cut short by the recursion limit
	Duration       time.Duration // Wall time of the render
}

// TotalRays returns the number of rays traced against the scene
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ShadowRays + s.ReflectionRays
}
