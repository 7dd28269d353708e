package renderer

import (
	"image"
	"math"
	"time"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth       int        // Maximum number of reflection bounces
	ShadowBias     float64    // Offset along the normal for shadow ray origins
	ReflectionBias float64    // Offset along the normal for reflection ray origins
	Background     core.Color // Color of rays that hit nothing
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:       5,
		ShadowBias:     1e-9,
		ReflectionBias: 1e-9,
		Background:     core.Background,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWidth() int
	GetHeight() int
	GetFieldOfView() float64
	GetObjects() []geometry.Primitive
	GetLights() []lights.Light
}

// Intersection is the nearest hit of a ray.
// Index refers to the scene's object list.
type Intersection struct {
	Distance float64
	Index    int
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	camera *Camera
	config RenderConfig
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(scene.GetWidth(), scene.GetHeight(), scene.GetFieldOfView()),
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the rendering configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// Stats returns the counters accumulated so far
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// Trace finds the nearest object hit by ray at a non-negative distance.
// On equal distances the object added first wins.
func (rt *Raytracer) Trace(ray core.Ray) (Intersection, bool) {
	closest := Intersection{Distance: math.Inf(1), Index: -1}

	for i, object := range rt.scene.GetObjects() {
		distance, isHit := object.Intersect(ray)
		if !isHit || distance < 0 {
			continue
		}
		if distance < closest.Distance {
			closest = Intersection{Distance: distance, Index: i}
		}
	}

	return closest, closest.Index >= 0
}

// Shade computes the color seen along ray at hit. depth counts the reflection
// bounces that led to this ray, 0 for primary rays.
func (rt *Raytracer) Shade(ray core.Ray, hit Intersection, depth int) core.Color {
	object := rt.scene.GetObjects()[hit.Index]
	mat := object.Material()

	hitPoint := ray.At(hit.Distance)
	surfaceNormal := object.SurfaceNormal(hitPoint)
	objectColor := object.TextureColor(hitPoint).Floats()

	var color [3]float64
	for _, light := range rt.scene.GetLights() {
		directionToLight := light.DirectionToLight(hitPoint)

		// Surfaces facing away get nothing, so skip the shadow probe
		cosine := surfaceNormal.Dot(directionToLight)
		if cosine <= 0 {
			continue
		}
		if !rt.inLight(hitPoint, surfaceNormal, directionToLight, light.DistanceToLight(hitPoint)) {
			continue
		}

		intensity := math.Pow(cosine, mat.Glossiness) * light.Intensity(hitPoint) * mat.Albedo
		lightColor := light.Color().Floats()
		for i := range color {
			color[i] += lightColor[i] * objectColor[i] * intensity / 255
		}
	}

	if mat.Surface.IsReflective() {
		reflectivity := mat.Surface.Reflectivity
		reflected := rt.reflectedColor(surfaceNormal, ray.Direction, hitPoint, depth).Floats()
		for i := range color {
			color[i] = color[i]*(1-reflectivity) + reflected[i]*reflectivity
		}
	}

	return core.ColorFromFloats(color[0], color[1], color[2])
}

// inLight casts a shadow ray toward the light. Occluders beyond the light do not count.
func (rt *Raytracer) inLight(hitPoint, surfaceNormal, directionToLight core.Vec3, distanceToLight float64) bool {
	shadowRay := core.NewRay(hitPoint.Add(surfaceNormal.Multiply(rt.config.ShadowBias)), directionToLight)
	rt.stats.ShadowRays++

	occluder, isHit := rt.Trace(shadowRay)
	return !isHit || occluder.Distance > distanceToLight
}

// reflectedColor follows the mirror reflection at hitPoint, falling back to the
// background once the depth limit is reached
func (rt *Raytracer) reflectedColor(surfaceNormal, incident, hitPoint core.Vec3, depth int) core.Color {
	if depth >= rt.config.MaxDepth {
		rt.stats.DepthLimitHits++
		return rt.config.Background
	}

	reflectionRay := core.NewReflectionRay(surfaceNormal, incident, hitPoint, rt.config.ReflectionBias)
	rt.stats.ReflectionRays++

	hit, isHit := rt.Trace(reflectionRay)
	if !isHit {
		return rt.config.Background
	}
	return rt.Shade(reflectionRay, hit, depth+1)
}

// RenderPixel returns the final color of pixel (x, y)
func (rt *Raytracer) RenderPixel(x, y int) core.Color {
	ray := rt.camera.GetRay(x, y)
	rt.stats.PrimaryRays++

	hit, isHit := rt.Trace(ray)
	if !isHit {
		return rt.config.Background
	}
	rt.stats.PixelsHit++
	return rt.Shade(ray, hit, 0)
}

// Render renders every pixel and returns the finished image
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.scene.GetWidth(), rt.scene.GetHeight()
	rt.stats = RenderStats{TotalPixels: width * height}

	rt.logger.Printf("Rendering %dx%d (fov %.1f°, %d objects, %d lights)...\n",
		width, height, rt.scene.GetFieldOfView(), len(rt.scene.GetObjects()), len(rt.scene.GetLights()))

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, rt.RenderPixel(x, y).ToRGBA())
		}
	}

	rt.stats.Duration = time.Since(startTime)
	rt.logger.Printf("Rendered the image in %v (%d rays: %d primary, %d shadow, %d reflection)\n",
		rt.stats.Duration, rt.stats.TotalRays(), rt.stats.PrimaryRays, rt.stats.ShadowRays, rt.stats.ReflectionRays)

	return img, rt.stats
}
