package material

import (
	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Texture maps a surface coordinate to a color
type Texture interface {
	ColorAt(uv core.Vec2) core.Color
}

// SurfaceKind distinguishes how a surface responds to incoming light
type SurfaceKind int

const (
	SurfaceDiffuse SurfaceKind = iota
	SurfaceReflective
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceDiffuse:
		return "diffuse"
	case SurfaceReflective:
		return "reflective"
	default:
		return "unknown"
	}
}

// Surface is either diffuse or a reflective surface with a reflectivity in [0, 1]
type Surface struct {
	Kind         SurfaceKind
	Reflectivity float64 // Only meaningful for SurfaceReflective
}

// Diffuse returns a purely diffuse surface
func Diffuse() Surface {
	return Surface{Kind: SurfaceDiffuse}
}

// Reflective returns a mirror-like surface blending reflectivity of the reflected color
func Reflective(reflectivity float64) Surface {
	return Surface{Kind: SurfaceReflective, Reflectivity: reflectivity}
}

// IsReflective reports whether secondary reflection rays should be cast
func (s Surface) IsReflective() bool {
	return s.Kind == SurfaceReflective && s.Reflectivity > 0
}
