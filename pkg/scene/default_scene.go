package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

type builtinScene struct {
	info        SceneInfo
	constructor func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			Name:        "Default Scene",
			Description: "Three spheres over a checkered ground lit by a sun and a lamp",
		},
		constructor: NewDefaultScene,
	},
	"red-sphere": {
		info: SceneInfo{
			Name:        "Red Sphere",
			Description: "A single red sphere lit head-on by a directional light",
		},
		constructor: NewRedSphereScene,
	},
	"checker": {
		info: SceneInfo{
			Name:        "Checker Ground",
			Description: "A checkered ground plane seen from above",
		},
		constructor: NewCheckerScene,
	},
	"mirrors": {
		info: SceneInfo{
			Name:        "Facing Mirrors",
			Description: "A sphere between two parallel mirrors",
		},
		constructor: NewMirrorScene,
	},
}

// Builtin returns a new instance of the named built-in scene
func Builtin(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinNames())
	}
	s := builtin.constructor()
	s.Name = name
	return s, nil
}

// BuiltinNames returns the built-in scene identifiers in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultScene creates a default scene with spheres, a checkered ground and two lights
func NewDefaultScene() *Scene {
	s := New(800, 600, 60)

	red := material.NewSolid(core.NewColor(220, 40, 40), material.Diffuse(), 1, 2)
	mirror := material.NewSolid(core.NewColor(200, 200, 200), material.Reflective(0.6), 1, 8)
	blueChecker := material.New(material.NewCheckerboardTexture(core.NewColor(60, 90, 230), 0.1, 0.1),
		material.Diffuse(), 1, 1)
	ground := material.New(material.NewCheckerboardTexture(core.NewColor(230, 230, 230), 1, 1),
		material.Reflective(0.15), 1, 1)

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -8), 1.5, red))
	s.AddObject(geometry.NewSphere(core.NewVec3(3.5, 0.5, -10), 2, mirror))
	s.AddObject(geometry.NewSphere(core.NewVec3(-3, -0.5, -7), 1, blueChecker))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), ground))

	// Sun from behind the camera's left shoulder, warm lamp on the right
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.25, -1, -1), core.NewColor(255, 255, 255), 0.8))
	s.AddLight(lights.NewSphericalLight(core.NewVec3(5, 6, -4), core.NewColor(255, 210, 160), 2000))

	return s
}

// NewRedSphereScene creates a single red sphere facing a directional light
// that shines straight down the view axis
func NewRedSphereScene() *Scene {
	s := New(600, 400, 50)

	red := material.NewSolid(core.NewColor(255, 0, 0), material.Diffuse(), 1, 1)
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -10), 5, red))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.NewColor(255, 255, 255), 1))

	return s
}

// NewCheckerScene creates a checkered ground plane below the camera lit from directly above
func NewCheckerScene() *Scene {
	s := New(400, 300, 90)

	ground := material.New(material.NewCheckerboardTexture(core.NewColor(200, 200, 200), 1, 1),
		material.Diffuse(), 1, 1)
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -2.5, 0), core.NewVec3(0, 1, 0), ground))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewColor(255, 255, 255), 1))

	return s
}

// NewMirrorScene places a sphere between two facing mirrors, so reflections
// bounce until the depth limit
func NewMirrorScene() *Scene {
	s := New(600, 400, 70)

	front := material.NewSolid(core.NewColor(180, 220, 200), material.Reflective(0.9), 1, 1)
	back := material.NewSolid(core.NewColor(180, 220, 200), material.Reflective(0.9), 1, 1)
	ball := material.NewSolid(core.NewColor(240, 160, 30), material.Diffuse(), 1, 3)
	floor := material.New(material.NewCheckerboardTexture(core.NewColor(120, 120, 120), 2, 2),
		material.Diffuse(), 1, 1)

	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1), front))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), back))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -12), 2, ball))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0), floor))

	s.AddLight(lights.NewSphericalLight(core.NewVec3(0, 8, -8), core.NewColor(255, 255, 255), 4000))

	return s
}
