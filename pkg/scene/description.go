package scene

import (
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
	"github.com/df07/go-simple-raytracer/pkg/loaders"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

// LoadFile loads a JSON scene file and builds a validated scene from it
func LoadFile(filename string) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}

	s, err := FromDescription(desc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// FromDescription builds a scene from a parsed scene file and validates it
func FromDescription(desc *loaders.SceneFile) (*Scene, error) {
	s := New(desc.Width, desc.Height, desc.FieldOfView)
	s.Name = desc.Name

	for i, spec := range desc.Objects {
		object, err := buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.AddObject(object)
	}

	for i, spec := range desc.Lights {
		light, err := buildLight(spec)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func buildObject(spec loaders.ObjectSpec) (geometry.Primitive, error) {
	mat, err := buildMaterial(spec.Material)
	if err != nil {
		return nil, err
	}

	switch spec.Type {
	case "sphere":
		return geometry.NewSphere(core.Vec3FromArray(spec.Center), spec.Radius, mat), nil
	case "plane":
		return geometry.NewPlane(core.Vec3FromArray(spec.Point), core.Vec3FromArray(spec.Normal), mat), nil
	default:
		return nil, fmt.Errorf("unknown object type %q", spec.Type)
	}
}

func buildMaterial(spec loaders.MaterialSpec) (*material.Material, error) {
	color := core.NewColor(uint8(spec.Color[0]), uint8(spec.Color[1]), uint8(spec.Color[2]))

	var texture material.Texture
	switch spec.Texture {
	case "", "solid":
		texture = material.NewSolidColor(color)
	case "checkerboard":
		texture = material.NewCheckerboardTexture(color, spec.CellSize[0], spec.CellSize[1])
	case "image":
		if spec.Image == "" {
			return nil, fmt.Errorf("image texture needs an image path")
		}
		img, err := loaders.LoadImage(spec.Image)
		if err != nil {
			return nil, err
		}
		texture = material.NewImageTexture(img.Width, img.Height, img.Pixels)
	default:
		return nil, fmt.Errorf("unknown texture %q", spec.Texture)
	}

	surface := material.Diffuse()
	if spec.Reflectivity != 0 {
		surface = material.Reflective(spec.Reflectivity)
	}

	albedo, glossiness := 1.0, 1.0
	if spec.Albedo != nil {
		albedo = *spec.Albedo
	}
	if spec.Glossiness != nil {
		glossiness = *spec.Glossiness
	}

	return material.New(texture, surface, albedo, glossiness), nil
}

func buildLight(spec loaders.LightSpec) (lights.Light, error) {
	color := core.NewColor(uint8(spec.Color[0]), uint8(spec.Color[1]), uint8(spec.Color[2]))

	switch lights.LightType(spec.Type) {
	case lights.LightTypeDirectional:
		return lights.NewDirectionalLight(core.Vec3FromArray(spec.Direction), color, spec.Intensity), nil
	case lights.LightTypeSpherical:
		return lights.NewSphericalLight(core.Vec3FromArray(spec.Position), color, spec.Intensity), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", spec.Type)
	}
}
