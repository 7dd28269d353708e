package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/lights"
	"github.com/df07/go-simple-raytracer/pkg/loaders"
	"github.com/df07/go-simple-raytracer/pkg/material"
)

func parse(t *testing.T, input string) *loaders.SceneFile {
	t.Helper()
	desc, err := loaders.ParseSceneFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSceneFile() error: %v", err)
	}
	return desc
}

func TestFromDescription(t *testing.T) {
	desc := parse(t, `{
		"name": "two-things",
		"width": 64, "height": 48, "fov": 75,
		"objects": [
			{"type": "sphere", "center": [0, 0, -5], "radius": 1,
			 "material": {"color": [10, 20, 30], "albedo": 0.5, "glossiness": 4}},
			{"type": "plane", "point": [0, -1, 0], "normal": [0, 2, 0],
			 "material": {"texture": "checkerboard", "color": [255, 255, 255], "cellSize": [0.5, 2], "reflectivity": 0.3}}
		],
		"lights": [
			{"type": "directional", "direction": [0, -1, 0], "color": [255, 255, 255], "intensity": 1},
			{"type": "spherical", "position": [1, 2, 3], "color": [255, 0, 0], "intensity": 100}
		]
	}`)

	s, err := FromDescription(desc)
	if err != nil {
		t.Fatalf("FromDescription() error: %v", err)
	}

	if s.Name != "two-things" || s.Width != 64 || s.Height != 48 || s.FieldOfView != 75 {
		t.Errorf("Unexpected scene header %q %dx%d fov %v", s.Name, s.Width, s.Height, s.FieldOfView)
	}
	if len(s.Objects) != 2 || len(s.Lights) != 2 {
		t.Fatalf("Expected 2 objects and 2 lights, got %d and %d", len(s.Objects), len(s.Lights))
	}

	sphere, ok := s.Objects[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first object to be a sphere, got %T", s.Objects[0])
	}
	if sphere.Mat.Albedo != 0.5 || sphere.Mat.Glossiness != 4 || sphere.Mat.Surface.IsReflective() {
		t.Errorf("Unexpected sphere material %+v", sphere.Mat)
	}

	plane, ok := s.Objects[1].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected second object to be a plane, got %T", s.Objects[1])
	}
	if plane.Normal.Y != 1 {
		t.Errorf("Expected plane normal to be normalized, got %v", plane.Normal)
	}
	checker, ok := plane.Mat.Texture.(*material.Checkerboard)
	if !ok {
		t.Fatalf("Expected checkerboard texture, got %T", plane.Mat.Texture)
	}
	if checker.CellWidth != 0.5 || checker.CellHeight != 2 {
		t.Errorf("Unexpected cell size %vx%v", checker.CellWidth, checker.CellHeight)
	}
	if plane.Mat.Albedo != 1 || plane.Mat.Glossiness != 1 {
		t.Errorf("Expected default albedo and glossiness of 1, got %v and %v", plane.Mat.Albedo, plane.Mat.Glossiness)
	}
	if plane.Mat.Surface.Kind != material.SurfaceReflective || plane.Mat.Surface.Reflectivity != 0.3 {
		t.Errorf("Unexpected plane surface %+v", plane.Mat.Surface)
	}

	if s.Lights[0].Type() != lights.LightTypeDirectional || s.Lights[1].Type() != lights.LightTypeSpherical {
		t.Errorf("Unexpected light types %v, %v", s.Lights[0].Type(), s.Lights[1].Type())
	}
}

func TestFromDescription_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown object", `{"width": 4, "height": 4, "fov": 60, "objects": [{"type": "cube"}]}`, "unknown object type"},
		{"unknown texture", `{"width": 4, "height": 4, "fov": 60, "objects": [{"type": "sphere", "radius": 1, "material": {"texture": "marble"}}]}`, "unknown texture"},
		{"unknown light", `{"width": 4, "height": 4, "fov": 60, "lights": [{"type": "area"}]}`, "unknown light type"},
		{"zero radius", `{"width": 4, "height": 4, "fov": 60, "objects": [{"type": "sphere", "radius": 0}]}`, "radius"},
		{"zero glossiness", `{"width": 4, "height": 4, "fov": 60, "objects": [{"type": "sphere", "radius": 1, "material": {"glossiness": 0}}]}`, "glossiness"},
		{"checker without cell size", `{"width": 4, "height": 4, "fov": 60, "objects": [{"type": "plane", "normal": [0, 1, 0], "material": {"texture": "checkerboard"}}]}`, "checkerboard"},
		{"missing dimensions", `{"fov": 60}`, "dimensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDescription(parse(t, tt.input))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	content := `{"width": 8, "height": 6, "fov": 60,
		"objects": [{"type": "sphere", "center": [0, 0, -3], "radius": 1, "material": {"color": [0, 255, 0]}}],
		"lights": [{"type": "directional", "direction": [0, 0, -1], "color": [255, 255, 255], "intensity": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if s.Name != "tiny" || len(s.Objects) != 1 {
		t.Errorf("Unexpected scene %q with %d objects", s.Name, len(s.Objects))
	}

	s, err = Load("red-sphere")
	if err != nil {
		t.Fatalf("Load(red-sphere) error: %v", err)
	}
	if s.Name != "red-sphere" {
		t.Errorf("Expected built-in red-sphere, got %q", s.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for a missing scene file")
	}
}

func TestExampleSceneFiles(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) == 0 {
		t.Skip("no example scenes found")
	}

	for _, info := range scenes {
		t.Run(info.Name, func(t *testing.T) {
			if _, err := LoadFile(info.FilePath); err != nil {
				t.Errorf("LoadFile(%q) error: %v", info.FilePath, err)
			}
		})
	}
}

func TestLoadFile_ImageTexture(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "stripes.png"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Encode: %v", err)
	}
	f.Close()

	path := filepath.Join(dir, "textured.json")
	content := `{"width": 8, "height": 6, "fov": 60,
		"objects": [{"type": "sphere", "center": [0, 0, -3], "radius": 1,
			"material": {"texture": "image", "image": "stripes.png"}}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	sphere := s.Objects[0].(*geometry.Sphere)
	texture, ok := sphere.Mat.Texture.(*material.ImageTexture)
	if !ok {
		t.Fatalf("Expected image texture, got %T", sphere.Mat.Texture)
	}
	if texture.Width != 2 || texture.Height != 1 {
		t.Errorf("Expected 2x1 texture, got %dx%d", texture.Width, texture.Height)
	}

	missing := filepath.Join(dir, "missing-image.json")
	content = `{"width": 8, "height": 6, "fov": 60,
		"objects": [{"type": "sphere", "radius": 1, "material": {"texture": "image", "image": "nope.png"}}]}`
	if err := os.WriteFile(missing, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(missing); err == nil {
		t.Error("Expected error for a missing texture image")
	}
}
