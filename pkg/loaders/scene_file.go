package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Vector is a JSON three-element array. Any other length is a decode error.
type Vector [3]float64

// RGB is a JSON 0-255 color triple
type RGB [3]int

// Extent is a JSON two-element [width, height] array
type Extent [2]float64

func (v *Vector) UnmarshalJSON(data []byte) error {
	return decodeFixed(data, v[:], "vector")
}

func (c *RGB) UnmarshalJSON(data []byte) error {
	return decodeFixed(data, c[:], "color")
}

func (e *Extent) UnmarshalJSON(data []byte) error {
	return decodeFixed(data, e[:], "cell size")
}

// decodeFixed decodes a JSON array into dst, which must match its length exactly.
// null leaves dst untouched.
func decodeFixed[T any](data []byte, dst []T, kind string) error {
	if string(data) == "null" {
		return nil
	}
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != len(dst) {
		return fmt.Errorf("%s needs %d elements, got %d", kind, len(dst), len(values))
	}
	copy(dst, values)
	return nil
}

// SceneFile is the on-disk JSON description of a scene.
type SceneFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Group       string       `json:"group"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	FieldOfView float64      `json:"fov"`
	Objects     []ObjectSpec `json:"objects"`
	Lights      []LightSpec  `json:"lights"`
}

// ObjectSpec describes one primitive
type ObjectSpec struct {
	Type     string       `json:"type"` // "sphere" or "plane"
	Center   Vector       `json:"center"`
	Radius   float64      `json:"radius"`
	Point    Vector       `json:"point"`
	Normal   Vector       `json:"normal"`
	Material MaterialSpec `json:"material"`
}

// MaterialSpec describes a primitive's material
type MaterialSpec struct {
	Texture      string   `json:"texture"` // "solid" (default), "checkerboard" or "image"
	Color        RGB      `json:"color"`
	CellSize     Extent   `json:"cellSize"`
	Image        string   `json:"image"`      // PNG or JPEG path, relative to the scene file
	Albedo       *float64 `json:"albedo"`     // Defaults to 1
	Glossiness   *float64 `json:"glossiness"` // Defaults to 1
	Reflectivity float64  `json:"reflectivity"`
}

// LightSpec describes one light source
type LightSpec struct {
	Type      string  `json:"type"` // "directional" or "spherical"
	Direction Vector  `json:"direction"`
	Position  Vector  `json:"position"`
	Color     RGB     `json:"color"`
	Intensity float64 `json:"intensity"`
}

// ParseSceneFile parses a JSON scene description from an io.Reader
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, fmt.Errorf("failed to decode scene file: %w", err)
	}

	for i, obj := range sceneFile.Objects {
		if err := checkColor(obj.Material.Color); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	for i, light := range sceneFile.Lights {
		if err := checkColor(light.Color); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}

	return &sceneFile, nil
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if sceneFile.Name == "" {
		sceneFile.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	dir := filepath.Dir(filename)
	for i := range sceneFile.Objects {
		imagePath := &sceneFile.Objects[i].Material.Image
		if *imagePath != "" && !filepath.IsAbs(*imagePath) {
			*imagePath = filepath.Join(dir, *imagePath)
		}
	}
	return sceneFile, nil
}

// IsSceneFile reports whether name looks like a scene file path rather than a built-in scene
func IsSceneFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if !IsSceneFile(filename) {
		return fmt.Errorf("scene file must have a .json extension: %s", filename)
	}
	return nil
}

func checkColor(c RGB) error {
	for _, channel := range c {
		if channel < 0 || channel > 255 {
			return fmt.Errorf("color channel %d outside [0, 255]", channel)
		}
	}
	return nil
}
