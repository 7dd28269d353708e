package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
	"github.com/df07/go-simple-raytracer/pkg/material"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
	"github.com/df07/go-simple-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectIndex  int                    `json:"objectIndex"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	TextureUV    [2]float64             `json:"textureUV"`
	Color        [3]uint8               `json:"color"` // Final shaded color of the pixel
	Properties   map[string]interface{} `json:"properties"`
}

// inspectPixel casts the primary ray through a pixel and describes the nearest object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	camera := renderer.NewCamera(sceneObj.Width, sceneObj.Height, sceneObj.FieldOfView)
	raytracer := renderer.NewRaytracer(sceneObj, renderer.NewDiscardLogger())

	ray := camera.GetRay(pixelX, pixelY)
	hit, isHit := raytracer.Trace(ray)
	if !isHit {
		return InspectResponse{Hit: false, ObjectIndex: -1}
	}

	object := sceneObj.Objects[hit.Index]
	point := ray.At(hit.Distance)
	normal := object.SurfaceNormal(point)
	uv := object.TextureCoords(point)
	color := raytracer.Shade(ray, hit, 0)

	geometryType, geometryProps := extractGeometryInfo(object)

	return InspectResponse{
		Hit:          true,
		ObjectIndex:  hit.Index,
		GeometryType: geometryType,
		Point:        vecArray(point),
		Normal:       vecArray(normal),
		Distance:     hit.Distance,
		TextureUV:    [2]float64{uv.X, uv.Y},
		Color:        [3]uint8{color.R, color.G, color.B},
		Properties: map[string]interface{}{
			"geometry": geometryProps,
			"material": extractMaterialInfo(object.Material()),
		},
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(object geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// extractMaterialInfo describes the texture and surface of a material
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"albedo":     mat.Albedo,
		"glossiness": mat.Glossiness,
		"surface":    mat.Surface.Kind.String(),
	}
	if mat.Surface.Kind == material.SurfaceReflective {
		properties["reflectivity"] = mat.Surface.Reflectivity
	}

	switch tex := mat.Texture.(type) {
	case *material.SolidColor:
		properties["texture"] = "solid"
		properties["color"] = colorArray(tex.Color)
	case *material.Checkerboard:
		properties["texture"] = "checkerboard"
		properties["color"] = colorArray(tex.Color)
		properties["cellSize"] = [2]float64{tex.CellWidth, tex.CellHeight}
	case *material.ImageTexture:
		properties["texture"] = "image"
		properties["imageSize"] = [2]int{tex.Width, tex.Height}
	default:
		properties["texture"] = "unknown"
	}
	return properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := sceneObj.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorArray(c core.Color) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
