package material

import (
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Checkerboard alternates between its color and core.CheckerDark in cells of
// CellWidth x CellHeight texture units
type Checkerboard struct {
	Color      core.Color
	CellWidth  float64
	CellHeight float64
}

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(color core.Color, cellWidth, cellHeight float64) *Checkerboard {
	return &Checkerboard{
		Color:      color,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// ColorAt returns the color of the cell containing uv
func (c *Checkerboard) ColorAt(uv core.Vec2) core.Color {
	// Floor keeps cells the same size on both sides of zero
	cellX := int64(math.Floor(uv.X / c.CellWidth))
	cellY := int64(math.Floor(uv.Y / c.CellHeight))

	if (cellX+cellY)%2 == 0 {
		return core.CheckerDark
	}
	return c.Color
}
