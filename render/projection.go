package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene extents in world units, viewed from +X looking toward the origin
const (
	sceneHalfZ   = 7.0
	sceneHeight  = 8.0
	cellAspect   = 2.0 // terminal cells are about twice as tall as wide
	sceneTopRow  = 2   // rows reserved above the scene
	sceneFootRow = 6   // rows reserved below the floor line
	sceneTilt    = 25.0 * math.Pi / 180
)

// Projection maps world coordinates to terminal cells
// World Z runs across the screen; the camera looks down the X axis tilted toward the table
type Projection struct {
	OriginX int
	FloorY  int
	ScaleX  float64
	ScaleY  float64

	sin, cos float64
}

// NewProjection fits the scene into a width x height screen
func NewProjection(width, height int) Projection {
	rows := float64(max(height-sceneTopRow-sceneFootRow, 1))
	scaleY := rows / sceneHeight
	scaleX := scaleY * cellAspect
	if maxX := float64(width) / (2 * sceneHalfZ); scaleX > maxX {
		scaleX = maxX
		scaleY = scaleX / cellAspect
	}
	return Projection{
		OriginX: width / 2,
		FloorY:  sceneTopRow + int(rows),
		ScaleX:  scaleX,
		ScaleY:  scaleY,
		sin:     math.Sin(sceneTilt),
		cos:     math.Cos(sceneTilt),
	}
}

// Project returns the cell for a world point
func (p Projection) Project(v mgl64.Vec3) (int, int) {
	x := p.OriginX + int(math.Round(v.Z()*p.ScaleX))
	up := v.Y()*p.cos - v.X()*p.sin
	y := p.FloorY - int(math.Round(up*p.ScaleY))
	return x, y
}

// Depth is the distance toward the viewer; larger is nearer
func (p Projection) Depth(v mgl64.Vec3) float64 {
	return v.X()*p.cos + v.Y()*p.sin
}

// SampleStep is the world spacing that leaves no gaps at this scale
func (p Projection) SampleStep() float64 {
	s := max(p.ScaleX, p.ScaleY)
	if s <= 0 {
		return 1
	}
	return 0.5 / s
}
