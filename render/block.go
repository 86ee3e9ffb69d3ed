package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/physics"
)

// Light direction for face shading, toward the fire and the viewer
var lightDir = mgl64.Vec3{0.6, 0.7, 0.3}.Normalize()

const (
	ambientShade = 0.45
	diffuseShade = 0.55
	faceUpDot    = 0.5
)

var blockHalf = mgl64.Vec3{parameter.BlockHalfLength, parameter.BlockHalfWidth, parameter.BlockHalfDepth}

// depthBuffer keeps the nearest world X drawn per cell
type depthBuffer struct {
	depth []float64
	width int
}

func (d *depthBuffer) reset(width, height int) {
	size := width * height
	if cap(d.depth) < size {
		d.depth = make([]float64, size)
	}
	d.depth = d.depth[:size]
	for i := range d.depth {
		d.depth[i] = math.Inf(-1)
	}
	d.width = width
}

// closer records depth at x, y and reports whether it won
func (d *depthBuffer) closer(x, y int, depth float64) bool {
	if x < 0 || y < 0 || x >= d.width {
		return false
	}
	idx := y*d.width + x
	if idx >= len(d.depth) || depth <= d.depth[idx] {
		return false
	}
	d.depth[idx] = depth
	return true
}

// faceColor picks the base color of a face by its local normal
// up is the local axis that faces the sky when the block rests face up
func faceColor(localNormal, up mgl64.Vec3) RGB {
	switch d := localNormal.Dot(up); {
	case d > faceUpDot:
		return RgbBlockFace
	case d < -faceUpDot:
		return RgbBlockBack
	default:
		return RgbBlockEdge
	}
}

// drawBlock samples the six faces of one block onto the buffer
func drawBlock(buf *RenderBuffer, depth *depthBuffer, proj Projection, pose physics.Pose, up mgl64.Vec3, light float64) {
	step := proj.SampleStep()
	rot := pose.Rotation.Normalize()

	for axis := 0; axis < 3; axis++ {
		u, v := (axis+1)%3, (axis+2)%3
		nu := int(math.Ceil(2*blockHalf[u]/step)) + 1
		nv := int(math.Ceil(2*blockHalf[v]/step)) + 1

		for _, sign := range [2]float64{1, -1} {
			var normal mgl64.Vec3
			normal[axis] = sign
			base := faceColor(normal, up)
			worldNormal := rot.Rotate(normal)
			shade := ambientShade + diffuseShade*math.Max(0, worldNormal.Dot(lightDir))
			color := base.Scale(shade * light)

			for i := 0; i < nu; i++ {
				for j := 0; j < nv; j++ {
					var local mgl64.Vec3
					local[axis] = sign * blockHalf[axis]
					local[u] = -blockHalf[u] + 2*blockHalf[u]*float64(i)/float64(max(nu-1, 1))
					local[v] = -blockHalf[v] + 2*blockHalf[v]*float64(j)/float64(max(nv-1, 1))

					world := pose.Translation.Add(rot.Rotate(local))
					x, y := proj.Project(world)
					if depth.closer(x, y, proj.Depth(world)) {
						buf.SetFgOnly(x, y, '█', color)
					}
				}
			}
		}
	}
}
