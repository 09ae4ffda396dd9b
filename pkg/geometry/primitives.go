package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// boxFaces is the canonical triangulation of an 8-vertex box, shared by every
// box-shaped primitive. Vertex order: bottom ring counter-clockwise, then top
// ring in the same order.
var boxFaces = []Face{
	{0, 1, 2}, {0, 2, 3}, // bottom
	{4, 7, 6}, {4, 6, 5}, // top
	{0, 4, 5}, {0, 5, 1}, // front
	{2, 6, 7}, {2, 7, 3}, // back
	{0, 3, 7}, {0, 7, 4}, // left
	{1, 5, 6}, {1, 6, 2}, // right
}

// Box returns an axis-aligned box with one corner at the origin, extending
// w along X, d along Y, and h along Z.
func Box(w, d, h float32) ([]mgl32.Vec3, []Face) {
	verts := []mgl32.Vec3{
		{0, 0, 0}, {w, 0, 0}, {w, d, 0}, {0, d, 0},
		{0, 0, h}, {w, 0, h}, {w, d, h}, {0, d, h},
	}
	return verts, boxFaces
}

// Wall returns a wall slab of the given span and height, t thick along Y.
func Wall(span, height, t float32) ([]mgl32.Vec3, []Face) {
	return Box(span, t, height)
}

// Slab returns a horizontal slab covering a w×l footprint, t thick.
func Slab(w, l, t float32) ([]mgl32.Vec3, []Face) {
	return Box(w, l, t)
}

// GablePrism returns a pitched (gable) roof over a w×l footprint: four base
// corners plus two ridge vertices at the horizontal midline, peak above the
// base plane. Two triangular end-gables, two pitched faces, and a base close
// the solid.
func GablePrism(w, l, peak float32) ([]mgl32.Vec3, []Face) {
	verts := []mgl32.Vec3{
		{0, 0, 0}, {w, 0, 0}, {w, l, 0}, {0, l, 0}, // base corners
		{w / 2, 0, peak}, {w / 2, l, peak}, // ridge
	}
	faces := []Face{
		{0, 1, 4},           // front gable
		{1, 2, 5}, {1, 5, 4}, // right pitch
		{2, 3, 5},           // back gable
		{3, 0, 4}, {3, 4, 5}, // left pitch
		{0, 3, 2}, {0, 2, 1}, // base
	}
	return verts, faces
}

// Cylinder returns a coarse square-profile cylinder of radius r extruded w
// along Z, centered on the Z axis.
func Cylinder(r, w float32) ([]mgl32.Vec3, []Face) {
	verts := []mgl32.Vec3{
		{0, 0, 0}, {r, 0, 0}, {0, r, 0}, {-r, 0, 0}, {0, -r, 0},
		{0, 0, w}, {r, 0, w}, {0, r, w}, {-r, 0, w}, {0, -r, w},
	}
	faces := []Face{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}, // bottom fan
		{5, 7, 6}, {5, 8, 7}, {5, 9, 8}, {5, 6, 9}, // top fan
		{1, 6, 7}, {1, 7, 2}, // sides
		{2, 7, 8}, {2, 8, 3},
		{3, 8, 9}, {3, 9, 4},
		{4, 9, 6}, {4, 6, 1},
	}
	return verts, faces
}

// Staircase returns stepped geometry climbing l along Y and h along Z over
// the given number of steps. Each step is a full box so treads and risers
// both render.
func Staircase(w, l, h float32, steps int) ([]mgl32.Vec3, []Face) {
	if steps < 1 {
		steps = 1
	}

	stepH := h / float32(steps)
	stepL := l / float32(steps)

	var verts []mgl32.Vec3
	var faces []Face

	for i := 0; i < steps; i++ {
		y := float32(i) * stepL
		z := float32(i) * stepH

		base := uint32(len(verts))
		verts = append(verts,
			mgl32.Vec3{0, y, z}, mgl32.Vec3{w, y, z},
			mgl32.Vec3{w, y + stepL, z}, mgl32.Vec3{0, y + stepL, z},
			mgl32.Vec3{0, y, z + stepH}, mgl32.Vec3{w, y, z + stepH},
			mgl32.Vec3{w, y + stepL, z + stepH}, mgl32.Vec3{0, y + stepL, z + stepH},
		)
		for _, f := range boxFaces {
			faces = append(faces, Face{f[0] + base, f[1] + base, f[2] + base})
		}
	}

	return verts, faces
}
