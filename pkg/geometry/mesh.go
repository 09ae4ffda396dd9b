// Package geometry builds coarse triangle meshes from normalized design
// specifications. Meshes are append-only vertex/face buffers: every primitive
// appends its vertices and faces with indices offset by the vertex count at
// the time of appending, and earlier entries are never renumbered.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face is a triangle: three indices into the owning mesh's vertex buffer.
// It is deliberately distinct from a flat index buffer; flattening is an
// explicit encoder-side step.
type Face [3]uint32

// Mesh is a vertex buffer plus a triangle face list. It is owned exclusively
// by the builder during assembly and read-only afterward.
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    []Face
}

// Append adds a primitive's vertices and faces to the mesh, offsetting the
// face indices by the current vertex count.
func (m *Mesh) Append(verts []mgl32.Vec3, faces []Face) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, verts...)
	for _, f := range faces {
		m.Faces = append(m.Faces, Face{f[0] + base, f[1] + base, f[2] + base})
	}
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// Normals computes per-vertex normals by accumulating face normals at each
// vertex and normalizing the sums. Vertices referenced by no face get a
// default up normal.
func (m *Mesh) Normals() []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(m.Vertices))

	for _, f := range m.Faces {
		v0 := m.Vertices[f[0]]
		v1 := m.Vertices[f[1]]
		v2 := m.Vertices[f[2]]

		n := v1.Sub(v0).Cross(v2.Sub(v0))
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}

	for i, n := range normals {
		if n.Len() > 1e-6 {
			normals[i] = n.Normalize()
		} else {
			normals[i] = mgl32.Vec3{0, 0, 1}
		}
	}

	return normals
}

// translate returns a copy of verts shifted by (dx, dy, dz).
func translate(verts []mgl32.Vec3, dx, dy, dz float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(verts))
	for i, v := range verts {
		out[i] = mgl32.Vec3{v[0] + dx, v[1] + dy, v[2] + dz}
	}
	return out
}

// swapXY returns a copy of verts with X and Y exchanged. Wall primitives are
// generated along the X axis; this turns them into Y-axis walls.
func swapXY(verts []mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(verts))
	for i, v := range verts {
		out[i] = mgl32.Vec3{v[1], v[0], v[2]}
	}
	return out
}
