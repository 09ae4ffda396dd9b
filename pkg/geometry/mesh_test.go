package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshAppend_OffsetsIndices(t *testing.T) {
	mesh := &Mesh{}

	v1, f1 := Box(1, 1, 1)
	mesh.Append(v1, f1)

	v2, f2 := Box(2, 2, 2)
	mesh.Append(translate(v2, 5, 0, 0), f2)

	if len(mesh.Vertices) != 16 {
		t.Fatalf("expected 16 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 24 {
		t.Fatalf("expected 24 faces, got %d", len(mesh.Faces))
	}

	// Faces of the second box must reference only its own vertices.
	for _, f := range mesh.Faces[12:] {
		for _, idx := range f {
			if idx < 8 || idx >= 16 {
				t.Errorf("second box face index %d outside [8,16)", idx)
			}
		}
	}

	// Earlier faces are never renumbered.
	for _, f := range mesh.Faces[:12] {
		for _, idx := range f {
			if idx >= 8 {
				t.Errorf("first box face index %d renumbered", idx)
			}
		}
	}
}

func TestMeshBounds(t *testing.T) {
	mesh := &Mesh{}
	v, f := Box(2, 3, 4)
	mesh.Append(translate(v, 1, 1, 1), f)

	min, max := mesh.Bounds()
	if min != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("unexpected min %v", min)
	}
	if max != (mgl32.Vec3{3, 4, 5}) {
		t.Errorf("unexpected max %v", max)
	}
}

func TestMeshNormals_UnitLength(t *testing.T) {
	mesh := &Mesh{}
	v, f := Box(1, 2, 3)
	mesh.Append(v, f)

	normals := mesh.Normals()
	if len(normals) != len(mesh.Vertices) {
		t.Fatalf("expected %d normals, got %d", len(mesh.Vertices), len(normals))
	}

	for i, n := range normals {
		if math.Abs(float64(n.Len())-1.0) > 1e-5 {
			t.Errorf("normal %d has length %g", i, n.Len())
		}
	}
}

func TestMeshNormals_UnreferencedVertexGetsDefault(t *testing.T) {
	mesh := &Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {9, 9, 9}},
		Faces:    []Face{{0, 1, 2}},
	}

	normals := mesh.Normals()
	if normals[3] != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("expected default up normal, got %v", normals[3])
	}
}

func TestSwapXY(t *testing.T) {
	verts := []mgl32.Vec3{{1, 2, 3}}
	swapped := swapXY(verts)
	if swapped[0] != (mgl32.Vec3{2, 1, 3}) {
		t.Errorf("unexpected swap result %v", swapped[0])
	}
	// Input untouched.
	if verts[0] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("swapXY mutated its input: %v", verts[0])
	}
}

func TestBoxPrimitive(t *testing.T) {
	verts, faces := Box(2, 3, 4)
	if len(verts) != 8 {
		t.Errorf("expected 8 vertices, got %d", len(verts))
	}
	if len(faces) != 12 {
		t.Errorf("expected 12 faces, got %d", len(faces))
	}
	for _, f := range faces {
		for _, idx := range f {
			if idx >= 8 {
				t.Errorf("face index %d out of range", idx)
			}
		}
	}
}

func TestGablePrism(t *testing.T) {
	verts, faces := GablePrism(10, 8, 2)
	if len(verts) != 6 {
		t.Errorf("expected 6 vertices, got %d", len(verts))
	}
	if len(faces) != 8 {
		t.Errorf("expected 8 faces, got %d", len(faces))
	}

	// Ridge vertices sit at the X midline at peak height.
	for _, ridge := range verts[4:] {
		if ridge[0] != 5 {
			t.Errorf("ridge X = %g, want midline 5", ridge[0])
		}
		if ridge[2] != 2 {
			t.Errorf("ridge Z = %g, want peak 2", ridge[2])
		}
	}
}

func TestStaircase(t *testing.T) {
	steps := 12
	verts, faces := Staircase(1.2, 3.0, 2.7, steps)

	if len(verts) != steps*8 {
		t.Errorf("expected %d vertices, got %d", steps*8, len(verts))
	}
	if len(faces) != steps*12 {
		t.Errorf("expected %d faces, got %d", steps*12, len(faces))
	}

	for _, f := range faces {
		for _, idx := range f {
			if int(idx) >= len(verts) {
				t.Errorf("face index %d out of range for %d vertices", idx, len(verts))
			}
		}
	}

	// Last step tops out at the full height.
	var maxZ float32
	for _, v := range verts {
		if v[2] > maxZ {
			maxZ = v[2]
		}
	}
	if math.Abs(float64(maxZ)-2.7) > 1e-5 {
		t.Errorf("staircase top %g, want 2.7", maxZ)
	}
}

func TestCylinder(t *testing.T) {
	verts, faces := Cylinder(0.3, 0.2)
	if len(verts) != 10 {
		t.Errorf("expected 10 vertices, got %d", len(verts))
	}
	if len(faces) != 16 {
		t.Errorf("expected 16 faces, got %d", len(faces))
	}
}
