package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/archiforge/meshforge/pkg/geometry"
	"github.com/archiforge/meshforge/pkg/spec"
)

func boxMesh(t *testing.T) *geometry.Mesh {
	t.Helper()
	mesh := &geometry.Mesh{}
	verts, faces := geometry.Box(2, 3, 4)
	mesh.Append(verts, faces)
	return mesh
}

func TestEncode_RoundTrip(t *testing.T) {
	mesh := boxMesh(t)

	asset, err := Encode(mesh)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	doc, bin, err := Parse(asset.GLB)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Asset.Version != "2.0" {
		t.Errorf("asset version = %q, want 2.0", doc.Asset.Version)
	}
	if len(doc.Accessors) != 3 {
		t.Fatalf("expected 3 accessors, got %d", len(doc.Accessors))
	}
	if doc.Accessors[0].Count != len(mesh.Vertices) {
		t.Errorf("position accessor count = %d, want %d", doc.Accessors[0].Count, len(mesh.Vertices))
	}
	if doc.Accessors[1].Count != 3*len(mesh.Faces) {
		t.Errorf("index accessor count = %d, want %d", doc.Accessors[1].Count, 3*len(mesh.Faces))
	}
	if doc.Accessors[2].Count != len(mesh.Vertices) {
		t.Errorf("normal accessor count = %d, want %d", doc.Accessors[2].Count, len(mesh.Vertices))
	}

	positions, err := ReadPositions(doc, bin)
	if err != nil {
		t.Fatalf("ReadPositions: %v", err)
	}
	if len(positions) != len(mesh.Vertices) {
		t.Fatalf("read %d positions, want %d", len(positions), len(mesh.Vertices))
	}
	for i, p := range positions {
		if p != [3]float32(mesh.Vertices[i]) {
			t.Errorf("position %d = %v, want %v", i, p, mesh.Vertices[i])
		}
	}

	indices, err := ReadIndices(doc, bin)
	if err != nil {
		t.Fatalf("ReadIndices: %v", err)
	}
	if len(indices) != 3*len(mesh.Faces) {
		t.Fatalf("read %d indices, want %d", len(indices), 3*len(mesh.Faces))
	}
	for i, f := range mesh.Faces {
		for j, idx := range f {
			if got := indices[3*i+j]; got != uint16(idx) {
				t.Errorf("index %d = %d, want %d", 3*i+j, got, idx)
			}
		}
	}
}

func TestEncode_AccessorBounds(t *testing.T) {
	mesh := boxMesh(t)

	asset, err := Encode(mesh)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc, _, err := Parse(asset.GLB)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	pos := doc.Accessors[0]
	wantMin := []float32{0, 0, 0}
	wantMax := []float32{2, 3, 4}
	for i := 0; i < 3; i++ {
		if pos.Min[i] != wantMin[i] || pos.Max[i] != wantMax[i] {
			t.Fatalf("POSITION bounds %v..%v, want %v..%v", pos.Min, pos.Max, wantMin, wantMax)
		}
	}
}

func TestEncode_ContainerLayout(t *testing.T) {
	asset, err := Encode(boxMesh(t))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := asset.GLB

	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		t.Error("bad magic")
	}
	if binary.LittleEndian.Uint32(data[4:8]) != Version {
		t.Error("bad version")
	}
	if got := binary.LittleEndian.Uint32(data[8:12]); int(got) != len(data) {
		t.Errorf("declared length %d, actual %d", got, len(data))
	}
	if len(data)%4 != 0 {
		t.Errorf("container length %d not 4-byte aligned", len(data))
	}

	jsonLen := int(binary.LittleEndian.Uint32(data[12:16]))
	if jsonLen%4 != 0 {
		t.Errorf("JSON chunk length %d not 4-byte aligned", jsonLen)
	}
	if binary.LittleEndian.Uint32(data[16:20]) != ChunkJSON {
		t.Error("first chunk is not JSON")
	}

	// JSON padding is spaces, so the chunk stays valid UTF-8 text.
	jsonChunk := data[20 : 20+jsonLen]
	if jsonChunk[0] != '{' {
		t.Error("JSON chunk does not start with an object")
	}
	if last := jsonChunk[len(jsonChunk)-1]; last != '}' && last != ' ' {
		t.Errorf("JSON chunk ends with %q, want '}' or space padding", last)
	}

	binOffset := 20 + jsonLen
	binLen := int(binary.LittleEndian.Uint32(data[binOffset : binOffset+4]))
	if binLen%4 != 0 {
		t.Errorf("BIN chunk length %d not 4-byte aligned", binLen)
	}
	if binary.LittleEndian.Uint32(data[binOffset+4:binOffset+8]) != ChunkBIN {
		t.Error("second chunk is not BIN")
	}
	if binOffset+8+binLen != len(data) {
		t.Errorf("chunks do not fill the container: %d vs %d", binOffset+8+binLen, len(data))
	}
}

func TestEncode_HeaderMatchesLayout(t *testing.T) {
	mesh := boxMesh(t)
	asset, err := Encode(mesh)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	h := asset.Header
	if h.VertexCount != 8 || h.IndexCount != 36 || h.NormalCount != 8 {
		t.Errorf("counts = %d/%d/%d, want 8/36/8", h.VertexCount, h.IndexCount, h.NormalCount)
	}
	if h.VertexByteLength != 8*12 {
		t.Errorf("vertex bytes = %d, want %d", h.VertexByteLength, 8*12)
	}
	if h.IndexByteLength != 36*2 {
		t.Errorf("index bytes = %d, want %d", h.IndexByteLength, 36*2)
	}
	if h.NormalByteLength != 8*12 {
		t.Errorf("normal bytes = %d, want %d", h.NormalByteLength, 8*12)
	}
	if h.TotalByteLength != len(asset.GLB) {
		t.Errorf("total bytes = %d, want %d", h.TotalByteLength, len(asset.GLB))
	}
}

func TestEncode_EmptyMesh(t *testing.T) {
	_, err := Encode(&geometry.Mesh{})
	if !errors.Is(err, ErrEmptyMesh) {
		t.Fatalf("expected ErrEmptyMesh, got %v", err)
	}
}

func TestEncode_TooManyVertices(t *testing.T) {
	mesh := &geometry.Mesh{Vertices: make([]mgl32.Vec3, 1<<16+1)}
	_, err := Encode(mesh)
	if !errors.Is(err, ErrTooManyVertices) {
		t.Fatalf("expected ErrTooManyVertices, got %v", err)
	}
}

func TestEncode_IndexOutOfRange(t *testing.T) {
	mesh := boxMesh(t)
	mesh.Faces[5] = geometry.Face{0, 1, 99}

	_, err := Encode(mesh)
	var oor *IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
	if oor.Index != 99 || oor.VertexCount != 8 {
		t.Errorf("error reports index %d over %d vertices, want 99 over 8", oor.Index, oor.VertexCount)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	raw := &spec.RawSpec{
		DesignType: "row_house",
		Dimensions: map[string]any{"width": 10.0, "length": 30.0, "height": 18.0},
		Objects: []spec.RawObject{
			{Type: "window", Count: intPtr(6)},
			{Type: "door", Count: intPtr(1)},
		},
	}

	encode := func() []byte {
		s, err := spec.Normalize(raw, spec.DefaultLimits())
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		mesh := geometry.NewBuilder(geometry.DefaultParams(), nil).Build(s)
		asset, err := Encode(mesh)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return asset.GLB
	}

	first := encode()
	second := encode()
	if !bytes.Equal(first, second) {
		t.Fatal("identical input produced different GLB bytes")
	}
}

func intPtr(v int) *int { return &v }
