package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/archiforge/meshforge/pkg/geometry"
)

// Encoder errors.
var (
	ErrEmptyMesh       = errors.New("glb: mesh has no vertices")
	ErrTooManyVertices = errors.New("glb: vertex count exceeds uint16 index range")
)

// IndexOutOfRangeError reports a face index that does not address the vertex
// buffer. It signals a defect in mesh assembly, not a caller input problem,
// and always aborts the encode: a partially corrupt asset is never returned.
type IndexOutOfRangeError struct {
	Index       uint32
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("glb: index %d out of range for %d vertices", e.Index, e.VertexCount)
}

// Header summarizes the binary layout of an encoded asset.
type Header struct {
	VertexCount      int
	IndexCount       int
	NormalCount      int
	VertexByteLength int
	IndexByteLength  int
	NormalByteLength int
	TotalByteLength  int
}

// EncodedAsset is an immutable encoded GLB plus its layout header. The
// encoder retains no reference after returning it.
type EncodedAsset struct {
	GLB    []byte
	Header Header
}

// Encode serializes a mesh into a GLB asset. The binary chunk is laid out as
// vertex positions (3 little-endian float32 each), then face indices
// (little-endian uint16), then vertex normals. Each call is independent;
// Encode keeps no state between calls.
func Encode(mesh *geometry.Mesh) (*EncodedAsset, error) {
	if mesh.Empty() {
		return nil, ErrEmptyMesh
	}
	if len(mesh.Vertices) > 1<<16 {
		return nil, fmt.Errorf("%w: %d vertices", ErrTooManyVertices, len(mesh.Vertices))
	}

	vertexCount := len(mesh.Vertices)

	vertexData := new(bytes.Buffer)
	for _, v := range mesh.Vertices {
		binary.Write(vertexData, binary.LittleEndian, v[0])
		binary.Write(vertexData, binary.LittleEndian, v[1])
		binary.Write(vertexData, binary.LittleEndian, v[2])
	}

	// Flatten the face list into the index buffer: faces first, then the
	// three indices within each face. Every index is bounds-checked before
	// packing.
	indexData := new(bytes.Buffer)
	indexCount := 0
	for _, face := range mesh.Faces {
		for _, idx := range face {
			if int(idx) >= vertexCount {
				return nil, &IndexOutOfRangeError{Index: idx, VertexCount: vertexCount}
			}
			binary.Write(indexData, binary.LittleEndian, uint16(idx))
			indexCount++
		}
	}

	normals := mesh.Normals()
	normalData := new(bytes.Buffer)
	for _, n := range normals {
		binary.Write(normalData, binary.LittleEndian, n[0])
		binary.Write(normalData, binary.LittleEndian, n[1])
		binary.Write(normalData, binary.LittleEndian, n[2])
	}

	minBound, maxBound := mesh.Bounds()

	// Accessor counts come from the packed buffers, never from estimates.
	doc := &Document{
		Asset:  Asset{Version: "2.0"},
		Scenes: []Scene{{Nodes: []int{0}}},
		Nodes:  []Node{{Mesh: 0}},
		Meshes: []MeshDef{{
			Primitives: []Primitive{{
				Attributes: map[string]int{"POSITION": 0, "NORMAL": 2},
				Indices:    1,
			}},
		}},
		Accessors: []Accessor{
			{
				BufferView:    0,
				ComponentType: ComponentFloat,
				Count:         vertexCount,
				Type:          "VEC3",
				Min:           minBound[:],
				Max:           maxBound[:],
			},
			{
				BufferView:    1,
				ComponentType: ComponentUnsignedShort,
				Count:         indexCount,
				Type:          "SCALAR",
			},
			{
				BufferView:    2,
				ComponentType: ComponentFloat,
				Count:         len(normals),
				Type:          "VEC3",
			},
		},
		BufferViews: []BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: vertexData.Len()},
			{Buffer: 0, ByteOffset: vertexData.Len(), ByteLength: indexData.Len()},
			{Buffer: 0, ByteOffset: vertexData.Len() + indexData.Len(), ByteLength: normalData.Len()},
		},
		Buffers: []Buffer{
			{ByteLength: vertexData.Len() + indexData.Len() + normalData.Len()},
		},
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling glTF document: %w", err)
	}

	binData := make([]byte, 0, vertexData.Len()+indexData.Len()+normalData.Len())
	binData = append(binData, vertexData.Bytes()...)
	binData = append(binData, indexData.Bytes()...)
	binData = append(binData, normalData.Bytes()...)

	glbData := writeContainer(jsonData, binData)

	return &EncodedAsset{
		GLB: glbData,
		Header: Header{
			VertexCount:      vertexCount,
			IndexCount:       indexCount,
			NormalCount:      len(normals),
			VertexByteLength: vertexData.Len(),
			IndexByteLength:  indexData.Len(),
			NormalByteLength: normalData.Len(),
			TotalByteLength:  len(glbData),
		},
	}, nil
}

// writeContainer assembles the GLB container: header, JSON chunk padded with
// spaces to 4 bytes, binary chunk padded with zeros to 4 bytes.
func writeContainer(jsonData, binData []byte) []byte {
	jsonPadded := pad(jsonData, ' ')
	binPadded := pad(binData, 0)

	total := headerSize + chunkHeaderSize + len(jsonPadded) + chunkHeaderSize + len(binPadded)

	out := new(bytes.Buffer)
	out.Grow(total)

	binary.Write(out, binary.LittleEndian, uint32(Magic))
	binary.Write(out, binary.LittleEndian, uint32(Version))
	binary.Write(out, binary.LittleEndian, uint32(total))

	binary.Write(out, binary.LittleEndian, uint32(len(jsonPadded)))
	binary.Write(out, binary.LittleEndian, uint32(ChunkJSON))
	out.Write(jsonPadded)

	binary.Write(out, binary.LittleEndian, uint32(len(binPadded)))
	binary.Write(out, binary.LittleEndian, uint32(ChunkBIN))
	out.Write(binPadded)

	return out.Bytes()
}

// pad returns data extended with filler to a 4-byte boundary.
func pad(data []byte, filler byte) []byte {
	rem := len(data) % 4
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data), len(data)+4-rem)
	copy(padded, data)
	for i := 0; i < 4-rem; i++ {
		padded = append(padded, filler)
	}
	return padded
}
