// Package glb encodes meshes into the binary glTF 2.0 container (GLB) and
// provides a minimal parser for inspection and verification.
//
// A GLB file is a 12-byte header (magic "glTF", version, total length)
// followed by a JSON chunk describing the scene graph and buffer layout and
// a binary chunk holding the packed vertex and index data. Chunk payloads
// are 4-byte aligned: the JSON chunk is padded with spaces, the binary chunk
// with zero bytes.
package glb

import "errors"

// GLB container constants.
const (
	Magic   = 0x46546C67 // "glTF" little-endian
	Version = 2

	ChunkJSON = 0x4E4F534A // "JSON"
	ChunkBIN  = 0x004E4942 // "BIN\0"

	headerSize      = 12
	chunkHeaderSize = 8
)

// glTF accessor component types.
const (
	ComponentFloat         = 5126
	ComponentUnsignedShort = 5123
)

// Container format errors.
var (
	ErrInvalidMagic       = errors.New("invalid GLB magic: expected 'glTF'")
	ErrUnsupportedVersion = errors.New("unsupported GLB version")
	ErrTruncatedData      = errors.New("truncated GLB data")
)

// Document is the JSON chunk of a GLB asset: the scene graph plus the
// accessor and buffer-view descriptions of the binary chunk.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []MeshDef    `json:"meshes"`
	Accessors   []Accessor   `json:"accessors"`
	BufferViews []BufferView `json:"bufferViews"`
	Buffers     []Buffer     `json:"buffers"`
}

// Asset identifies the glTF version of the document.
type Asset struct {
	Version string `json:"version"`
}

// Scene lists root node indices.
type Scene struct {
	Nodes []int `json:"nodes"`
}

// Node references a mesh.
type Node struct {
	Mesh int `json:"mesh"`
}

// MeshDef holds the primitives of one mesh.
type MeshDef struct {
	Primitives []Primitive `json:"primitives"`
}

// Primitive maps vertex attributes and indices to accessors.
type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
}

// Accessor describes a typed view over binary data.
type Accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

// BufferView is a byte range within a buffer.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
}

// Buffer declares the total binary chunk length.
type Buffer struct {
	ByteLength int `json:"byteLength"`
}
