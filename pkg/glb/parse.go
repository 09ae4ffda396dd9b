package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// Parse reads a GLB container and returns its JSON document and binary chunk.
// Only the first JSON and first binary chunk are considered; unknown chunk
// types are skipped per the container format.
func Parse(data []byte) (*Document, []byte, error) {
	if len(data) < headerSize {
		return nil, nil, ErrTruncatedData
	}

	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		return nil, nil, ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	if version != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	total := binary.LittleEndian.Uint32(data[8:12])
	if int(total) > len(data) {
		return nil, nil, fmt.Errorf("%w: declared length %d exceeds %d bytes", ErrTruncatedData, total, len(data))
	}

	var jsonChunk, binChunk []byte
	offset := headerSize

	for offset+chunkHeaderSize <= int(total) {
		chunkLen := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += chunkHeaderSize

		if offset+chunkLen > int(total) {
			return nil, nil, fmt.Errorf("%w: chunk overruns container", ErrTruncatedData)
		}

		switch chunkType {
		case ChunkJSON:
			if jsonChunk == nil {
				jsonChunk = data[offset : offset+chunkLen]
			}
		case ChunkBIN:
			if binChunk == nil {
				binChunk = data[offset : offset+chunkLen]
			}
		}

		offset += chunkLen
	}

	if jsonChunk == nil {
		return nil, nil, fmt.Errorf("%w: missing JSON chunk", ErrTruncatedData)
	}

	var doc Document
	if err := json.Unmarshal(bytes.TrimRight(jsonChunk, " "), &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding glTF document: %w", err)
	}

	return &doc, binChunk, nil
}

// bufferView resolves and validates a buffer view reference against the
// binary chunk. Fields come straight from untrusted JSON, so range and sign
// are checked before any slicing.
func bufferView(doc *Document, idx int, bin []byte) (BufferView, error) {
	if idx < 0 || idx >= len(doc.BufferViews) {
		return BufferView{}, fmt.Errorf("buffer view %d out of range", idx)
	}

	view := doc.BufferViews[idx]
	if view.ByteOffset < 0 || view.ByteLength < 0 {
		return BufferView{}, fmt.Errorf("%w: buffer view %d has negative extent", ErrTruncatedData, idx)
	}
	if view.ByteOffset+view.ByteLength > len(bin) {
		return BufferView{}, fmt.Errorf("%w: buffer view %d overruns binary chunk", ErrTruncatedData, idx)
	}
	return view, nil
}

// ReadIndices decodes the uint16 index buffer described by the document's
// index accessor from the binary chunk.
func ReadIndices(doc *Document, bin []byte) ([]uint16, error) {
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("document has no mesh primitives")
	}

	accIdx := doc.Meshes[0].Primitives[0].Indices
	if accIdx < 0 || accIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("index accessor %d out of range", accIdx)
	}

	acc := doc.Accessors[accIdx]
	if acc.ComponentType != ComponentUnsignedShort {
		return nil, fmt.Errorf("unexpected index component type %d", acc.ComponentType)
	}

	view, err := bufferView(doc, acc.BufferView, bin)
	if err != nil {
		return nil, fmt.Errorf("index %w", err)
	}
	if acc.Count < 0 || acc.Count > view.ByteLength/2 {
		return nil, fmt.Errorf("%w: index accessor count %d does not fit buffer view", ErrTruncatedData, acc.Count)
	}

	indices := make([]uint16, acc.Count)
	if err := binary.Read(bytes.NewReader(bin[view.ByteOffset:view.ByteOffset+view.ByteLength]), binary.LittleEndian, indices); err != nil {
		return nil, fmt.Errorf("%w: reading indices", ErrTruncatedData)
	}

	return indices, nil
}

// ReadPositions decodes the vec3 float32 position buffer described by the
// document's POSITION accessor from the binary chunk.
func ReadPositions(doc *Document, bin []byte) ([][3]float32, error) {
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("document has no mesh primitives")
	}

	accIdx, ok := doc.Meshes[0].Primitives[0].Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("document has no POSITION attribute")
	}
	if accIdx < 0 || accIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("position accessor %d out of range", accIdx)
	}

	acc := doc.Accessors[accIdx]
	if acc.ComponentType != ComponentFloat || acc.Type != "VEC3" {
		return nil, fmt.Errorf("unexpected position accessor layout %d/%s", acc.ComponentType, acc.Type)
	}

	view, err := bufferView(doc, acc.BufferView, bin)
	if err != nil {
		return nil, fmt.Errorf("position %w", err)
	}
	if acc.Count < 0 || acc.Count > view.ByteLength/12 {
		return nil, fmt.Errorf("%w: position accessor count %d does not fit buffer view", ErrTruncatedData, acc.Count)
	}

	positions := make([][3]float32, acc.Count)
	if err := binary.Read(bytes.NewReader(bin[view.ByteOffset:view.ByteOffset+view.ByteLength]), binary.LittleEndian, positions); err != nil {
		return nil, fmt.Errorf("%w: reading positions", ErrTruncatedData)
	}

	return positions, nil
}
