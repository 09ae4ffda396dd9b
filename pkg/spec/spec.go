// Package spec defines the design specification model and its normalizer.
//
// Raw specifications arrive from an upstream natural-language translator and
// are not trusted: field names vary (width/w, length/depth, stories/floors),
// units may be feet, and values may be missing, null, or non-numeric. The
// normalizer is the single gate that turns a raw spec into a fully populated
// metric form; nothing downstream applies structural defaults.
package spec

import (
	"encoding/json"
	"fmt"
)

// FeetToMeters is the conversion factor applied when a raw spec declares feet.
const FeetToMeters = 0.3048

// RawSpec is a design specification as produced upstream, prior to
// normalization. Dimensions are kept as a loose map so that an absent key,
// a null value, and a non-numeric value can be told apart.
type RawSpec struct {
	DesignType string         `json:"design_type"`
	Dimensions map[string]any `json:"dimensions"`
	Stories    *int           `json:"stories"`
	Floors     *int           `json:"floors"`
	Units      string         `json:"units"`
	Objects    []RawObject    `json:"objects"`
}

// RawObject is a requested object (opening, structural element, or
// furnishing) inside a raw spec.
type RawObject struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Subtype    string         `json:"subtype"`
	Count      *int           `json:"count"`
	Dimensions map[string]any `json:"dimensions"`
}

// ParseRaw decodes a raw spec from JSON.
func ParseRaw(data []byte) (*RawSpec, error) {
	var raw RawSpec
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding spec JSON: %w", err)
	}
	return &raw, nil
}

// NormalizedSpec is a validated specification with every structural dimension
// resolved to strictly positive meters. It is the only form the geometry
// builder accepts.
type NormalizedSpec struct {
	DesignType    string
	Width         float64 // meters, along X
	Length        float64 // meters, along Y
	Height        float64 // meters, total across all stories
	Stories       int
	UnitsOriginal string
	Objects       []Object
}

// Object is a normalized requested object. Dimension fields are zero when the
// caller did not supply them; per-object defaults are a primitive-level
// concern, not a normalizer concern.
type Object struct {
	ID      string
	Type    string
	Subtype string
	Count   int

	Width     float64
	Length    float64
	Height    float64
	Thickness float64
	Radius    float64
	Steps     int
}

// PerStoryHeight returns the wall height of a single story.
func (s *NormalizedSpec) PerStoryHeight() float64 {
	return s.Height / float64(s.Stories)
}

// Limits bounds a normalized spec to guard against pathological inputs.
type Limits struct {
	MaxStories   int
	MaxDimension float64 // meters, per linear dimension after conversion
}

// DefaultLimits returns the standard normalizer limits.
func DefaultLimits() Limits {
	return Limits{
		MaxStories:   500,
		MaxDimension: 10000,
	}
}
