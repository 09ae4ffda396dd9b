package geometry

import (
	"strings"
)

// Kind identifies which primitive generator an object routes to.
type Kind int

const (
	KindBox Kind = iota // generic fallback
	KindWall
	KindDoor
	KindWindow
	KindRoof
	KindFloorSlab
	KindFoundation
	KindColumn
	KindBeam
	KindStaircase
	KindBalcony
	KindWheel
	KindFurnishing
)

var kindNames = map[Kind]string{
	KindBox:        "box",
	KindWall:       "wall",
	KindDoor:       "door",
	KindWindow:     "window",
	KindRoof:       "roof",
	KindFloorSlab:  "floor_slab",
	KindFoundation: "foundation",
	KindColumn:     "column",
	KindBeam:       "beam",
	KindStaircase:  "staircase",
	KindBalcony:    "balcony",
	KindWheel:      "wheel",
	KindFurnishing: "furnishing",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Dims are default primitive dimensions in meters, applied when a spec object
// does not carry its own.
type Dims struct {
	W, L, H, T, R float32
	Steps         int
}

// Classification is the result of routing an object to a primitive.
type Classification struct {
	Kind     Kind
	Defaults Dims
}

// classifyRule matches any of its markers as a substring of the composite
// object key.
type classifyRule struct {
	markers  []string
	kind     Kind
	defaults Dims
}

// Rules are ordered: structural elements take priority over furnishings so
// that e.g. "bedroom_wall" routes to the wall generator, not the bed.
var classifyRules = []classifyRule{
	{[]string{"cabinet"}, KindFurnishing, Dims{W: 1.0, L: 0.6, H: 0.9}},
	{[]string{"countertop", "counter"}, KindFurnishing, Dims{W: 2.0, L: 0.6, H: 0.05}},
	{[]string{"island"}, KindFurnishing, Dims{W: 2.4, L: 1.2, H: 0.9}},
	{[]string{"flooring", "floor"}, KindFloorSlab, Dims{W: 3.6, L: 3.0, H: 0.05}},
	{[]string{"wall"}, KindWall, Dims{W: 3.0, H: 2.7, T: 0.2}},
	{[]string{"door"}, KindDoor, Dims{W: 0.9, H: 2.1, T: 0.05}},
	{[]string{"window"}, KindWindow, Dims{W: 1.2, H: 1.0, T: 0.1}},
	{[]string{"roof"}, KindRoof, Dims{W: 10.0, L: 8.0, H: 2.0}},
	{[]string{"foundation"}, KindFoundation, Dims{W: 10.0, L: 8.0, H: 0.5}},
	{[]string{"column", "pillar"}, KindColumn, Dims{W: 0.3, L: 0.3, H: 3.0}},
	{[]string{"beam"}, KindBeam, Dims{W: 0.3, L: 5.0, H: 0.4}},
	{[]string{"slab"}, KindFloorSlab, Dims{W: 10.0, L: 8.0, H: 0.15}},
	{[]string{"stair"}, KindStaircase, Dims{W: 1.2, L: 3.0, H: 2.7, Steps: 15}},
	{[]string{"balcony"}, KindBalcony, Dims{W: 3.0, L: 1.5, H: 0.1}},
	{[]string{"wheel"}, KindWheel, Dims{R: 0.3, W: 0.2}},
	{[]string{"car_body"}, KindBox, Dims{W: 1.8, L: 4.5, H: 1.5}},
	{[]string{"engine"}, KindBox, Dims{W: 0.8, L: 1.0, H: 0.6}},
	{[]string{"chassis"}, KindBox, Dims{W: 1.6, L: 4.0, H: 0.2}},
	{[]string{"pcb"}, KindBox, Dims{W: 0.1, L: 0.08, H: 0.002}},
	{[]string{"component"}, KindBox, Dims{W: 0.01, L: 0.01, H: 0.005}},
	{[]string{"housing"}, KindBox, Dims{W: 0.15, L: 0.1, H: 0.05}},
	{[]string{"screen"}, KindBox, Dims{W: 0.3, L: 0.005, H: 0.2}},
	{[]string{"bed"}, KindFurnishing, Dims{W: 1.8, L: 2.0, H: 0.6}},
	{[]string{"sofa", "couch"}, KindFurnishing, Dims{W: 2.0, L: 0.9, H: 0.8}},
	{[]string{"table", "desk"}, KindFurnishing, Dims{W: 1.5, L: 0.8, H: 0.75}},
	{[]string{"chair"}, KindFurnishing, Dims{W: 0.5, L: 0.5, H: 0.8}},
	{[]string{"wardrobe"}, KindFurnishing, Dims{W: 2.0, L: 0.6, H: 2.2}},
	{[]string{"tv_unit", "tv unit"}, KindFurnishing, Dims{W: 1.8, L: 0.4, H: 0.6}},
	{[]string{"bookshelf", "shelf"}, KindFurnishing, Dims{W: 1.2, L: 0.3, H: 2.0}},
}

// Classify routes an object to a primitive generator. Matching is a
// case-insensitive substring check against the composite of type and id,
// because upstream object types are free-form; unmatched objects degrade to
// a generic box, never an error.
func Classify(objType, objID string) Classification {
	composite := strings.ToLower(objType + " " + objID)

	for _, rule := range classifyRules {
		for _, marker := range rule.markers {
			if strings.Contains(composite, marker) {
				return Classification{Kind: rule.kind, Defaults: rule.defaults}
			}
		}
	}

	return Classification{Kind: KindBox, Defaults: Dims{W: 1.0, L: 1.0, H: 1.0}}
}
