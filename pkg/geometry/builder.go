package geometry

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/archiforge/meshforge/pkg/spec"
)

// openingInset is how far openings sit proud of the wall plane so the coarse
// preview shows them in front of the wall surface.
const openingInset = 0.1

// Params holds the structural defaults and heuristics of the builder. All
// lengths are meters.
type Params struct {
	WallThickness       float32
	FloorSlabThickness  float32
	FoundationThickness float32
	FlatRoofThickness   float32
	WallMargin          float32 // opening offset from the wall start
	SideWallInset       float32 // side-wall opening inset from the outer face
	PeakHeightRatio     float32 // gable peak as a fraction of per-story height

	// FlatRoofMarkers are design_type substrings selecting a flat roof;
	// FlatRoofSubtype is the object subtype substring doing the same.
	FlatRoofMarkers []string
	FlatRoofSubtype string

	// BuildingMarkers are design_type substrings selecting the multi-story
	// structural path.
	BuildingMarkers []string
}

// DefaultParams returns the standard builder parameters.
func DefaultParams() Params {
	return Params{
		WallThickness:       0.2,
		FloorSlabThickness:  0.15,
		FoundationThickness: 0.5,
		FlatRoofThickness:   0.2,
		WallMargin:          1.0,
		SideWallInset:       0.3,
		PeakHeightRatio:     0.3,
		FlatRoofMarkers:     []string{"flat", "apartment"},
		FlatRoofSubtype:     "flat_roof",
		BuildingMarkers: []string{
			"house", "building", "apartment", "villa", "bungalow",
			"townhouse", "duplex", "penthouse",
		},
	}
}

// Builder assembles a mesh from a normalized specification. It holds no
// mutable state across calls; a single Builder is safe for concurrent use.
type Builder struct {
	params Params
	log    *zap.Logger
}

// NewBuilder returns a Builder with the given parameters. A nil logger
// disables logging.
func NewBuilder(params Params, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{params: params, log: log}
}

// Build produces the mesh for a normalized spec. Building-like design types
// get the full structural treatment (foundation, stacked stories, roof,
// openings); anything else is assembled object by object. A spec that yields
// no geometry at all falls back to a single default box over the footprint
// (the only structural default), and the fallback is logged.
func (b *Builder) Build(s *spec.NormalizedSpec) *Mesh {
	mesh := &Mesh{}

	if b.isBuildingType(s.DesignType) {
		b.buildBuilding(mesh, s)
	} else {
		b.buildObjects(mesh, s)
	}

	if mesh.Empty() {
		verts, faces := Box(float32(s.Width), float32(s.Length), float32(s.Height))
		mesh.Append(verts, faces)
		b.log.Warn("no recognized geometry in spec, emitting default box",
			zap.String("design_type", s.DesignType),
			zap.Int("objects", len(s.Objects)))
	}

	return mesh
}

func (b *Builder) isBuildingType(designType string) bool {
	lower := strings.ToLower(designType)
	for _, marker := range b.params.BuildingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// flatRoof reports whether the design selects a flat roof: a design type
// containing any flat-roof marker, or any object whose subtype requests one.
func (b *Builder) flatRoof(s *spec.NormalizedSpec) bool {
	lower := strings.ToLower(s.DesignType)
	for _, marker := range b.params.FlatRoofMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	for _, obj := range s.Objects {
		if strings.Contains(strings.ToLower(obj.Subtype), b.params.FlatRoofSubtype) {
			return true
		}
	}
	return false
}

// buildBuilding emits foundation, per-story walls, inter-story floor slabs,
// a roof, and the requested openings.
func (b *Builder) buildBuilding(mesh *Mesh, s *spec.NormalizedSpec) {
	width := float32(s.Width)
	length := float32(s.Length)
	storyH := float32(s.PerStoryHeight())
	t := b.params.WallThickness
	foundation := b.params.FoundationThickness

	verts, faces := Slab(width, length, foundation)
	mesh.Append(verts, faces)

	for story := 0; story < s.Stories; story++ {
		z := float32(story)*storyH + foundation

		fv, ff := Wall(width, storyH, t)
		mesh.Append(translate(fv, 0, 0, z), ff)

		bv, bf := Wall(width, storyH, t)
		mesh.Append(translate(bv, 0, length-t, z), bf)

		lv, lf := Wall(length, storyH, t)
		mesh.Append(translate(swapXY(lv), 0, 0, z), lf)

		rv, rf := Wall(length, storyH, t)
		mesh.Append(translate(swapXY(rv), width-t, 0, z), rf)

		if story > 0 {
			sv, sf := Slab(width, length, b.params.FloorSlabThickness)
			mesh.Append(translate(sv, 0, 0, z), sf)
		}
	}

	roofZ := float32(s.Stories)*storyH + foundation
	if b.flatRoof(s) {
		rv, rf := Slab(width, length, b.params.FlatRoofThickness)
		mesh.Append(translate(rv, 0, 0, roofZ), rf)
	} else {
		rv, rf := GablePrism(width, length, b.params.PeakHeightRatio*storyH)
		mesh.Append(translate(rv, 0, 0, roofZ), rf)
	}

	b.placeOpenings(mesh, s, width, length, storyH)
}

// placeOpenings distributes doors and windows over the walls. Windows
// alternate between the front wall and the right side wall by parity of the
// running placement index, so any count above one spreads across at least two
// walls. Doors sit at the front wall center.
func (b *Builder) placeOpenings(mesh *Mesh, s *spec.NormalizedSpec, width, length, storyH float32) {
	foundation := b.params.FoundationThickness
	windowIdx := 0

	for _, obj := range s.Objects {
		if obj.Count == 0 {
			continue
		}

		c := Classify(obj.Type, obj.ID)
		switch c.Kind {
		case KindDoor:
			d := effectiveDims(obj, c.Defaults)
			dv, df := Box(d.W, d.T, d.H)
			mesh.Append(translate(dv, width/2-d.W/2, openingInset, foundation), df)

		case KindWindow:
			d := effectiveDims(obj, c.Defaults)
			sill := foundation + storyH/2 - d.H/2
			for i := 0; i < obj.Count; i++ {
				wv, wf := Box(d.W, d.T, d.H)
				span := float32(windowIdx / 2)
				if windowIdx%2 == 0 {
					x := span*(width/float32(obj.Count+1)) + b.params.WallMargin
					mesh.Append(translate(wv, x, openingInset, sill), wf)
				} else {
					y := span*(length/float32(obj.Count+1)) + b.params.WallMargin
					mesh.Append(translate(wv, width-b.params.SideWallInset, y, sill), wf)
				}
				windowIdx++
			}
		}
	}
}

// buildObjects assembles non-building specs one object at a time, each routed
// through classification to its primitive generator.
func (b *Builder) buildObjects(mesh *Mesh, s *spec.NormalizedSpec) {
	for _, obj := range s.Objects {
		if obj.Count == 0 {
			continue
		}

		c := Classify(obj.Type, obj.ID)
		d := effectiveDims(obj, c.Defaults)

		var verts []mgl32.Vec3
		var faces []Face

		switch c.Kind {
		case KindWall, KindDoor, KindWindow:
			verts, faces = Box(d.W, d.T, d.H)
		case KindRoof:
			verts, faces = GablePrism(d.W, d.L, d.H)
		case KindFloorSlab, KindFoundation:
			verts, faces = Slab(d.W, d.L, d.H)
		case KindStaircase:
			verts, faces = Staircase(d.W, d.L, d.H, d.Steps)
		case KindWheel:
			verts, faces = Cylinder(d.R, d.W)
		default:
			verts, faces = Box(d.W, d.L, d.H)
		}

		mesh.Append(verts, faces)
	}
}

// effectiveDims overlays an object's own dimensions onto the primitive
// defaults. Zero means the caller did not supply the field.
func effectiveDims(obj spec.Object, def Dims) Dims {
	d := def
	if obj.Width > 0 {
		d.W = float32(obj.Width)
	}
	if obj.Length > 0 {
		d.L = float32(obj.Length)
	}
	if obj.Height > 0 {
		d.H = float32(obj.Height)
	}
	if obj.Thickness > 0 {
		d.T = float32(obj.Thickness)
	}
	if obj.Radius > 0 {
		d.R = float32(obj.Radius)
	}
	if obj.Steps > 0 {
		d.Steps = obj.Steps
	}
	return d
}
