package geometry

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		objType string
		objID   string
		want    Kind
	}{
		{"wall", "", KindWall},
		{"exterior_wall", "exterior_wall_1", KindWall},
		{"", "exterior_wall_1", KindWall},
		{"Window", "", KindWindow},
		{"door", "main_door_1", KindDoor},
		{"", "front_door", KindDoor},
		{"roof", "", KindRoof},
		{"foundation", "", KindFoundation},
		{"column", "", KindColumn},
		{"pillar", "support_pillar_2", KindColumn},
		{"beam", "", KindBeam},
		{"floor_slab", "", KindFloorSlab},
		{"flooring", "", KindFloorSlab},
		{"staircase", "", KindStaircase},
		{"stair", "", KindStaircase},
		{"balcony", "", KindBalcony},
		{"wheel", "", KindWheel},
		{"bed", "", KindFurnishing},
		{"sofa", "", KindFurnishing},
		{"couch", "", KindFurnishing},
		{"kitchen_cabinet", "", KindFurnishing},
		{"countertop", "", KindFurnishing},
		{"dining_table", "", KindFurnishing},
		{"warp_drive", "", KindBox},
		{"", "", KindBox},
	}

	for _, tt := range tests {
		got := Classify(tt.objType, tt.objID)
		if got.Kind != tt.want {
			t.Errorf("Classify(%q, %q) = %s, want %s", tt.objType, tt.objID, got.Kind, tt.want)
		}
	}
}

func TestClassify_StructuralBeatsFurnishing(t *testing.T) {
	// "bedroom_wall" contains both "bed" and "wall"; the wall generator wins.
	got := Classify("wall", "bedroom_wall_1")
	if got.Kind != KindWall {
		t.Errorf("expected KindWall for bedroom wall, got %s", got.Kind)
	}
}

func TestClassify_Defaults(t *testing.T) {
	door := Classify("door", "")
	if door.Defaults.W != 0.9 || door.Defaults.H != 2.1 || door.Defaults.T != 0.05 {
		t.Errorf("unexpected door defaults: %+v", door.Defaults)
	}

	stair := Classify("staircase", "")
	if stair.Defaults.Steps != 15 {
		t.Errorf("expected 15 default steps, got %d", stair.Defaults.Steps)
	}

	box := Classify("mystery", "")
	if box.Defaults.W != 1 || box.Defaults.L != 1 || box.Defaults.H != 1 {
		t.Errorf("unexpected generic box defaults: %+v", box.Defaults)
	}
}

func TestClassify_VehicleAndElectronicsDefaults(t *testing.T) {
	tests := []struct {
		objType string
		want    Dims
	}{
		{"car_body", Dims{W: 1.8, L: 4.5, H: 1.5}},
		{"engine", Dims{W: 0.8, L: 1.0, H: 0.6}},
		{"chassis", Dims{W: 1.6, L: 4.0, H: 0.2}},
		{"pcb", Dims{W: 0.1, L: 0.08, H: 0.002}},
		{"component", Dims{W: 0.01, L: 0.01, H: 0.005}},
		{"housing", Dims{W: 0.15, L: 0.1, H: 0.05}},
		{"screen", Dims{W: 0.3, L: 0.005, H: 0.2}},
	}

	for _, tt := range tests {
		got := Classify(tt.objType, "")
		if got.Kind != KindBox {
			t.Errorf("Classify(%q) kind = %s, want box", tt.objType, got.Kind)
		}
		if got.Defaults != tt.want {
			t.Errorf("Classify(%q) defaults = %+v, want %+v", tt.objType, got.Defaults, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindWall.String() != "wall" {
		t.Errorf("expected 'wall', got %q", KindWall.String())
	}
	if Kind(999).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", Kind(999).String())
	}
}
