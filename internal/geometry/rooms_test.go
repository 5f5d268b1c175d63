package geometry

import (
	"math"
	"testing"
)

// wallsForRect returns the four walls of an axis-aligned rectangle.
func wallsForRect(x0, y0, x1, y1 float64) []WallSegment {
	return []WallSegment{
		{Start: Point{x0, y0}, End: Point{x1, y0}},
		{Start: Point{x1, y0}, End: Point{x1, y1}},
		{Start: Point{x1, y1}, End: Point{x0, y1}},
		{Start: Point{x0, y1}, End: Point{x0, y0}},
	}
}

func TestAssembleRoomsSingleRoom(t *testing.T) {
	rooms := AssembleRooms(wallsForRect(0, 0, 12, 10), AssembleConfig{})
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want 1", len(rooms))
	}
	if got := rooms[0].Area(); math.Abs(got-120) > 1e-6 {
		t.Errorf("area = %v, want 120", got)
	}
	if rooms[0].ExteriorWallCount != 4 {
		t.Errorf("exterior walls = %d, want 4", rooms[0].ExteriorWallCount)
	}
}

func TestAssembleRoomsTwoRoomsSharedWall(t *testing.T) {
	// 20x10 outline with a divider at x=10
	walls := []WallSegment{
		{Start: Point{0, 0}, End: Point{10, 0}},
		{Start: Point{10, 0}, End: Point{20, 0}},
		{Start: Point{20, 0}, End: Point{20, 10}},
		{Start: Point{20, 10}, End: Point{10, 10}},
		{Start: Point{10, 10}, End: Point{0, 10}},
		{Start: Point{0, 10}, End: Point{0, 0}},
		{Start: Point{10, 0}, End: Point{10, 10}}, // divider
	}
	rooms := AssembleRooms(walls, AssembleConfig{})
	if len(rooms) != 2 {
		t.Fatalf("got %d rooms, want 2", len(rooms))
	}
	for i, r := range rooms {
		if math.Abs(r.Area()-100) > 1e-6 {
			t.Errorf("room %d area = %v, want 100", i, r.Area())
		}
		// each room touches the outline on three sides; the divider is shared
		if r.ExteriorWallCount != 3 {
			t.Errorf("room %d exterior walls = %d, want 3", i, r.ExteriorWallCount)
		}
	}
}

func TestAssembleRoomsSnapsNearbyEndpoints(t *testing.T) {
	walls := []WallSegment{
		{Start: Point{0, 0}, End: Point{10, 0.1}}, // slightly off
		{Start: Point{10, 0}, End: Point{10, 10}},
		{Start: Point{10, 10}, End: Point{0, 10}},
		{Start: Point{0, 10.05}, End: Point{0, 0}},
	}
	rooms := AssembleRooms(walls, AssembleConfig{SnapTolerance: 0.25})
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want 1 after snapping", len(rooms))
	}
}

func TestAssembleRoomsOpenWallsYieldNothing(t *testing.T) {
	// three walls of a square — no closed cycle
	walls := wallsForRect(0, 0, 10, 10)[:3]
	if rooms := AssembleRooms(walls, AssembleConfig{}); len(rooms) != 0 {
		t.Fatalf("got %d rooms from open walls, want 0", len(rooms))
	}
}

func TestAssembleRoomsDiscardsTinyFaces(t *testing.T) {
	// a 1x1 closet below the minimum room area
	rooms := AssembleRooms(wallsForRect(0, 0, 1, 1), AssembleConfig{MinRoomArea: 4})
	if len(rooms) != 0 {
		t.Fatalf("got %d rooms, want 0 for sub-minimum face", len(rooms))
	}
}

func TestAssembleRoomsEmptyInput(t *testing.T) {
	if rooms := AssembleRooms(nil, AssembleConfig{}); rooms != nil {
		t.Fatalf("got %v, want nil", rooms)
	}
}

func TestAssembleRoomsFourQuadrants(t *testing.T) {
	// 20x20 outline divided into four 10x10 rooms
	walls := []WallSegment{
		{Start: Point{0, 0}, End: Point{10, 0}},
		{Start: Point{10, 0}, End: Point{20, 0}},
		{Start: Point{20, 0}, End: Point{20, 10}},
		{Start: Point{20, 10}, End: Point{20, 20}},
		{Start: Point{20, 20}, End: Point{10, 20}},
		{Start: Point{10, 20}, End: Point{0, 20}},
		{Start: Point{0, 20}, End: Point{0, 10}},
		{Start: Point{0, 10}, End: Point{0, 0}},
		// internal cross
		{Start: Point{10, 0}, End: Point{10, 10}},
		{Start: Point{10, 10}, End: Point{10, 20}},
		{Start: Point{0, 10}, End: Point{10, 10}},
		{Start: Point{10, 10}, End: Point{20, 10}},
	}
	rooms := AssembleRooms(walls, AssembleConfig{})
	if len(rooms) != 4 {
		t.Fatalf("got %d rooms, want 4", len(rooms))
	}
	var total float64
	for _, r := range rooms {
		total += r.Area()
		if r.ExteriorWallCount != 2 {
			t.Errorf("quadrant exterior walls = %d, want 2", r.ExteriorWallCount)
		}
	}
	if math.Abs(total-400) > 1e-6 {
		t.Errorf("total area = %v, want 400", total)
	}
}
