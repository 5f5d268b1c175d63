package geometry

import (
	"math"
	"testing"
)

func square(size float64) RoomPolygon {
	return RoomPolygon{Boundary: []Point{
		{0, 0}, {size, 0}, {size, size}, {0, size},
	}}
}

func TestRoomPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		poly RoomPolygon
		want float64
	}{
		{"unit square", square(1), 1},
		{"10x10 square", square(10), 100},
		{"triangle", RoomPolygon{Boundary: []Point{{0, 0}, {4, 0}, {0, 3}}}, 6},
		{"clockwise square still positive", RoomPolygon{Boundary: []Point{
			{0, 0}, {0, 2}, {2, 2}, {2, 0},
		}}, 4},
		{"degenerate two points", RoomPolygon{Boundary: []Point{{0, 0}, {1, 1}}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Area(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomPolygonPerimeter(t *testing.T) {
	p := square(5)
	if got := p.Perimeter(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Perimeter() = %v, want 20", got)
	}
}

// Isoperimetric inequality: perimeter >= 2*sqrt(pi*area) for any closed
// simple polygon, with equality only for a circle.
func TestIsoperimetricBound(t *testing.T) {
	polys := []RoomPolygon{
		square(1),
		square(12),
		// long corridor
		{Boundary: []Point{{0, 0}, {20, 0}, {20, 3}, {0, 3}}},
		// L-shape
		{Boundary: []Point{{0, 0}, {8, 0}, {8, 6}, {4, 6}, {4, 10}, {0, 10}}},
		// triangle
		{Boundary: []Point{{0, 0}, {5, 0}, {2.5, 4}}},
	}
	for i, p := range polys {
		area := p.Area()
		if area <= 0 {
			t.Fatalf("poly %d: non-positive area %v", i, area)
		}
		bound := 2 * math.Sqrt(math.Pi*area)
		if p.Perimeter() < bound {
			t.Errorf("poly %d: perimeter %v below isoperimetric bound %v", i, p.Perimeter(), bound)
		}
	}
}

func TestIsSimple(t *testing.T) {
	tests := []struct {
		name string
		poly RoomPolygon
		want bool
	}{
		{"square", square(4), true},
		{"L-shape", RoomPolygon{Boundary: []Point{
			{0, 0}, {8, 0}, {8, 6}, {4, 6}, {4, 10}, {0, 10},
		}}, true},
		{"bowtie self-intersection", RoomPolygon{Boundary: []Point{
			{0, 0}, {4, 4}, {4, 0}, {0, 4},
		}}, false},
		{"too few points", RoomPolygon{Boundary: []Point{{0, 0}, {1, 0}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.IsSimple(); got != tt.want {
				t.Errorf("IsSimple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsPoint(t *testing.T) {
	p := square(10)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"outside right", Point{11, 5}, false},
		{"outside above", Point{5, 11}, false},
		{"near corner inside", Point{0.1, 0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 2}
	if c := r.Center(); c.X != 2 || c.Y != 1 {
		t.Errorf("Center() = %v", c)
	}
	if !r.Contains(Point{2, 1}) {
		t.Error("Contains(center) = false")
	}
	if r.Contains(Point{5, 1}) {
		t.Error("Contains(outside) = true")
	}
	e := r.Expanded(1)
	if !e.Contains(Point{-0.5, -0.5}) {
		t.Error("Expanded rect should contain margin point")
	}
}
