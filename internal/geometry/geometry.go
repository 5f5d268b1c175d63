// Package geometry holds the planar primitives the extraction pipeline works
// in: wall segments and closed room polygons, in real-world feet.
package geometry

import "math"

// Point is a 2D point. Units depend on context: PDF points before scaling,
// feet after.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside or on the rectangle boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Expanded returns the rectangle grown by margin on every side.
func (r Rect) Expanded(margin float64) Rect {
	return Rect{MinX: r.MinX - margin, MinY: r.MinY - margin, MaxX: r.MaxX + margin, MaxY: r.MaxY + margin}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// WallSegment is a wall between two endpoints. Owned by the page's geometry
// set; never shared across pages.
type WallSegment struct {
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Thickness float64 `json:"thickness"`
}

// Length returns the segment length.
func (w WallSegment) Length() float64 {
	return Dist(w.Start, w.End)
}

// RoomPolygon is a closed, simple boundary enclosing one room. The boundary
// does not repeat the first point; closure is implicit.
type RoomPolygon struct {
	Boundary          []Point `json:"boundary"`
	ExteriorWallCount int     `json:"exterior_wall_count"`
}

// Closed reports whether the polygon has enough points to enclose area.
func (p RoomPolygon) Closed() bool {
	return len(p.Boundary) >= 3
}

// Area returns the absolute enclosed area (shoelace formula).
func (p RoomPolygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// SignedArea returns the shoelace area: positive for counterclockwise
// boundaries in a y-up coordinate system.
func (p RoomPolygon) SignedArea() float64 {
	n := len(p.Boundary)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Boundary[i]
		b := p.Boundary[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Perimeter returns the boundary length.
func (p RoomPolygon) Perimeter() float64 {
	n := len(p.Boundary)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += Dist(p.Boundary[i], p.Boundary[(i+1)%n])
	}
	return sum
}

// Centroid returns the vertex centroid of the boundary.
func (p RoomPolygon) Centroid() Point {
	var c Point
	if len(p.Boundary) == 0 {
		return c
	}
	for _, pt := range p.Boundary {
		c.X += pt.X
		c.Y += pt.Y
	}
	c.X /= float64(len(p.Boundary))
	c.Y /= float64(len(p.Boundary))
	return c
}

// BoundingBox returns the axis-aligned bounds of the boundary.
func (p RoomPolygon) BoundingBox() Rect {
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, pt := range p.Boundary {
		r.MinX = math.Min(r.MinX, pt.X)
		r.MinY = math.Min(r.MinY, pt.Y)
		r.MaxX = math.Max(r.MaxX, pt.X)
		r.MaxY = math.Max(r.MaxY, pt.Y)
	}
	return r
}

// ContainsPoint reports whether pt lies inside the polygon (ray casting).
func (p RoomPolygon) ContainsPoint(pt Point) bool {
	n := len(p.Boundary)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := p.Boundary[i], p.Boundary[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// IsSimple reports whether no two non-adjacent edges intersect.
func (p RoomPolygon) IsSimple() bool {
	n := len(p.Boundary)
	if n < 3 {
		return false
	}
	edge := func(i int) (Point, Point) {
		return p.Boundary[i], p.Boundary[(i+1)%n]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// skip adjacent edges (shared vertex)
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			a1, a2 := edge(i)
			b1, b2 := edge(j)
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
