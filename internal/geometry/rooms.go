package geometry

import (
	"math"
	"sort"
)

// AssembleConfig bounds the wall-graph room assembly.
type AssembleConfig struct {
	SnapTolerance float64 // endpoint snap distance, feet
	MinRoomArea   float64 // discard faces smaller than this, sq ft
}

func (c *AssembleConfig) defaults() {
	if c.SnapTolerance <= 0 {
		c.SnapTolerance = 0.25
	}
	if c.MinRoomArea <= 0 {
		c.MinRoomArea = 4.0
	}
}

// AssembleRooms builds closed room polygons from a set of wall segments.
//
// Wall endpoints are snapped onto shared nodes, the resulting planar graph is
// traversed face by face, and each bounded face becomes a room candidate. The
// unbounded outer face is identified by its orientation and dropped. Faces
// that are degenerate, self-intersecting, or below the minimum area are
// discarded rather than repaired; the caller accounts for their absence in
// its confidence score.
func AssembleRooms(walls []WallSegment, cfg AssembleConfig) []RoomPolygon {
	cfg.defaults()
	if len(walls) == 0 {
		return nil
	}

	nodes, edges := buildGraph(walls, cfg.SnapTolerance)
	if len(edges) == 0 {
		return nil
	}

	faces := traceFaces(nodes, edges)

	// Outer face: traversal orientation makes bounded faces counterclockwise
	// (positive signed area); the unbounded face comes out clockwise.
	var rooms []RoomPolygon
	outer := outerFaceIndex(nodes, faces)
	outerEdges := map[[2]int]bool{}
	if outer >= 0 {
		for _, he := range faces[outer].halfEdges {
			outerEdges[[2]int{he.to, he.from}] = true // twin of an outer half-edge
		}
	}

	for i, f := range faces {
		if i == outer {
			continue
		}
		poly := RoomPolygon{Boundary: facePoints(nodes, f)}
		if !poly.Closed() || poly.SignedArea() <= 0 {
			continue
		}
		if poly.Area() < cfg.MinRoomArea {
			continue
		}
		if !poly.IsSimple() {
			continue
		}
		// Count boundary edges shared with the outer face.
		ext := 0
		for _, he := range f.halfEdges {
			if outerEdges[[2]int{he.from, he.to}] {
				ext++
			}
		}
		poly.ExteriorWallCount = ext
		rooms = append(rooms, poly)
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Area() > rooms[j].Area() })
	return rooms
}

type halfEdge struct {
	from, to int // node indices
}

type face struct {
	halfEdges []halfEdge
}

// buildGraph snaps wall endpoints to shared nodes within tolerance and
// returns the node positions plus undirected edges as node-index pairs.
func buildGraph(walls []WallSegment, tol float64) ([]Point, [][2]int) {
	var nodes []Point
	findOrAdd := func(p Point) int {
		for i, n := range nodes {
			if Dist(n, p) <= tol {
				return i
			}
		}
		nodes = append(nodes, p)
		return len(nodes) - 1
	}

	seen := map[[2]int]bool{}
	var edges [][2]int
	for _, w := range walls {
		a := findOrAdd(w.Start)
		b := findOrAdd(w.End)
		if a == b {
			continue // zero-length after snapping
		}
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, [2]int{a, b})
	}
	return nodes, edges
}

// traceFaces enumerates the faces of the planar graph using the standard
// next-clockwise-edge walk: arriving at a node along a half-edge, the
// traversal continues along the neighbor that follows the reversed edge in
// clockwise angular order.
func traceFaces(nodes []Point, edges [][2]int) []face {
	// adjacency with neighbors sorted by angle
	adj := make([][]int, len(nodes))
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for v := range adj {
		vv := v
		sort.Slice(adj[vv], func(i, j int) bool {
			return edgeAngle(nodes, vv, adj[vv][i]) < edgeAngle(nodes, vv, adj[vv][j])
		})
	}

	// index of neighbor u in adj[v]
	nbrIdx := func(v, u int) int {
		for i, w := range adj[v] {
			if w == u {
				return i
			}
		}
		return -1
	}

	visited := map[halfEdge]bool{}
	var faces []face
	for _, e := range edges {
		for _, start := range []halfEdge{{e[0], e[1]}, {e[1], e[0]}} {
			if visited[start] {
				continue
			}
			var f face
			cur := start
			for {
				visited[cur] = true
				f.halfEdges = append(f.halfEdges, cur)
				// at cur.to, pick the edge clockwise-next from the reversal
				i := nbrIdx(cur.to, cur.from)
				if i < 0 {
					break
				}
				n := len(adj[cur.to])
				next := halfEdge{cur.to, adj[cur.to][(i-1+n)%n]}
				if next == start {
					break
				}
				cur = next
				if len(f.halfEdges) > 4*len(edges) {
					break // guard against malformed adjacency
				}
			}
			if len(f.halfEdges) >= 3 {
				faces = append(faces, f)
			}
		}
	}
	return faces
}

func edgeAngle(nodes []Point, from, to int) float64 {
	return math.Atan2(nodes[to].Y-nodes[from].Y, nodes[to].X-nodes[from].X)
}

func facePoints(nodes []Point, f face) []Point {
	pts := make([]Point, 0, len(f.halfEdges))
	for _, he := range f.halfEdges {
		pts = append(pts, nodes[he.from])
	}
	return pts
}

// outerFaceIndex returns the index of the unbounded face: the one traced
// clockwise (negative signed area). With several negative faces (disconnected
// graphs) the largest in magnitude wins.
func outerFaceIndex(nodes []Point, faces []face) int {
	best := -1
	bestArea := 0.0
	for i, f := range faces {
		poly := RoomPolygon{Boundary: facePoints(nodes, f)}
		a := poly.SignedArea()
		if a < 0 && -a > bestArea {
			bestArea = -a
			best = i
		}
	}
	return best
}
