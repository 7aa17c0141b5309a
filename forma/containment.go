package forma

import "math"

// All containment predicates use "covered-by" semantics: boundary counts as inside.

// PointInBox checks bounds directly, boundary-inclusive. Zero-area boxes contain nothing.
func PointInBox(point Point, box Box) bool {
	if box.isDegenerate() {
		return false
	}
	return point.X >= box.Left && point.X <= box.Right &&
		point.Y >= box.Top && point.Y <= box.Bottom
}

// PointInPolygon reports whether point is inside of any member or on its boundary
func PointInPolygon(point Point, mp MultiPolygon) bool {
	return coversPoint(regionEdges(mp), vecFrom(point))
}

func coversPoint(edges edgeSet, p vec) bool {
	if len(edges) == 0 {
		return false
	}
	for _, e := range edges {
		if onEdge(p, e) {
			return true
		}
	}
	return winding(p, edges) != 0
}

// Covers reports whether point lies inside of shape or on its boundary
func Covers(shape Shape, point Point) bool {
	if box, ok := asBox(shape); ok {
		return PointInBox(point, box)
	}
	p := Prepare(shape)
	if p.area <= Epsilon {
		return false
	}
	return coversPoint(p.edges, vecFrom(point))
}

// Within reports whether every part of candidate lies inside of container (boundary-inclusive).
// Multi-component candidates must be contained as a whole.
// Degenerate (zero-area) candidates are never within anything.
func Within(candidate, container Shape) bool {
	p1, p2 := Prepare(candidate), Prepare(container)
	if p1.area <= Epsilon || p2.area <= Epsilon {
		return false
	}
	inter := intersectionArea(p1, p2)
	return p1.area-inter <= Epsilon*math.Max(1, p1.area)
}
