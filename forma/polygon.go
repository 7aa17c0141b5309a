package forma

import "math"

// Polygon is a canonical outer ring.
// It is either empty (nil) or holds at least 3 vertices with positive shoelace area
// (counter-clockwise in a y-up frame). The edge from the last vertex back to the first
// one is implied, so the first vertex is never repeated at the end.
type Polygon []Point

// MultiPolygon is an ordered set of polygons, e.g. disconnected blobs of a mask
type MultiPolygon []Polygon

// Shape is anything that can be normalized into polygons
type Shape interface {
	MultiPolygon() MultiPolygon
}

// MultiPolygon returns box as a single polygon
func (box Box) MultiPolygon() MultiPolygon {
	return single(BoxToPolygon(box))
}

// MultiPolygon returns fence as a single polygon
func (fence Fence) MultiPolygon() MultiPolygon {
	return single(FenceToPolygon(fence))
}

// MultiPolygon wraps polygon into a MultiPolygon
func (polygon Polygon) MultiPolygon() MultiPolygon {
	return single(polygon)
}

// MultiPolygon returns itself
func (mp MultiPolygon) MultiPolygon() MultiPolygon {
	return mp
}

func single(polygon Polygon) MultiPolygon {
	if len(polygon) == 0 {
		return nil
	}
	return MultiPolygon{polygon}
}

// Area returns polygon's area (shoelace formula)
func (polygon Polygon) Area() float32 {
	return float32(math.Abs(signedArea(toVecs(polygon))))
}

// Area returns sum of member areas
func (mp MultiPolygon) Area() float32 {
	return float32(mp.area())
}

func (mp MultiPolygon) area() float64 {
	total := 0.0
	for _, polygon := range mp {
		total += math.Abs(signedArea(toVecs(polygon)))
	}
	return total
}

// BoxToPolygon returns box corners (left,top)->(right,top)->(right,bottom)->(left,bottom) canonicalized.
// Boxes with zero or negative width/height give the empty polygon.
func BoxToPolygon(box Box) Polygon {
	if box.isDegenerate() {
		return nil
	}
	return Canonicalize([]Point{
		{X: box.Left, Y: box.Top},
		{X: box.Right, Y: box.Top},
		{X: box.Right, Y: box.Bottom},
		{X: box.Left, Y: box.Bottom},
	})
}

// FenceToPolygon builds polygon from fence points in the given order.
// Less than 3 points give the empty polygon.
func FenceToPolygon(fence Fence) Polygon {
	if len(fence) < 3 {
		return nil
	}
	return Canonicalize(fence)
}

// Canonicalize turns arbitrary ring into canonical Polygon: drops repeated and collinear
// vertices (including the repeated closing vertex), fixes orientation.
// Rings with zero area give the empty polygon.
func Canonicalize(points []Point) Polygon {
	return canonicalRing(toVecs(points))
}

func canonicalRing(ring []vec) Polygon {
	ring = simplifyRing(ring)
	if len(ring) < 3 {
		return nil
	}
	area := signedArea(ring)
	if area == 0 {
		return nil
	}
	polygon := make(Polygon, len(ring))
	if area > 0 {
		for i, v := range ring {
			polygon[i] = v.point()
		}
		return polygon
	}
	for i, v := range ring {
		polygon[len(ring)-1-i] = v.point()
	}
	return polygon
}

// isCollinear reports whether b can be dropped from a->b->c: b lies on line a-c,
// or the path reverses on itself at b (zero-width spike), or b repeats a neighbour.
func isCollinear(a, b, c vec) bool {
	ab := b.sub(a)
	bc := c.sub(b)
	lab := ab.norm()
	lbc := bc.norm()
	if lab <= geomEps || lbc <= geomEps {
		return true
	}
	return math.Abs(cross(ab, bc)) <= geomEps*lab*lbc
}

// simplifyRing merges consecutive collinear vertices of a closed ring
func simplifyRing(ring []vec) []vec {
	stack := make([]vec, 0, len(ring))
	for _, v := range ring {
		for len(stack) >= 2 && isCollinear(stack[len(stack)-2], stack[len(stack)-1], v) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 1 && nearVec(stack[0], v) {
			continue
		}
		stack = append(stack, v)
	}
	// Wrap-around: the closing edge may make the tail or the head collinear as well
	for len(stack) >= 3 {
		n := len(stack)
		if isCollinear(stack[n-2], stack[n-1], stack[0]) {
			stack = stack[:n-1]
			continue
		}
		if isCollinear(stack[n-1], stack[0], stack[1]) {
			stack = stack[1:]
			continue
		}
		break
	}
	return stack
}

func toVecs(points []Point) []vec {
	out := make([]vec, len(points))
	for i, p := range points {
		out[i] = vecFrom(p)
	}
	return out
}

// signedArea is the shoelace sum of implicitly closed ring
func signedArea(ring []vec) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += cross(ring[i], ring[j])
	}
	return sum / 2.0
}
