package forma

import "math"

// Prepared is a shape normalized once: polygons, boundary edges and area.
// Pass it instead of the raw shape when the same shape takes part in many metric calls.
// Prepared is immutable and safe for concurrent use.
type Prepared struct {
	isBox   bool
	box     Box
	polygon MultiPolygon
	edges   edgeSet
	bounds  bounds
	area    float64
}

// Prepare normalizes shape. Already prepared shapes are returned as is.
func Prepare(shape Shape) *Prepared {
	if prepared, ok := shape.(*Prepared); ok {
		return prepared
	}
	p := &Prepared{}
	if shape == nil {
		p.bounds = emptyBounds()
		return p
	}
	if box, ok := shape.(Box); ok {
		p.isBox = true
		p.box = box
	}
	p.polygon = shape.MultiPolygon()
	p.edges = regionEdges(p.polygon)
	p.bounds = p.edges.bounds()
	if p.isBox {
		p.area = float64(p.box.Area())
	} else {
		p.area = math.Max(0, p.edges.area())
	}
	return p
}

// MultiPolygon returns normalized polygons
func (p *Prepared) MultiPolygon() MultiPolygon {
	return p.polygon
}

// Area returns area of normalized shape
func (p *Prepared) Area() float32 {
	return float32(p.area)
}

// asBox unwraps boxes, prepared ones included, for the analytic fast path
func asBox(shape Shape) (Box, bool) {
	switch s := shape.(type) {
	case Box:
		return s, true
	case *Prepared:
		return s.box, s.isBox
	}
	return Box{}, false
}

// Area returns area of any shape, always >= 0. Boxes are computed analytically.
func Area(shape Shape) float32 {
	if box, ok := asBox(shape); ok {
		return box.Area()
	}
	return float32(Prepare(shape).area)
}

// intersectionBoxArea is overlap-of-intervals formula
func intersectionBoxArea(box1, box2 Box) float64 {
	left := maxFloat32(box1.Left, box2.Left)
	top := maxFloat32(box1.Top, box2.Top)
	right := minFloat32(box1.Right, box2.Right)
	bottom := minFloat32(box1.Bottom, box2.Bottom)
	return float64(maxFloat32(0, right-left)) * float64(maxFloat32(0, bottom-top))
}

func intersectionArea(p1, p2 *Prepared) float64 {
	if p1.isBox && p2.isBox {
		return intersectionBoxArea(p1.box, p2.box)
	}
	if p1.area <= Epsilon || p2.area <= Epsilon || !p1.bounds.overlaps(p2.bounds) {
		return 0
	}
	inter := overlay(p1.edges, p2.edges, opIntersection).area()
	// Clipping noise must never report more than the smaller operand
	return math.Max(0, math.Min(inter, math.Min(p1.area, p2.area)))
}

// IntersectionArea returns area shared by two shapes
func IntersectionArea(shape1, shape2 Shape) float32 {
	return float32(intersectionArea(Prepare(shape1), Prepare(shape2)))
}

// Intersection returns shared geometry of two shapes. Disjoint shapes give empty result.
func Intersection(shape1, shape2 Shape) MultiPolygon {
	p1, p2 := Prepare(shape1), Prepare(shape2)
	if p1.area <= Epsilon || p2.area <= Epsilon || !p1.bounds.overlaps(p2.bounds) {
		return nil
	}
	return overlay(p1.edges, p2.edges, opIntersection).rings()
}

// metrics holds everything needed for ratio computations
type metrics struct {
	intersection float64
	area1        float64
	area2        float64
}

func measure(shape1, shape2 Shape) metrics {
	p1, p2 := Prepare(shape1), Prepare(shape2)
	return metrics{
		intersection: intersectionArea(p1, p2),
		area1:        p1.area,
		area2:        p2.area,
	}
}

// IoU returns intersection over union in [0, 1], 0 when union is effectively empty
func IoU(shape1, shape2 Shape) float32 {
	if box1, ok := asBox(shape1); ok {
		if box2, ok := asBox(shape2); ok {
			inter := intersectionBoxArea(box1, box2)
			return ratio(inter, float64(box1.Area())+float64(box2.Area())-inter)
		}
	}
	m := measure(shape1, shape2)
	return ratio(m.intersection, m.area1+m.area2-m.intersection)
}

// IntersectionOverMin returns intersection area divided by the smaller area, in [0, 1]
func IntersectionOverMin(shape1, shape2 Shape) float32 {
	if box1, ok := asBox(shape1); ok {
		if box2, ok := asBox(shape2); ok {
			inter := intersectionBoxArea(box1, box2)
			return ratio(inter, math.Min(float64(box1.Area()), float64(box2.Area())))
		}
	}
	m := measure(shape1, shape2)
	return ratio(m.intersection, math.Min(m.area1, m.area2))
}
