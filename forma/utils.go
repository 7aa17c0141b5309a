package forma

import "math"

// Epsilon gates every division in ratio metrics (area units)
const Epsilon = 1e-6

// geometric tolerance for coincidence tests on float64 coordinates
const geomEps = 1e-9

// ratio returns num/den clamped to [0, 1], or 0 when den is effectively zero
func ratio(num, den float64) float32 {
	if den <= Epsilon {
		return 0.0
	}
	r := num / den
	if r < 0 || math.IsNaN(r) {
		return 0.0
	}
	if r > 1 {
		return 1.0
	}
	return float32(r)
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// vec is internal float64 point used by all polygon arithmetic
type vec struct {
	x float64
	y float64
}

func vecFrom(p Point) vec {
	return vec{x: float64(p.X), y: float64(p.Y)}
}

func (v vec) point() Point {
	return Point{X: float32(v.x), Y: float32(v.y)}
}

func (v vec) sub(o vec) vec {
	return vec{x: v.x - o.x, y: v.y - o.y}
}

func (v vec) add(o vec) vec {
	return vec{x: v.x + o.x, y: v.y + o.y}
}

func (v vec) scale(k float64) vec {
	return vec{x: v.x * k, y: v.y * k}
}

func (v vec) norm() float64 {
	return math.Hypot(v.x, v.y)
}

func cross(a, b vec) float64 {
	return a.x*b.y - a.y*b.x
}

func dot(a, b vec) float64 {
	return a.x*b.x + a.y*b.y
}

func nearVec(a, b vec) bool {
	return math.Abs(a.x-b.x) <= geomEps && math.Abs(a.y-b.y) <= geomEps
}

// bounds is an axis-aligned extent used for cheap rejection tests
type bounds struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

func emptyBounds() bounds {
	return bounds{empty: true}
}

func (b bounds) extend(v vec) bounds {
	if b.empty {
		return bounds{minX: v.x, minY: v.y, maxX: v.x, maxY: v.y}
	}
	b.minX = minFloat64(b.minX, v.x)
	b.minY = minFloat64(b.minY, v.y)
	b.maxX = maxFloat64(b.maxX, v.x)
	b.maxY = maxFloat64(b.maxY, v.y)
	return b
}

func (b bounds) union(o bounds) bounds {
	if b.empty {
		return o
	}
	if o.empty {
		return b
	}
	return bounds{
		minX: minFloat64(b.minX, o.minX),
		minY: minFloat64(b.minY, o.minY),
		maxX: maxFloat64(b.maxX, o.maxX),
		maxY: maxFloat64(b.maxY, o.maxY),
	}
}

// overlaps is boundary-inclusive
func (b bounds) overlaps(o bounds) bool {
	if b.empty || o.empty {
		return false
	}
	return b.minX <= o.maxX+geomEps && o.minX <= b.maxX+geomEps &&
		b.minY <= o.maxY+geomEps && o.minY <= b.maxY+geomEps
}
