package forma

import (
	"image"
)

// Point is a location in image coordinates (X grows rightward, Y grows downward)
type Point struct {
	X float32
	Y float32
}

func NewPoint(x, y float32) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float32(point.X),
		Y: float32(point.Y),
	}
}

// Box is an axis-aligned rectangle given by its edges.
// Left <= Right and Top <= Bottom are assumed, inverted boxes have zero area.
type Box struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

func NewBox(left, top, right, bottom float32) Box {
	return Box{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// NewBoxXYWH creates box from top-left corner and size, the way most detectors report it
func NewBoxXYWH(x, y, width, height float32) Box {
	return Box{
		Left:   x,
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
	}
}

func NewBoxFrom(rect image.Rectangle) Box {
	return Box{
		Left:   float32(rect.Min.X),
		Top:    float32(rect.Min.Y),
		Right:  float32(rect.Max.X),
		Bottom: float32(rect.Max.Y),
	}
}

// Width returns horizontal extent of the box (never negative)
func (box Box) Width() float32 {
	return maxFloat32(0, box.Right-box.Left)
}

// Height returns vertical extent of the box (never negative)
func (box Box) Height() float32 {
	return maxFloat32(0, box.Bottom-box.Top)
}

// Center returns box's center
func (box Box) Center() Point {
	return Point{
		X: (box.Left + box.Right) / 2.0,
		Y: (box.Top + box.Bottom) / 2.0,
	}
}

// Area returns box's area computed analytically
func (box Box) Area() float32 {
	return box.Width() * box.Height()
}

func (box Box) isDegenerate() bool {
	return box.Right <= box.Left || box.Bottom <= box.Top
}

// Fence is an ordered list of points describing a simple polygon (geofence).
// The ring is implicitly closed and may have any orientation.
type Fence []Point

// NewFence creates fence from (x, y) pairs
func NewFence(coords ...[2]float32) Fence {
	fence := make(Fence, 0, len(coords))
	for _, c := range coords {
		fence = append(fence, Point{X: c[0], Y: c[1]})
	}
	return fence
}
