package forma

import (
	"testing"
)

func TestPointInBox(t *testing.T) {
	tests := []struct {
		point    Point
		expected bool
	}{
		{NewPoint(20, 20), true},
		{NewPoint(10, 20), true},
		{NewPoint(30, 30), true},
		{NewPoint(5, 20), false},
		{NewPoint(20, 31), false},
	}
	for _, test := range tests {
		if got := PointInBox(test.point, box1); got != test.expected {
			t.Errorf("Point %v in box %v: expected %v, got %v", test.point, box1, test.expected, got)
		}
		if got := Covers(box1, test.point); got != test.expected {
			t.Errorf("Covers for point %v: expected %v, got %v", test.point, test.expected, got)
		}
	}
	flat := NewBox(10, 0, 10, 10)
	if PointInBox(NewPoint(10, 5), flat) {
		t.Errorf("Zero width box must not contain anything")
	}
	if Covers(flat, NewPoint(10, 5)) {
		t.Errorf("Zero width box must not cover anything")
	}
}

func TestPointInFence(t *testing.T) {
	tests := []struct {
		point    Point
		expected bool
	}{
		{NewPoint(25, 25), true},
		{NewPoint(0, 25), true},
		{NewPoint(50, 50), true},
		{NewPoint(51, 51), false},
		{NewPoint(-1, 25), false},
	}
	for _, test := range tests {
		if got := PointInFence(test.point, fence); got != test.expected {
			t.Errorf("Point %v in fence: expected %v, got %v", test.point, test.expected, got)
		}
	}
	if PointInFence(NewPoint(0, 0), Fence{{0, 0}, {10, 10}}) {
		t.Errorf("Degenerate fence must not contain anything")
	}
	// Notch of concave fence is outside
	lShape := Fence{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	if PointInFence(NewPoint(15, 15), lShape) {
		t.Errorf("Point in the notch must be outside")
	}
	if !PointInFence(NewPoint(5, 15), lShape) {
		t.Errorf("Point in the lower arm must be inside")
	}
}

func TestPointInMask(t *testing.T) {
	seg1 := maskFromRect(10, 10, 30, 30)
	tests := []struct {
		point    Point
		expected bool
	}{
		{NewPoint(15, 15), true},
		{NewPoint(10, 10), true},
		{NewPoint(30, 20), true},
		{NewPoint(5, 5), false},
		{NewPoint(200, 200), false},
	}
	for _, test := range tests {
		if got := PointInMask(test.point, seg1); got != test.expected {
			t.Errorf("Point %v in mask: expected %v, got %v", test.point, test.expected, got)
		}
	}
	if PointInMask(NewPoint(5, 5), NewMask(10, 10)) {
		t.Errorf("Empty mask must not contain anything")
	}
}

func TestPointInPolygon(t *testing.T) {
	mp := MultiPolygon{
		BoxToPolygon(NewBox(0, 0, 10, 10)),
		BoxToPolygon(NewBox(20, 0, 30, 10)),
	}
	if !PointInPolygon(NewPoint(25, 5), mp) {
		t.Errorf("Point in second member must be inside")
	}
	if PointInPolygon(NewPoint(15, 5), mp) {
		t.Errorf("Point between members must be outside")
	}
	if PointInPolygon(NewPoint(5, 5), nil) {
		t.Errorf("Empty multipolygon must not contain anything")
	}
}

func TestBoxInFence(t *testing.T) {
	if !BoxInFence(box1, fence) {
		t.Errorf("Box %v must be in fence", box1)
	}
	if BoxInFence(boxIntersectingFence, fence) {
		t.Errorf("Box %v must not be in fence", boxIntersectingFence)
	}
	if BoxInFence(boxNoOverlap, fence) {
		t.Errorf("Box %v must not be in fence", boxNoOverlap)
	}
	// Boundary-inclusive: box equal to fence is within it
	if !BoxInFence(NewBox(0, 0, 50, 50), fence) {
		t.Errorf("Box equal to fence must be in fence")
	}
	if BoxInFence(NewBox(10, 10, 10, 10), fence) {
		t.Errorf("Zero area box must never be in fence")
	}
}

func TestMaskInFence(t *testing.T) {
	seg1 := maskFromRect(10, 10, 30, 30)
	segIntersecting := maskFromRect(40, 40, 60, 60)
	segOutside := maskFromRect(100, 100, 120, 120)
	if !MaskInFence(seg1, fence) {
		t.Errorf("Mask must be in fence")
	}
	if MaskInFence(segIntersecting, fence) {
		t.Errorf("Intersecting mask must not be in fence")
	}
	if MaskInFence(segOutside, fence) {
		t.Errorf("Mask outside of canvas must not be in fence")
	}
	// Multi-component mask is judged as a whole
	twoBlobs := NewMask(100, 100)
	twoBlobs.FillRect(10, 10, 20, 20)
	twoBlobs.FillRect(60, 60, 70, 70)
	if MaskInFence(twoBlobs, fence) {
		t.Errorf("Mask with component outside of fence must not be in fence")
	}
}

func TestWithinImpliesFullIntersectionOverMin(t *testing.T) {
	seg1 := maskFromRect(10, 10, 30, 30)
	pairs := [][2]Shape{
		{boxContained, box1},
		{box1, fence},
		{seg1, fence},
		{boxContained, seg1},
	}
	for i, pair := range pairs {
		if !Within(pair[0], pair[1]) {
			t.Errorf("Pair #%d: candidate must be within container", i)
			continue
		}
		if ratio := IntersectionOverMin(pair[0], pair[1]); !almostEqual(ratio, 1, eps) {
			t.Errorf("Pair #%d: intersection over min must be 1, got %v", i, ratio)
		}
		if inter, area := IntersectionArea(pair[0], pair[1]), Area(pair[0]); !almostEqual(inter, area, eps) {
			t.Errorf("Pair #%d: intersection %v must equal candidate area %v", i, inter, area)
		}
	}
}
