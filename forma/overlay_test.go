package forma

import (
	"testing"
)

func TestOverlayIntersectionConcave(t *testing.T) {
	lShape := Fence{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	box := NewBox(5, 5, 15, 15)
	if area := PolygonArea(lShape); area != 300 {
		t.Errorf("Wrong fence area: %v, correct answer: 300", area)
	}
	inter := IntersectionBoxFenceArea(box, lShape)
	if !almostEqual(inter, 75, eps) {
		t.Errorf("Wrong intersection area: %v, correct answer: 75", inter)
	}
	geometry := Intersection(box, lShape)
	if len(geometry) != 1 {
		t.Fatalf("Expected 1 polygon, got %d: %v", len(geometry), geometry)
	}
	if len(geometry[0]) != 6 {
		t.Errorf("Expected 6 vertices, got %d: %v", len(geometry[0]), geometry[0])
	}
	if !almostEqual(geometry.Area(), 75, eps) {
		t.Errorf("Wrong geometry area: %v, correct answer: 75", geometry.Area())
	}
}

func TestOverlayCoincidentEdges(t *testing.T) {
	box := NewBox(10, 10, 30, 30)
	fence := Fence{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	if inter := IntersectionBoxFenceArea(box, fence); !almostEqual(inter, 400, eps) {
		t.Errorf("Wrong intersection area: %v, correct answer: 400", inter)
	}
	// Sharing a single edge gives no area
	neighbour := Fence{{30, 10}, {50, 10}, {50, 30}, {30, 30}}
	if inter := IntersectionBoxFenceArea(box, neighbour); !almostEqual(inter, 0, eps) {
		t.Errorf("Wrong intersection area: %v, correct answer: 0", inter)
	}
	// Partial overlap
	half := Fence{{20, 0}, {40, 0}, {40, 20}, {20, 20}}
	if inter := IntersectionBoxFenceArea(box, half); !almostEqual(inter, 100, eps) {
		t.Errorf("Wrong intersection area: %v, correct answer: 100", inter)
	}
}

func TestOverlayDissolvesOverlappingMembers(t *testing.T) {
	mp := MultiPolygon{
		BoxToPolygon(NewBox(0, 0, 10, 10)),
		BoxToPolygon(NewBox(5, 0, 15, 10)),
	}
	if area := Area(mp); !almostEqual(area, 150, eps) {
		t.Errorf("Wrong area: %v, correct answer: 150", area)
	}
	if iou := IoU(mp, NewBox(0, 0, 15, 10)); !almostEqual(iou, 1, eps) {
		t.Errorf("Wrong IoU: %v, correct answer: 1", iou)
	}
	disjoint := MultiPolygon{
		BoxToPolygon(NewBox(0, 0, 10, 10)),
		BoxToPolygon(NewBox(20, 0, 30, 10)),
	}
	if area := Area(disjoint); !almostEqual(area, 200, eps) {
		t.Errorf("Wrong area: %v, correct answer: 200", area)
	}
}

func TestCancelOpposite(t *testing.T) {
	square := ringEdges(BoxToPolygon(NewBox(0, 0, 10, 10)))
	withBridge := append(append(edgeSet{}, square...),
		segment{a: vec{10, 5}, b: vec{20, 5}},
		segment{a: vec{20, 5}, b: vec{10, 5}},
	)
	cleaned := cancelOpposite(withBridge)
	if len(cleaned) != len(square) {
		t.Errorf("Expected %d edges, got %d: %v", len(square), len(cleaned), cleaned)
	}
	if area := cleaned.area(); area != 100 {
		t.Errorf("Wrong area: %v, correct answer: 100", area)
	}

	partial := edgeSet{
		{a: vec{0, 0}, b: vec{10, 0}},
		{a: vec{15, 0}, b: vec{5, 0}},
	}
	cleaned = cancelOpposite(partial)
	if len(cleaned) != 2 {
		t.Fatalf("Expected 2 edges, got %d: %v", len(cleaned), cleaned)
	}
	for _, e := range cleaned {
		if e.a.x > 5 && e.a.x < 10 || e.b.x > 5 && e.b.x < 10 {
			t.Errorf("Overlapping part must be cancelled, got %v", e)
		}
	}
}

func TestMaskBridgeCancellation(t *testing.T) {
	// Two blocks joined by one pixel wide bridge along row 2
	mask := NewMask(20, 10)
	mask.FillRect(0, 0, 4, 4)
	mask.FillRect(10, 0, 14, 4)
	mask.FillRect(5, 2, 9, 2)
	polygons := MaskToPolygon(mask)
	if len(polygons) != 1 {
		t.Fatalf("Expected 1 polygon, got %d", len(polygons))
	}
	if iou := MaskIoU(mask, mask); !almostEqual(iou, 1, eps) {
		t.Errorf("Wrong IoU: %v, correct answer: 1", iou)
	}
	// Box whose top edge lies on the bridge covers no mask area
	if inter := IntersectionBoxMaskArea(NewBox(5, 2, 9, 8), mask); !almostEqual(inter, 0, eps) {
		t.Errorf("Wrong intersection area: %v, correct answer: 0", inter)
	}
	if PointInMask(NewPoint(7, 4), mask) {
		t.Errorf("Point below the bridge must not be covered")
	}
}

func TestIntersectionDisjoint(t *testing.T) {
	if geometry := Intersection(NewBox(0, 0, 10, 10), NewBox(20, 20, 30, 30)); len(geometry) != 0 {
		t.Errorf("Disjoint shapes must give empty intersection, got %v", geometry)
	}
	if geometry := Intersection(NewBox(0, 0, 10, 10), Fence{{0, 0}, {1, 1}}); len(geometry) != 0 {
		t.Errorf("Degenerate fence must give empty intersection, got %v", geometry)
	}
}
