// Package forma computes spatial relationships between boxes, segmentation masks and
// geofences: areas, intersections, IoU, intersection-over-min ratios and containment.
//
// Every shape is normalized into canonical polygons (see Shape), so a single
// intersection and containment implementation serves all pairwise combinations.
// Box-box pairs take an analytic fast path. Nothing here keeps state between calls:
// all functions are safe for concurrent use, and masks are never written to.
package forma

// Box-Box

// BoxArea returns max(0, right-left) * max(0, bottom-top)
func BoxArea(box Box) float32 {
	return box.Area()
}

// IntersectionBoxArea returns area of overlap between two boxes
func IntersectionBoxArea(box1, box2 Box) float32 {
	return float32(intersectionBoxArea(box1, box2))
}

// BoxIoU returns IoU of two boxes
func BoxIoU(box1, box2 Box) float32 {
	return IoU(box1, box2)
}

// IntersectionOverMinBoxRatio returns overlap divided by smaller box area
func IntersectionOverMinBoxRatio(box1, box2 Box) float32 {
	return IntersectionOverMin(box1, box2)
}

// Mask-Mask

// MaskArea returns area enclosed by mask's outer contours
func MaskArea(mask *Mask) float32 {
	return Area(mask)
}

// IntersectionMaskArea returns area shared by outer contours of two masks
func IntersectionMaskArea(mask1, mask2 *Mask) float32 {
	return IntersectionArea(mask1, mask2)
}

// MaskIoU returns IoU of two masks
func MaskIoU(mask1, mask2 *Mask) float32 {
	return IoU(mask1, mask2)
}

// IntersectionOverMinMaskRatio returns overlap divided by smaller mask area
func IntersectionOverMinMaskRatio(mask1, mask2 *Mask) float32 {
	return IntersectionOverMin(mask1, mask2)
}

// Box-Mask

// IntersectionBoxMaskArea returns area shared by box and mask
func IntersectionBoxMaskArea(box Box, mask *Mask) float32 {
	return IntersectionArea(box, mask)
}

// BoxMaskIoU returns IoU of box and mask
func BoxMaskIoU(box Box, mask *Mask) float32 {
	return IoU(box, mask)
}

// IntersectionOverMinBoxMaskRatio returns overlap divided by smaller of box and mask areas
func IntersectionOverMinBoxMaskRatio(box Box, mask *Mask) float32 {
	return IntersectionOverMin(box, mask)
}

// Fence

// PolygonArea returns area of the fence polygon, 0 for less than 3 points
func PolygonArea(fence Fence) float32 {
	return Area(fence)
}

// IntersectionBoxFenceArea returns area of the part of box inside of fence
func IntersectionBoxFenceArea(box Box, fence Fence) float32 {
	return IntersectionArea(box, fence)
}

// BoxFenceIoU returns IoU of box and fence
func BoxFenceIoU(box Box, fence Fence) float32 {
	return IoU(box, fence)
}

// IntersectionOverMinBoxFenceRatio returns overlap divided by smaller of box and fence areas
func IntersectionOverMinBoxFenceRatio(box Box, fence Fence) float32 {
	return IntersectionOverMin(box, fence)
}

// IntersectionMaskFenceArea returns area of the part of mask inside of fence
func IntersectionMaskFenceArea(mask *Mask, fence Fence) float32 {
	return IntersectionArea(mask, fence)
}

// MaskFenceIoU returns IoU of mask and fence
func MaskFenceIoU(mask *Mask, fence Fence) float32 {
	return IoU(mask, fence)
}

// IntersectionOverMinMaskFenceRatio returns overlap divided by smaller of mask and fence areas
func IntersectionOverMinMaskFenceRatio(mask *Mask, fence Fence) float32 {
	return IntersectionOverMin(mask, fence)
}

// Points

// PointInMask reports whether point is covered by mask's outer contours
func PointInMask(point Point, mask *Mask) bool {
	return Covers(mask, point)
}

// PointInFence reports whether point is inside of fence or on its boundary
func PointInFence(point Point, fence Fence) bool {
	return Covers(fence, point)
}

// Shapes in fence

// BoxInFence reports whether box is fully covered by fence
func BoxInFence(box Box, fence Fence) bool {
	return Within(box, fence)
}

// MaskInFence reports whether every mask component is fully covered by fence
func MaskInFence(mask *Mask, fence Fence) bool {
	return Within(mask, fence)
}
