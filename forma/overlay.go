package forma

import (
	"math"
	"sort"
)

// segment is a directed boundary edge. Regions are kept as sets of directed edges whose
// interior lies to the left (positive shoelace orientation), so winding number is 1 inside.
type segment struct {
	a vec
	b vec
}

type edgeSet []segment

type overlayOp int

const (
	opIntersection overlayOp = iota
	opUnion
)

type position int

const (
	posOutside position = iota
	posInside
	// fragment lies on other region's boundary running the same way
	posSameBoundary
	// fragment lies on other region's boundary running the opposite way
	posOppositeBoundary
)

type cut struct {
	t float64
	p vec
}

func ringEdges(polygon Polygon) edgeSet {
	n := len(polygon)
	if n < 3 {
		return nil
	}
	edges := make(edgeSet, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, segment{a: vecFrom(polygon[i]), b: vecFrom(polygon[(i+1)%n])})
	}
	return edges
}

// regionEdges turns MultiPolygon into boundary of the union of its members.
// Overlapping members are dissolved so shared parts are counted once.
func regionEdges(mp MultiPolygon) edgeSet {
	var region edgeSet
	regionBounds := emptyBounds()
	for _, polygon := range mp {
		ring := cancelOpposite(ringEdges(polygon))
		if len(ring) == 0 {
			continue
		}
		ringBounds := ring.bounds()
		if regionBounds.overlaps(ringBounds) {
			region = overlay(region, ring, opUnion)
		} else {
			region = append(region, ring...)
		}
		regionBounds = regionBounds.union(ringBounds)
	}
	return region
}

func (edges edgeSet) bounds() bounds {
	b := emptyBounds()
	for _, e := range edges {
		b = b.extend(e.a).extend(e.b)
	}
	return b
}

// area is the shoelace sum over directed edges
func (edges edgeSet) area() float64 {
	sum := 0.0
	for _, e := range edges {
		sum += cross(e.a, e.b)
	}
	return sum / 2.0
}

func segmentBounds(s segment) bounds {
	return emptyBounds().extend(s.a).extend(s.b)
}

// intersectSegments records crossing points of ea and eb as cuts on both edges.
// Touching at an endpoint cuts only the other edge, collinear overlaps cut at projected endpoints.
func intersectSegments(ea, eb segment, cutsA, cutsB *[]cut) {
	r := ea.b.sub(ea.a)
	s := eb.b.sub(eb.a)
	rr := dot(r, r)
	ss := dot(s, s)
	if rr == 0 || ss == 0 {
		return
	}
	lr := math.Sqrt(rr)
	ls := math.Sqrt(ss)
	qp := eb.a.sub(ea.a)
	denom := cross(r, s)
	if math.Abs(denom) <= geomEps*lr*ls {
		// Parallel: only collinear overlap matters
		if math.Abs(cross(qp, r)) > geomEps*lr {
			return
		}
		for _, p := range [2]vec{eb.a, eb.b} {
			t := dot(p.sub(ea.a), r) / rr
			if t*lr > geomEps && (1-t)*lr > geomEps {
				*cutsA = append(*cutsA, cut{t: t, p: p})
			}
		}
		for _, p := range [2]vec{ea.a, ea.b} {
			u := dot(p.sub(eb.a), s) / ss
			if u*ls > geomEps && (1-u)*ls > geomEps {
				*cutsB = append(*cutsB, cut{t: u, p: p})
			}
		}
		return
	}
	t := cross(qp, s) / denom
	u := cross(qp, r) / denom
	tTol := geomEps / lr
	uTol := geomEps / ls
	if t < -tTol || t > 1+tTol || u < -uTol || u > 1+uTol {
		return
	}
	// Snap to existing vertices so both sides share bit-identical points
	var p vec
	switch {
	case t <= tTol:
		p = ea.a
	case t >= 1-tTol:
		p = ea.b
	case u <= uTol:
		p = eb.a
	case u >= 1-uTol:
		p = eb.b
	default:
		p = ea.a.add(r.scale(t))
	}
	if t > tTol && t < 1-tTol {
		*cutsA = append(*cutsA, cut{t: t, p: p})
	}
	if u > uTol && u < 1-uTol {
		*cutsB = append(*cutsB, cut{t: u, p: p})
	}
}

// fragmentEdges splits every edge at its cuts
func fragmentEdges(edges edgeSet, cuts [][]cut) edgeSet {
	out := make(edgeSet, 0, len(edges))
	for i, e := range edges {
		cs := cuts[i]
		if len(cs) == 0 {
			out = append(out, e)
			continue
		}
		sort.Slice(cs, func(a, b int) bool { return cs[a].t < cs[b].t })
		prev := e.a
		for _, c := range cs {
			if nearVec(c.p, prev) || nearVec(c.p, e.b) {
				continue
			}
			out = append(out, segment{a: prev, b: c.p})
			prev = c.p
		}
		out = append(out, segment{a: prev, b: e.b})
	}
	return out
}

// splitEdges cuts edges of both sets at every point where they meet
func splitEdges(a, b edgeSet) (edgeSet, edgeSet) {
	cutsA := make([][]cut, len(a))
	cutsB := make([][]cut, len(b))
	boundsB := make([]bounds, len(b))
	for j, eb := range b {
		boundsB[j] = segmentBounds(eb)
	}
	for i, ea := range a {
		ba := segmentBounds(ea)
		for j, eb := range b {
			if !ba.overlaps(boundsB[j]) {
				continue
			}
			intersectSegments(ea, eb, &cutsA[i], &cutsB[j])
		}
	}
	return fragmentEdges(a, cutsA), fragmentEdges(b, cutsB)
}

// winding returns winding number of point p with respect to closed edge set
func winding(p vec, edges edgeSet) int {
	wn := 0
	for _, e := range edges {
		isLeft := cross(e.b.sub(e.a), p.sub(e.a))
		if e.a.y <= p.y {
			if e.b.y > p.y && isLeft > 0 {
				wn++
			}
		} else if e.b.y <= p.y && isLeft < 0 {
			wn--
		}
	}
	return wn
}

// onEdge reports whether p lies on segment e (boundary-inclusive)
func onEdge(p vec, e segment) bool {
	s := e.b.sub(e.a)
	ls := s.norm()
	if ls <= geomEps {
		return nearVec(p, e.a)
	}
	if math.Abs(cross(p.sub(e.a), s)) > geomEps*ls {
		return false
	}
	proj := dot(p.sub(e.a), s)
	return proj >= -geomEps*ls && proj <= ls*ls+geomEps*ls
}

// classify locates fragment f (already split against other) relative to region other
func classify(f segment, other edgeSet) position {
	d := f.b.sub(f.a)
	ld := d.norm()
	m := f.a.add(f.b).scale(0.5)
	for _, e := range other {
		s := e.b.sub(e.a)
		ls := s.norm()
		if ls <= geomEps || math.Abs(cross(d, s)) > geomEps*ld*ls {
			continue
		}
		if !onEdge(m, e) {
			continue
		}
		if dot(d, s) > 0 {
			return posSameBoundary
		}
		return posOppositeBoundary
	}
	if winding(m, other) != 0 {
		return posInside
	}
	return posOutside
}

func keepFragment(op overlayOp, pos position, fromFirst bool) bool {
	switch op {
	case opIntersection:
		if pos == posInside {
			return true
		}
		return fromFirst && pos == posSameBoundary
	case opUnion:
		if pos == posOutside {
			return true
		}
		return fromFirst && pos == posSameBoundary
	}
	return false
}

// overlay computes boundary of boolean combination of two regions
func overlay(a, b edgeSet, op overlayOp) edgeSet {
	if len(a) == 0 || len(b) == 0 {
		if op == opUnion {
			return append(append(edgeSet{}, a...), b...)
		}
		return nil
	}
	if !a.bounds().overlaps(b.bounds()) {
		if op == opUnion {
			return append(append(edgeSet{}, a...), b...)
		}
		return nil
	}
	fa, fb := splitEdges(a, b)
	out := make(edgeSet, 0, len(fa)+len(fb))
	for _, f := range fa {
		if keepFragment(op, classify(f, b), true) {
			out = append(out, f)
		}
	}
	for _, f := range fb {
		if keepFragment(op, classify(f, a), false) {
			out = append(out, f)
		}
	}
	return out
}

// cancelOpposite removes pairs of coincident edges running in opposite directions,
// e.g. one pixel wide bridges traced twice by a mask contour. They bound no area.
func cancelOpposite(edges edgeSet) edgeSet {
	if len(edges) < 2 {
		return edges
	}
	cuts := make([][]cut, len(edges))
	hasOverlap := false
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if !segmentBounds(edges[i]).overlaps(segmentBounds(edges[j])) {
				continue
			}
			if !parallelSegments(edges[i], edges[j]) {
				continue
			}
			before := len(cuts[i]) + len(cuts[j])
			intersectSegments(edges[i], edges[j], &cuts[i], &cuts[j])
			if len(cuts[i])+len(cuts[j]) != before || sameSupport(edges[i], edges[j]) {
				hasOverlap = true
			}
		}
	}
	if !hasOverlap {
		return edges
	}
	frags := fragmentEdges(edges, cuts)
	type key struct {
		ax, ay, bx, by float64
	}
	canonical := func(s segment) (key, bool) {
		if s.a.x < s.b.x || (s.a.x == s.b.x && s.a.y < s.b.y) {
			return key{s.a.x, s.a.y, s.b.x, s.b.y}, true
		}
		return key{s.b.x, s.b.y, s.a.x, s.a.y}, false
	}
	net := make(map[key]int, len(frags))
	for _, f := range frags {
		k, forward := canonical(f)
		if forward {
			net[k]++
		} else {
			net[k]--
		}
	}
	out := make(edgeSet, 0, len(frags))
	for _, f := range frags {
		k, forward := canonical(f)
		n := net[k]
		switch {
		case n > 0 && forward:
			out = append(out, f)
			net[k]--
		case n < 0 && !forward:
			out = append(out, f)
			net[k]++
		}
	}
	return out
}

func parallelSegments(a, b segment) bool {
	r := a.b.sub(a.a)
	s := b.b.sub(b.a)
	return math.Abs(cross(r, s)) <= geomEps*r.norm()*s.norm()
}

// sameSupport reports exactly coincident edges (in either direction)
func sameSupport(a, b segment) bool {
	return (a.a == b.a && a.b == b.b) || (a.a == b.b && a.b == b.a)
}

// rings chains edges end to start into closed rings. Only positively oriented rings
// are returned: a result of intersection between hole-free regions has no holes.
func (edges edgeSet) rings() MultiPolygon {
	starts := make(map[vec][]int, len(edges))
	for i, e := range edges {
		starts[e.a] = append(starts[e.a], i)
	}
	used := make([]bool, len(edges))
	var out MultiPolygon
	for i := range edges {
		if used[i] {
			continue
		}
		origin := edges[i].a
		ring := make([]vec, 0, 8)
		closed := false
		cur := i
		for {
			used[cur] = true
			ring = append(ring, edges[cur].a)
			end := edges[cur].b
			if nearVec(end, origin) {
				closed = true
				break
			}
			next := -1
			for _, j := range starts[end] {
				if !used[j] {
					next = j
					break
				}
			}
			if next < 0 {
				for j := range edges {
					if !used[j] && nearVec(edges[j].a, end) {
						next = j
						break
					}
				}
			}
			if next < 0 {
				break
			}
			cur = next
		}
		if !closed || signedArea(ring) <= 0 {
			continue
		}
		if polygon := canonicalRing(ring); len(polygon) != 0 {
			out = append(out, polygon)
		}
	}
	return out
}
