package forma

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Moore neighbourhood in clockwise order on screen (y grows downward):
// E, SE, S, SW, W, NW, N, NE
var (
	neighbourDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	neighbourDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

const (
	cellBackground uint8 = 0
	cellForeground uint8 = 1
	cellOutside    uint8 = 2
)

type contourOptions struct {
	tolerance float64
}

// ContourOption configures mask tracing
type ContourOption func(*contourOptions)

// WithSimplifyTolerance sets max distance (in pixels) between the traced border and its
// Douglas-Peucker approximation. Zero (default) merges exactly collinear vertices only.
func WithSimplifyTolerance(tolerance float64) ContourOption {
	return func(o *contourOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// MaskToPolygon traces outer boundary of every 8-connected foreground component.
// Holes are ignored: enclosed background is reported as foreground.
// Vertices are pixel centres in pixel-index coordinates.
// Contours with less than 3 distinct vertices (or zero area) are dropped.
func MaskToPolygon(mask *Mask, options ...ContourOption) MultiPolygon {
	opts := contourOptions{}
	for _, option := range options {
		option(&opts)
	}
	if mask == nil || mask.width == 0 || mask.height == 0 {
		return nil
	}
	g := newTraceGrid(mask)
	g.fillHoles()

	var polygons MultiPolygon
	visited := make([]bool, len(g.cells))
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			idx := y*g.width + x
			if g.cells[idx] != cellForeground || visited[idx] {
				continue
			}
			// First pixel of a component in raster order: its west neighbour is background
			contour := g.trace(x, y)
			g.markComponent(x, y, visited)
			polygon := canonicalRing(approximate(simplifyRing(contour), opts.tolerance))
			if len(polygon) != 0 {
				polygons = append(polygons, polygon)
			}
		}
	}
	return polygons
}

// traceGrid is a private copy of raster padded with one background cell on every side
type traceGrid struct {
	width  int
	height int
	cells  []uint8
}

func newTraceGrid(mask *Mask) *traceGrid {
	g := &traceGrid{
		width:  mask.width + 2,
		height: mask.height + 2,
	}
	g.cells = make([]uint8, g.width*g.height)
	for y := 0; y < mask.height; y++ {
		row := mask.pix[y*mask.width : (y+1)*mask.width]
		for x, v := range row {
			if v != 0 {
				g.cells[(y+1)*g.width+x+1] = cellForeground
			}
		}
	}
	return g
}

func (g *traceGrid) fg(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x] == cellForeground
}

// fillHoles turns background not 4-connected to the border into foreground
func (g *traceGrid) fillHoles() {
	stack := []int{0}
	g.cells[0] = cellOutside
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := idx%g.width, idx/g.width
		for d := 0; d < 8; d += 2 {
			nx, ny := x+neighbourDX[d], y+neighbourDY[d]
			if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			nidx := ny*g.width + nx
			if g.cells[nidx] == cellBackground {
				g.cells[nidx] = cellOutside
				stack = append(stack, nidx)
			}
		}
	}
	for i, v := range g.cells {
		switch v {
		case cellBackground:
			g.cells[i] = cellForeground
		case cellOutside:
			g.cells[i] = cellBackground
		}
	}
}

// markComponent flags every pixel 8-connected to (x, y)
func (g *traceGrid) markComponent(x, y int, visited []bool) {
	start := y*g.width + x
	visited[start] = true
	stack := []int{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := idx%g.width, idx/g.width
		for d := 0; d < 8; d++ {
			nx, ny := cx+neighbourDX[d], cy+neighbourDY[d]
			if !g.fg(nx, ny) {
				continue
			}
			nidx := ny*g.width + nx
			if !visited[nidx] {
				visited[nidx] = true
				stack = append(stack, nidx)
			}
		}
	}
}

func neighbourIndex(dx, dy int) int {
	for d := 0; d < 8; d++ {
		if neighbourDX[d] == dx && neighbourDY[d] == dy {
			return d
		}
	}
	return -1
}

// trace follows outer border starting at (sx, sy) whose west neighbour is background
// (Suzuki-Abe border following). Returned points are in mask coordinates.
func (g *traceGrid) trace(sx, sy int) []vec {
	toMask := func(x, y int) vec {
		return vec{x: float64(x - 1), y: float64(y - 1)}
	}
	// Look clockwise from the west neighbour for the first foreground pixel
	first := -1
	for k := 1; k <= 8; k++ {
		d := (4 + k) % 8
		if g.fg(sx+neighbourDX[d], sy+neighbourDY[d]) {
			first = d
			break
		}
	}
	if first < 0 {
		return []vec{toMask(sx, sy)}
	}
	p1x, p1y := sx+neighbourDX[first], sy+neighbourDY[first]
	prevX, prevY := p1x, p1y
	curX, curY := sx, sy

	contour := make([]vec, 0, 64)
	// Border of a component can't be longer than 4 visits per cell
	limit := 4*len(g.cells) + 8
	for step := 0; step < limit; step++ {
		back := neighbourIndex(prevX-curX, prevY-curY)
		nextX, nextY := prevX, prevY
		// Counter-clockwise from the pixel we came from
		for k := 1; k <= 8; k++ {
			d := (back - k + 8) % 8
			nx, ny := curX+neighbourDX[d], curY+neighbourDY[d]
			if g.fg(nx, ny) {
				nextX, nextY = nx, ny
				break
			}
		}
		contour = append(contour, toMask(curX, curY))
		if nextX == sx && nextY == sy && curX == p1x && curY == p1y {
			break
		}
		prevX, prevY = curX, curY
		curX, curY = nextX, nextY
	}
	return contour
}

// approximate runs Douglas-Peucker over a ring already reduced to its corners.
// The ring is simplified as a closed line string anchored at its first vertex.
func approximate(ring []vec, tolerance float64) []vec {
	if tolerance <= 0 || len(ring) <= 3 {
		return ring
	}
	ls := make(orb.LineString, 0, len(ring)+1)
	for _, v := range ring {
		ls = append(ls, orb.Point{v.x, v.y})
	}
	ls = append(ls, ls[0])
	simplified, ok := simplify.DouglasPeucker(tolerance).Simplify(ls).(orb.LineString)
	if !ok || len(simplified) < 4 {
		return nil
	}
	out := make([]vec, 0, len(simplified)-1)
	for _, p := range simplified[:len(simplified)-1] {
		out = append(out, vec{x: p[0], y: p[1]})
	}
	return out
}
