// Package raycast casts rays through the maze grid and projects the hits
// into screen strips.
package raycast

import (
	"math"

	"github.com/samdwyer/raymaze/internal/world"
)

const (
	// boundaryNudge moves the first boundary just past a grid line when
	// stepping in the negative direction, so the tested cell is the one
	// beyond the line rather than the one the ray starts in.
	boundaryNudge = 0.0001

	// parallelEpsilon is the smallest |sin| or |cos| treated as crossing
	// grid lines. Below it the ray runs parallel to that axis' lines.
	parallelEpsilon = 1e-9
)

// Caster finds wall distances on a grid.
type Caster struct {
	Grid *world.Grid
	// MaxDepth stops traversal once the ray has travelled this far.
	// Zero means traverse until the grid edge.
	MaxDepth float64
}

// NewCaster creates a caster for the given grid.
func NewCaster(grid *world.Grid, maxDepth float64) *Caster {
	return &Caster{Grid: grid, MaxDepth: maxDepth}
}

// Cast returns the distance from (x, y) to the first wall along angle,
// or +Inf if the ray leaves the grid first.
func Cast(grid *world.Grid, x, y, angle float64) float64 {
	c := Caster{Grid: grid}
	return c.Cast(x, y, angle)
}

// Cast returns the distance from (x, y) to the first wall along angle.
// The result is the nearer of the vertical and horizontal boundary hits.
func (c *Caster) Cast(x, y, angle float64) float64 {
	sin, cos := math.Sincos(angle)
	return math.Min(c.castVertical(x, y, sin, cos), c.castHorizontal(x, y, sin, cos))
}

// castVertical walks the vertical grid lines (constant x).
func (c *Caster) castVertical(x, y, sin, cos float64) float64 {
	if math.Abs(cos) < parallelEpsilon {
		return math.Inf(1)
	}

	tile := c.Grid.TileSize
	xv, dx := firstBoundary(x, tile, cos)
	slope := sin / cos
	yv := y + (xv-x)*slope
	dy := dx * slope

	for {
		col, row, ok := c.cell(xv, yv)
		if !ok || c.exceedsDepth((xv-x)/cos) {
			return math.Inf(1)
		}
		if c.Grid.Tile(col, row) == world.TileWall {
			return (xv - x) / cos
		}
		xv += dx
		yv += dy
	}
}

// castHorizontal walks the horizontal grid lines (constant y).
func (c *Caster) castHorizontal(x, y, sin, cos float64) float64 {
	if math.Abs(sin) < parallelEpsilon {
		return math.Inf(1)
	}

	tile := c.Grid.TileSize
	yh, dy := firstBoundary(y, tile, sin)
	slope := cos / sin
	xh := x + (yh-y)*slope
	dx := dy * slope

	for {
		col, row, ok := c.cell(xh, yh)
		if !ok || c.exceedsDepth((yh-y)/sin) {
			return math.Inf(1)
		}
		if c.Grid.Tile(col, row) == world.TileWall {
			return (yh - y) / sin
		}
		xh += dx
		yh += dy
	}
}

// firstBoundary returns the first grid line coordinate in the direction of
// dir and the signed step between successive lines.
func firstBoundary(v, tile, dir float64) (start, step float64) {
	base := math.Floor(v/tile) * tile
	if dir > 0 {
		return base + tile, tile
	}
	return base - boundaryNudge, -tile
}

// cell returns the tile containing a world point and whether it lies on the grid.
// Bounds are checked in floating point so huge coordinates never overflow int.
func (c *Caster) cell(x, y float64) (col, row int, ok bool) {
	w, h := c.Grid.WorldSize()
	if !(x >= 0 && x < w && y >= 0 && y < h) {
		return 0, 0, false
	}
	col, row = c.Grid.CellOf(x, y)
	return col, row, c.Grid.InBounds(col, row)
}

func (c *Caster) exceedsDepth(distance float64) bool {
	return c.MaxDepth > 0 && distance > c.MaxDepth
}
