package world

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTileSize is the edge length of one tile in world units.
const DefaultTileSize = 100.0

var (
	// ErrEmptyMap is returned when a map has no rows or no columns.
	ErrEmptyMap = errors.New("map is empty")
	// ErrRaggedRows is returned when map rows differ in length.
	ErrRaggedRows = errors.New("map rows have unequal length")
	// ErrUnknownTile is returned for a map character outside {'#', '.', 'E'}.
	ErrUnknownTile = errors.New("unknown map character")
	// ErrNoExit is returned when a map has no exit tile.
	ErrNoExit = errors.New("map has no exit tile")
	// ErrOutOfBounds is returned when a world point lies outside the grid.
	ErrOutOfBounds = errors.New("position outside map bounds")
)

// Grid represents the static maze. It is immutable after Parse.
type Grid struct {
	Width    int     // Columns
	Height   int     // Rows
	TileSize float64 // Edge length of a tile in world units
	tiles    [][]Tile
	exitCol  int
	exitRow  int
}

// Parse builds a grid from text rows. Every row must have the same length
// and the map must contain at least one exit.
func Parse(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %v", tileSize)
	}

	width := len([]rune(rows[0]))
	g := &Grid{
		Width:    width,
		Height:   len(rows),
		TileSize: tileSize,
		tiles:    make([][]Tile, len(rows)),
		exitCol:  -1,
		exitRow:  -1,
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", y, len(runes), width, ErrRaggedRows)
		}
		g.tiles[y] = make([]Tile, width)
		for x, r := range runes {
			tile, ok := parseTile(r)
			if !ok {
				return nil, fmt.Errorf("%q at column %d, row %d: %w", r, x, y, ErrUnknownTile)
			}
			// First exit wins; additional exits still count as exits.
			if tile == TileExit && g.exitCol < 0 {
				g.exitCol, g.exitRow = x, y
			}
			g.tiles[y][x] = tile
		}
	}

	if g.exitCol < 0 {
		return nil, ErrNoExit
	}
	return g, nil
}

// MustParse builds a grid, panicking on error.
// Use this for fixed layouts in tests.
func MustParse(rows []string, tileSize float64) *Grid {
	g, err := Parse(rows, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds returns true if the tile coordinates lie inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Tile returns the tile at the given coordinates.
// The caller must check InBounds first.
func (g *Grid) Tile(col, row int) Tile {
	return g.tiles[row][col]
}

// IsWall returns true if the cell is a wall. Out-of-bounds cells are not walls.
func (g *Grid) IsWall(col, row int) bool {
	return g.InBounds(col, row) && g.tiles[row][col] == TileWall
}

// IsExit returns true if the cell is an exit.
func (g *Grid) IsExit(col, row int) bool {
	return g.InBounds(col, row) && g.tiles[row][col] == TileExit
}

// Exit returns the coordinates of the first exit tile in row-major order.
func (g *Grid) Exit() (col, row int) {
	return g.exitCol, g.exitRow
}

// CellOf converts a world position to tile coordinates.
func (g *Grid) CellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / g.TileSize)), int(math.Floor(y / g.TileSize))
}

// TileAt returns the tile under a world position.
func (g *Grid) TileAt(x, y float64) (Tile, error) {
	col, row := g.CellOf(x, y)
	if !g.InBounds(col, row) {
		return 0, fmt.Errorf("(%.2f, %.2f) is tile (%d, %d): %w", x, y, col, row, ErrOutOfBounds)
	}
	return g.tiles[row][col], nil
}

// WorldSize returns the grid extent in world units.
func (g *Grid) WorldSize() (width, height float64) {
	return float64(g.Width) * g.TileSize, float64(g.Height) * g.TileSize
}
