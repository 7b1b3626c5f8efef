// Package world provides the maze grid and tile lookups.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileEmpty represents open floor the player can walk on.
	TileEmpty Tile = '.'
	// TileWall represents a solid wall that stops rays and movement.
	TileWall Tile = '#'
	// TileExit represents the maze exit. It is walkable.
	TileExit Tile = 'E'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileEmpty || t == TileExit
}

// Rune returns the tile's map character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// parseTile maps a map character to its tile kind.
func parseTile(r rune) (Tile, bool) {
	switch Tile(r) {
	case TileEmpty, TileWall, TileExit:
		return Tile(r), true
	default:
		return 0, false
	}
}
