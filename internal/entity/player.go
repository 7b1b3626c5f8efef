// Package entity provides the player and its movement rules.
package entity

import (
	"fmt"
	"math"

	"github.com/samdwyer/raymaze/internal/world"
)

// Input is a snapshot of the movement keys held during one frame.
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Player represents the viewer walking through the maze.
type Player struct {
	X, Y  float64 // Position in world units
	Angle float64 // Heading in radians, accumulated without wraparound
}

// NewPlayer creates a player at the given position and heading.
func NewPlayer(x, y, angle float64) *Player {
	return &Player{
		X:     x,
		Y:     y,
		Angle: angle,
	}
}

// Cell returns the tile the player is standing on.
func (p *Player) Cell(grid *world.Grid) (col, row int) {
	return grid.CellOf(p.X, p.Y)
}

// Update applies one frame of input. Forward and backward both start from
// the position at the beginning of the frame. Each axis is collision-checked
// on its own, so walking diagonally into a wall slides along it.
//
// A candidate position off the grid means the player escaped the walls;
// the returned error wraps world.ErrOutOfBounds.
func (p *Player) Update(in Input, grid *world.Grid, speed, turnRate float64) error {
	x, y := p.X, p.Y
	sin, cos := math.Sincos(p.Angle)

	if in.Forward {
		if err := p.slide(grid, x, y, x+speed*cos, y+speed*sin); err != nil {
			return err
		}
	}
	if in.Backward {
		if err := p.slide(grid, x, y, x-speed*cos, y-speed*sin); err != nil {
			return err
		}
	}
	if in.TurnLeft {
		p.Angle -= turnRate
	}
	if in.TurnRight {
		p.Angle += turnRate
	}
	return nil
}

// slide moves toward (newX, newY) from (x, y), accepting each axis only if
// it does not land in a wall.
func (p *Player) slide(grid *world.Grid, x, y, newX, newY float64) error {
	blocked, err := collides(grid, newX, y)
	if err != nil {
		return err
	}
	if !blocked {
		p.X = newX
	}

	blocked, err = collides(grid, x, newY)
	if err != nil {
		return err
	}
	if !blocked {
		p.Y = newY
	}
	return nil
}

// collides returns true if the world point lies in a wall tile.
func collides(grid *world.Grid, x, y float64) (bool, error) {
	tile, err := grid.TileAt(x, y)
	if err != nil {
		return false, fmt.Errorf("collision check: %w", err)
	}
	return tile == world.TileWall, nil
}
