package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/samdwyer/raymaze/internal/world"
)

const epsilon = 1e-9

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.Parse([]string{
		"########",
		"#......#",
		"#.####.#",
		"#.#..#.#",
		"#.#..#.#",
		"#.#..#.#",
		"#....#E#",
		"########",
	}, world.DefaultTileSize)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return g
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(150, 150, 0)

	if p.X != 150 || p.Y != 150 || p.Angle != 0 {
		t.Errorf("NewPlayer() = (%v,%v,%v), want (150,150,0)", p.X, p.Y, p.Angle)
	}

	col, row := p.Cell(testGrid(t))
	if col != 1 || row != 1 {
		t.Errorf("Cell() = (%d,%d), want (1,1)", col, row)
	}
}

func TestUpdateForwardBackward(t *testing.T) {
	g := testGrid(t)

	tests := []struct {
		name  string
		input Input
		wantX float64
	}{
		{"forward", Input{Forward: true}, 153},
		{"backward", Input{Backward: true}, 147},
		{"idle", Input{}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(150, 150, 0)
			if err := p.Update(tt.input, g, 3, 0.05); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if !approxEqual(p.X, tt.wantX) || !approxEqual(p.Y, 150) {
				t.Errorf("Update() position = (%v,%v), want (%v,150)", p.X, p.Y, tt.wantX)
			}
		})
	}
}

func TestUpdateTurning(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(150, 150, 0)

	if err := p.Update(Input{TurnLeft: true}, g, 3, 0.05); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !approxEqual(p.Angle, -0.05) {
		t.Errorf("Angle after left turn = %v, want -0.05", p.Angle)
	}

	// Heading accumulates without wrapping into [0, 2π).
	for i := 0; i < 200; i++ {
		if err := p.Update(Input{TurnRight: true}, g, 3, 0.05); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	if !approxEqual(p.Angle, 9.95) {
		t.Errorf("Angle after 200 right turns = %v, want 9.95", p.Angle)
	}
	if p.X != 150 || p.Y != 150 {
		t.Errorf("turning moved the player to (%v,%v)", p.X, p.Y)
	}
}

func TestUpdateBlockedByWall(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(110, 150, math.Pi)

	if err := p.Update(Input{Forward: true}, g, 20, 0.05); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if p.X != 110 {
		t.Errorf("X = %v, want 110 (wall at column 0)", p.X)
	}
}

func TestUpdateSlidesAlongWall(t *testing.T) {
	g := testGrid(t)
	// Tile (2,1) is open, tile (2,2) below it is a wall. Heading south-east
	// blocks y but not x.
	p := NewPlayer(250, 190, math.Pi/4)
	step := 20 * math.Cos(math.Pi/4)

	if err := p.Update(Input{Forward: true}, g, 20, 0.05); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !approxEqual(p.X, 250+step) {
		t.Errorf("X = %v, want %v (free axis should move)", p.X, 250+step)
	}
	if p.Y != 190 {
		t.Errorf("Y = %v, want 190 (blocked axis should not move)", p.Y)
	}
}

func TestUpdateOutOfBounds(t *testing.T) {
	g, err := world.Parse([]string{"...E"}, world.DefaultTileSize)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := NewPlayer(50, 50, math.Pi)

	err = p.Update(Input{Forward: true}, g, 60, 0.05)
	if !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("Update() error = %v, want ErrOutOfBounds", err)
	}
}
