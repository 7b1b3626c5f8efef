package game

import (
	"errors"
	"math"

	"github.com/samdwyer/raymaze/internal/raycast"
	"github.com/samdwyer/raymaze/internal/world"
)

// Config holds game configuration options. The values are fixed at startup.
type Config struct {
	ScreenWidth  int     // Virtual surface width in pixels
	ScreenHeight int     // Virtual surface height in pixels
	FOV          float64 // Horizontal field of view in radians
	NumRays      int     // Rays per frame, one per strip
	MaxDepth     float64 // Farthest wall a ray can hit, in world units
	TileSize     float64 // Tile edge length in world units
	FPS          int     // Target frame rate

	StartX     float64 // Player start position in world units
	StartY     float64
	StartAngle float64 // Player start heading in radians
	Speed      float64 // World units moved per frame
	TurnRate   float64 // Radians turned per frame

	DepthScale float64 // Wall height projection scale
	Falloff    float64 // Distance fog coefficient
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		FOV:          math.Pi / 3,
		NumRays:      200,
		MaxDepth:     800,
		TileSize:     world.DefaultTileSize,
		FPS:          60,
		StartX:       150,
		StartY:       150,
		StartAngle:   0,
		Speed:        3,
		TurnRate:     0.05,
		DepthScale:   500,
		Falloff:      0.00002,
	}
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.New("screen dimensions must be positive")
	case c.NumRays <= 0 || c.NumRays > c.ScreenWidth:
		return errors.New("ray count must be between 1 and the screen width")
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return errors.New("field of view must be in (0, π)")
	case c.TileSize <= 0:
		return errors.New("tile size must be positive")
	case c.FPS <= 0:
		return errors.New("frame rate must be positive")
	}
	return nil
}

// Projection returns the camera parameters for the scene projector.
func (c Config) Projection() raycast.Projection {
	return raycast.Projection{
		ScreenWidth:  c.ScreenWidth,
		ScreenHeight: c.ScreenHeight,
		FOV:          c.FOV,
		NumRays:      c.NumRays,
		TileSize:     c.TileSize,
		DepthScale:   c.DepthScale,
		Falloff:      c.Falloff,
	}
}
