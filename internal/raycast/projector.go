package raycast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/raymaze/internal/entity"
)

const (
	// heightEpsilon keeps the projected height finite at zero depth.
	heightEpsilon = 0.0001

	// Channel ratios of the wall shade relative to red, giving a warm fog.
	greenRatio = 1.2
	blueRatio  = 1.5
)

// Strip is one vertical wall slice of a rendered frame, in surface pixels.
type Strip struct {
	X, Y          int
	Width, Height int
	Color         colorful.Color
	Depth         float64 // Perspective-corrected distance
}

// Projection holds the fixed camera parameters.
type Projection struct {
	ScreenWidth  int
	ScreenHeight int
	FOV          float64 // Horizontal field of view in radians
	NumRays      int     // One ray per strip
	TileSize     float64
	DepthScale   float64 // Height of a wall at unit distance, in tiles
	Falloff      float64 // Distance fog coefficient
}

// Projector turns a player view into wall strips.
type Projector struct {
	caster *Caster
	proj   Projection
}

// NewProjector creates a projector casting through the given caster.
func NewProjector(caster *Caster, proj Projection) *Projector {
	return &Projector{caster: caster, proj: proj}
}

// Project returns one strip per ray for the player's current view.
func (p *Projector) Project(player *entity.Player) []Strip {
	return p.ProjectInto(make([]Strip, 0, p.proj.NumRays), player)
}

// ProjectInto appends the strips for the player's view to dst[:0] and
// returns the result, reusing dst's storage across frames.
func (p *Projector) ProjectInto(dst []Strip, player *entity.Player) []Strip {
	dst = dst[:0]
	if p.proj.NumRays <= 0 {
		return dst
	}

	delta := p.proj.FOV / float64(p.proj.NumRays)
	stripWidth := p.proj.ScreenWidth / p.proj.NumRays
	angle := player.Angle - p.proj.FOV/2

	for i := 0; i < p.proj.NumRays; i++ {
		depth := p.caster.Cast(player.X, player.Y, angle)
		depth *= Correction(player.Angle - angle)

		height := p.WallHeight(depth)
		dst = append(dst, Strip{
			X:      i * stripWidth,
			Y:      p.proj.ScreenHeight/2 - height/2,
			Width:  stripWidth,
			Height: height,
			Color:  p.Shade(depth),
			Depth:  depth,
		})
		angle += delta
	}
	return dst
}

// Correction returns the fisheye correction factor for a ray offset from
// the viewing direction by the given angle.
func Correction(offset float64) float64 {
	return math.Cos(offset)
}

// WallHeight returns the projected strip height for a corrected depth,
// clamped to the screen height. An infinite depth projects to zero.
func (p *Projector) WallHeight(depth float64) int {
	h := p.proj.TileSize * p.proj.DepthScale / (depth + heightEpsilon)
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return int(math.Min(float64(p.proj.ScreenHeight), h))
}

// Intensity returns the fog brightness in [0, 255] for a corrected depth.
func (p *Projector) Intensity(depth float64) float64 {
	i := 255 / (1 + depth*depth*p.proj.Falloff)
	if math.IsNaN(i) {
		return 0
	}
	return math.Max(0, math.Min(255, i))
}

// Shade returns the wall color for a corrected depth. Channels are floored
// to whole 8-bit levels.
func (p *Projector) Shade(depth float64) colorful.Color {
	i := p.Intensity(depth)
	return colorful.Color{
		R: math.Floor(i) / 255,
		G: math.Floor(i/greenRatio) / 255,
		B: math.Floor(i/blueRatio) / 255,
	}.Clamped()
}
