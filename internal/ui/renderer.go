package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Renderer draws on a virtual pixel surface and scales it onto the
// terminal's cell grid.
type Renderer struct {
	screen        *Screen
	width, height int // Virtual surface size in pixels
}

// NewRenderer creates a renderer with a width x height virtual surface.
func NewRenderer(screen *Screen, width, height int) *Renderer {
	return &Renderer{screen: screen, width: width, height: height}
}

// Fill paints the whole screen with a color.
func (r *Renderer) Fill(c colorful.Color) {
	cols, rows := r.screen.Size()
	style := tcell.StyleDefault.Background(toTCell(c))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', style)
		}
	}
}

// FillRect paints a rectangle given in surface pixels. Any non-empty
// rectangle covers at least one cell so thin strips never vanish.
func (r *Renderer) FillRect(x, y, w, h int, c colorful.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cols, rows := r.screen.Size()
	x0, x1 := scaleSpan(x, w, r.width, cols)
	y0, y1 := scaleSpan(y, h, r.height, rows)

	style := tcell.StyleDefault.Background(toTCell(c))
	for cy := max(y0, 0); cy < min(y1, rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, cols); cx++ {
			r.screen.SetContent(cx, cy, ' ', style)
		}
	}
}

// DrawText writes text centered on a surface point.
func (r *Renderer) DrawText(text string, cx, cy int, c colorful.Color) {
	cols, rows := r.screen.Size()
	col := scale(cx, r.width, cols) - uniseg.StringWidth(text)/2
	row := scale(cy, r.height, rows)

	style := tcell.StyleDefault.Foreground(toTCell(c)).Bold(true)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if col >= 0 && col < cols && row >= 0 && row < rows {
			r.screen.SetContent(col, row, runes[0], style)
		}
		col += g.Width()
	}
}

// Present flushes the frame to the terminal.
func (r *Renderer) Present() {
	r.screen.Show()
}

// scale converts a surface coordinate to a cell coordinate.
func scale(v, surface, cells int) int {
	if surface <= 0 {
		return 0
	}
	return v * cells / surface
}

// scaleSpan converts a surface span to a half-open cell span of at least one cell.
func scaleSpan(start, length, surface, cells int) (int, int) {
	from := scale(start, surface, cells)
	to := scale(start+length, surface, cells)
	if to <= from {
		to = from + 1
	}
	return from, to
}

// toTCell converts a color to a tcell true color, clamping out-of-gamut values.
func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
