package gamedata

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteFile is the embedded palette definition.
const PaletteFile = "palette.json"

// Palette defines the colors used outside the wall shading.
type Palette struct {
	Background string `json:"background"` // Hex color behind the walls (e.g., "#000000")
	WinText    string `json:"winText"`    // Hex color of the win message
	WinMessage string `json:"winMessage"` // Text shown after reaching the exit
}

// Colors is a Palette with parsed colors.
type Colors struct {
	Background colorful.Color
	WinText    colorful.Color
	WinMessage string
}

// LoadPalette loads and parses the embedded palette.json.
func LoadPalette() (Colors, error) {
	p, err := Load[Palette](PaletteFile)
	if err != nil {
		return Colors{}, err
	}
	return p.Parse()
}

// Parse converts the palette's hex strings into colors.
func (p Palette) Parse() (Colors, error) {
	bg, err := ParseHexColor(p.Background)
	if err != nil {
		return Colors{}, fmt.Errorf("palette background: %w", err)
	}
	win, err := ParseHexColor(p.WinText)
	if err != nil {
		return Colors{}, fmt.Errorf("palette winText: %w", err)
	}
	msg := p.WinMessage
	if msg == "" {
		msg = "You Win!"
	}
	return Colors{Background: bg, WinText: win, WinMessage: msg}, nil
}
