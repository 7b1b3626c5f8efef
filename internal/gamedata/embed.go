// Package gamedata provides the embedded maze layout and palette, and
// utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the maze layouts and JSON files from this directory at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
