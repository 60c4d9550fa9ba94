package asset

import _ "embed"

// Frames is the pre-baked animation table.
// One character per cell, frames separated by a blank line. Every frame has
// the same width and height; the alphabet is defined by package sprite.
//
//go:embed frames.txt
var Frames string
