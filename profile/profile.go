// Package profile resolves the terminal type into a static rendering profile:
// the escape table for every sprite color code, the glyph drawn per cell,
// the cell width, and whether escapes must be repeated for every cell.
//
// Resolution is pure string classification against an ordered list of known
// terminal identifiers. Unknown terminals get the basic 16-color profile.
package profile

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/nyancat/sprite"
)

// Class identifies a terminal family
type Class uint8

const (
	ClassANSI     Class = iota // Basic 16-color, default
	ClassXterm256              // 256-color palette
	ClassLinux                 // Linux console, blink-as-bright
	ClassFallback              // Combined fg/bg with UTF-8 block glyph
	ClassCP437                 // Combined fg/bg with code page 437 block glyph
	ClassVT220                 // No color, two-character ASCII art
	ClassVT100                 // No color, single character, 40 columns
	classCount
)

var classNames = [classCount]string{
	ClassANSI:     "ansi",
	ClassXterm256: "xterm-256",
	ClassLinux:    "linux",
	ClassFallback: "fallback",
	ClassCP437:    "cp437",
	ClassVT220:    "vt220",
	ClassVT100:    "vt100",
}

// String implements fmt.Stringer
func (c Class) String() string {
	if c >= classCount {
		return "unknown"
	}
	return classNames[c]
}

// Profile is the immutable rendering description for one terminal class
type Profile struct {
	Class Class

	// Escapes holds the output emitted on a color change, per code.
	// For ForceEscape profiles the entry is the visible text itself.
	Escapes [sprite.NumCodes]string

	// Glyph follows the escape for every cell
	Glyph string

	// CellWidth is the number of terminal columns one sprite cell occupies
	CellWidth int

	// ForceEscape emits Escapes for every cell instead of only on change
	ForceEscape bool

	// FixedWidth overrides the detected terminal width when non-zero
	FixedWidth int
}

// Escape returns the escape string for c; None maps to Background
func (p *Profile) Escape(c sprite.Code) string {
	if !c.Valid() {
		c = sprite.Background
	}
	return p.Escapes[c]
}

// Unit returns the complete output for one cell of color c
func (p *Profile) Unit(c sprite.Code) string {
	return p.Escape(c) + p.Glyph
}

// widthCond measures with ambiguous-width runes as narrow regardless of locale
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// measure returns the visible width of one rendered cell
func measure(p *Profile) int {
	return widthCond.StringWidth(ansi.Strip(p.Unit(sprite.Background)))
}
