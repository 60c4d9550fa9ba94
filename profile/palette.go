package profile

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/lixenwraith/nyancat/sprite"
)

// paletteIndex extracts the 0-255 index of a palette color
func paletteIndex(c tcell.Color) int {
	return int(c & 0xff)
}

// bg256 renders an xterm-256 background escape
func bg256(c tcell.Color) string {
	return "\x1b[48;5;" + strconv.Itoa(paletteIndex(c)) + "m"
}

// bg16 renders a basic background escape; bright colors use the aixterm 100-107 range
func bg16(c tcell.Color) string {
	i := paletteIndex(c)
	if i < 8 {
		return "\x1b[" + strconv.Itoa(40+i) + "m"
	}
	return "\x1b[" + strconv.Itoa(100+i-8) + "m"
}

var xterm256Colors = [sprite.NumCodes]tcell.Color{
	sprite.Background: tcell.PaletteColor(17),
	sprite.White:      tcell.PaletteColor(231),
	sprite.Black:      tcell.PaletteColor(16),
	sprite.Crust:      tcell.PaletteColor(230),
	sprite.Pink:       tcell.PaletteColor(175),
	sprite.Sprinkle:   tcell.PaletteColor(162),
	sprite.Red:        tcell.PaletteColor(196),
	sprite.Orange:     tcell.PaletteColor(214),
	sprite.Yellow:     tcell.PaletteColor(226),
	sprite.Green:      tcell.PaletteColor(118),
	sprite.Blue:       tcell.PaletteColor(33),
	sprite.Violet:     tcell.PaletteColor(19),
	sprite.Gray:       tcell.PaletteColor(240),
	sprite.Cheek:      tcell.PaletteColor(175),
}

var ansiColors = [sprite.NumCodes]tcell.Color{
	sprite.Background: tcell.ColorBlue,
	sprite.White:      tcell.ColorWhite,
	sprite.Black:      tcell.ColorBlack,
	sprite.Crust:      tcell.ColorSilver,
	sprite.Pink:       tcell.ColorFuchsia,
	sprite.Sprinkle:   tcell.ColorRed,
	sprite.Red:        tcell.ColorRed,
	sprite.Orange:     tcell.ColorOlive,
	sprite.Yellow:     tcell.ColorYellow,
	sprite.Green:      tcell.ColorLime,
	sprite.Blue:       tcell.ColorBlue,
	sprite.Violet:     tcell.ColorNavy,
	sprite.Gray:       tcell.ColorGray,
	sprite.Cheek:      tcell.ColorFuchsia,
}

// linuxEscapes uses blink (5) to select bright backgrounds on the console
var linuxEscapes = [sprite.NumCodes]string{
	sprite.Background: "\x1b[25;44m",
	sprite.White:      "\x1b[5;47m",
	sprite.Black:      "\x1b[25;40m",
	sprite.Crust:      "\x1b[5;47m",
	sprite.Pink:       "\x1b[5;45m",
	sprite.Sprinkle:   "\x1b[5;41m",
	sprite.Red:        "\x1b[5;41m",
	sprite.Orange:     "\x1b[25;43m",
	sprite.Yellow:     "\x1b[5;43m",
	sprite.Green:      "\x1b[5;42m",
	sprite.Blue:       "\x1b[25;44m",
	sprite.Violet:     "\x1b[5;44m",
	sprite.Gray:       "\x1b[5;40m",
	sprite.Cheek:      "\x1b[5;45m",
}

// blockEscapes set matching fg and bg so a block glyph fills the cell
var blockEscapes = [sprite.NumCodes]string{
	sprite.Background: "\x1b[0;34;44m",
	sprite.White:      "\x1b[1;37;47m",
	sprite.Black:      "\x1b[0;30;40m",
	sprite.Crust:      "\x1b[1;37;47m",
	sprite.Pink:       "\x1b[1;35;45m",
	sprite.Sprinkle:   "\x1b[1;31;41m",
	sprite.Red:        "\x1b[1;31;41m",
	sprite.Orange:     "\x1b[0;33;43m",
	sprite.Yellow:     "\x1b[1;33;43m",
	sprite.Green:      "\x1b[1;32;42m",
	sprite.Blue:       "\x1b[1;34;44m",
	sprite.Violet:     "\x1b[0;34;44m",
	sprite.Gray:       "\x1b[1;30;40m",
	sprite.Cheek:      "\x1b[1;35;45m",
}

var vt220Text = [sprite.NumCodes]string{
	sprite.Background: "::",
	sprite.White:      "@@",
	sprite.Black:      "  ",
	sprite.Crust:      "##",
	sprite.Pink:       "??",
	sprite.Sprinkle:   "<>",
	sprite.Red:        "##",
	sprite.Orange:     "==",
	sprite.Yellow:     "--",
	sprite.Green:      "++",
	sprite.Blue:       "~~",
	sprite.Violet:     "$$",
	sprite.Gray:       ";;",
	sprite.Cheek:      "()",
}

var vt100Text = [sprite.NumCodes]string{
	sprite.Background: ".",
	sprite.White:      "@",
	sprite.Black:      " ",
	sprite.Crust:      "#",
	sprite.Pink:       "?",
	sprite.Sprinkle:   "O",
	sprite.Red:        "#",
	sprite.Orange:     "=",
	sprite.Yellow:     "-",
	sprite.Green:      "+",
	sprite.Blue:       "~",
	sprite.Violet:     "$",
	sprite.Gray:       ";",
	sprite.Cheek:      "o",
}

const (
	twoSpaces  = "  "
	blockGlyph = "██"

	// vt100Width is the column count of the 40-column VT100 mode
	vt100Width = 40
)

func fromColors(colors *[sprite.NumCodes]tcell.Color, render func(tcell.Color) string) [sprite.NumCodes]string {
	var out [sprite.NumCodes]string
	for i, c := range colors {
		out[i] = render(c)
	}
	return out
}

// cp437Block encodes the block glyph for code page 437 consoles
func cp437Block() string {
	s, err := charmap.CodePage437.NewEncoder().String(blockGlyph)
	if err != nil {
		// Full block is 0xDB in CP437
		return "\xdb\xdb"
	}
	return s
}

// profiles holds one entry per class, built at init
var profiles [classCount]Profile

func init() {
	profiles[ClassANSI] = Profile{
		Escapes: fromColors(&ansiColors, bg16),
		Glyph:   twoSpaces,
	}
	profiles[ClassXterm256] = Profile{
		Escapes: fromColors(&xterm256Colors, bg256),
		Glyph:   twoSpaces,
	}
	profiles[ClassLinux] = Profile{
		Escapes: linuxEscapes,
		Glyph:   twoSpaces,
	}
	profiles[ClassFallback] = Profile{
		Escapes: blockEscapes,
		Glyph:   blockGlyph,
	}
	profiles[ClassCP437] = Profile{
		Escapes: blockEscapes,
		Glyph:   cp437Block(),
	}
	profiles[ClassVT220] = Profile{
		Escapes:     vt220Text,
		ForceEscape: true,
	}
	profiles[ClassVT100] = Profile{
		Escapes:     vt100Text,
		ForceEscape: true,
		FixedWidth:  vt100Width,
	}

	for i := range profiles {
		p := &profiles[i]
		p.Class = Class(i)
		p.CellWidth = measure(p)
	}
	// The CP437 glyph is not UTF-8; it occupies what the UTF-8 block does
	profiles[ClassCP437].CellWidth = profiles[ClassFallback].CellWidth
}
