// Package sprite holds the animation model: the color-code alphabet, the
// frame store, and per-cell compositing including the rainbow tail that
// extends past the left edge of the frames.
package sprite

// Code identifies a logical paint color within a frame
type Code uint8

const (
	Background Code = iota // Night sky
	White                  // Stars, eye highlights
	Black                  // Outlines
	Crust                  // Pastry edge
	Pink                   // Frosting
	Sprinkle               // Frosting sprinkles
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Gray  // Fur
	Cheek // Blush

	// NumCodes is the size of the alphabet; tables indexed by Code use it
	NumCodes

	// None never appears in a frame; marks "nothing emitted yet" for coalescing
	None Code = 0xff
)

// codeRunes is the asset spelling of each code
var codeRunes = [NumCodes]byte{
	Background: ',',
	White:      '.',
	Black:      '\'',
	Crust:      '@',
	Pink:       '$',
	Sprinkle:   '-',
	Red:        '>',
	Orange:     '&',
	Yellow:     '+',
	Green:      '#',
	Blue:       '=',
	Violet:     ';',
	Gray:       '*',
	Cheek:      '%',
}

// runeCodes is the reverse lookup, built at init
var runeCodes [256]Code

func init() {
	for i := range runeCodes {
		runeCodes[i] = None
	}
	for c, r := range codeRunes {
		runeCodes[r] = Code(c)
	}
}

// ParseCode maps an asset character to its code
func ParseCode(b byte) (Code, bool) {
	c := runeCodes[b]
	return c, c != None
}

// Byte returns the asset character for c, or '?' for None
func (c Code) Byte() byte {
	if c >= NumCodes {
		return '?'
	}
	return codeRunes[c]
}

// Valid reports whether c is part of the alphabet
func (c Code) Valid() bool {
	return c < NumCodes
}

// String implements fmt.Stringer
func (c Code) String() string {
	return string(c.Byte())
}

// All returns every code in the alphabet
func All() []Code {
	codes := make([]Code, NumCodes)
	for i := range codes {
		codes[i] = Code(i)
	}
	return codes
}
