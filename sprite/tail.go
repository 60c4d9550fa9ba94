package sprite

// Rainbow band, in frame rows (inclusive)
const (
	TailTop    = 23
	TailBottom = 42
)

// tailStripe is the vertical color sequence of the trail, indexed from TailTop.
// Entries past the end read as Background.
var tailStripe = [...]Code{
	Background, Background,
	Red, Red,
	Orange, Orange, Orange,
	Yellow, Yellow, Yellow,
	Green, Green, Green,
	Blue, Blue,
	Violet, Violet, Violet,
	Background, Background,
}

// Phase returns the stripe offset (0 or 1) of column x < 0 at the given tick.
// Columns alternate in runs of 8; the whole pattern flips every 2 ticks.
func Phase(x int, tick uint64) int {
	m := ((-x + 2) % 16) / 8
	if (tick/2)%2 == 1 {
		m = 1 - m
	}
	return m
}

// Tail returns the trail color for a cell left of the frame (x < 0)
func Tail(x, row int, tick uint64) Code {
	if row < TailTop || row > TailBottom {
		return Background
	}
	i := Phase(x, tick) + row - TailTop
	if i < 0 || i >= len(tailStripe) {
		return Background
	}
	return tailStripe[i]
}

// Resolve composites one viewport cell: frame body inside bounds, the trail
// left of the frame, background anywhere else
func Resolve(f *Frame, x, y int, tick uint64) Code {
	if x < 0 && y >= TailTop && y <= TailBottom {
		return Tail(x, y, tick)
	}
	if !f.Contains(x, y) {
		return Background
	}
	return f.At(x, y)
}
