// Package viewport computes the window into the sprite plane that is drawn
// to the terminal. Bounds are in sprite cells and may extend past the frame
// on any side.
package viewport

// Viewport is the half-open crop rectangle [MinRow, MaxRow) x [MinCol, MaxCol)
type Viewport struct {
	MinRow, MaxRow int
	MinCol, MaxCol int

	// AutoWidth and AutoHeight mark axes that follow the terminal size
	AutoWidth  bool
	AutoHeight bool
}

// Rows returns the number of rendered rows
func (v Viewport) Rows() int { return max(v.MaxRow-v.MinRow, 0) }

// Cols returns the number of rendered sprite cells per row
func (v Viewport) Cols() int { return max(v.MaxCol-v.MinCol, 0) }

// Crop holds explicit dimensions in sprite cells; zero means automatic
type Crop struct {
	Width  int
	Height int
}

// Size is a terminal size in columns and rows
type Size struct {
	Cols int
	Rows int
}

// counterRows is reserved below an automatic-height viewport
const counterRows = 1

// Compute derives the viewport for a frame of frameW x frameH cells.
// Explicit crop axes are centered on the frame; automatic axes fit the
// terminal, where one sprite cell spans two columns. Pure: identical inputs
// give identical bounds.
func Compute(frameW, frameH int, crop Crop, term Size) Viewport {
	var v Viewport

	if crop.Width > 0 {
		v.MinCol = (frameW - crop.Width) / 2
		v.MaxCol = (frameW + crop.Width) / 2
	} else {
		v.AutoWidth = true
		half := term.Cols / 2
		v.MinCol = (frameW - half) / 2
		v.MaxCol = (frameW + half) / 2
	}

	if crop.Height > 0 {
		v.MinRow = (frameH - crop.Height) / 2
		v.MaxRow = (frameH + crop.Height) / 2
	} else {
		v.AutoHeight = true
		usable := term.Rows - counterRows
		v.MinRow = (frameH - usable) / 2
		v.MaxRow = (frameH + usable) / 2
	}

	return v
}
