package sprite

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lixenwraith/nyancat/asset"
)

// Sentinel errors
var (
	ErrNoFrames    = errors.New("frame table is empty")
	ErrRagged      = errors.New("frame is not rectangular")
	ErrSizeChanged = errors.New("frame size differs from first frame")
	ErrUnknownCode = errors.New("unknown color code")
)

// Frame is a rectangular grid of codes, row-major
type Frame struct {
	width  int
	height int
	cells  []Code
}

// At returns the code at (x, y); the caller guarantees bounds
func (f *Frame) At(x, y int) Code {
	return f.cells[y*f.width+x]
}

// Contains reports whether (x, y) lies inside the frame
func (f *Frame) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// Store is the ordered, read-only frame table
type Store struct {
	frames []*Frame
	width  int
	height int
}

// Len returns the number of frames
func (s *Store) Len() int { return len(s.frames) }

// Width returns the shared frame width
func (s *Store) Width() int { return s.width }

// Height returns the shared frame height
func (s *Store) Height() int { return s.height }

// Frame returns frame i; i must be in [0, Len())
func (s *Store) Frame(i int) *Frame {
	return s.frames[i]
}

// Next returns the index following i, wrapping to 0 past the last frame
func (s *Store) Next(i int) int {
	i++
	if i >= len(s.frames) {
		return 0
	}
	return i
}

// Load parses a frame table: one character per cell, frames separated by
// one or more blank lines
func Load(text string) (*Store, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	s := &Store{}

	var rows []string
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		f, err := parseFrame(rows)
		if err != nil {
			return fmt.Errorf("frame %d: %w", len(s.frames), err)
		}
		if len(s.frames) == 0 {
			s.width, s.height = f.width, f.height
		} else if f.width != s.width || f.height != s.height {
			return fmt.Errorf("frame %d is %dx%d, want %dx%d: %w",
				len(s.frames), f.width, f.height, s.width, s.height, ErrSizeChanged)
		}
		s.frames = append(s.frames, f)
		rows = rows[:0]
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		rows = append(rows, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(s.frames) == 0 {
		return nil, ErrNoFrames
	}
	return s, nil
}

func parseFrame(rows []string) (*Frame, error) {
	f := &Frame{
		width:  len(rows[0]),
		height: len(rows),
	}
	f.cells = make([]Code, 0, f.width*f.height)

	for y, row := range rows {
		if len(row) != f.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), f.width, ErrRagged)
		}
		for x := 0; x < len(row); x++ {
			c, ok := ParseCode(row[x])
			if !ok {
				return nil, fmt.Errorf("row %d col %d %q: %w", y, x, row[x], ErrUnknownCode)
			}
			f.cells = append(f.cells, c)
		}
	}
	return f, nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the embedded animation, parsed once
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(asset.Frames)
	})
	return defaultStore, defaultErr
}
