package render

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/lixenwraith/nyancat/profile"
	"github.com/lixenwraith/nyancat/sprite"
	"github.com/lixenwraith/nyancat/terminal"
	"github.com/lixenwraith/nyancat/viewport"
)

// DefaultInterval is the delay between ticks
const DefaultInterval = 90 * time.Millisecond

// Fallback terminal size when the initial query fails
const (
	fallbackCols = 80
	fallbackRows = 24
)

// Options control a render session
type Options struct {
	Counter    bool          // Show the elapsed-time line below the frame
	Clear      bool          // Clear the screen and hide the cursor; otherwise draw in place
	FrameLimit uint          // Stop after this many ticks; 0 runs until interrupted
	Crop       viewport.Crop // Explicit viewport dimensions; zero axes follow the terminal
	Interval   time.Duration // Tick period; 0 means DefaultInterval
}

// State is the per-session animation state
type State struct {
	Frame int         // Index into the frame store
	Tick  uint64      // Ticks drawn so far
	Last  sprite.Code // Last emitted code, None after each tick
	Start time.Time
}

// Engine renders frames to a terminal output
type Engine struct {
	out     *terminal.Output
	profile profile.Profile
	store   *sprite.Store
	opts    Options
	logger  *slog.Logger
	now     func() time.Time

	size  viewport.Size
	view  viewport.Viewport
	state State

	finishOnce sync.Once
	finishErr  error
}

// New creates an engine for the given profile and initial terminal size.
// A nil logger discards.
func New(out *terminal.Output, p profile.Profile, store *sprite.Store, size viewport.Size, opts Options, logger *slog.Logger) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		out:     out,
		profile: p,
		store:   store,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
		state:   State{Last: sprite.None},
	}
	e.Resize(fallbackCols, fallbackRows)
	e.Resize(size.Cols, size.Rows)
	return e
}

// Resize applies a new terminal size. Non-positive sizes keep the previous
// dimensions; a profile with a fixed width overrides cols.
func (e *Engine) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		e.logger.Debug("resize ignored", "cols", cols, "rows", rows)
		return
	}
	if e.profile.FixedWidth > 0 {
		cols = e.profile.FixedWidth
	}
	e.size = viewport.Size{Cols: cols, Rows: rows}
	e.view = viewport.Compute(e.store.Width(), e.store.Height(), e.opts.Crop, e.size)
	e.logger.Debug("viewport",
		"cols", cols, "rows", rows,
		"min_row", e.view.MinRow, "max_row", e.view.MaxRow,
		"min_col", e.view.MinCol, "max_col", e.view.MaxCol)
}

// Viewport returns the current viewport
func (e *Engine) Viewport() viewport.Viewport { return e.view }

// State returns a copy of the animation state
func (e *Engine) State() State { return e.state }

// Size returns the effective terminal size
func (e *Engine) Size() viewport.Size { return e.size }

// Begin prepares the terminal and starts the session clock
func (e *Engine) Begin() error {
	e.state.Start = e.now()
	return e.out.Section(func(w *terminal.Writer) {
		if e.opts.Clear {
			w.Home()
			w.Clear()
			w.HideCursor()
		} else {
			w.SaveCursor()
		}
	})
}

// Tick draws the current frame and advances the animation.
// done reports that the frame limit has been reached.
func (e *Engine) Tick() (done bool, err error) {
	err = e.out.Section(func(w *terminal.Writer) {
		e.draw(w)
		e.state.Last = sprite.None
		e.state.Tick++
		if e.opts.FrameLimit != 0 && e.state.Tick == uint64(e.opts.FrameLimit) {
			done = true
			return
		}
		e.state.Frame = e.store.Next(e.state.Frame)
	})
	return done, err
}

// draw writes one frame at the home or saved cursor position
func (e *Engine) draw(w *terminal.Writer) {
	if e.opts.Clear {
		w.Home()
	} else {
		w.RestoreCursor()
	}

	p := &e.profile
	frame := e.store.Frame(e.state.Frame)
	for y := e.view.MinRow; y < e.view.MaxRow; y++ {
		for x := e.view.MinCol; x < e.view.MaxCol; x++ {
			c := sprite.Resolve(frame, x, y, e.state.Tick)
			if p.ForceEscape || c != e.state.Last {
				e.state.Last = c
				w.WriteString(p.Escape(c))
			}
			w.WriteString(p.Glyph)
		}
		w.Newline()
	}

	if e.opts.Counter {
		e.drawCounter(w)
	}
}

// counterText is the visible width of the counter line minus the number
const counterText = 29

// drawCounter writes the centered elapsed-time line
func (e *Engine) drawCounter(w *terminal.Writer) {
	secs := int(e.now().Sub(e.state.Start) / time.Second)
	w.Spaces(counterPadding(e.size.Cols, secs))
	w.BoldWhite()
	w.WriteString("You have nyaned for ")
	w.Int(secs)
	w.WriteString(" seconds!")
	w.ClearBelow()
	w.Reset()
}

// counterPadding centers the counter in cols; never negative
func counterPadding(cols, secs int) int {
	return max((cols-counterText-digits(secs))/2, 0)
}

// digits returns the number of decimal digits in n, sign excluded
func digits(n int) int {
	d := 1
	for n <= -10 || n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Finish restores the terminal. Only the first call writes; later calls
// return the first result.
func (e *Engine) Finish() error {
	e.finishOnce.Do(func() {
		e.finishErr = e.out.Section(func(w *terminal.Writer) {
			if e.opts.Clear {
				w.ShowCursor()
				w.Reset()
				w.Home()
				w.Clear()
			} else {
				w.Reset()
				w.Newline()
			}
		})
		e.logger.Debug("render finished", "ticks", e.state.Tick)
	})
	return e.finishErr
}

// Run animates until the frame limit, an interrupt event, or ctx is done.
// Events are applied between ticks; Finish always runs before returning.
func (e *Engine) Run(ctx context.Context, events <-chan terminal.Event) (err error) {
	defer func() {
		if ferr := e.Finish(); err == nil {
			err = ferr
		}
	}()

	if err := e.Begin(); err != nil {
		return err
	}

	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	for {
		// Poll point: apply everything queued since the previous tick
		for pending := true; pending; {
			select {
			case ev := <-events:
				if e.handle(ev) {
					return nil
				}
			default:
				pending = false
			}
		}

		done, err := e.Tick()
		if err != nil {
			return err
		}
		if done {
			e.logger.Debug("frame limit reached", "frames", e.opts.FrameLimit)
			return nil
		}

		for waiting := true; waiting; {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if e.handle(ev) {
					return nil
				}
			case <-ticker.C:
				waiting = false
			}
		}
	}
}

// handle applies ev and reports whether rendering should stop
func (e *Engine) handle(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventResize:
		e.Resize(ev.Width, ev.Height)
	case terminal.EventInterrupt:
		e.logger.Debug("interrupted", "ticks", e.state.Tick)
		return true
	}
	return false
}
