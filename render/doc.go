// Package render drives the animation: one tick composites the viewport of
// the current frame, trail included, and writes it as a single output
// section.
//
// The engine is the only writer of its viewport and state. Resize and
// interrupt notifications arrive as terminal.Event values and are applied
// between ticks, so a frame is always drawn against one consistent viewport.
package render
