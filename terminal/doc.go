// Package terminal provides direct ANSI terminal control for the renderer.
//
// Features:
//   - Pre-allocated escape sequences for cursor, screen and attribute control
//   - Buffered output guarded by a single mutex; every output section is
//     written and flushed atomically with respect to other sections
//   - Window size query via TIOCGWINSZ
//   - SIGWINCH and interrupt delivery as events on a channel
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
package terminal
