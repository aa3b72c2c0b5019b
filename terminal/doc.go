// Package terminal owns the raw terminal session of the editor.
//
// Features:
//   - Raw mode acquire/release with guaranteed, idempotent restoration
//   - Buffered ANSI screen sink: queued primitives become visible only on Flush
//   - Synchronous raw stdin decoding with escape sequence handling
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
//
// Terminal size is captured once when the session opens. Resize signals are not
// watched, so a resized terminal keeps drawing at the original dimensions.
package terminal
