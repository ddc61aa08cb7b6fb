// Package key provides key event types, key specification parsing and a
// byte-level decoder for raw terminal input.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//   - Decoder: Turns raw terminal bytes into Events
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Ctrl+Q", "Alt+X"
//   - Vim-style: "<C-s>", "<C-q>", "<CR>", "<Esc>"
//
// # Decoding
//
// The Decoder reads one byte at a time. Escape introduces arrow-key and
// mouse-report sequences; each continuation byte is awaited for at most
// the escape timeout, so an Escape with nothing behind it is reported as
// a plain Escape key instead of stalling input.
package key
