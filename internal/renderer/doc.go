// Package renderer provides the display layer for the ledit editor.
//
// The renderer is responsible for:
//   - Assembling the visible document rows into a single text blob
//   - Painting that blob, the status row and the cursor to a backend
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer (Assemble + Draw)       │
//	├─────────────────────────────────────────┤
//	│  Viewport │ LineCache │ StatusLine      │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│      Terminal (tcell) │ ANSI (raw)      │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, status)
//	r.Draw(frame)
package renderer
