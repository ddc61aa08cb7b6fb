// Package cursor tracks the logical cursor of the editor.
//
// A Cursor is a (row, column) pair into the document plus a wanted
// column. Row may equal the document length, addressing the virtual line.
// Column is a byte offset within the visible length of the cursor row.
//
// The wanted column is the last explicit horizontal target. Horizontal
// moves and edits set it; vertical moves only read it, so moving through a
// short line and back restores the original column:
//
//	c := cursor.New()
//	c.SetColumn(10)     // wanted = 10
//	c.MoveToRow(1, 3)   // short line: column 3
//	c.MoveToRow(2, 40)  // long line: column 10 again
package cursor
