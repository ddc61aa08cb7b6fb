// Package engine provides the editing core of the ledit editor.
//
// The engine keeps three structures mutually consistent under every edit:
//
//   - document: the committed lines plus the staging line at the cursor
//   - linecache: the wrapped height of every line at the viewport width
//   - viewport: the scroll offset and the logical to screen cursor mapping
//
// # Architecture
//
// Every operation that adds or removes a document line adds or removes the
// matching cache entry in the same step, so Document.Len() == Cache.Len()
// holds after each call. The viewport offset is only changed by Refresh,
// which runs the scroll recalculation after the model has been mutated.
//
// # Basic Usage
//
//	e := engine.New(80, 23)
//	if err := e.LoadInitial([]byte("ab\ncd")); err != nil {
//	    return err
//	}
//	_ = e.MoveDown()
//	_ = e.InsertByte('x')
//	row, col := e.Refresh() // 1-based terminal coordinates
//
// # Columns
//
// Columns are byte offsets. The visible length of a line, its byte length
// without the trailing terminator, is the only unit used for column
// arithmetic.
//
// # Thread Safety
//
// The engine is not safe for concurrent use. It is owned by the single
// control loop of the application.
package engine
