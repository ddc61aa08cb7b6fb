package engine

// MoveLeft moves one byte left, wrapping to the end of the previous line.
func (e *Engine) MoveLeft() error {
	if e.closed {
		return ErrClosed
	}
	row, col := e.cursor.Row, e.cursor.Col
	if col > 0 {
		e.cursor.SetColumn(col - 1)
		return nil
	}
	if row == 0 {
		return nil
	}
	if err := e.leaveRow(); err != nil {
		return err
	}
	e.enterRow(row - 1)
	e.cursor.MoveTo(row-1, e.staging.VisibleLength())
	return nil
}

// MoveRight moves one byte right. At the end of a line it behaves like
// MoveDown followed by a move to column 0.
func (e *Engine) MoveRight() error {
	if e.closed {
		return ErrClosed
	}
	if e.cursor.Col < e.staging.VisibleLength() {
		e.cursor.SetColumn(e.cursor.Col + 1)
		return nil
	}
	if e.cursor.Row >= e.doc.Len() {
		return nil
	}
	if err := e.MoveDown(); err != nil {
		return err
	}
	e.cursor.SetColumn(0)
	return nil
}

// MoveUp moves to the previous line at the wanted column, clamped to that
// line's visible length.
func (e *Engine) MoveUp() error {
	if e.closed {
		return ErrClosed
	}
	row := e.cursor.Row
	if row == 0 {
		return nil
	}
	if err := e.leaveRow(); err != nil {
		return err
	}
	e.enterRow(row - 1)
	e.cursor.MoveToRow(row-1, e.staging.VisibleLength())
	return nil
}

// MoveDown moves to the next line at the wanted column. Leaving the last
// real line terminates it with "\r\n" if it has no terminator and enters
// the virtual line.
func (e *Engine) MoveDown() error {
	if e.closed {
		return ErrClosed
	}
	row := e.cursor.Row
	if row >= e.doc.Len() {
		return nil
	}

	if row == e.doc.Len()-1 {
		if e.staging.EnsureTerminator() {
			e.modified = true
		}
		if err := e.commitLine(); err != nil {
			return err
		}
		e.staging.Reset()
		e.cursor.MoveToRow(row+1, 0)
		return nil
	}

	if err := e.leaveRow(); err != nil {
		return err
	}
	e.enterRow(row + 1)
	e.cursor.MoveToRow(row+1, e.staging.VisibleLength())
	return nil
}

// MoveHome moves to column 0 of the current line.
func (e *Engine) MoveHome() error {
	if e.closed {
		return ErrClosed
	}
	e.cursor.SetColumn(0)
	return nil
}

// MoveEnd moves past the last visible byte of the current line.
func (e *Engine) MoveEnd() error {
	if e.closed {
		return ErrClosed
	}
	e.cursor.SetColumn(e.staging.VisibleLength())
	return nil
}
