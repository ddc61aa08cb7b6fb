package engine

// NewLine splits the staging line at the cursor. The head, terminated with
// "\r\n", stays at the cursor row; the tail becomes a new line below it and
// the cursor moves to its start.
func (e *Engine) NewLine() error {
	if e.closed {
		return ErrClosed
	}
	row := e.cursor.Row
	head, tail := e.staging.Split(e.cursor.Col)

	if err := e.promote(); err != nil {
		return err
	}
	if err := e.doc.Commit(row, head); err != nil {
		return err
	}
	if err := e.cache.Set(row, head); err != nil {
		return err
	}
	if err := e.doc.InsertLineAt(row+1, tail); err != nil {
		return err
	}
	if err := e.cache.InsertAt(row+1, tail); err != nil {
		return err
	}

	e.staging.Load(tail)
	e.cursor.MoveTo(row+1, 0)
	e.modified = true
	return nil
}

// Backspace deletes the byte before the cursor. At column 0 it joins the
// cursor row onto the end of the previous line instead.
func (e *Engine) Backspace() error {
	if e.closed {
		return ErrClosed
	}
	row, col := e.cursor.Row, e.cursor.Col

	if col > 0 {
		e.staging.DeleteByte(col - 1)
		// A bare CR left at the end of the line becomes its terminator.
		e.cursor.SetColumn(min(col-1, e.staging.VisibleLength()))
		e.modified = true
		return e.commitLine()
	}
	if row == 0 {
		return nil
	}
	return e.join(row)
}

// join appends row onto row-1, dropping row-1's terminator. On the virtual
// line there is nothing to append and only the terminator is removed.
func (e *Engine) join(row int) error {
	current := append([]byte(nil), e.staging.Bytes()...)

	e.enterRow(row - 1)
	e.staging.StripTerminator()
	prevLen := e.staging.Len()
	if err := e.staging.Append(current); err != nil {
		return err
	}

	if row < e.doc.Len() {
		if err := e.doc.RemoveLineAt(row); err != nil {
			return err
		}
		if err := e.cache.RemoveAt(row); err != nil {
			return err
		}
	}

	e.cursor.MoveTo(row-1, min(prevLen, e.staging.VisibleLength()))
	e.modified = true
	return e.commitLine()
}
