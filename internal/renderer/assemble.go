package renderer

import "github.com/dshills/ledit/internal/engine/document"

// RowBreak separates screen rows in an assembled blob.
const RowBreak = "\r\n"

// Assemble builds the text for the document area. Starting at line
// firstVisible it emits each line's visible bytes in chunks of width,
// with RowBreak between rows, until rows rows have been produced. The
// budget may run out in the middle of a line. A width of zero or less
// emits every line as a single unwrapped row.
func Assemble(lines [][]byte, firstVisible, width, rows int) []byte {
	if rows <= 0 || firstVisible < 0 || firstVisible >= len(lines) {
		return nil
	}

	out := make([]byte, 0, rows*(max(width, 0)+len(RowBreak)))
	budget := rows
	emit := func(chunk []byte) {
		if budget < rows {
			out = append(out, RowBreak...)
		}
		out = append(out, chunk...)
		budget--
	}

	for _, line := range lines[firstVisible:] {
		text := document.Visible(line)
		if width <= 0 || len(text) == 0 {
			emit(text)
		} else {
			for start := 0; start < len(text) && budget > 0; start += width {
				emit(text[start:min(start+width, len(text))])
			}
		}
		if budget == 0 {
			break
		}
	}
	return out
}
