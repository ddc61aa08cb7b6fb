package document

// Terminator identifies the line ending carried by a line.
type Terminator uint8

const (
	TerminatorNone Terminator = iota // no line ending (last line only)
	TerminatorLF                     // legacy bare \n
	TerminatorCR                     // legacy bare \r
	TerminatorCRLF                   // \r\n, used for every line the editor creates
)

// CRLF is the terminator appended to lines created or split by the editor.
const CRLF = "\r\n"

// String returns the escaped form of the terminator.
func (t Terminator) String() string {
	switch t {
	case TerminatorLF:
		return "\\n"
	case TerminatorCR:
		return "\\r"
	case TerminatorCRLF:
		return "\\r\\n"
	default:
		return ""
	}
}

// Len returns the number of bytes the terminator occupies.
func (t Terminator) Len() int {
	switch t {
	case TerminatorLF, TerminatorCR:
		return 1
	case TerminatorCRLF:
		return 2
	default:
		return 0
	}
}

// TerminatorOf reports the trailing terminator of line.
func TerminatorOf(line []byte) Terminator {
	n := len(line)
	switch {
	case n >= 2 && line[n-2] == '\r' && line[n-1] == '\n':
		return TerminatorCRLF
	case n >= 1 && line[n-1] == '\n':
		return TerminatorLF
	case n >= 1 && line[n-1] == '\r':
		return TerminatorCR
	default:
		return TerminatorNone
	}
}

// VisibleLength returns the byte length of line excluding its terminator.
func VisibleLength(line []byte) int {
	return len(line) - TerminatorOf(line).Len()
}

// Visible returns line without its terminator. The result aliases line.
func Visible(line []byte) []byte {
	return line[:VisibleLength(line)]
}
